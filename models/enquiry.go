package models

import "time"

type EnquiryStatus string

const (
	EnquiryStatusNew        EnquiryStatus = "new"
	EnquiryStatusInProgress EnquiryStatus = "in_progress"
	EnquiryStatusResolved   EnquiryStatus = "resolved"
)

// ParseEnquiryStatus maps a raw string onto a known enquiry status.
func ParseEnquiryStatus(s string) (EnquiryStatus, bool) {
	switch EnquiryStatus(s) {
	case EnquiryStatusNew, EnquiryStatusInProgress, EnquiryStatusResolved:
		return EnquiryStatus(s), true
	default:
		return "", false
	}
}

// Enquiry is a customer-submitted contact/support message.
type Enquiry struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"not null" json:"email"`
	Phone     string        `json:"phone"`
	Subject   string        `json:"subject"`
	Message   string        `gorm:"not null" json:"message"`
	Status    EnquiryStatus `gorm:"type:VARCHAR(20);default:'new'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
