package enquiryControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

type SubmitEnquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /api/enquiries/ (public contact form)
func SubmitEnquiry(store storage.EnquiryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitEnquiryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		subject := req.Subject
		if subject == "" {
			subject = "Contact Form Submission"
		}
		enquiry := models.Enquiry{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Subject: subject,
			Message: req.Message,
			Status:  models.EnquiryStatusNew,
		}
		if err := store.CreateEnquiry(&enquiry); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit enquiry"})
			return
		}
		c.JSON(http.StatusCreated, enquiry)
	}
}

// GET /api/enquiries/ (admin)
func GetAllEnquiries(store storage.EnquiryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		enquiries, err := store.ListEnquiries()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch enquiries"})
			return
		}
		if enquiries == nil {
			enquiries = []models.Enquiry{}
		}
		c.JSON(http.StatusOK, gin.H{"results": enquiries})
	}
}

// PATCH /api/enquiries/:id/status (admin)
func UpdateEnquiryStatus(store storage.EnquiryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid enquiry ID"})
			return
		}

		var req UpdateEnquiryStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		status, valid := models.ParseEnquiryStatus(req.Status)
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid enquiry status"})
			return
		}

		enquiry, err := store.GetEnquiry(uint(id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Enquiry not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch enquiry"})
			return
		}

		enquiry.Status = status
		if err := store.UpdateEnquiry(enquiry); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update enquiry status"})
			return
		}
		c.JSON(http.StatusOK, enquiry)
	}
}
