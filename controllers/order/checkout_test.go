package orderControllers

import (
	"errors"
	"testing"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
)

func cartLine(qty int) []models.CartItem {
	return []models.CartItem{{FoodID: 1, FoodName: "Margherita Pizza", Price: 12.99, Quantity: qty}}
}

func validCard() *CardDetails {
	return &CardDetails{
		CardNumber: "4111111111111111",
		CardName:   "John Doe",
		ExpiryDate: "12/28",
		CVV:        "123",
	}
}

func TestValidateCheckout(t *testing.T) {
	base := CheckoutRequest{
		PaymentMethod:   "cash",
		DeliveryAddress: "123 Main St, City, State 12345",
		PhoneNumber:     "123-456-7890",
	}

	tests := []struct {
		name    string
		mutate  func(r *CheckoutRequest)
		items   []models.CartItem
		wantErr error
	}{
		{
			name:   "cash order passes",
			mutate: func(r *CheckoutRequest) {},
			items:  cartLine(2),
		},
		{
			name:    "empty cart rejected",
			mutate:  func(r *CheckoutRequest) {},
			items:   nil,
			wantErr: errEmptyCart,
		},
		{
			name:    "zero quantity line rejected",
			mutate:  func(r *CheckoutRequest) {},
			items:   cartLine(0),
			wantErr: errBadLineItem,
		},
		{
			name:    "missing payment method",
			mutate:  func(r *CheckoutRequest) { r.PaymentMethod = "" },
			items:   cartLine(1),
			wantErr: errNoPaymentMethod,
		},
		{
			name:    "unknown payment method",
			mutate:  func(r *CheckoutRequest) { r.PaymentMethod = "bitcoin" },
			items:   cartLine(1),
			wantErr: errNoPaymentMethod,
		},
		{
			name:    "missing delivery address",
			mutate:  func(r *CheckoutRequest) { r.DeliveryAddress = "" },
			items:   cartLine(1),
			wantErr: errNoDeliveryAddress,
		},
		{
			name:    "missing phone number",
			mutate:  func(r *CheckoutRequest) { r.PhoneNumber = "" },
			items:   cartLine(1),
			wantErr: errNoPhoneNumber,
		},
		{
			name: "card order passes with valid details",
			mutate: func(r *CheckoutRequest) {
				r.PaymentMethod = "card"
				r.Card = validCard()
			},
			items: cartLine(1),
		},
		{
			name: "card order without card details",
			mutate: func(r *CheckoutRequest) {
				r.PaymentMethod = "card"
			},
			items:   cartLine(1),
			wantErr: errBadCardNumber,
		},
		{
			name: "card number too short",
			mutate: func(r *CheckoutRequest) {
				r.PaymentMethod = "card"
				r.Card = validCard()
				r.Card.CardNumber = "411111111111111"
			},
			items:   cartLine(1),
			wantErr: errBadCardNumber,
		},
		{
			name: "card number with letters",
			mutate: func(r *CheckoutRequest) {
				r.PaymentMethod = "card"
				r.Card = validCard()
				r.Card.CardNumber = "4111x11111111111"
			},
			items:   cartLine(1),
			wantErr: errBadCardNumber,
		},
		{
			name: "missing cardholder name",
			mutate: func(r *CheckoutRequest) {
				r.PaymentMethod = "card"
				r.Card = validCard()
				r.Card.CardName = ""
			},
			items:   cartLine(1),
			wantErr: errBadCardName,
		},
		{
			name: "expiry without slash",
			mutate: func(r *CheckoutRequest) {
				r.PaymentMethod = "card"
				r.Card = validCard()
				r.Card.ExpiryDate = "12-28"
			},
			items:   cartLine(1),
			wantErr: errBadExpiryDate,
		},
		{
			name: "expiry wrong length",
			mutate: func(r *CheckoutRequest) {
				r.PaymentMethod = "card"
				r.Card = validCard()
				r.Card.ExpiryDate = "1/28"
			},
			items:   cartLine(1),
			wantErr: errBadExpiryDate,
		},
		{
			name: "cvv too long",
			mutate: func(r *CheckoutRequest) {
				r.PaymentMethod = "card"
				r.Card = validCard()
				r.Card.CVV = "1234"
			},
			items:   cartLine(1),
			wantErr: errBadCVV,
		},
		{
			name: "cvv with letters",
			mutate: func(r *CheckoutRequest) {
				r.PaymentMethod = "card"
				r.Card = validCard()
				r.Card.CVV = "12a"
			},
			items:   cartLine(1),
			wantErr: errBadCVV,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			tc.mutate(&req)
			err := validateCheckout(req, tc.items)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("validateCheckout() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestGenerateOrderRef(t *testing.T) {
	a := generateOrderRef()
	b := generateOrderRef()
	if a == b {
		t.Error("order refs should be unique")
	}
	if len(a) < 15 || a[14] != '-' {
		t.Errorf("unexpected order ref format: %q", a)
	}
}
