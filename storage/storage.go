package storage

import (
	"errors"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
)

// FoodFilter narrows menu listings.
type FoodFilter struct {
	Available *bool
	Category  string
	Search    string
}

// OrderFilter narrows order listings. Zero values mean "no filter".
type OrderFilter struct {
	CustomerID      uint
	DeliveryStaffID uint
	Status          models.OrderStatus
}

type UserStore interface {
	CreateUser(u *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(u *models.User) error
	ListUsers() ([]models.User, error)
	ListUsersByRole(role models.Role) ([]models.User, error)
}

type FoodStore interface {
	CreateFoodItem(item *models.FoodItem) error
	GetFoodItem(id uint) (*models.FoodItem, error)
	ListFoodItems(filter FoodFilter) ([]models.FoodItem, error)
	UpdateFoodItem(item *models.FoodItem) error
	DeleteFoodItem(id uint) error
}

type CartStore interface {
	// GetCart returns the customer's cart, creating an empty one on first use.
	GetCart(userID uint) (*models.Cart, error)
	// UpsertCartItem adds or replaces the line for item.FoodID. A quantity
	// of zero or less removes the line.
	UpsertCartItem(userID uint, item models.CartItem) (*models.Cart, error)
	RemoveCartItem(userID uint, foodID uint) error
	ClearCart(userID uint) error
}

type OrderStore interface {
	// PlaceOrder persists the order and clears the customer's cart as one
	// write.
	PlaceOrder(order *models.Order) error
	GetOrder(id uint) (*models.Order, error)
	UpdateOrder(order *models.Order) error
	ListOrders(filter OrderFilter) ([]models.Order, error)
}

type EnquiryStore interface {
	CreateEnquiry(e *models.Enquiry) error
	GetEnquiry(id uint) (*models.Enquiry, error)
	ListEnquiries() ([]models.Enquiry, error)
	UpdateEnquiry(e *models.Enquiry) error
}

// Store is the full persistence surface consumed by the handlers. Two
// adapters implement it: a GORM-backed one (Postgres or SQLite) and a
// JSON document store.
type Store interface {
	UserStore
	FoodStore
	CartStore
	OrderStore
	EnquiryStore
}
