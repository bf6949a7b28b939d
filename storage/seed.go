package storage

import (
	"errors"
	"log"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
)

// Seed loads the default accounts and menu when the user collection is
// empty, so a fresh deployment comes up ready to demo.
func Seed(store Store) error {
	if _, err := store.GetUserByEmail("admin@feasto.com"); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	users := []struct {
		user     models.User
		password string
	}{
		{models.User{
			Email:   "customer@feasto.com",
			Name:    "John Doe",
			Phone:   "123-456-7890",
			Address: "123 Main St, City, State 12345",
			Role:    models.RoleCustomer,
		}, "customer123"},
		{models.User{
			Email: "admin@feasto.com",
			Name:  "Admin User",
			Phone: "098-765-4321",
			Role:  models.RoleAdmin,
		}, "admin123"},
		{models.User{
			Email:         "delivery@feasto.com",
			Name:          "Mike Driver",
			Phone:         "555-123-4567",
			VehicleNumber: "ABC-1234",
			Role:          models.RoleDelivery,
		}, "delivery123"},
	}
	for _, entry := range users {
		u := entry.user
		if err := u.HashPassword(entry.password); err != nil {
			return err
		}
		if err := store.CreateUser(&u); err != nil {
			return err
		}
	}

	menu := []models.FoodItem{
		{Name: "Margherita Pizza", Description: "Classic pizza with tomato sauce, mozzarella, and basil", Price: 12.99, Category: "Pizza", Image: "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=400", Available: true},
		{Name: "Chicken Burger", Description: "Grilled chicken patty with lettuce, tomato, and special sauce", Price: 8.99, Category: "Burgers", Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400", Available: true},
		{Name: "Caesar Salad", Description: "Fresh romaine lettuce with Caesar dressing and croutons", Price: 7.49, Category: "Salads", Image: "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=400", Available: true},
		{Name: "Spaghetti Carbonara", Description: "Creamy pasta with bacon and parmesan cheese", Price: 14.99, Category: "Pasta", Image: "https://images.unsplash.com/photo-1612874742237-6526221588e3?w=400", Available: true},
		{Name: "Beef Tacos", Description: "Three soft tacos with seasoned beef and toppings", Price: 9.99, Category: "Mexican", Image: "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?w=400", Available: true},
		{Name: "Chocolate Cake", Description: "Rich chocolate layer cake with chocolate frosting", Price: 6.99, Category: "Desserts", Image: "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400", Available: true},
	}
	for _, item := range menu {
		food := item
		if err := store.CreateFoodItem(&food); err != nil {
			return err
		}
	}

	log.Println("✅ Seeded default users and menu items")
	return nil
}
