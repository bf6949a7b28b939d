package storage

import (
	"errors"
	"time"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"gorm.io/gorm"
)

// GormStore implements Store on top of a GORM database (Postgres in
// production, SQLite for local development).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates or updates all tables.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Enquiry{},
	)
}

// -------- Users --------

func (s *GormStore) CreateUser(u *models.User) error {
	var existing models.User
	// Email matching is case-insensitive on both adapters.
	err := s.db.Where("LOWER(email) = LOWER(?)", u.Email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(u).Error
}

func (s *GormStore) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *GormStore) UpdateUser(u *models.User) error {
	return s.db.Save(u).Error
}

func (s *GormStore) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) ListUsersByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("role = ?", role).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// -------- Food items --------

func (s *GormStore) CreateFoodItem(item *models.FoodItem) error {
	return s.db.Create(item).Error
}

func (s *GormStore) GetFoodItem(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &item, nil
}

func (s *GormStore) ListFoodItems(filter FoodFilter) ([]models.FoodItem, error) {
	query := s.db.Model(&models.FoodItem{})
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		likePattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", likePattern, likePattern)
	}
	var items []models.FoodItem
	if err := query.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) UpdateFoodItem(item *models.FoodItem) error {
	return s.db.Save(item).Error
}

func (s *GormStore) DeleteFoodItem(id uint) error {
	result := s.db.Delete(&models.FoodItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// -------- Carts --------

func (s *GormStore) GetCart(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := s.db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *GormStore) UpsertCartItem(userID uint, item models.CartItem) (*models.Cart, error) {
	cart, err := s.GetCart(userID)
	if err != nil {
		return nil, err
	}

	if item.Quantity <= 0 {
		if err := s.RemoveCartItem(userID, item.FoodID); err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return s.GetCart(userID)
	}

	var existing models.CartItem
	err = s.db.Where("cart_id = ? AND food_id = ?", cart.CartID, item.FoodID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item.CartID = cart.CartID
		item.AddedAt = time.Now()
		if err := s.db.Create(&item).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		existing.Quantity = item.Quantity
		existing.AddedAt = time.Now()
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, err
		}
	}
	return s.GetCart(userID)
}

func (s *GormStore) RemoveCartItem(userID uint, foodID uint) error {
	cart, err := s.GetCart(userID)
	if err != nil {
		return err
	}
	result := s.db.Where("cart_id = ? AND food_id = ?", cart.CartID, foodID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ClearCart(userID uint) error {
	cart, err := s.GetCart(userID)
	if err != nil {
		return err
	}
	return s.db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}

// -------- Orders --------

func (s *GormStore) PlaceOrder(order *models.Order) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		var cart models.Cart
		err := tx.Where("user_id = ?", order.CustomerID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
}

func (s *GormStore) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &order, nil
}

func (s *GormStore) UpdateOrder(order *models.Order) error {
	return s.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
}

func (s *GormStore) ListOrders(filter OrderFilter) ([]models.Order, error) {
	query := s.db.Model(&models.Order{}).Preload("Items")
	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.DeliveryStaffID != 0 {
		query = query.Where("delivery_staff_id = ?", filter.DeliveryStaffID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	var orders []models.Order
	if err := query.Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// -------- Enquiries --------

func (s *GormStore) CreateEnquiry(e *models.Enquiry) error {
	return s.db.Create(e).Error
}

func (s *GormStore) GetEnquiry(id uint) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	if err := s.db.First(&enquiry, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &enquiry, nil
}

func (s *GormStore) ListEnquiries() ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	if err := s.db.Order("created_at desc").Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}

func (s *GormStore) UpdateEnquiry(e *models.Enquiry) error {
	return s.db.Save(e).Error
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
