package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
)

// document is the single JSON payload the FileStore persists. Every
// collection lives under a fixed key and the whole document is swapped
// on each write, the way the local-storage deployment variant works.
type document struct {
	Users             []models.User     `json:"-"`
	FoodItems         []models.FoodItem `json:"foodItems"`
	Carts             []models.Cart     `json:"carts"`
	Orders            []models.Order    `json:"orders"`
	CustomerEnquiries []models.Enquiry  `json:"customerEnquiries"`
	NextID            map[string]uint   `json:"nextId"`

	// The API model hides the password hash from JSON, so users are
	// persisted through a wrapper that writes it under its own key.
	StoredUsers []storedUser `json:"users"`
}

type storedUser struct {
	models.User
	PasswordHash string `json:"passwordHash"`
}

func (d *document) toDisk() {
	d.StoredUsers = d.StoredUsers[:0]
	for _, u := range d.Users {
		d.StoredUsers = append(d.StoredUsers, storedUser{User: u, PasswordHash: u.Password})
	}
}

func (d *document) fromDisk() {
	d.Users = d.Users[:0]
	for _, su := range d.StoredUsers {
		u := su.User
		u.Password = su.PasswordHash
		d.Users = append(d.Users, u)
	}
}

// FileStore implements Store over a single JSON document on disk. With an
// empty path it keeps the document in memory only, which the tests use.
// A process-local mutex serializes access; there is no cross-process
// locking, matching the read-modify-write semantics of the original
// key-value variant.
type FileStore struct {
	mu   sync.Mutex
	path string
	doc  document
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, doc: document{NextID: map[string]uint{}}}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, err
	}
	s.doc.fromDisk()
	if s.doc.NextID == nil {
		s.doc.NextID = map[string]uint{}
	}
	return s, nil
}

// flush writes the whole document back. Callers hold s.mu.
func (s *FileStore) flush() error {
	if s.path == "" {
		return nil
	}
	s.doc.toDisk()
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func (s *FileStore) nextID(collection string) uint {
	s.doc.NextID[collection]++
	return s.doc.NextID[collection]
}

// -------- Users --------

func (s *FileStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.doc.Users {
		if strings.EqualFold(existing.Email, u.Email) {
			return ErrEmailTaken
		}
	}
	if u.ID == 0 {
		u.ID = s.nextID("users")
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.doc.Users = append(s.doc.Users, *u)
	return s.flush()
}

func (s *FileStore) GetUserByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.doc.Users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.doc.Users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) UpdateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.doc.Users {
		if existing.ID == u.ID {
			u.UpdatedAt = time.Now()
			s.doc.Users[i] = *u
			return s.flush()
		}
	}
	return ErrNotFound
}

func (s *FileStore) ListUsers() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := append([]models.User(nil), s.doc.Users...)
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (s *FileStore) ListUsersByRole(role models.Role) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []models.User
	for _, u := range s.doc.Users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

// -------- Food items --------

func (s *FileStore) CreateFoodItem(item *models.FoodItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == 0 {
		item.ID = s.nextID("foodItems")
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	s.doc.FoodItems = append(s.doc.FoodItems, *item)
	return s.flush()
}

func (s *FileStore) GetFoodItem(id uint) (*models.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.doc.FoodItems {
		if f.ID == id {
			item := f
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) ListFoodItems(filter FoodFilter) ([]models.FoodItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []models.FoodItem
	for _, f := range s.doc.FoodItems {
		if filter.Available != nil && f.Available != *filter.Available {
			continue
		}
		if filter.Category != "" && f.Category != filter.Category {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(f.Name), needle) &&
				!strings.Contains(strings.ToLower(f.Description), needle) {
				continue
			}
		}
		items = append(items, f)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (s *FileStore) UpdateFoodItem(item *models.FoodItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.doc.FoodItems {
		if existing.ID == item.ID {
			item.UpdatedAt = time.Now()
			s.doc.FoodItems[i] = *item
			return s.flush()
		}
	}
	return ErrNotFound
}

func (s *FileStore) DeleteFoodItem(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.doc.FoodItems {
		if existing.ID == id {
			s.doc.FoodItems = append(s.doc.FoodItems[:i], s.doc.FoodItems[i+1:]...)
			return s.flush()
		}
	}
	return ErrNotFound
}

// -------- Carts --------

func (s *FileStore) GetCart(userID uint) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartLocked(userID)
	copied := *cart
	copied.Items = append([]models.CartItem(nil), cart.Items...)
	return &copied, nil
}

// cartLocked returns the live cart for a customer, creating one on first
// use. Callers hold s.mu.
func (s *FileStore) cartLocked(userID uint) *models.Cart {
	for i := range s.doc.Carts {
		if s.doc.Carts[i].UserID == userID {
			return &s.doc.Carts[i]
		}
	}
	s.doc.Carts = append(s.doc.Carts, models.Cart{
		CartID:    s.nextID("carts"),
		UserID:    userID,
		CreatedAt: time.Now(),
	})
	return &s.doc.Carts[len(s.doc.Carts)-1]
}

func (s *FileStore) UpsertCartItem(userID uint, item models.CartItem) (*models.Cart, error) {
	s.mu.Lock()
	cart := s.cartLocked(userID)
	if item.Quantity <= 0 {
		for i, line := range cart.Items {
			if line.FoodID == item.FoodID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				break
			}
		}
	} else {
		item.CartID = cart.CartID
		item.AddedAt = time.Now()
		replaced := false
		for i, line := range cart.Items {
			if line.FoodID == item.FoodID {
				cart.Items[i] = item
				replaced = true
				break
			}
		}
		if !replaced {
			cart.Items = append(cart.Items, item)
		}
	}
	cart.UpdatedAt = time.Now()
	err := s.flush()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.GetCart(userID)
}

func (s *FileStore) RemoveCartItem(userID uint, foodID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartLocked(userID)
	for i, line := range cart.Items {
		if line.FoodID == foodID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cart.UpdatedAt = time.Now()
			return s.flush()
		}
	}
	return ErrNotFound
}

func (s *FileStore) ClearCart(userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartLocked(userID)
	cart.Items = nil
	cart.UpdatedAt = time.Now()
	return s.flush()
}

// -------- Orders --------

func (s *FileStore) PlaceOrder(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == 0 {
		order.ID = s.nextID("orders")
	}
	s.doc.Orders = append(s.doc.Orders, *order)
	cart := s.cartLocked(order.CustomerID)
	cart.Items = nil
	cart.UpdatedAt = time.Now()
	return s.flush()
}

func (s *FileStore) GetOrder(id uint) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.doc.Orders {
		if o.ID == id {
			order := o
			order.Items = append([]models.OrderItem(nil), o.Items...)
			return &order, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) UpdateOrder(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.doc.Orders {
		if existing.ID == order.ID {
			s.doc.Orders[i] = *order
			return s.flush()
		}
	}
	return ErrNotFound
}

func (s *FileStore) ListOrders(filter OrderFilter) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var orders []models.Order
	for _, o := range s.doc.Orders {
		if filter.CustomerID != 0 && o.CustomerID != filter.CustomerID {
			continue
		}
		if filter.DeliveryStaffID != 0 &&
			(o.DeliveryStaffID == nil || *o.DeliveryStaffID != filter.DeliveryStaffID) {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderDate.After(orders[j].OrderDate) })
	return orders, nil
}

// -------- Enquiries --------

func (s *FileStore) CreateEnquiry(e *models.Enquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == 0 {
		e.ID = s.nextID("customerEnquiries")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	s.doc.CustomerEnquiries = append(s.doc.CustomerEnquiries, *e)
	return s.flush()
}

func (s *FileStore) GetEnquiry(id uint) (*models.Enquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.doc.CustomerEnquiries {
		if e.ID == id {
			enquiry := e
			return &enquiry, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) ListEnquiries() ([]models.Enquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	enquiries := append([]models.Enquiry(nil), s.doc.CustomerEnquiries...)
	sort.Slice(enquiries, func(i, j int) bool {
		return enquiries[i].CreatedAt.After(enquiries[j].CreatedAt)
	})
	return enquiries, nil
}

func (s *FileStore) UpdateEnquiry(e *models.Enquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.doc.CustomerEnquiries {
		if existing.ID == e.ID {
			e.UpdatedAt = time.Now()
			s.doc.CustomerEnquiries[i] = *e
			return s.flush()
		}
	}
	return ErrNotFound
}
