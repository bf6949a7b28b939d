package foodControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/auth"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/models"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/routes"
	"github.com/Abinath7/Feasto-Food-Ordering-and-Delivery-Tracking-System/storage"
	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "not-a-real-secret")
	gin.SetMode(gin.TestMode)

	store, err := storage.NewFileStore("")
	if err != nil {
		t.Fatal(err)
	}
	if err := storage.Seed(store); err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	routes.SetupRoutes(r, store)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func listFood(t *testing.T, r *gin.Engine, path string) []models.FoodItem {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, path, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: got %d: %s", path, w.Code, w.Body.String())
	}
	var resp struct {
		Results []models.FoodItem `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp.Results
}

func TestMenuBrowsing(t *testing.T) {
	r := newTestRouter(t)

	all := listFood(t, r, "/api/food")
	if len(all) != 6 {
		t.Fatalf("seeded menu has %d items, want 6", len(all))
	}

	pizzas := listFood(t, r, "/api/food?category=Pizza")
	if len(pizzas) != 1 || pizzas[0].Name != "Margherita Pizza" {
		t.Errorf("category filter: %+v", pizzas)
	}

	// Search matches name or description, case-insensitively.
	chocolate := listFood(t, r, "/api/food?search=chocolate")
	if len(chocolate) != 1 || chocolate[0].Name != "Chocolate Cake" {
		t.Errorf("search filter: %+v", chocolate)
	}

	w := doJSON(t, r, http.MethodGet, "/api/food/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get by id: got %d", w.Code)
	}
	var item models.FoodItem
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatal(err)
	}
	if item.Price != 12.99 {
		t.Errorf("price = %v, want 12.99", item.Price)
	}

	w = doJSON(t, r, http.MethodGet, "/api/food/999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing item: got %d, want 404", w.Code)
	}
}

func TestMenuManagementIsAdminOnly(t *testing.T) {
	r := newTestRouter(t)
	adminToken, err := auth.GenerateToken(2, models.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	customerToken, err := auth.GenerateToken(1, models.RoleCustomer)
	if err != nil {
		t.Fatal(err)
	}

	newItem := gin.H{
		"name":        "Garlic Bread",
		"description": "Toasted baguette with garlic butter",
		"price":       4.49,
		"category":    "Sides",
	}

	// Customers cannot create menu items.
	w := doJSON(t, r, http.MethodPost, "/api/food", customerToken, newItem)
	if w.Code != http.StatusForbidden {
		t.Fatalf("customer create: got %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/food", adminToken, newItem)
	if w.Code != http.StatusCreated {
		t.Fatalf("admin create: got %d: %s", w.Code, w.Body.String())
	}
	var created models.FoodItem
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if !created.Available {
		t.Error("new items default to available")
	}

	// Zero or negative prices never pass validation.
	bad := gin.H{"name": "Free Lunch", "price": 0, "category": "Sides"}
	w = doJSON(t, r, http.MethodPost, "/api/food", adminToken, bad)
	if w.Code != http.StatusBadRequest {
		t.Errorf("zero price: got %d, want 400", w.Code)
	}

	itemPath := fmt.Sprintf("/api/food/%d", created.ID)

	// Toggle hides it from the available-only listing.
	w = doJSON(t, r, http.MethodPatch, itemPath+"/availability", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: got %d: %s", w.Code, w.Body.String())
	}
	available := listFood(t, r, "/api/food?available=true")
	for _, item := range available {
		if item.ID == created.ID {
			t.Error("toggled item still listed as available")
		}
	}

	// Update the price.
	w = doJSON(t, r, http.MethodPut, itemPath, adminToken, gin.H{
		"name":     "Garlic Bread",
		"price":    4.99,
		"category": "Sides",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: got %d: %s", w.Code, w.Body.String())
	}
	var updated models.FoodItem
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatal(err)
	}
	if updated.Price != 4.99 {
		t.Errorf("price = %v, want 4.99", updated.Price)
	}

	// Delete it, then it 404s.
	w = doJSON(t, r, http.MethodDelete, itemPath, adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodGet, itemPath, "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("deleted item: got %d, want 404", w.Code)
	}
}
