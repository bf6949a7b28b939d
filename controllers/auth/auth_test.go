package authControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

type authResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func TestRegisterLoginChangePassword(t *testing.T) {
	r := newTestRouter(t)

	// Register a new customer.
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "alice@example.com",
		"password": "alice-secret",
		"name":     "Alice Example",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: got %d: %s", w.Code, w.Body.String())
	}
	var registered authResponse
	if err := json.Unmarshal(w.Body.Bytes(), &registered); err != nil {
		t.Fatal(err)
	}
	if registered.User.Role != models.RoleCustomer {
		t.Errorf("registered role = %q, want customer", registered.User.Role)
	}
	if registered.Token == "" {
		t.Error("register did not return a token")
	}

	// Password hashes never leave the API.
	if bytes.Contains(w.Body.Bytes(), []byte("alice-secret")) ||
		bytes.Contains(w.Body.Bytes(), []byte(`"password"`)) {
		t.Error("register response leaks password material")
	}

	// Duplicate email is a conflict.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "alice@example.com",
		"password": "other-secret",
		"name":     "Second Alice",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate register: got %d, want 409", w.Code)
	}

	// Login with the right password.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "alice-secret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: got %d: %s", w.Code, w.Body.String())
	}
	var loggedIn authResponse
	if err := json.Unmarshal(w.Body.Bytes(), &loggedIn); err != nil {
		t.Fatal(err)
	}

	// Wrong password and unknown email both come back as the same 401.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: got %d, want 401", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown email: got %d, want 401", w.Code)
	}

	// Change password, then the old one stops working.
	w = doJSON(t, r, http.MethodPost, "/api/auth/change-password", loggedIn.Token, gin.H{
		"old_password": "alice-secret",
		"new_password": "alice-rotated",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("change password: got %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "alice-secret",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("old password after rotation: got %d, want 401", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "alice-rotated",
	})
	if w.Code != http.StatusOK {
		t.Errorf("new password: got %d, want 200", w.Code)
	}
}

func TestLoginIsGuestOnly(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "customer@feasto.com",
		"password": "customer123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("seeded login: got %d: %s", w.Code, w.Body.String())
	}
	var loggedIn authResponse
	if err := json.Unmarshal(w.Body.Bytes(), &loggedIn); err != nil {
		t.Fatal(err)
	}

	// A second login while holding a valid token gets redirected away.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", loggedIn.Token, gin.H{
		"email":    "customer@feasto.com",
		"password": "customer123",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("authenticated login: got %d, want 403", w.Code)
	}
	var resp struct {
		Redirect string `json:"redirect"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Redirect != "/customer/dashboard" {
		t.Errorf("redirect = %q, want /customer/dashboard", resp.Redirect)
	}
}

func TestProfileEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "delivery@feasto.com",
		"password": "delivery123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: got %d: %s", w.Code, w.Body.String())
	}
	var loggedIn authResponse
	if err := json.Unmarshal(w.Body.Bytes(), &loggedIn); err != nil {
		t.Fatal(err)
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", loggedIn.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get profile: got %d: %s", w.Code, w.Body.String())
	}
	var profile models.User
	if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
		t.Fatal(err)
	}
	if profile.Name != "Mike Driver" || profile.VehicleNumber != "ABC-1234" {
		t.Errorf("unexpected seeded profile: %+v", profile)
	}

	// Partial update touches only the provided fields.
	w = doJSON(t, r, http.MethodPut, "/api/auth/me", loggedIn.Token, gin.H{
		"vehicleNumber": "XYZ-9876",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update profile: got %d: %s", w.Code, w.Body.String())
	}
	var updated models.User
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatal(err)
	}
	if updated.VehicleNumber != "XYZ-9876" {
		t.Errorf("vehicle number = %q, want XYZ-9876", updated.VehicleNumber)
	}
	if updated.Name != "Mike Driver" {
		t.Errorf("name overwritten by partial update: %q", updated.Name)
	}
}
