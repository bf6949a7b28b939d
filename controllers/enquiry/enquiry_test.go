package enquiryControllers_test

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

func TestEnquiryFlow(t *testing.T) {
	r := newTestRouter(t)

	// Anyone can submit the contact form, no token needed.
	w := doJSON(t, r, http.MethodPost, "/api/enquiries", "", gin.H{
		"name":    "Jane Visitor",
		"email":   "jane@example.com",
		"message": "Do you deliver to the west side?",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit enquiry: got %d: %s", w.Code, w.Body.String())
	}
	var created models.Enquiry
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.Status != models.EnquiryStatusNew {
		t.Errorf("new enquiry status = %q, want new", created.Status)
	}
	if created.Subject != "Contact Form Submission" {
		t.Errorf("default subject = %q", created.Subject)
	}

	// Listing is admin-only.
	w = doJSON(t, r, http.MethodGet, "/api/enquiries", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous list: got %d, want 401", w.Code)
	}

	adminToken, err := auth.GenerateToken(2, models.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	w = doJSON(t, r, http.MethodGet, "/api/enquiries", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin list: got %d: %s", w.Code, w.Body.String())
	}
	var listResp struct {
		Results []models.Enquiry `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatal(err)
	}
	if len(listResp.Results) != 1 {
		t.Fatalf("got %d enquiries, want 1", len(listResp.Results))
	}

	// Admin walks it through the triage states.
	statusPath := fmt.Sprintf("/api/enquiries/%d/status", created.ID)
	w = doJSON(t, r, http.MethodPatch, statusPath, adminToken, gin.H{"status": "in_progress"})
	if w.Code != http.StatusOK {
		t.Fatalf("mark in_progress: got %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPatch, statusPath, adminToken, gin.H{"status": "resolved"})
	if w.Code != http.StatusOK {
		t.Fatalf("mark resolved: got %d: %s", w.Code, w.Body.String())
	}
	var resolved models.Enquiry
	if err := json.Unmarshal(w.Body.Bytes(), &resolved); err != nil {
		t.Fatal(err)
	}
	if resolved.Status != models.EnquiryStatusResolved {
		t.Errorf("status = %q, want resolved", resolved.Status)
	}

	// Unknown status strings are rejected.
	w = doJSON(t, r, http.MethodPatch, statusPath, adminToken, gin.H{"status": "closed"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad status: got %d, want 400", w.Code)
	}
}

func TestSubmitEnquiryValidation(t *testing.T) {
	r := newTestRouter(t)

	// Missing message.
	w := doJSON(t, r, http.MethodPost, "/api/enquiries", "", gin.H{
		"name":  "Jane Visitor",
		"email": "jane@example.com",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing message: got %d, want 400", w.Code)
	}

	// Malformed email.
	w = doJSON(t, r, http.MethodPost, "/api/enquiries", "", gin.H{
		"name":    "Jane Visitor",
		"email":   "not-an-email",
		"message": "hello",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad email: got %d, want 400", w.Code)
	}
}
