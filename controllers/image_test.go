package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"popout/models"

	"github.com/gin-gonic/gin"
)

func multipartImageRequest(t *testing.T, path string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "photo.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte("not really a jpeg"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadVendorImage(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	vendor := createTestVendor(t, db, owner, "Taco Cart")

	store := &fakeUploader{}
	r := gin.New()
	r.POST("/api/images/:kind/:id", authAs(owner.ID), UploadImage(db, store))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartImageRequest(t, "/api/images/vendor/1"))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var image models.Image
	if err := db.Where("vendor_id = ?", vendor.ID).First(&image).Error; err != nil {
		t.Fatalf("expected image row: %v", err)
	}
	if image.PublicID == "" || image.ReferenceURL == "" {
		t.Fatalf("expected cloud identifiers persisted, got %+v", image)
	}
}

// TestUploadVendorImageConflict ensures a vendor cannot hold two
// images.
func TestUploadVendorImageConflict(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	vendor := createTestVendor(t, db, owner, "Taco Cart")

	vendorID := vendor.ID
	db.Create(&models.Image{PublicID: "popout/v1", ReferenceURL: "https://res.example.com/v1.jpg", VendorID: &vendorID})

	store := &fakeUploader{}
	r := gin.New()
	r.POST("/api/images/:kind/:id", authAs(owner.ID), UploadImage(db, store))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartImageRequest(t, "/api/images/vendor/1"))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	if store.uploaded != 0 {
		t.Fatalf("expected no cloud upload on conflict, got %d", store.uploaded)
	}
}

// TestUploadImageOwnership ensures only the owner may attach images.
func TestUploadImageOwnership(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	createTestVendor(t, db, owner, "Taco Cart")
	stranger := createTestUser(t, db, "stranger")

	store := &fakeUploader{}
	r := gin.New()
	r.POST("/api/images/:kind/:id", authAs(stranger.ID), UploadImage(db, store))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartImageRequest(t, "/api/images/vendor/1"))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadImageUnknownKind(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "user")

	store := &fakeUploader{}
	r := gin.New()
	r.POST("/api/images/:kind/:id", authAs(user.ID), UploadImage(db, store))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartImageRequest(t, "/api/images/banana/1"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadUserImageUpdatesProfilePicture(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "user")

	store := &fakeUploader{}
	r := gin.New()
	r.POST("/api/images/:kind/:id", authAs(user.ID), UploadImage(db, store))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartImageRequest(t, "/api/images/user/1"))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var reloaded models.User
	db.First(&reloaded, user.ID)
	if reloaded.ProfilePicture == "" {
		t.Fatalf("expected profile picture URL synced")
	}
}
