package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"popout/models"

	"github.com/gin-gonic/gin"
)

// TestFollowIsIdempotent ensures following an already-followed vendor
// does not duplicate the join row.
func TestFollowIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	vendor := createTestVendor(t, db, owner, "Taco Cart")
	fan := createTestUser(t, db, "fan")

	r := gin.New()
	r.POST("/vendors/:id/follow", authAs(fan.ID), FollowVendor(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/vendors/1/follow", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("first follow: expected 201, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/vendors/1/follow", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("second follow: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.VendorFollow{}).Where("user_id = ? AND vendor_id = ?", fan.ID, vendor.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 follow row, found %d", count)
	}
}

func TestFollowUnknownVendor(t *testing.T) {
	db := setupTestDB(t)
	fan := createTestUser(t, db, "fan")

	r := gin.New()
	r.POST("/vendors/:id/follow", authAs(fan.ID), FollowVendor(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/vendors/42/follow", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUnfollowRemovesRow(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	vendor := createTestVendor(t, db, owner, "Taco Cart")
	fan := createTestUser(t, db, "fan")
	db.Create(&models.VendorFollow{UserID: fan.ID, VendorID: vendor.ID})

	r := gin.New()
	r.DELETE("/vendors/:id/follow", authAs(fan.ID), UnfollowVendor(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodDelete, "/vendors/1/follow", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var count int64
	db.Model(&models.VendorFollow{}).Where("user_id = ?", fan.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected follow removed, found %d rows", count)
	}
}
