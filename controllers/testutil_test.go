package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"popout/models"
	"popout/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Vendor{}, &models.Event{}, &models.Category{},
		&models.EventCategory{}, &models.Review{}, &models.Image{},
		&models.VendorFollow{}, &models.EventBookmark{}, &models.UserPreference{})
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	for _, name := range []string{"Food & Drink", "Art", "Music", "Sports & Fitness", "Hobbies"} {
		db.Create(&models.Category{Name: name})
	}

	return db
}

// authAs stands in for the session middleware in tests.
func authAs(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	}
}

func createTestUser(t *testing.T, db *gorm.DB, googleID string) *models.User {
	t.Helper()
	user := models.User{
		GoogleID: googleID,
		Email:    googleID + "@example.com",
		Name:     "Test " + googleID,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return &user
}

func createTestVendor(t *testing.T, db *gorm.DB, user *models.User, name string) *models.Vendor {
	t.Helper()
	vendor := models.Vendor{
		BusinessName: name,
		Email:        name + "@example.com",
		UserID:       user.ID,
	}
	if err := db.Create(&vendor).Error; err != nil {
		t.Fatalf("create test vendor: %v", err)
	}
	user.IsVendor = true
	db.Save(user)
	return &vendor
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// fakeSender records deliveries and fails tokens on demand.
type fakeSender struct {
	mu   sync.Mutex
	sent []string
	fail map[string]bool
}

func (s *fakeSender) Send(ctx context.Context, token, title, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail[token] {
		return fmt.Errorf("delivery refused for %s", token)
	}
	s.sent = append(s.sent, token)
	return nil
}

// fakeUploader records cloud calls and fails on demand.
type fakeUploader struct {
	uploaded    int
	destroyed   []string
	failDestroy bool
}

func (u *fakeUploader) Upload(ctx context.Context, file io.Reader) (*storage.UploadResult, error) {
	u.uploaded++
	return &storage.UploadResult{
		PublicID: fmt.Sprintf("popout/test-%d", u.uploaded),
		URL:      fmt.Sprintf("https://res.example.com/popout/test-%d.jpg", u.uploaded),
	}, nil
}

func (u *fakeUploader) Destroy(ctx context.Context, publicID string) error {
	if u.failDestroy {
		return fmt.Errorf("cloud storage unavailable")
	}
	u.destroyed = append(u.destroyed, publicID)
	return nil
}
