// Package testkit boots an in-memory API for package tests: sqlite database,
// migrated schema, and the full route table behind httptest.
package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/routes"
	"github.com/shashiranjanraj/kashvi-store/config"
	"github.com/shashiranjanraj/kashvi-store/pkg/auth"
	"github.com/shashiranjanraj/kashvi-store/pkg/database"
	"github.com/shashiranjanraj/kashvi-store/pkg/event"
	"github.com/shashiranjanraj/kashvi-store/pkg/middleware"
	"github.com/shashiranjanraj/kashvi-store/pkg/router"
	"gorm.io/gorm"
)

var dbSeq int64

// API is one booted application instance backed by a fresh sqlite database.
type API struct {
	T       *testing.T
	DB      *gorm.DB
	handler http.Handler
}

// NewAPI opens a unique in-memory database, migrates every model, and mounts
// the full route table. Each call gets isolated data.
func NewAPI(t *testing.T) *API {
	t.Helper()

	config.Set("DB_DRIVER", "sqlite")
	config.Set("DATABASE_DSN",
		fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1)))

	if err := database.Connect(); err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Gemstone{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.Review{},
		&models.HomepageSection{},
		&models.Banner{},
		&models.Testimonial{},
		&models.FAQ{},
		&models.PressArticle{},
		&models.ActivityLog{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	// Listeners from earlier tests would see this test's orders.
	event.Flush()

	r := router.New()
	r.Use(middleware.Recovery)
	routes.RegisterAPI(r)

	return &API{T: t, DB: database.DB, handler: r.Handler()}
}

// Do performs one request against the API and returns the recorder.
// A non-nil body is JSON-encoded; token, when set, rides the Authorization
// header the way the SPA sends it.
func (a *API) Do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	a.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			a.T.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

// Decode unmarshals the recorded JSON envelope into dest.
func (a *API) Decode(w *httptest.ResponseRecorder, dest interface{}) {
	a.T.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		a.T.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// Envelope mirrors the standard JSON response shape.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

// Body parses the recorded response as an Envelope.
func (a *API) Body(w *httptest.ResponseRecorder) Envelope {
	a.T.Helper()
	var env Envelope
	a.Decode(w, &env)
	return env
}

// Data unmarshals the envelope's data field into dest.
func (a *API) Data(w *httptest.ResponseRecorder, dest interface{}) {
	a.T.Helper()
	env := a.Body(w)
	if err := json.Unmarshal(env.Data, dest); err != nil {
		a.T.Fatalf("decode data %q: %v", string(env.Data), err)
	}
}

// CreateUser inserts a user with the given role and returns it with a live
// token.
func (a *API) CreateUser(name, email, role string) (models.User, string) {
	a.T.Helper()

	hash, err := auth.HashPassword("password")
	if err != nil {
		a.T.Fatalf("hash password: %v", err)
	}
	u := models.User{Name: name, Email: email, Password: hash, Role: role}
	if err := a.DB.Create(&u).Error; err != nil {
		a.T.Fatalf("create user: %v", err)
	}

	token, err := auth.GenerateToken(u.ID, u.Role)
	if err != nil {
		a.T.Fatalf("generate token: %v", err)
	}
	return u, token
}

// Admin creates an admin account and returns its token.
func (a *API) Admin() (models.User, string) {
	return a.CreateUser("Admin", fmt.Sprintf("admin%d@test.local", atomic.AddInt64(&dbSeq, 1)), models.RoleAdmin)
}

// Customer creates a regular account and returns its token.
func (a *API) Customer() (models.User, string) {
	return a.CreateUser("Customer", fmt.Sprintf("customer%d@test.local", atomic.AddInt64(&dbSeq, 1)), models.RoleUser)
}

// CreateGemstone inserts an active gemstone with stock.
func (a *API) CreateGemstone(name string, price float64, stock int) models.Gemstone {
	a.T.Helper()
	g := models.Gemstone{Name: name, Type: "sapphire", Price: price, Active: true, Stock: stock, LowStockThreshold: 2}
	g.SetImageList([]string{})
	if err := a.DB.Create(&g).Error; err != nil {
		a.T.Fatalf("create gemstone: %v", err)
	}
	return g
}
