package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pos/configs"
	"pos/entity"
	"pos/routes"
	"pos/ws"
)

const (
	testEmail    = "admin@pos.local"
	testPassword = "secret123"
)

// newTestStack boots the whole server on an in-memory DB and returns
// a logged-in client pointed at it.
func newTestStack(t *testing.T) (*Client, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Department{}, &entity.MenuItem{},
		&entity.Table{}, &entity.TableOrder{},
		&entity.Invoice{},
		&entity.KotConfig{}, &entity.BillConfig{},
	))

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.User{
		Email:    testEmail,
		Password: string(hash),
		Role:     "admin",
	}).Error)

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	hub := ws.NewEventHub()
	go hub.Run()

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, hub)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	require.NoError(t, c.Login(context.Background(), testEmail, testPassword))
	return c, db
}
