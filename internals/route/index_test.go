// file: internals/route/index_test.go
package routes

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/configs"
	userModel "schoolku_backend/internals/features/users/user/model"
	"schoolku_backend/internals/constants"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userModel.UserModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func signTestToken(t *testing.T, secret string, u *userModel.UserModel) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   u.UserID.String(),
		"role": u.UserRole,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// /me hidup di group /api/u yang sama dengan route auth'd lain,
// bukan group terpisah dengan verifikasi JWT kedua.
func TestSetupRoutes_MeBehindSharedJWTGroup(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := newTestDB(t)

	user := userModel.UserModel{
		UserName:     "Siti",
		UserEmail:    "siti@example.com",
		UserPassword: "x",
		UserRole:     constants.RoleStudent,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	app := fiber.New()
	SetupRoutes(app, db)

	req := httptest.NewRequest(fiber.MethodGet, "/api/u/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signTestToken(t, configs.JWTSecret, &user))
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("GET /api/u/me: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("with token status = %d, want 200", resp.StatusCode)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/api/u/me", nil)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("GET /api/u/me (no token): %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("without token status = %d, want 401", resp.StatusCode)
	}
}
