// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authctl "schoolku_backend/internals/features/users/auth/controller"
	middlewares "schoolku_backend/internals/middlewares"
)

// AuthRoutes: endpoint public (signup/login/bootstrap admin).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authctl.New(db, validator.New(), configs.JWTSecret)

	grp := app.Group("/api/auth")
	grp.Post("/signup", middlewares.SignupRateLimiter(), ctl.Signup)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/admins", middlewares.SignupRateLimiter(), ctl.CreateAdmin)
}

// UserAuthRoutes: /me di group /api/u yang sudah ber-JWT.
func UserAuthRoutes(user fiber.Router, db *gorm.DB) {
	ctl := authctl.New(db, validator.New(), configs.JWTSecret)
	user.Get("/me", ctl.Me)
}
