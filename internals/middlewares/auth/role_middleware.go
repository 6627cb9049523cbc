// file: internals/middlewares/auth/role_middleware.go
package authMiddleware

import (
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/constants"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// RequireRoles menolak request yang role-nya tidak ada di daftar.
func RequireRoles(feature string, roles ...string) fiber.Handler {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		act, err := helperAuth.GetActor(c)
		if err != nil {
			return err
		}
		if _, ok := allowed[act.Role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

func AdminOnly(feature string) fiber.Handler {
	return RequireRoles(feature, constants.RoleAdmin)
}

func TeacherOrAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		act, err := helperAuth.GetActor(c)
		if err != nil {
			return err
		}
		if !act.IsTeacher() && !act.IsAdmin() {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher(feature))
		}
		return c.Next()
	}
}

func StudentOnly(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		act, err := helperAuth.GetActor(c)
		if err != nil {
			return err
		}
		if !act.IsStudent() {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStudent(feature))
		}
		return c.Next()
	}
}
