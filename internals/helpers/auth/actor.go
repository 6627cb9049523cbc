// file: internals/helpers/auth/actor.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

// Locals keys yang diisi middleware AuthJWT.
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
	LocSchoolID = "school_id"
	LocClassID  = "class_id"
	LocRawToken = "raw_token"
)

// Actor adalah current user hasil resolve token.
type Actor struct {
	ID       uuid.UUID
	Role     string
	SchoolID *uuid.UUID
	ClassID  *uuid.UUID
}

func (a Actor) IsAdmin() bool   { return a.Role == constants.RoleAdmin }
func (a Actor) IsTeacher() bool { return a.Role == constants.RoleTeacher }
func (a Actor) IsStudent() bool { return a.Role == constants.RoleStudent }

// GetActor membaca identitas dari Locals. 401 kalau belum login.
func GetActor(c *fiber.Ctx) (Actor, error) {
	id, err := localUUID(c, LocUserID)
	if err != nil || id == uuid.Nil {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	role, _ := c.Locals(LocUserRole).(string)
	if role == "" {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	act := Actor{ID: id, Role: role}
	if sid, err := localUUID(c, LocSchoolID); err == nil && sid != uuid.Nil {
		act.SchoolID = &sid
	}
	if cid, err := localUUID(c, LocClassID); err == nil && cid != uuid.Nil {
		act.ClassID = &cid
	}
	return act, nil
}

// RequireSchool memastikan actor punya tenant scope.
func (a Actor) RequireSchool() (uuid.UUID, error) {
	if a.SchoolID == nil || *a.SchoolID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun belum terhubung ke sekolah manapun")
	}
	return *a.SchoolID, nil
}

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	switch t := c.Locals(key).(type) {
	case uuid.UUID:
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, nil
		}
		return uuid.Parse(s)
	default:
		return uuid.Nil, nil
	}
}
