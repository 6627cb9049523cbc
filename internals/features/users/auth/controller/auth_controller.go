// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/users/auth/dto"
	userDTO "schoolku_backend/internals/features/users/user/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"schoolku_backend/internals/constants"
)

/* =========================
   Controller & Constructor
   ========================= */

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Secret   string
	TokenTTL time.Duration
}

func New(db *gorm.DB, v *validator.Validate, secret string) *AuthController {
	return &AuthController{DB: db, Validate: v, Secret: secret, TokenTTL: 24 * time.Hour}
}

/* =========================
   Signup (role dipaksa student)
   ========================= */

func (ctl *AuthController) Signup(c *fiber.Ctx) error {
	var req d.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing userModel.UserModel
	err := ctl.DB.Where("user_email = ?", email).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	user := userModel.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     constants.RoleStudent,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil", userDTO.FromModel(&user))
}

/* =========================
   Login
   ========================= */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user userModel.UserModel
	if err := ctl.DB.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := ctl.signToken(&user)
	if err != nil {
		log.Printf("[AUTH] sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", d.AuthResponse{
		User:  userDTO.FromModel(&user),
		Token: token,
	})
}

/* =========================
   CreateAdmin (bootstrap akun admin)
   ========================= */

func (ctl *AuthController) CreateAdmin(c *fiber.Ctx) error {
	var req d.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing userModel.UserModel
	err := ctl.DB.Where("user_email = ?", email).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email admin sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	user := userModel.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     constants.RoleAdmin,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Admin berhasil dibuat", userDTO.FromModel(&user))
}

/* =========================
   Me
   ========================= */

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", act.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", userDTO.FromModel(&user))
}

/* =========================
   Token
   ========================= */

func (ctl *AuthController) signToken(u *userModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"id":   u.UserID.String(),
		"role": u.UserRole,
		"exp":  time.Now().Add(ctl.TokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	if u.UserSchoolID != nil {
		claims["school_id"] = u.UserSchoolID.String()
	}
	if u.UserClassID != nil {
		claims["class_id"] = u.UserClassID.String()
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(ctl.Secret))
}
