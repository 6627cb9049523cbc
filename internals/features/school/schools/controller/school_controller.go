// file: internals/features/school/schools/controller/school_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/schools/dto"
	m "schoolku_backend/internals/features/school/schools/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type SchoolController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SchoolController {
	return &SchoolController{DB: db, Validate: v}
}

/* =========================
   Create (admin; sekaligus link admin → sekolah)
   ========================= */

func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	var req d.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	school := m.SchoolModel{
		SchoolName:    strings.TrimSpace(req.Name),
		SchoolAdminID: act.ID,
	}

	// create school + set user_school_id admin dalam satu transaksi
	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&school).Error; err != nil {
			return err
		}
		return tx.Table("users").
			Where("user_id = ?", act.ID).
			Update("user_school_id", school.SchoolID).Error
	}); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Sekolah berhasil dibuat. Login ulang untuk refresh token scope.", d.FromModel(&school))
}

/* =========================
   GetByID (hanya sekolah sendiri)
   ========================= */

func (ctl *SchoolController) GetByID(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if id != schoolID {
		return helper.JsonError(c, fiber.StatusForbidden, "Access denied")
	}

	var school m.SchoolModel
	if err := ctl.DB.First(&school, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModel(&school))
}

/* =========================
   MySchool (semua role)
   ========================= */

func (ctl *SchoolController) MySchool(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	if act.SchoolID == nil {
		return helper.JsonOK(c, "ok", nil)
	}

	var school m.SchoolModel
	if err := ctl.DB.First(&school, "school_id = ?", *act.SchoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "ok", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModel(&school))
}
