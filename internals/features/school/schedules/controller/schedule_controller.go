// file: internals/features/school/schedules/controller/schedule_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/schedules/dto"
	m "schoolku_backend/internals/features/school/schedules/model"
	svc "schoolku_backend/internals/features/school/schedules/service"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ScheduleController {
	return &ScheduleController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	return uuid.Parse(idStr)
}

// validateSlot: kelas milik sekolah admin + subject ter-assign ke kelas itu.
func (ctl *ScheduleController) validateSlot(schoolID uuid.UUID, req *d.CreateScheduleRequest) error {
	ok, err := helperAuth.ClassInSchool(ctl.DB, req.ClassID, schoolID)
	if err := helperAuth.EnsureInSchool(ok, err, "ClassRoom"); err != nil {
		return err
	}

	var n int64
	if err := ctl.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ? AND subject_class_id = ?", req.SubjectID, req.ClassID).
		Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan atau tidak ter-assign ke kelas itu")
	}

	if !m.IsValidDay(req.Day) {
		return fiber.NewError(fiber.StatusBadRequest, "Hari tidak valid")
	}
	if !req.ValidTimeRange() {
		return fiber.NewError(fiber.StatusBadRequest, "Rentang jam tidak valid (format HH:MM, start < end)")
	}
	return nil
}

/* =========================
   Create
   ========================= */

func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	var req d.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if err := ctl.validateSlot(schoolID, &req); err != nil {
		return err
	}

	if err := svc.CheckConflicts(ctl.DB, svc.ProposedSlot{
		ClassID:   req.ClassID,
		SubjectID: req.SubjectID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, uuid.Nil); err != nil {
		var ce *svc.ConflictError
		if errors.As(err, &ce) {
			return helper.JsonError(c, fiber.StatusConflict, ce.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	schedule := m.ScheduleModel{
		ScheduleClassID:   req.ClassID,
		ScheduleSubjectID: req.SubjectID,
		ScheduleDay:       req.Day,
		ScheduleStartTime: req.StartTime,
		ScheduleEndTime:   req.EndTime,
	}
	// 23P01 dari exclusion constraint (kalau dipasang di DB) tetap
	// ter-map ke 409 lewat WritePGError — guard otoritatif saat race.
	if err := ctl.DB.Create(&schedule).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Jadwal berhasil dibuat", d.FromModel(&schedule))
}

/* =========================
   Update (re-check conflict, exclude diri sendiri)
   ========================= */

func (ctl *ScheduleController) Update(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ok, err := helperAuth.ScheduleInSchool(ctl.DB, id, schoolID)
	if err := helperAuth.EnsureInSchool(ok, err, "Jadwal"); err != nil {
		return err
	}

	var req d.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if err := ctl.validateSlot(schoolID, &req); err != nil {
		return err
	}

	if err := svc.CheckConflicts(ctl.DB, svc.ProposedSlot{
		ClassID:   req.ClassID,
		SubjectID: req.SubjectID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, id); err != nil {
		var ce *svc.ConflictError
		if errors.As(err, &ce) {
			return helper.JsonError(c, fiber.StatusConflict, ce.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var schedule m.ScheduleModel
	if err := ctl.DB.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	schedule.ScheduleClassID = req.ClassID
	schedule.ScheduleSubjectID = req.SubjectID
	schedule.ScheduleDay = req.Day
	schedule.ScheduleStartTime = req.StartTime
	schedule.ScheduleEndTime = req.EndTime

	if err := ctl.DB.Save(&schedule).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Jadwal diperbarui", d.FromModel(&schedule))
}

/* =========================
   Delete & List
   ========================= */

func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ok, err := helperAuth.ScheduleInSchool(ctl.DB, id, schoolID)
	if err := helperAuth.EnsureInSchool(ok, err, "Jadwal"); err != nil {
		return err
	}

	var schedule m.ScheduleModel
	if err := ctl.DB.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Delete(&m.ScheduleModel{}, "schedule_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Jadwal dihapus", d.FromModel(&schedule))
}

func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	schoolID, err := act.RequireSchool()
	if err != nil {
		return err
	}

	var rows []m.ScheduleModel
	if err := ctl.DB.
		Joins("JOIN class_rooms ON class_rooms.class_room_id = schedules.schedule_class_id").
		Where("class_rooms.class_room_school_id = ?", schoolID).
		Order("schedule_day ASC, schedule_start_time ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModels(rows))
}

/* =========================
   Mine (student: per kelas, teacher: per mapel yang diajar)
   ========================= */

func (ctl *ScheduleController) Mine(c *fiber.Ctx) error {
	act, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}

	var rows []m.ScheduleModel

	switch {
	case act.IsStudent() && act.ClassID != nil:
		if err := ctl.DB.
			Where("schedule_class_id = ?", *act.ClassID).
			Order("schedule_day ASC, schedule_start_time ASC").
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	case act.IsTeacher():
		var subjectIDs []uuid.UUID
		if err := ctl.DB.Model(&subjectModel.SubjectModel{}).
			Where("subject_teacher_id = ?", act.ID).
			Pluck("subject_id", &subjectIDs).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if len(subjectIDs) > 0 {
			if err := ctl.DB.
				Where("schedule_subject_id IN ?", subjectIDs).
				Order("schedule_day ASC, schedule_start_time ASC").
				Find(&rows).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
			}
		}
	}

	return helper.JsonOK(c, "ok", d.FromModels(rows))
}
