// file: internals/helpers/auth/scope.go
package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   TENANT SCOPE PREDICATE

   Semua pengecekan "apakah entity X milik sekolah Y" lewat
   satu tempat ini, bukan dicek ulang per handler.
   Entity yang reachable via class_rooms → schools ikut
   di-join di sini.
   ========================================================= */

func ClassInSchool(db *gorm.DB, classID, schoolID uuid.UUID) (bool, error) {
	var n int64
	err := db.Table("class_rooms").
		Where("class_room_id = ? AND class_room_school_id = ?", classID, schoolID).
		Count(&n).Error
	return n > 0, err
}

func SubjectInSchool(db *gorm.DB, subjectID, schoolID uuid.UUID) (bool, error) {
	var n int64
	err := db.Table("subjects").
		Joins("JOIN class_rooms ON class_rooms.class_room_id = subjects.subject_class_id").
		Where("subjects.subject_id = ? AND class_rooms.class_room_school_id = ?", subjectID, schoolID).
		Count(&n).Error
	return n > 0, err
}

func ScheduleInSchool(db *gorm.DB, scheduleID, schoolID uuid.UUID) (bool, error) {
	var n int64
	err := db.Table("schedules").
		Joins("JOIN class_rooms ON class_rooms.class_room_id = schedules.schedule_class_id").
		Where("schedules.schedule_id = ? AND class_rooms.class_room_school_id = ?", scheduleID, schoolID).
		Count(&n).Error
	return n > 0, err
}

func ExamInSchool(db *gorm.DB, examID, schoolID uuid.UUID) (bool, error) {
	var n int64
	err := db.Table("exams").
		Joins("JOIN class_rooms ON class_rooms.class_room_id = exams.exam_class_id").
		Where("exams.exam_id = ? AND class_rooms.class_room_school_id = ?", examID, schoolID).
		Count(&n).Error
	return n > 0, err
}

func UserInSchool(db *gorm.DB, userID, schoolID uuid.UUID) (bool, error) {
	var n int64
	err := db.Table("users").
		Where("user_id = ? AND user_school_id = ?", userID, schoolID).
		Count(&n).Error
	return n > 0, err
}

// EnsureInSchool mengubah hasil predicate jadi error 404
// (cross-tenant sengaja dibalas NotFound, bukan Forbidden,
// supaya keberadaan row tenant lain tidak bocor).
func EnsureInSchool(ok bool, err error, what string) error {
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, what+" tidak ditemukan")
	}
	return nil
}
