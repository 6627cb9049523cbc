// file: internals/features/school/schedules/service/conflict_service.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "schoolku_backend/internals/features/school/schedules/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
)

/* =========================================================
   SCHEDULE CONFLICT CHECK

   Dua pass linear scan (per kelas, lalu per teacher) atas
   row satu hari yang sama. Cardinality per kelas/teacher
   kecil (puluhan row), jadi tidak perlu interval index.
   ========================================================= */

const (
	ConflictClassroom = "classroom"
	ConflictTeacher   = "teacher"
)

// ConflictError membawa slot yang bentrok supaya pesan error bisa
// menyebut jamnya.
type ConflictError struct {
	Kind      string // classroom | teacher
	StartTime string
	EndTime   string
}

func (e *ConflictError) Error() string {
	if e.Kind == ConflictTeacher {
		return fmt.Sprintf("Teacher conflict: The assigned teacher is already teaching another class at %s-%s.", e.StartTime, e.EndTime)
	}
	return fmt.Sprintf("Classroom conflict: This time slot overlaps with %s-%s.", e.StartTime, e.EndTime)
}

// Overlaps: interval half-open [s1,e1) vs [s2,e2). Slot yang hanya
// bersentuhan di ujung (09:00-10:00 lalu 10:00-11:00) TIDAK bentrok.
// Perbandingan string valid karena format "HH:MM" fixed width.
func Overlaps(s1, e1, s2, e2 string) bool {
	return s1 < e2 && e1 > s2
}

type ProposedSlot struct {
	ClassID   uuid.UUID
	SubjectID uuid.UUID
	Day       string
	StartTime string
	EndTime   string
}

// CheckConflicts menjalankan classroom-pass lalu teacher-pass untuk slot
// yang diusulkan. excludeID dipakai saat update supaya row yang sedang
// diubah tidak bentrok dengan dirinya sendiri (uuid.Nil saat create).
func CheckConflicts(db *gorm.DB, slot ProposedSlot, excludeID uuid.UUID) error {
	// 1) classroom pass: semua slot kelas ini di hari yang sama
	var classRows []m.ScheduleModel
	q := db.Where("schedule_class_id = ? AND schedule_day = ?", slot.ClassID, slot.Day)
	if excludeID != uuid.Nil {
		q = q.Where("schedule_id <> ?", excludeID)
	}
	if err := q.Find(&classRows).Error; err != nil {
		return err
	}
	for _, row := range classRows {
		if Overlaps(slot.StartTime, slot.EndTime, row.ScheduleStartTime, row.ScheduleEndTime) {
			return &ConflictError{Kind: ConflictClassroom, StartTime: row.ScheduleStartTime, EndTime: row.ScheduleEndTime}
		}
	}

	// 2) teacher pass: resolve teacher dari subject; skip kalau mapel
	// belum punya teacher
	var subject subjectModel.SubjectModel
	if err := db.First(&subject, "subject_id = ?", slot.SubjectID).Error; err != nil {
		return err
	}
	if subject.SubjectTeacherID == nil {
		return nil
	}

	var teacherSubjectIDs []uuid.UUID
	if err := db.Model(&subjectModel.SubjectModel{}).
		Where("subject_teacher_id = ?", *subject.SubjectTeacherID).
		Pluck("subject_id", &teacherSubjectIDs).Error; err != nil {
		return err
	}
	if len(teacherSubjectIDs) == 0 {
		return nil
	}

	var teacherRows []m.ScheduleModel
	q = db.Where("schedule_subject_id IN ? AND schedule_day = ?", teacherSubjectIDs, slot.Day)
	if excludeID != uuid.Nil {
		q = q.Where("schedule_id <> ?", excludeID)
	}
	if err := q.Find(&teacherRows).Error; err != nil {
		return err
	}
	for _, row := range teacherRows {
		if Overlaps(slot.StartTime, slot.EndTime, row.ScheduleStartTime, row.ScheduleEndTime) {
			return &ConflictError{Kind: ConflictTeacher, StartTime: row.ScheduleStartTime, EndTime: row.ScheduleEndTime}
		}
	}

	return nil
}
