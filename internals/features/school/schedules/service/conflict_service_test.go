// file: internals/features/school/schedules/service/conflict_service_test.go
package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	m "schoolku_backend/internals/features/school/schedules/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
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
	if err := db.AutoMigrate(&subjectModel.SubjectModel{}, &m.ScheduleModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"identik", "09:00", "10:00", "09:00", "10:00", true},
		{"sebagian", "09:30", "10:30", "09:00", "10:00", true},
		{"di dalam", "09:15", "09:45", "09:00", "10:00", true},
		{"membungkus", "08:00", "11:00", "09:00", "10:00", true},
		{"back-to-back setelah", "10:00", "11:00", "09:00", "10:00", false},
		{"back-to-back sebelum", "08:00", "09:00", "09:00", "10:00", false},
		{"terpisah", "13:00", "14:00", "09:00", "10:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.s1, tc.e1, tc.s2, tc.e2); got != tc.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v", tc.s1, tc.e1, tc.s2, tc.e2, got, tc.want)
			}
		})
	}
}

func seedSubject(t *testing.T, db *gorm.DB, classID uuid.UUID, teacherID *uuid.UUID) uuid.UUID {
	t.Helper()
	s := subjectModel.SubjectModel{
		SubjectName:      "Matematika-" + uuid.NewString()[:8],
		SubjectClassID:   classID,
		SubjectTeacherID: teacherID,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	return s.SubjectID
}

func seedSchedule(t *testing.T, db *gorm.DB, classID, subjectID uuid.UUID, day, start, end string) uuid.UUID {
	t.Helper()
	row := m.ScheduleModel{
		ScheduleClassID:   classID,
		ScheduleSubjectID: subjectID,
		ScheduleDay:       day,
		ScheduleStartTime: start,
		ScheduleEndTime:   end,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	return row.ScheduleID
}

func TestCheckConflicts_Classroom(t *testing.T) {
	db := newTestDB(t)
	classID := uuid.New()
	teacherID := uuid.New()
	subjectID := seedSubject(t, db, classID, &teacherID)
	scheduleID := seedSchedule(t, db, classID, subjectID, "Monday", "09:00", "10:00")

	// row harus bisa di-scan balik utuh, termasuk kolom timestamp
	var reloaded m.ScheduleModel
	if err := db.First(&reloaded, "schedule_id = ?", scheduleID).Error; err != nil {
		t.Fatalf("reload schedule: %v", err)
	}
	if reloaded.ScheduleCreatedAt.IsZero() {
		t.Errorf("schedule created_at tidak terisi")
	}

	otherSubject := seedSubject(t, db, classID, nil)

	err := CheckConflicts(db, ProposedSlot{
		ClassID:   classID,
		SubjectID: otherSubject,
		Day:       "Monday",
		StartTime: "09:30",
		EndTime:   "10:30",
	}, uuid.Nil)

	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if ce.Kind != ConflictClassroom {
		t.Errorf("Kind = %q, want %q", ce.Kind, ConflictClassroom)
	}
	if ce.StartTime != "09:00" || ce.EndTime != "10:00" {
		t.Errorf("conflicting slot = %s-%s, want 09:00-10:00", ce.StartTime, ce.EndTime)
	}
}

func TestCheckConflicts_BackToBackAllowed(t *testing.T) {
	db := newTestDB(t)
	classID := uuid.New()
	subjectID := seedSubject(t, db, classID, nil)
	seedSchedule(t, db, classID, subjectID, "Monday", "09:00", "10:00")

	if err := CheckConflicts(db, ProposedSlot{
		ClassID:   classID,
		SubjectID: subjectID,
		Day:       "Monday",
		StartTime: "10:00",
		EndTime:   "11:00",
	}, uuid.Nil); err != nil {
		t.Fatalf("back-to-back slot should be allowed, got %v", err)
	}
}

func TestCheckConflicts_DifferentDayAllowed(t *testing.T) {
	db := newTestDB(t)
	classID := uuid.New()
	subjectID := seedSubject(t, db, classID, nil)
	seedSchedule(t, db, classID, subjectID, "Monday", "09:00", "10:00")

	if err := CheckConflicts(db, ProposedSlot{
		ClassID:   classID,
		SubjectID: subjectID,
		Day:       "Tuesday",
		StartTime: "09:00",
		EndTime:   "10:00",
	}, uuid.Nil); err != nil {
		t.Fatalf("different day should be allowed, got %v", err)
	}
}

func TestCheckConflicts_TeacherAcrossClasses(t *testing.T) {
	db := newTestDB(t)
	teacherID := uuid.New()
	classA := uuid.New()
	classB := uuid.New()

	subjectA := seedSubject(t, db, classA, &teacherID)
	subjectB := seedSubject(t, db, classB, &teacherID)
	seedSchedule(t, db, classA, subjectA, "Monday", "09:00", "10:00")

	err := CheckConflicts(db, ProposedSlot{
		ClassID:   classB,
		SubjectID: subjectB,
		Day:       "Monday",
		StartTime: "09:30",
		EndTime:   "10:30",
	}, uuid.Nil)

	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if ce.Kind != ConflictTeacher {
		t.Errorf("Kind = %q, want %q", ce.Kind, ConflictTeacher)
	}
}

func TestCheckConflicts_NoTeacherSkipsTeacherPass(t *testing.T) {
	db := newTestDB(t)
	teacherID := uuid.New()
	classA := uuid.New()
	classB := uuid.New()

	subjectA := seedSubject(t, db, classA, &teacherID)
	subjectB := seedSubject(t, db, classB, nil)
	seedSchedule(t, db, classA, subjectA, "Monday", "09:00", "10:00")

	if err := CheckConflicts(db, ProposedSlot{
		ClassID:   classB,
		SubjectID: subjectB,
		Day:       "Monday",
		StartTime: "09:00",
		EndTime:   "10:00",
	}, uuid.Nil); err != nil {
		t.Fatalf("subject tanpa teacher tidak boleh kena teacher pass, got %v", err)
	}
}

func TestCheckConflicts_ExcludeSelfOnUpdate(t *testing.T) {
	db := newTestDB(t)
	classID := uuid.New()
	teacherID := uuid.New()
	subjectID := seedSubject(t, db, classID, &teacherID)
	scheduleID := seedSchedule(t, db, classID, subjectID, "Monday", "09:00", "10:00")

	// re-save slot yang sama: tanpa exclude akan bentrok dengan dirinya
	if err := CheckConflicts(db, ProposedSlot{
		ClassID:   classID,
		SubjectID: subjectID,
		Day:       "Monday",
		StartTime: "09:00",
		EndTime:   "10:30",
	}, scheduleID); err != nil {
		t.Fatalf("update harus exclude row sendiri, got %v", err)
	}

	var ce *ConflictError
	err := CheckConflicts(db, ProposedSlot{
		ClassID:   classID,
		SubjectID: subjectID,
		Day:       "Monday",
		StartTime: "09:00",
		EndTime:   "10:30",
	}, uuid.Nil)
	if !errors.As(err, &ce) {
		t.Fatalf("tanpa exclude harusnya bentrok, got %v", err)
	}
}
