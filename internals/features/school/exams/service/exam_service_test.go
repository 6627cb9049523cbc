// file: internals/features/school/exams/service/exam_service_test.go
package service

import (
	"fmt"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	m "schoolku_backend/internals/features/school/exams/model"
	gradeModel "schoolku_backend/internals/features/school/grades/model"
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
	if err := db.AutoMigrate(
		&m.ExamModel{},
		&m.QuestionModel{},
		&m.ExamSubmissionModel{},
		&gradeModel.StudentGradeModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func twoQuestions() []m.QuestionModel {
	return []m.QuestionModel{
		{
			QuestionID:           uuid.New(),
			QuestionText:         "2 + 2 = ?",
			QuestionOptions:      pq.StringArray{"4", "5", "6"},
			QuestionCorrectIndex: 0,
			QuestionPoints:       10,
		},
		{
			QuestionID:           uuid.New(),
			QuestionText:         "Ibu kota Indonesia?",
			QuestionOptions:      pq.StringArray{"Bandung", "Jakarta", "Surabaya"},
			QuestionCorrectIndex: 1,
			QuestionPoints:       20,
		},
	}
}

func TestScoreAnswers(t *testing.T) {
	qs := twoQuestions()

	t.Run("semua benar", func(t *testing.T) {
		got := ScoreAnswers(qs, []AnswerSelection{
			{QuestionID: qs[0].QuestionID, SelectedIndex: 0},
			{QuestionID: qs[1].QuestionID, SelectedIndex: 1},
		})
		if got != 30 {
			t.Errorf("score = %d, want 30", got)
		}
	})

	t.Run("sebagian benar", func(t *testing.T) {
		got := ScoreAnswers(qs, []AnswerSelection{
			{QuestionID: qs[0].QuestionID, SelectedIndex: 2},
			{QuestionID: qs[1].QuestionID, SelectedIndex: 1},
		})
		if got != 20 {
			t.Errorf("score = %d, want 20", got)
		}
	})

	t.Run("semua salah", func(t *testing.T) {
		got := ScoreAnswers(qs, []AnswerSelection{
			{QuestionID: qs[0].QuestionID, SelectedIndex: 1},
			{QuestionID: qs[1].QuestionID, SelectedIndex: 0},
		})
		if got != 0 {
			t.Errorf("score = %d, want 0", got)
		}
	})

	t.Run("question_id tak dikenal diabaikan", func(t *testing.T) {
		got := ScoreAnswers(qs, []AnswerSelection{
			{QuestionID: uuid.New(), SelectedIndex: 0},
			{QuestionID: qs[0].QuestionID, SelectedIndex: 0},
		})
		if got != 10 {
			t.Errorf("score = %d, want 10", got)
		}
	})

	t.Run("tanpa jawaban", func(t *testing.T) {
		if got := ScoreAnswers(qs, nil); got != 0 {
			t.Errorf("score = %d, want 0", got)
		}
	})
}

func seedExam(t *testing.T, db *gorm.DB) (*m.ExamModel, []m.QuestionModel) {
	t.Helper()
	exam := &m.ExamModel{
		ExamTitle:           "UTS Matematika",
		ExamType:            "midterm",
		ExamDurationMinutes: 60,
		ExamSubjectID:       uuid.New(),
		ExamClassID:         uuid.New(),
	}
	questions := twoQuestions()
	if err := CreateExamWithQuestions(db, exam, questions); err != nil {
		t.Fatalf("seed exam: %v", err)
	}
	return exam, questions
}

func TestCreateExamWithQuestions(t *testing.T) {
	db := newTestDB(t)
	exam, _ := seedExam(t, db)

	var n int64
	if err := db.Model(&m.QuestionModel{}).
		Where("question_exam_id = ?", exam.ExamID).
		Count(&n).Error; err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if n != 2 {
		t.Errorf("questions = %d, want 2", n)
	}
}

func TestSubmitExam_MirrorsGrade(t *testing.T) {
	db := newTestDB(t)
	exam, qs := seedExam(t, db)
	studentID := uuid.New()

	sub, err := SubmitExam(db, exam, studentID, []AnswerSelection{
		{QuestionID: qs[0].QuestionID, SelectedIndex: 0},
		{QuestionID: qs[1].QuestionID, SelectedIndex: 2},
	})
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}
	if sub.SubmissionTotalScore != 10 {
		t.Errorf("total = %d, want 10", sub.SubmissionTotalScore)
	}

	// raw answers tersimpan utuh
	var stored []AnswerSelection
	if err := sonic.Unmarshal([]byte(sub.SubmissionAnswers), &stored); err != nil {
		t.Fatalf("unmarshal answers: %v", err)
	}
	if len(stored) != 2 || stored[0].QuestionID != qs[0].QuestionID {
		t.Errorf("stored answers tidak sesuai: %+v", stored)
	}

	// mirror row di student_grades
	var grade gradeModel.StudentGradeModel
	if err := db.
		Where("grade_student_id = ? AND grade_subject_id = ?", studentID, exam.ExamSubjectID).
		First(&grade).Error; err != nil {
		t.Fatalf("grade mirror tidak ada: %v", err)
	}
	if grade.GradeScore != 10 {
		t.Errorf("grade score = %d, want 10", grade.GradeScore)
	}
	// type mirror mengikuti exam_type ujiannya
	if grade.GradeType != exam.ExamType {
		t.Errorf("grade type = %q, want %q", grade.GradeType, exam.ExamType)
	}
	if grade.GradeClassID != exam.ExamClassID {
		t.Errorf("grade class = %s, want %s", grade.GradeClassID, exam.ExamClassID)
	}
	if grade.GradeRecordedAt.IsZero() {
		t.Errorf("grade recorded_at tidak terisi")
	}
}

func TestSubmitExam_RetakeAllowed(t *testing.T) {
	db := newTestDB(t)
	exam, qs := seedExam(t, db)
	studentID := uuid.New()

	for i := 0; i < 2; i++ {
		if _, err := SubmitExam(db, exam, studentID, []AnswerSelection{
			{QuestionID: qs[0].QuestionID, SelectedIndex: 0},
		}); err != nil {
			t.Fatalf("submit #%d: %v", i+1, err)
		}
	}

	var n int64
	if err := db.Model(&m.ExamSubmissionModel{}).
		Where("submission_student_id = ? AND submission_exam_id = ?", studentID, exam.ExamID).
		Count(&n).Error; err != nil {
		t.Fatalf("count submissions: %v", err)
	}
	if n != 2 {
		t.Errorf("submissions = %d, want 2 (retake diizinkan)", n)
	}
}
