// file: internals/features/school/exams/service/exam_service.go
package service

import (
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	m "schoolku_backend/internals/features/school/exams/model"
	gradeModel "schoolku_backend/internals/features/school/grades/model"
)

/* =========================================================
   EXAM SERVICE

   Penilaian & persist submission hidup di sini supaya
   controller tetap tipis dan logika skor bisa dites tanpa
   HTTP.
   ========================================================= */

// AnswerSelection adalah jawaban mentah dari student.
type AnswerSelection struct {
	QuestionID    uuid.UUID `json:"question_id"`
	SelectedIndex int       `json:"selected_index"`
}

// CreateExamWithQuestions menyimpan exam + semua soalnya atomik.
func CreateExamWithQuestions(db *gorm.DB, exam *m.ExamModel, questions []m.QuestionModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(exam).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuestionExamID = exam.ExamID
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ScoreAnswers menjumlahkan poin untuk jawaban yang benar.
// question_id yang tidak dikenal diabaikan diam-diam (skor 0 untuk
// entry itu, bukan error) — payload student tidak boleh bisa
// menjatuhkan submit.
func ScoreAnswers(questions []m.QuestionModel, answers []AnswerSelection) int {
	byID := make(map[uuid.UUID]*m.QuestionModel, len(questions))
	for i := range questions {
		byID[questions[i].QuestionID] = &questions[i]
	}

	total := 0
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		if a.SelectedIndex == q.QuestionCorrectIndex {
			total += q.QuestionPoints
		}
	}
	return total
}

// SubmitExam menilai jawaban lalu menulis submission + mirror
// StudentGrade (type = exam_type ujian) dalam satu transaksi.
func SubmitExam(db *gorm.DB, exam *m.ExamModel, studentID uuid.UUID, answers []AnswerSelection) (*m.ExamSubmissionModel, error) {
	var questions []m.QuestionModel
	if err := db.Where("question_exam_id = ?", exam.ExamID).Find(&questions).Error; err != nil {
		return nil, err
	}

	total := ScoreAnswers(questions, answers)

	raw, err := sonic.Marshal(answers)
	if err != nil {
		return nil, err
	}

	submission := &m.ExamSubmissionModel{
		SubmissionStudentID:  studentID,
		SubmissionExamID:     exam.ExamID,
		SubmissionTotalScore: total,
		SubmissionAnswers:    datatypes.JSON(raw),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(submission).Error; err != nil {
			return err
		}
		grade := gradeModel.StudentGradeModel{
			GradeStudentID: studentID,
			GradeSubjectID: exam.ExamSubjectID,
			GradeClassID:   exam.ExamClassID,
			GradeScore:     total,
			GradeType:      exam.ExamType,
		}
		return tx.Create(&grade).Error
	})
	if err != nil {
		return nil, err
	}
	return submission, nil
}
