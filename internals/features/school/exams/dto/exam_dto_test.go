// file: internals/features/school/exams/dto/exam_dto_test.go
package dto

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/lib/pq"

	m "schoolku_backend/internals/features/school/exams/model"
)

func sampleQuestion() m.QuestionModel {
	return m.QuestionModel{
		QuestionID:           uuid.New(),
		QuestionExamID:       uuid.New(),
		QuestionText:         "2 + 2 = ?",
		QuestionOptions:      pq.StringArray{"4", "5"},
		QuestionCorrectIndex: 0,
		QuestionPoints:       10,
	}
}

func TestFromQuestionModel_RedactsCorrectIndexForStudent(t *testing.T) {
	q := sampleQuestion()

	resp := FromQuestionModel(&q, false)
	if resp.CorrectIndex != nil {
		t.Fatalf("correct index harus di-redact untuk student, got %v", *resp.CorrectIndex)
	}

	raw, err := sonic.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "question_correct_index") {
		t.Errorf("field question_correct_index bocor di JSON: %s", raw)
	}
}

func TestFromQuestionModel_KeepsCorrectIndexForStaff(t *testing.T) {
	q := sampleQuestion()

	resp := FromQuestionModel(&q, true)
	if resp.CorrectIndex == nil || *resp.CorrectIndex != 0 {
		t.Fatalf("correct index harus ikut untuk teacher/admin, got %v", resp.CorrectIndex)
	}

	raw, err := sonic.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), "question_correct_index") {
		t.Errorf("field question_correct_index hilang: %s", raw)
	}
}
