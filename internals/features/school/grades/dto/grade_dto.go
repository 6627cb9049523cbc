// file: internals/features/school/grades/dto/grade_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolku_backend/internals/features/school/grades/model"
)

type AddGradeRequest struct {
	StudentID uuid.UUID `json:"grade_student_id" validate:"required"`
	SubjectID uuid.UUID `json:"grade_subject_id" validate:"required"`
	Score     int       `json:"grade_score" validate:"min=0,max=100"`
	Type      string    `json:"grade_type" validate:"omitempty,oneof=regular exam"`
}

type GradeUpdateItem struct {
	GradeID uuid.UUID `json:"grade_id" validate:"required"`
	Score   int       `json:"grade_score" validate:"min=0,max=100"`
}

type BulkUpdateGradesRequest struct {
	Items []GradeUpdateItem `json:"items" validate:"required,min=1,dive"`
}

type GradeResponse struct {
	GradeID    uuid.UUID `json:"grade_id"`
	StudentID  uuid.UUID `json:"grade_student_id"`
	SubjectID  uuid.UUID `json:"grade_subject_id"`
	ClassID    uuid.UUID `json:"grade_class_id"`
	Score      int       `json:"grade_score"`
	Type       string    `json:"grade_type"`
	RecordedAt time.Time `json:"grade_recorded_at"`
}

func FromModel(g *m.StudentGradeModel) GradeResponse {
	return GradeResponse{
		GradeID:    g.GradeID,
		StudentID:  g.GradeStudentID,
		SubjectID:  g.GradeSubjectID,
		ClassID:    g.GradeClassID,
		Score:      g.GradeScore,
		Type:       g.GradeType,
		RecordedAt: g.GradeRecordedAt,
	}
}

func FromModels(rows []m.StudentGradeModel) []GradeResponse {
	out := make([]GradeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
