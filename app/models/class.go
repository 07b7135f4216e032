package models

// ClassGroup is a roster group. TeacherID is empty when no teacher is assigned.
type ClassGroup struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	GradeLevel string `json:"grade_level"`
	TeacherID  string `json:"teacher_id,omitempty"`
}
