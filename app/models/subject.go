package models

// Subject is a teachable unit. TeacherID is empty when no teacher is qualified.
type Subject struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Code      string `json:"code" validate:"required"`
	TeacherID string `json:"teacher_id,omitempty"`
}
