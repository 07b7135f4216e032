package models

type Student struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	RollNumber string `json:"roll_number"`
	GradeLevel string `json:"grade_level"`
	ClassID    string `json:"class_id,omitempty"`
	DOB        string `json:"dob,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
}
