package models

type User struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Role      Role   `json:"role" validate:"required,oneof=ADMIN TEACHER"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
