package services

import (
	"golang.org/x/crypto/bcrypt"

	"scholarflow/app/models"
)

// Login checks the identity and the shared credential. The failure is the
// same whichever factor was wrong. A successful login is audited.
func (s *Service) Login(email, password string) (*models.User, error) {
	var user *models.User
	err := s.store.Update(func(st *models.State) error {
		u := st.UserByEmail(email)
		if u == nil || bcrypt.CompareHashAndPassword(s.pwHash, []byte(password)) != nil {
			return &AuthenticationError{}
		}
		cp := *u
		user = &cp
		s.logAudit(st, u, "LOGIN", "User logged into the system")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
