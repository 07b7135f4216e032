package services

import (
	"github.com/google/uuid"

	"scholarflow/app/models"
)

// logAudit prepends an immutable entry to the audit trail, newest first. It
// runs inside the caller's store transaction so the entry and the action it
// describes persist in the same write.
func (s *Service) logAudit(st *models.State, actor *models.User, action, details string) {
	entry := &models.AuditLog{
		ID:        uuid.NewString(),
		Action:    action,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Role:      actor.Role,
		Details:   details,
		Timestamp: s.timestamp(),
	}
	st.AuditLogs = append([]*models.AuditLog{entry}, st.AuditLogs...)
}

// GetAuditLogs returns the full trail for admins and nothing for anyone else.
func (s *Service) GetAuditLogs(actor *models.User) ([]*models.AuditLog, error) {
	logs := []*models.AuditLog{}
	err := s.store.View(func(st *models.State) error {
		if !actor.IsAdmin() {
			return nil
		}
		logs = append(logs, st.AuditLogs...)
		return nil
	})
	return logs, err
}
