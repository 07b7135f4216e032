package services

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"scholarflow/app/models"
)

// notifyHighAbsence enqueues a warning for the oversight admin when a
// submission's absentee fraction strictly exceeds the threshold. Runs inside
// the submission's store transaction.
func (s *Service) notifyHighAbsence(st *models.State, sess *models.AttendanceSession) {
	if len(sess.Records) == 0 {
		return
	}
	absent := 0
	for _, r := range sess.Records {
		if r.Status == models.StatusAbsent {
			absent++
		}
	}
	if float64(absent) <= float64(len(sess.Records))*highAbsenceFraction {
		return
	}
	admin := st.FirstAdmin()
	if admin == nil {
		return
	}

	className := sess.ClassID
	if cls := st.ClassByID(sess.ClassID); cls != nil {
		className = cls.Name
	}
	st.Notifications = append(st.Notifications, &models.Notification{
		ID:        uuid.NewString(),
		UserID:    admin.ID,
		Title:     "High Absence Detected",
		Message:   fmt.Sprintf("%s has %d absentees on %s.", className, absent, sess.Date),
		Type:      models.NotifyWarning,
		CreatedAt: s.timestamp(),
	})
}

// GetNotifications lists the user's notifications, newest first.
func (s *Service) GetNotifications(user *models.User) ([]*models.Notification, error) {
	out := []*models.Notification{}
	err := s.store.View(func(st *models.State) error {
		for _, n := range st.Notifications {
			if n.UserID == user.ID {
				cp := *n
				out = append(out, &cp)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

// MarkNotificationRead is idempotent; marking an unknown id is a no-op.
func (s *Service) MarkNotificationRead(notificationID string) error {
	return s.store.Update(func(st *models.State) error {
		for _, n := range st.Notifications {
			if n.ID == notificationID {
				n.IsRead = true
				return nil
			}
		}
		return nil
	})
}
