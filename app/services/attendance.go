package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"scholarflow/app/models"
)

const (
	// A submitted session locks automatically once its date is more than
	// this far in the past.
	lockAfter = 24 * time.Hour

	// Absentee fraction above which a submission alerts the oversight user.
	// Exactly 20% does not trigger.
	highAbsenceFraction = 0.2

	minSessionNumber = 1
	maxSessionNumber = 8
)

// canMutate is the single authorization policy for session mutations: a
// locked session that has not been manually unlocked may only be modified by
// an admin. A nil session (nothing recorded for the slot yet) is always
// mutable.
func canMutate(actor *models.User, sess *models.AttendanceSession) bool {
	if sess == nil || !sess.IsLocked || sess.UnlockedByAdminID != "" {
		return true
	}
	return actor.IsAdmin()
}

type SaveAttendanceInput struct {
	ClassID       string                    `json:"class_id" validate:"required"`
	SubjectID     string                    `json:"subject_id" validate:"required"`
	SessionNumber int                       `json:"session_number" validate:"required,min=1,max=8"`
	Date          string                    `json:"date" validate:"required"`
	Records       []models.AttendanceRecord `json:"records"`
	Status        models.SessionStatus      `json:"status" validate:"required,oneof=DRAFT SUBMITTED"`
}

// FindSession is a pure read: it returns a copy of the session occupying the
// (class, date, number) slot, or nil when the slot is empty.
func (s *Service) FindSession(classID, date string, sessionNumber int) (*models.AttendanceSession, error) {
	var found *models.AttendanceSession
	err := s.store.View(func(st *models.State) error {
		if sess := st.SessionByIdentity(classID, date, sessionNumber); sess != nil {
			found = cloneSession(sess)
		}
		return nil
	})
	return found, err
}

// SaveAttendance creates or updates the unique session for the input's
// (class, date, number) identity. Draft saves overwrite freely; submissions
// require a reason on every ABSENT record and evaluate the 24-hour lock rule
// unless the session was manually unlocked, which is permanent.
func (s *Service) SaveAttendance(actor *models.User, in SaveAttendanceInput) (*models.AttendanceSession, error) {
	if in.SessionNumber < minSessionNumber || in.SessionNumber > maxSessionNumber {
		return nil, &ValidationError{Message: fmt.Sprintf("session number must be between %d and %d", minSessionNumber, maxSessionNumber)}
	}
	sessionDate, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, &ValidationError{Message: "invalid date, expected YYYY-MM-DD"}
	}

	var saved *models.AttendanceSession
	err = s.store.Update(func(st *models.State) error {
		prev := st.SessionByIdentity(in.ClassID, in.Date, in.SessionNumber)
		if !canMutate(actor, prev) {
			return &AuthorizationError{Message: "this session is locked and cannot be modified"}
		}

		if in.Status == models.SessionSubmitted {
			missing := 0
			for _, r := range in.Records {
				if r.Status == models.StatusAbsent && r.AbsentReason == "" {
					missing++
				}
			}
			if missing > 0 {
				return &ValidationError{
					Message: fmt.Sprintf("%d absent record(s) are missing a reason", missing),
					Count:   missing,
				}
			}
		}

		now := s.timestamp()
		sess := &models.AttendanceSession{
			ID:            uuid.NewString(),
			ClassID:       in.ClassID,
			SubjectID:     in.SubjectID,
			SessionNumber: in.SessionNumber,
			Date:          in.Date,
			TeacherID:     actor.ID,
			Records:       append([]models.AttendanceRecord(nil), in.Records...),
			Status:        in.Status,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if prev != nil {
			sess.ID = prev.ID
			sess.CreatedAt = prev.CreatedAt
			sess.UnlockedByAdminID = prev.UnlockedByAdminID
			sess.UnlockReason = prev.UnlockReason
		}

		// The lock rule applies only at submission time and never again
		// once an admin has manually unlocked this identity.
		if in.Status == models.SessionSubmitted && sess.UnlockedByAdminID == "" {
			if s.now().Sub(sessionDate) > lockAfter {
				sess.IsLocked = true
				sess.LockedAt = now
			}
		}

		tag := "CREATE_" + string(in.Status)
		verb := "Created"
		if prev != nil {
			*prev = *sess
			tag = "UPDATE_" + string(in.Status)
			verb = "Updated"
		} else {
			st.AttendanceSessions = append(st.AttendanceSessions, sess)
		}
		s.logAudit(st, actor, tag, fmt.Sprintf("%s %s session %d for class %s", verb, in.Status, in.SessionNumber, in.ClassID))

		if in.Status == models.SessionSubmitted {
			s.notifyHighAbsence(st, sess)
		}

		saved = cloneSession(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// UnlockSession lifts the automatic lock on a submitted session. Admin only,
// a reason is mandatory, and the unlock is recorded permanently on the
// session: subsequent saves of the same identity never re-lock it.
func (s *Service) UnlockSession(actor *models.User, sessionID, reason string) error {
	if !actor.IsAdmin() {
		return &AuthorizationError{Message: "only admins can unlock sessions"}
	}
	if reason == "" {
		return &ValidationError{Message: "an unlock reason is required"}
	}

	return s.store.Update(func(st *models.State) error {
		sess := st.SessionByID(sessionID)
		if sess == nil {
			return &NotFoundError{Kind: "session", ID: sessionID}
		}
		sess.IsLocked = false
		sess.UnlockedByAdminID = actor.ID
		sess.UnlockReason = reason

		s.logAudit(st, actor, "UNLOCK_SESSION", fmt.Sprintf("Unlocked session %s - Reason: %s", sessionID, reason))
		return nil
	})
}

func cloneSession(sess *models.AttendanceSession) *models.AttendanceSession {
	cp := *sess
	cp.Records = append([]models.AttendanceRecord(nil), sess.Records...)
	return &cp
}
