package models

// AttendanceRecord is one student's mark within a session. AbsentReason must be
// set before a session containing an ABSENT record can be submitted.
type AttendanceRecord struct {
	StudentID    string           `json:"student_id" validate:"required"`
	Status       AttendanceStatus `json:"status" validate:"required,oneof=PRESENT ABSENT LATE"`
	AbsentReason AbsentReason     `json:"absent_reason,omitempty"`
	Remarks      string           `json:"remarks,omitempty"`
}

// AttendanceSession is one attendance-taking event. Its logical identity is
// the (ClassID, Date, SessionNumber) triple; at most one session exists per
// triple. Date is an ISO YYYY-MM-DD string compared lexically.
type AttendanceSession struct {
	ID                string             `json:"id"`
	ClassID           string             `json:"class_id" validate:"required"`
	SubjectID         string             `json:"subject_id" validate:"required"`
	SessionNumber     int                `json:"session_number" validate:"required,min=1,max=8"`
	Date              string             `json:"date" validate:"required"`
	TeacherID         string             `json:"teacher_id"`
	Records           []AttendanceRecord `json:"records"`
	Status            SessionStatus      `json:"status"`
	IsLocked          bool               `json:"is_locked"`
	LockedAt          string             `json:"locked_at,omitempty"`
	UnlockedByAdminID string             `json:"unlocked_by_admin_id,omitempty"`
	UnlockReason      string             `json:"unlock_reason,omitempty"`
	CreatedAt         string             `json:"created_at"`
	UpdatedAt         string             `json:"updated_at"`
}

// MatchesIdentity reports whether the session occupies the given slot.
func (s *AttendanceSession) MatchesIdentity(classID, date string, sessionNumber int) bool {
	return s.ClassID == classID && s.Date == date && s.SessionNumber == sessionNumber
}
