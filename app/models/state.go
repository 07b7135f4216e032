package models

// State is the complete persisted snapshot. Every mutating operation loads
// the whole state, mutates it in memory and writes the whole state back.
type State struct {
	Users              []*User              `json:"users"`
	Students           []*Student           `json:"students"`
	Classes            []*ClassGroup        `json:"classes"`
	Subjects           []*Subject           `json:"subjects"`
	AttendanceSessions []*AttendanceSession `json:"attendance_sessions"`
	AuditLogs          []*AuditLog          `json:"audit_logs"`
	Notifications      []*Notification      `json:"notifications"`
}

func (st *State) UserByID(id string) *User {
	for _, u := range st.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (st *State) UserByEmail(email string) *User {
	for _, u := range st.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (st *State) StudentByID(id string) *Student {
	for _, s := range st.Students {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (st *State) ClassByID(id string) *ClassGroup {
	for _, c := range st.Classes {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (st *State) SubjectByID(id string) *Subject {
	for _, s := range st.Subjects {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// SessionByIdentity returns the unique session for a (class, date, number)
// slot, or nil when none exists.
func (st *State) SessionByIdentity(classID, date string, sessionNumber int) *AttendanceSession {
	for _, s := range st.AttendanceSessions {
		if s.MatchesIdentity(classID, date, sessionNumber) {
			return s
		}
	}
	return nil
}

func (st *State) SessionByID(id string) *AttendanceSession {
	for _, s := range st.AttendanceSessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// FirstAdmin returns the designated oversight user for system notifications.
func (st *State) FirstAdmin() *User {
	for _, u := range st.Users {
		if u.Role == RoleAdmin {
			return u
		}
	}
	return nil
}
