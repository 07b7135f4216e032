package models

import "fmt"

// SeedState builds the dataset the store falls back to when the persistence
// backend holds nothing yet. now is an RFC 3339 timestamp stamped onto the
// seeded notifications.
func SeedState(now string) *State {
	st := &State{
		Users: []*User{
			{ID: "u1", Name: "Principal Skinner", Email: "admin@school.com", Role: RoleAdmin, Phone: "555-0100"},
			{ID: "u2", Name: "Edna Krabappel", Email: "teacher@school.com", Role: RoleTeacher, Phone: "555-0101"},
			{ID: "u3", Name: "Dewey Largo", Email: "music@school.com", Role: RoleTeacher, Phone: "555-0102"},
		},
		Classes: []*ClassGroup{
			{ID: "c1", Name: "Class 4-A", GradeLevel: "4", TeacherID: "u2"},
			{ID: "c2", Name: "Class 5-B", GradeLevel: "5", TeacherID: "u3"},
			{ID: "c3", Name: "Science Club", GradeLevel: "Mixed", TeacherID: "u2"},
		},
		Subjects: []*Subject{
			{ID: "sub1", Name: "Mathematics", Code: "MATH101", TeacherID: "u2"},
			{ID: "sub2", Name: "English Literature", Code: "ENG202", TeacherID: "u2"},
			{ID: "sub3", Name: "Music Theory", Code: "MUS101", TeacherID: "u3"},
			{ID: "sub4", Name: "General Science", Code: "SCI101", TeacherID: "u2"},
		},
		AttendanceSessions: []*AttendanceSession{},
		AuditLogs:          []*AuditLog{},
		Notifications: []*Notification{
			{ID: "n1", UserID: "u1", Title: "High Absence Alert", Message: "Class 4-A has exceeded 15% absence rate today.", Type: NotifyWarning, CreatedAt: now},
			{ID: "n2", UserID: "u2", Title: "Draft Reminder", Message: "You have 2 pending attendance drafts.", Type: NotifyInfo, CreatedAt: now},
		},
	}

	for i := 1; i <= 25; i++ {
		grade, classID := "4", "c1"
		if i > 15 {
			grade, classID = "5", "c2"
		}
		st.Students = append(st.Students, &Student{
			ID:         fmt.Sprintf("s%d", i),
			Name:       fmt.Sprintf("Student %d", i),
			RollNumber: fmt.Sprintf("R-%d", 99+i),
			GradeLevel: grade,
			ClassID:    classID,
		})
	}

	return st
}
