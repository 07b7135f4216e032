package services

import (
	"fmt"
	"strings"

	"scholarflow/app/models"
)

// Cascade rules run synchronously inside delete operations, before the
// single persisting write. Each effect adjusts dependent records for one
// child collection and reports how many records it touched.

type cascadeEffect struct {
	// collection names what the effect touches, for the audit summary.
	collection string
	apply      func(st *models.State, parentID string) int
}

var cascadeRules = map[string][]cascadeEffect{
	"student": {
		{"attendance records", stripStudentRecords},
	},
	"teacher": {
		{"classes unassigned", unassignTeacherFromClasses},
		{"subjects unassigned", unassignTeacherFromSubjects},
	},
	"class": {
		{"students unassigned", unassignStudentsFromClass},
		{"sessions removed", removeSessionsByClass},
	},
	"subject": {
		{"sessions removed", removeSessionsBySubject},
	},
}

// runCascade applies every effect registered for the parent kind and returns
// a summary like "attendance records: 3, sessions removed: 2".
func runCascade(st *models.State, kind, parentID string) string {
	parts := make([]string, 0, len(cascadeRules[kind]))
	for _, effect := range cascadeRules[kind] {
		n := effect.apply(st, parentID)
		parts = append(parts, fmt.Sprintf("%s: %d", effect.collection, n))
	}
	return strings.Join(parts, ", ")
}

func stripStudentRecords(st *models.State, studentID string) int {
	stripped := 0
	for _, sess := range st.AttendanceSessions {
		kept := sess.Records[:0]
		for _, r := range sess.Records {
			if r.StudentID == studentID {
				stripped++
				continue
			}
			kept = append(kept, r)
		}
		sess.Records = kept
	}
	return stripped
}

func unassignTeacherFromClasses(st *models.State, teacherID string) int {
	n := 0
	for _, c := range st.Classes {
		if c.TeacherID == teacherID {
			c.TeacherID = ""
			n++
		}
	}
	return n
}

func unassignTeacherFromSubjects(st *models.State, teacherID string) int {
	n := 0
	for _, sub := range st.Subjects {
		if sub.TeacherID == teacherID {
			sub.TeacherID = ""
			n++
		}
	}
	return n
}

func unassignStudentsFromClass(st *models.State, classID string) int {
	n := 0
	for _, s := range st.Students {
		if s.ClassID == classID {
			s.ClassID = ""
			n++
		}
	}
	return n
}

func removeSessionsByClass(st *models.State, classID string) int {
	return removeSessions(st, func(sess *models.AttendanceSession) bool {
		return sess.ClassID == classID
	})
}

func removeSessionsBySubject(st *models.State, subjectID string) int {
	return removeSessions(st, func(sess *models.AttendanceSession) bool {
		return sess.SubjectID == subjectID
	})
}

func removeSessions(st *models.State, match func(*models.AttendanceSession) bool) int {
	kept := st.AttendanceSessions[:0]
	removed := 0
	for _, sess := range st.AttendanceSessions {
		if match(sess) {
			removed++
			continue
		}
		kept = append(kept, sess)
	}
	st.AttendanceSessions = kept
	return removed
}
