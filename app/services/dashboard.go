package services

import (
	"math"

	"scholarflow/app/models"
)

// At-risk threshold: students with strictly more than this many absences
// across all sessions, regardless of the caller's scope.
const atRiskAbsenceThreshold = 2

type AtRiskStudent struct {
	models.Student
	AbsenceCount int `json:"absence_count"`
}

// ClassAttendance is the per-class rollup used for the dashboard chart.
type ClassAttendance struct {
	Name       string `json:"name"`
	Attendance int    `json:"attendance"`
}

// SessionSummary is a session annotated with display names.
type SessionSummary struct {
	models.AttendanceSession
	ClassName   string `json:"class_name,omitempty"`
	SubjectName string `json:"subject_name,omitempty"`
}

type DashboardStats struct {
	DailyRate      int               `json:"daily_rate"`
	OverallRate    int               `json:"overall_rate"`
	TotalStudents  int               `json:"total_students"`
	TotalClasses   int               `json:"total_classes"`
	PendingDrafts  int               `json:"pending_drafts"`
	AtRiskStudents []AtRiskStudent   `json:"at_risk_students"`
	ChartData      []ClassAttendance `json:"chart_data"`
	TodaySessions  []SessionSummary  `json:"today_sessions"`
}

// attendanceRate is round(100*present/total), 0 when there are no records.
func attendanceRate(present, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}

func countPresent(sessions []*models.AttendanceSession) (present, total int) {
	for _, sess := range sessions {
		for _, r := range sess.Records {
			total++
			if r.Status == models.StatusPresent {
				present++
			}
		}
	}
	return present, total
}

// GetDashboardStats derives the dashboard numbers, scoped by role: admins
// see every session, teachers only the ones they recorded. The at-risk scan
// is deliberately global.
func (s *Service) GetDashboardStats(actor *models.User) (*DashboardStats, error) {
	stats := &DashboardStats{
		AtRiskStudents: []AtRiskStudent{},
		ChartData:      []ClassAttendance{},
		TodaySessions:  []SessionSummary{},
	}
	today := s.now().UTC().Format("2006-01-02")

	err := s.store.View(func(st *models.State) error {
		scoped := make([]*models.AttendanceSession, 0, len(st.AttendanceSessions))
		for _, sess := range st.AttendanceSessions {
			if actor.IsAdmin() || sess.TeacherID == actor.ID {
				scoped = append(scoped, sess)
			}
		}

		var todaySessions []*models.AttendanceSession
		for _, sess := range scoped {
			if sess.Date == today {
				todaySessions = append(todaySessions, sess)
			}
			if sess.Status == models.SessionDraft {
				stats.PendingDrafts++
			}
		}
		stats.DailyRate = attendanceRate(countPresent(todaySessions))
		stats.OverallRate = attendanceRate(countPresent(scoped))
		stats.TotalStudents = len(st.Students)
		stats.TotalClasses = len(st.Classes)

		absences := map[string]int{}
		for _, sess := range st.AttendanceSessions {
			for _, r := range sess.Records {
				if r.Status == models.StatusAbsent {
					absences[r.StudentID]++
				}
			}
		}
		for _, stu := range st.Students {
			if absences[stu.ID] > atRiskAbsenceThreshold {
				stats.AtRiskStudents = append(stats.AtRiskStudents, AtRiskStudent{
					Student:      *stu,
					AbsenceCount: absences[stu.ID],
				})
			}
		}

		for _, cls := range st.Classes {
			var classSessions []*models.AttendanceSession
			for _, sess := range st.AttendanceSessions {
				if sess.ClassID == cls.ID {
					classSessions = append(classSessions, sess)
				}
			}
			stats.ChartData = append(stats.ChartData, ClassAttendance{
				Name:       cls.Name,
				Attendance: attendanceRate(countPresent(classSessions)),
			})
		}

		for _, sess := range todaySessions {
			summary := SessionSummary{AttendanceSession: *cloneSession(sess)}
			if cls := st.ClassByID(sess.ClassID); cls != nil {
				summary.ClassName = cls.Name
			}
			if sub := st.SubjectByID(sess.SubjectID); sub != nil {
				summary.SubjectName = sub.Name
			}
			stats.TodaySessions = append(stats.TodaySessions, summary)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// ReportFilters narrow the report; empty fields are skipped. Date bounds are
// inclusive and compared lexically on the ISO date string.
type ReportFilters struct {
	ClassID   string `json:"class_id"`
	SubjectID string `json:"subject_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StudentID string `json:"student_id"`
}

// ReportRow is one (session, record) pair flattened for display.
type ReportRow struct {
	Date          string                  `json:"date"`
	SessionNumber int                     `json:"session_number"`
	StudentID     string                  `json:"student_id"`
	Student       string                  `json:"student"`
	Class         string                  `json:"class"`
	Subject       string                  `json:"subject"`
	Status        models.AttendanceStatus `json:"status"`
	Reason        string                  `json:"reason"`
	Remarks       string                  `json:"remarks"`
}

func (s *Service) GetReportData(filters ReportFilters) ([]ReportRow, error) {
	rows := []ReportRow{}
	err := s.store.View(func(st *models.State) error {
		for _, sess := range st.AttendanceSessions {
			if filters.ClassID != "" && sess.ClassID != filters.ClassID {
				continue
			}
			if filters.SubjectID != "" && sess.SubjectID != filters.SubjectID {
				continue
			}
			if filters.StartDate != "" && sess.Date < filters.StartDate {
				continue
			}
			if filters.EndDate != "" && sess.Date > filters.EndDate {
				continue
			}

			className := ""
			if cls := st.ClassByID(sess.ClassID); cls != nil {
				className = cls.Name
			}
			subjectName := ""
			if sub := st.SubjectByID(sess.SubjectID); sub != nil {
				subjectName = sub.Name
			}

			for _, r := range sess.Records {
				if filters.StudentID != "" && r.StudentID != filters.StudentID {
					continue
				}
				studentName := ""
				if stu := st.StudentByID(r.StudentID); stu != nil {
					studentName = stu.Name
				}
				row := ReportRow{
					Date:          sess.Date,
					SessionNumber: sess.SessionNumber,
					StudentID:     r.StudentID,
					Student:       studentName,
					Class:         className,
					Subject:       subjectName,
					Status:        r.Status,
					Reason:        string(r.AbsentReason),
					Remarks:       r.Remarks,
				}
				if row.Reason == "" {
					row.Reason = "-"
				}
				if row.Remarks == "" {
					row.Remarks = "-"
				}
				rows = append(rows, row)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
