package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"scholarflow/app/logger"
	"scholarflow/app/models"
	"scholarflow/app/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := New(store.New(store.NewMemoryBackend()), logger.New(logger.ERROR), "password")
	svc.now = func() time.Time {
		return time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func setClock(svc *Service, at time.Time) {
	svc.now = func() time.Time { return at }
}

var (
	testAdmin   = &models.User{ID: "u1", Name: "Principal Skinner", Email: "admin@school.com", Role: models.RoleAdmin}
	testTeacher = &models.User{ID: "u2", Name: "Edna Krabappel", Email: "teacher@school.com", Role: models.RoleTeacher}
)

func presentRecords(n int) []models.AttendanceRecord {
	records := make([]models.AttendanceRecord, n)
	for i := range records {
		records[i] = models.AttendanceRecord{
			StudentID: fmt.Sprintf("s%d", i+1),
			Status:    models.StatusPresent,
		}
	}
	return records
}

func TestSaveAttendanceUpdatesInPlace(t *testing.T) {
	svc := newTestService(t)

	in := SaveAttendanceInput{
		ClassID:       "c1",
		SubjectID:     "sub1",
		SessionNumber: 1,
		Date:          "2024-03-02",
		Records:       presentRecords(3),
		Status:        models.SessionDraft,
	}
	first, err := svc.SaveAttendance(testTeacher, in)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	// later clock for the second save
	setClock(svc, time.Date(2024, 3, 2, 11, 30, 0, 0, time.UTC))

	in.Records = presentRecords(5)
	second, err := svc.SaveAttendance(testTeacher, in)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("identity changed across saves: %s vs %s", first.ID, second.ID)
	}
	if second.CreatedAt != first.CreatedAt {
		t.Errorf("createdAt changed on update: %s vs %s", first.CreatedAt, second.CreatedAt)
	}
	if second.UpdatedAt == first.UpdatedAt {
		t.Error("updatedAt did not refresh on update")
	}
	if len(second.Records) != 5 {
		t.Errorf("records not overwritten, got %d", len(second.Records))
	}

	var count int
	_ = svc.store.View(func(st *models.State) error {
		for _, sess := range st.AttendanceSessions {
			if sess.MatchesIdentity("c1", "2024-03-02", 1) {
				count++
			}
		}
		return nil
	})
	if count != 1 {
		t.Errorf("expected exactly one session for the identity, found %d", count)
	}
}

func TestSubmitRequiresAbsentReasons(t *testing.T) {
	svc := newTestService(t)

	records := presentRecords(3)
	records[1].Status = models.StatusAbsent
	records[2].Status = models.StatusAbsent
	records[2].AbsentReason = models.ReasonSick

	_, err := svc.SaveAttendance(testTeacher, SaveAttendanceInput{
		ClassID:       "c1",
		SubjectID:     "sub1",
		SessionNumber: 2,
		Date:          "2024-03-02",
		Records:       records,
		Status:        models.SessionSubmitted,
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Count != 1 {
		t.Errorf("expected 1 offending record, got %d", vErr.Count)
	}

	found, err := svc.FindSession("c1", "2024-03-02", 2)
	if err != nil {
		t.Fatal(err)
	}
	if found != nil {
		t.Error("failed submission must not persist a session")
	}
}

func TestSubmitFailureLeavesExistingSessionUnchanged(t *testing.T) {
	svc := newTestService(t)

	in := SaveAttendanceInput{
		ClassID:       "c1",
		SubjectID:     "sub1",
		SessionNumber: 3,
		Date:          "2024-03-02",
		Records:       presentRecords(2),
		Status:        models.SessionDraft,
	}
	if _, err := svc.SaveAttendance(testTeacher, in); err != nil {
		t.Fatal(err)
	}
	before, _ := svc.FindSession("c1", "2024-03-02", 3)

	bad := presentRecords(2)
	bad[0].Status = models.StatusAbsent
	in.Records = bad
	in.Status = models.SessionSubmitted
	if _, err := svc.SaveAttendance(testTeacher, in); err == nil {
		t.Fatal("expected validation failure")
	}

	after, _ := svc.FindSession("c1", "2024-03-02", 3)
	if after.Status != models.SessionDraft || after.UpdatedAt != before.UpdatedAt {
		t.Error("failed submission mutated the persisted session")
	}
}

func TestAutoLockBoundary(t *testing.T) {
	svc := newTestService(t)
	// clock fixed at 2024-03-02T10:00:00Z

	cases := []struct {
		date   string
		number int
		locked bool
	}{
		{"2024-03-01", 1, true},  // ~34h elapsed
		{"2024-03-02", 2, false}, // same day
	}
	for _, tc := range cases {
		sess, err := svc.SaveAttendance(testTeacher, SaveAttendanceInput{
			ClassID:       "c1",
			SubjectID:     "sub1",
			SessionNumber: tc.number,
			Date:          tc.date,
			Records:       presentRecords(2),
			Status:        models.SessionSubmitted,
		})
		if err != nil {
			t.Fatalf("submit %s: %v", tc.date, err)
		}
		if sess.IsLocked != tc.locked {
			t.Errorf("date %s: isLocked = %v, want %v", tc.date, sess.IsLocked, tc.locked)
		}
	}
}

func TestDraftSaveNeverLocks(t *testing.T) {
	svc := newTestService(t)

	sess, err := svc.SaveAttendance(testTeacher, SaveAttendanceInput{
		ClassID:       "c1",
		SubjectID:     "sub1",
		SessionNumber: 1,
		Date:          "2024-02-01", // a month old
		Records:       presentRecords(2),
		Status:        models.SessionDraft,
	})
	if err != nil {
		t.Fatal(err)
	}
	if sess.IsLocked {
		t.Error("draft save must not evaluate the lock rule")
	}
}

func TestLockedSessionRejectsNonAdmin(t *testing.T) {
	svc := newTestService(t)

	in := SaveAttendanceInput{
		ClassID:       "c1",
		SubjectID:     "sub1",
		SessionNumber: 1,
		Date:          "2024-03-01",
		Records:       presentRecords(2),
		Status:        models.SessionSubmitted,
	}
	locked, err := svc.SaveAttendance(testTeacher, in)
	if err != nil {
		t.Fatal(err)
	}
	if !locked.IsLocked {
		t.Fatal("precondition: session should be locked")
	}

	for _, status := range []models.SessionStatus{models.SessionDraft, models.SessionSubmitted} {
		in.Status = status
		_, err := svc.SaveAttendance(testTeacher, in)
		var aErr *AuthorizationError
		if !errors.As(err, &aErr) {
			t.Errorf("status %s: expected AuthorizationError, got %v", status, err)
		}
	}

	after, _ := svc.FindSession("c1", "2024-03-01", 1)
	if after.UpdatedAt != locked.UpdatedAt || len(after.Records) != 2 {
		t.Error("rejected mutation changed the stored session")
	}

	// admins may still modify a locked session
	in.Status = models.SessionSubmitted
	if _, err := svc.SaveAttendance(testAdmin, in); err != nil {
		t.Errorf("admin save against locked session failed: %v", err)
	}
}

func TestUnlockSession(t *testing.T) {
	svc := newTestService(t)

	sess, err := svc.SaveAttendance(testTeacher, SaveAttendanceInput{
		ClassID:       "c1",
		SubjectID:     "sub1",
		SessionNumber: 1,
		Date:          "2024-03-01",
		Records:       presentRecords(2),
		Status:        models.SessionSubmitted,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.UnlockSession(testTeacher, sess.ID, "late entry"); err == nil {
		t.Error("non-admin unlock must fail")
	}
	if err := svc.UnlockSession(testAdmin, sess.ID, ""); err == nil {
		t.Error("unlock without a reason must fail")
	}
	if err := svc.UnlockSession(testAdmin, "missing", "late entry"); err == nil {
		t.Error("unlock of unknown session must fail")
	} else if nf := new(NotFoundError); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}

	if err := svc.UnlockSession(testAdmin, sess.ID, "teacher was at a funeral"); err != nil {
		t.Fatalf("unlock: %v", err)
	}

	after, _ := svc.FindSession("c1", "2024-03-01", 1)
	if after.IsLocked {
		t.Error("session still locked after unlock")
	}
	if after.UnlockedByAdminID != testAdmin.ID || after.UnlockReason != "teacher was at a funeral" {
		t.Error("unlock provenance not recorded")
	}
}

func TestUnlockIsSticky(t *testing.T) {
	svc := newTestService(t)

	in := SaveAttendanceInput{
		ClassID:       "c1",
		SubjectID:     "sub1",
		SessionNumber: 1,
		Date:          "2024-03-01",
		Records:       presentRecords(2),
		Status:        models.SessionSubmitted,
	}
	sess, err := svc.SaveAttendance(testTeacher, in)
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.UnlockSession(testAdmin, sess.ID, "correction window"); err != nil {
		t.Fatal(err)
	}

	// much later, well past the 24h window again
	setClock(svc, time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC))

	resaved, err := svc.SaveAttendance(testTeacher, in)
	if err != nil {
		t.Fatalf("resubmit after unlock: %v", err)
	}
	if resaved.IsLocked {
		t.Error("manually unlocked session must never re-lock")
	}
	if resaved.UnlockedByAdminID != testAdmin.ID {
		t.Error("unlock provenance lost on resave")
	}
}

func TestHighAbsenceNotificationBoundary(t *testing.T) {
	submit := func(t *testing.T, absentWithReason int, total, number int) *Service {
		t.Helper()
		svc := newTestService(t)
		records := presentRecords(total)
		for i := 0; i < absentWithReason; i++ {
			records[i].Status = models.StatusAbsent
			records[i].AbsentReason = models.ReasonSick
		}
		_, err := svc.SaveAttendance(testTeacher, SaveAttendanceInput{
			ClassID:       "c1",
			SubjectID:     "sub1",
			SessionNumber: number,
			Date:          "2024-03-02",
			Records:       records,
			Status:        models.SessionSubmitted,
		})
		if err != nil {
			t.Fatal(err)
		}
		return svc
	}

	countAlerts := func(svc *Service) int {
		n := 0
		_ = svc.store.View(func(st *models.State) error {
			for _, notif := range st.Notifications {
				if notif.Title == "High Absence Detected" {
					n++
				}
			}
			return nil
		})
		return n
	}

	// exactly 20% absent: no alert
	if n := countAlerts(submit(t, 2, 10, 1)); n != 0 {
		t.Errorf("20%% absence raised %d alert(s), want 0", n)
	}
	// strictly above 20%: alert addressed to the admin
	svc := submit(t, 3, 10, 2)
	if n := countAlerts(svc); n != 1 {
		t.Fatalf("30%% absence raised %d alert(s), want 1", n)
	}
	_ = svc.store.View(func(st *models.State) error {
		for _, notif := range st.Notifications {
			if notif.Title == "High Absence Detected" && notif.UserID != "u1" {
				t.Errorf("alert addressed to %s, want admin u1", notif.UserID)
			}
		}
		return nil
	})
}

func TestAttendanceEndToEnd(t *testing.T) {
	svc := newTestService(t)

	records := presentRecords(10)
	records[8].Status = models.StatusAbsent
	records[8].AbsentReason = models.ReasonFamily
	records[9].Status = models.StatusAbsent // reason intentionally missing

	in := SaveAttendanceInput{
		ClassID:       "c1",
		SubjectID:     "sub1",
		SessionNumber: 1,
		Date:          "2024-03-02", // today per the fixed clock
		Records:       records,
		Status:        models.SessionSubmitted,
	}

	_, err := svc.SaveAttendance(testTeacher, in)
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Count != 1 {
		t.Fatalf("expected ValidationError with count 1, got %v", err)
	}

	records[9].AbsentReason = models.ReasonMedical
	in.Records = records
	sess, err := svc.SaveAttendance(testTeacher, in)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if sess.Status != models.SessionSubmitted {
		t.Errorf("status = %s, want SUBMITTED", sess.Status)
	}
	if sess.IsLocked {
		t.Error("same-day submission must not lock")
	}

	// 2/10 = exactly 20%, no alert
	_ = svc.store.View(func(st *models.State) error {
		for _, notif := range st.Notifications {
			if notif.Title == "High Absence Detected" {
				t.Error("20% absence must not enqueue a notification")
			}
		}
		return nil
	})
}

func TestSaveAttendanceValidatesInput(t *testing.T) {
	svc := newTestService(t)

	base := SaveAttendanceInput{
		ClassID:       "c1",
		SubjectID:     "sub1",
		SessionNumber: 9,
		Date:          "2024-03-02",
		Status:        models.SessionDraft,
	}
	if _, err := svc.SaveAttendance(testTeacher, base); err == nil {
		t.Error("session number 9 must be rejected")
	}

	base.SessionNumber = 1
	base.Date = "03/02/2024"
	if _, err := svc.SaveAttendance(testTeacher, base); err == nil {
		t.Error("non-ISO date must be rejected")
	}
}

func TestSaveAttendanceWritesAuditTags(t *testing.T) {
	svc := newTestService(t)

	in := SaveAttendanceInput{
		ClassID:       "c1",
		SubjectID:     "sub1",
		SessionNumber: 1,
		Date:          "2024-03-02",
		Records:       presentRecords(1),
		Status:        models.SessionDraft,
	}
	if _, err := svc.SaveAttendance(testTeacher, in); err != nil {
		t.Fatal(err)
	}
	in.Status = models.SessionSubmitted
	if _, err := svc.SaveAttendance(testTeacher, in); err != nil {
		t.Fatal(err)
	}

	logs, err := svc.GetAuditLogs(testAdmin)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(logs))
	}
	// newest first
	if logs[0].Action != "UPDATE_SUBMITTED" || logs[1].Action != "CREATE_DRAFT" {
		t.Errorf("audit tags = %s, %s", logs[0].Action, logs[1].Action)
	}

	teacherView, err := svc.GetAuditLogs(testTeacher)
	if err != nil {
		t.Fatal(err)
	}
	if len(teacherView) != 0 {
		t.Error("non-admins must not see the audit trail")
	}
}
