package models

// Role identifies what a user is allowed to do across the system
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
)

// AttendanceStatus is the per-student mark inside a session
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
	StatusLate    AttendanceStatus = "LATE"
)

// AbsentReason is mandatory on any ABSENT record before submission
type AbsentReason string

const (
	ReasonSick    AbsentReason = "SICK"
	ReasonFamily  AbsentReason = "FAMILY"
	ReasonTruant  AbsentReason = "TRUANT"
	ReasonMedical AbsentReason = "MEDICAL"
	ReasonOther   AbsentReason = "OTHER"
)

// SessionStatus distinguishes an editable draft from a finalized submission
type SessionStatus string

const (
	SessionDraft     SessionStatus = "DRAFT"
	SessionSubmitted SessionStatus = "SUBMITTED"
)

// NotificationType classifies notifications for display purposes
type NotificationType string

const (
	NotifyInfo    NotificationType = "INFO"
	NotifyWarning NotificationType = "WARNING"
	NotifySuccess NotificationType = "SUCCESS"
	NotifyError   NotificationType = "ERROR"
)
