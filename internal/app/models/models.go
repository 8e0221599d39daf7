package models

// RoleType identifies what kind of account a user holds.
type RoleType string

const (
	RoleStudent      RoleType = "student"
	RoleTutor        RoleType = "tutor"
	RoleInstitute    RoleType = "institute"
	RoleProfessional RoleType = "professional"
	RoleEnthusiast   RoleType = "enthusiast"
)

// CanTutor reports whether the role is allowed to offer tutoring sessions.
func (r RoleType) CanTutor() bool {
	return r == RoleTutor || r == RoleInstitute || r == RoleProfessional
}

// TransactionType is the direction of a points ledger entry.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// NotificationType classifies a notification for rendering.
type NotificationType string

const (
	NotificationLike      NotificationType = "like"
	NotificationComment   NotificationType = "comment"
	NotificationFollow    NotificationType = "follow"
	NotificationSystem    NotificationType = "system"
	NotificationEventJoin NotificationType = "event_join"
)

// LessonType is the content kind of a lesson.
type LessonType string

const (
	LessonText  LessonType = "text"
	LessonQuiz  LessonType = "quiz"
	LessonVideo LessonType = "video"
	LessonAudio LessonType = "audio"
)

// SessionStatus is the lifecycle state of a tutor session.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)
