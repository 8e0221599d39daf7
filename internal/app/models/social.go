package models

import "time"

// Notification is delivered to exactly one user. ActorName and ActorAvatar
// are snapshots of the acting user at the time of the event, not live
// references.
type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipientId"`
	Type        NotificationType `json:"type"`
	ActorID     string           `json:"actorId,omitempty"`
	ActorName   string           `json:"actorName,omitempty"`
	ActorAvatar string           `json:"actorAvatar,omitempty"`
	Content     string           `json:"content"`
	TargetID    string           `json:"targetId,omitempty"` // Lesson, box or event the notification points at
	Timestamp   time.Time        `json:"timestamp"`
	IsRead      bool             `json:"isRead"`
}

// Conversation is the single thread between the session user and one other
// participant. There is at most one conversation per participant pair.
type Conversation struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"ownerId"`       // The session-user side of the pair
	ParticipantID string    `json:"participantId"` // The other party
	Messages      []Message `json:"messages"`      // Ordered, append-only
	UnreadCount   int       `json:"unreadCount"`
}

// Message is one entry in a conversation.
type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
}

// Event mixes a shared attendee counter with a single-viewer IsJoined flag
// on one record. One Event cannot represent "joined" for more than one
// viewer at a time; the flag belongs to whoever the session user is.
type Event struct {
	ID             string   `json:"id"`
	CreatorID      string   `json:"creatorId"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Date           string   `json:"date"` // Calendar date (YYYY-MM-DD)
	Time           string   `json:"time"` // Clock time, e.g. "18:30"
	Attendees      int      `json:"attendees"`
	IsJoined       bool     `json:"isJoined"`
	IsPrivate      bool     `json:"isPrivate"`
	InvitedUserIDs []string `json:"invitedUserIds,omitempty"`
}

// Reminder is a personal calendar entry with a completion toggle.
type Reminder struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Type        string `json:"type,omitempty"`
	IsCompleted bool   `json:"isCompleted"`
}

// Group is a named set of connected users for bulk sharing and invites.
type Group struct {
	ID          string   `json:"id"`
	CreatorID   string   `json:"creatorId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	MemberIDs   []string `json:"memberIds"`
}

// TutorSession is a scheduled paid 1:1 booking between a student and a
// tutor.
type TutorSession struct {
	ID        string        `json:"id"`
	StudentID string        `json:"studentId"`
	TutorID   string        `json:"tutorId"`
	Subject   string        `json:"subject"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Duration  int           `json:"duration"` // Minutes
	Price     int           `json:"price"`    // Points debited from the student
	Status    SessionStatus `json:"status"`
}
