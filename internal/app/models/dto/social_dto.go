package dto

// BookSessionRequest carries a tutoring booking.
type BookSessionRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	TutorID   string `json:"tutorId" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Duration  int    `json:"duration" validate:"gte=15,lte=480"` // Minutes
	Price     int    `json:"price" validate:"gt=0"`
}

// CreateEventRequest carries a new calendar event.
type CreateEventRequest struct {
	CreatorID      string   `json:"creatorId" validate:"required"`
	Title          string   `json:"title" validate:"required,min=2,max=120"`
	Description    string   `json:"description,omitempty" validate:"max=500"`
	Date           string   `json:"date" validate:"required"`
	Time           string   `json:"time" validate:"required"`
	IsPrivate      bool     `json:"isPrivate"`
	InvitedUserIDs []string `json:"invitedUserIds,omitempty"`
}

// CreateGroupRequest carries a new group.
type CreateGroupRequest struct {
	CreatorID   string `json:"creatorId" validate:"required"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
	Image       string `json:"image,omitempty"`
}

// CreateReminderRequest carries a new personal reminder.
type CreateReminderRequest struct {
	UserID string `json:"userId" validate:"required"`
	Title  string `json:"title" validate:"required,min=1,max=200"`
	Date   string `json:"date" validate:"required"`
	Time   string `json:"time,omitempty"`
	Type   string `json:"type,omitempty"`
}
