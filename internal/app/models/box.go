package models

import "time"

// Box is a course-like container of lessons owned by one creator.
//
// Subscribers is an independently incremented counter; it is NOT derived
// from how many users carry this box in their SubscribedBoxIDs list, and
// the two can drift.
type Box struct {
	ID          string    `json:"id"`
	CreatorID   string    `json:"creatorId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CoverImage  string    `json:"coverImage,omitempty"`
	IsPrivate   bool      `json:"isPrivate"`
	Price       int       `json:"price"` // Points to subscribe; 0 when public
	Subscribers int       `json:"subscribers"`
	Lessons     []Lesson  `json:"lessons"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Lesson is one unit of content within a box. It has no lifecycle of its
// own; it lives and dies with its box.
type Lesson struct {
	ID                 string     `json:"id"`
	BoxID              string     `json:"boxId"`
	Title              string     `json:"title"`
	Content            string     `json:"content"`
	Type               LessonType `json:"type"`
	Likes              int        `json:"likes"`
	CompletionCount    int        `json:"completionCount"`
	CompletedByUserIDs []string   `json:"completedByUserIds"` // Append-only, deduplicated by membership check
	Comments           []Comment  `json:"comments"`           // Ordered, append-only
}

// Comment is an append-only child of exactly one lesson. UserName and
// UserAvatar are snapshots captured at comment time, never refreshed from
// the live user record.
type Comment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// FindLesson scans the box for a lesson by id.
func (b *Box) FindLesson(lessonID string) *Lesson {
	for i := range b.Lessons {
		if b.Lessons[i].ID == lessonID {
			return &b.Lessons[i]
		}
	}
	return nil
}

// Completed reports whether userID already completed the lesson.
func (l *Lesson) Completed(userID string) bool {
	return containsID(l.CompletedByUserIDs, userID)
}
