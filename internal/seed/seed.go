package seed

import (
	"time"

	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/models"
)

// Fixture data written on first run and substituted whenever a stored
// collection is missing or corrupt. Ids are fixed so the fallback is
// deterministic across calls.

var fixtureEpoch = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// Users returns the default users collection.
func Users() []models.User {
	return []models.User{
		{
			ID:               "user-maya",
			Handle:           "@maya",
			Name:             "Maya Lindqvist",
			Avatar:           "🦊",
			Bio:              "Physics tutor. Small lessons, big ideas.",
			Role:             models.RoleTutor,
			Points:           250,
			Followers:        []string{"user-leo"},
			Following:        []string{},
			SubscribedBoxIDs: []string{},
			FavoriteBoxIDs:   []string{},
			SavedLessonIDs:   []string{},
			Streak:           3,
			Tutor: &models.TutorProfile{
				Rate:         120,
				Subjects:     []string{"physics", "math"},
				Availability: []string{"mon 18:00-20:00", "thu 17:00-19:00"},
			},
		},
		{
			ID:               "user-leo",
			Handle:           "@leo",
			Name:             "Leo Okafor",
			Avatar:           "🐢",
			Role:             models.RoleStudent,
			Points:           180,
			Followers:        []string{},
			Following:        []string{"user-maya"},
			SubscribedBoxIDs: []string{"box-pocket-physics"},
			FavoriteBoxIDs:   []string{"box-pocket-physics"},
			SavedLessonIDs:   []string{},
			Streak:           1,
		},
		{
			ID:               "user-iris",
			Handle:           "@iris.learns",
			Name:             "Iris Tanaka",
			Avatar:           "🌱",
			Role:             models.RoleEnthusiast,
			Points:           95,
			Followers:        []string{},
			Following:        []string{},
			SubscribedBoxIDs: []string{},
			FavoriteBoxIDs:   []string{},
			SavedLessonIDs:   []string{},
		},
	}
}

// Boxes returns the default boxes collection.
func Boxes() []models.Box {
	return []models.Box{
		{
			ID:          "box-pocket-physics",
			CreatorID:   "user-maya",
			Title:       "Pocket Physics",
			Description: "Five-minute physics, one concept at a time.",
			Category:    "science",
			Tags:        []string{"physics", "beginner"},
			Subscribers: 1,
			CreatedAt:   fixtureEpoch,
			Lessons: []models.Lesson{
				{
					ID:                 "lesson-inertia",
					BoxID:              "box-pocket-physics",
					Title:              "Inertia in one minute",
					Content:            "Things keep doing what they're doing unless something interferes.",
					Type:               models.LessonText,
					Likes:              2,
					CompletionCount:    1,
					CompletedByUserIDs: []string{"user-leo"},
					Comments: []models.Comment{
						{
							ID:         "comment-0001",
							UserID:     "user-leo",
							UserName:   "Leo Okafor",
							UserAvatar: "🐢",
							Content:    "Finally clicked for me, thanks!",
							Timestamp:  fixtureEpoch.Add(26 * time.Hour),
						},
					},
				},
				{
					ID:                 "lesson-momentum-quiz",
					BoxID:              "box-pocket-physics",
					Title:              "Momentum check",
					Content:            "Which has more momentum: a rolling bowling ball or a thrown tennis ball?",
					Type:               models.LessonQuiz,
					CompletedByUserIDs: []string{},
					Comments:           []models.Comment{},
				},
			},
		},
		{
			ID:          "box-daily-kanji",
			CreatorID:   "user-iris",
			Title:       "Daily Kanji",
			Description: "One kanji a day with a mnemonic.",
			Category:    "languages",
			Tags:        []string{"japanese"},
			CreatedAt:   fixtureEpoch.Add(48 * time.Hour),
			Lessons: []models.Lesson{
				{
					ID:                 "lesson-kanji-yama",
					BoxID:              "box-daily-kanji",
					Title:              "山 — mountain",
					Content:            "Three peaks. You can see the mountain in the strokes.",
					Type:               models.LessonText,
					CompletedByUserIDs: []string{},
					Comments:           []models.Comment{},
				},
			},
		},
	}
}

// Transactions returns the default (empty) points ledger.
func Transactions() []models.Transaction {
	return []models.Transaction{}
}

// Notifications returns the default notifications collection.
func Notifications() []models.Notification {
	return []models.Notification{
		{
			ID:          "notification-welcome",
			RecipientID: "user-leo",
			Type:        models.NotificationSystem,
			Content:     "Welcome to LrnBox! Open a box to start learning.",
			Timestamp:   fixtureEpoch,
			IsRead:      false,
		},
	}
}

// Conversations returns the default (empty) conversations collection.
func Conversations() []models.Conversation {
	return []models.Conversation{}
}

// Events returns the default events collection.
func Events() []models.Event {
	return []models.Event{
		{
			ID:          "event-study-jam",
			CreatorID:   "user-maya",
			Title:       "Physics study jam",
			Description: "Group problem solving, all levels welcome.",
			Date:        "2024-03-15",
			Time:        "18:00",
			Attendees:   1,
		},
	}
}

// Reminders returns the default reminders collection.
func Reminders() []models.Reminder {
	return []models.Reminder{
		{
			ID:     "reminder-review",
			UserID: "user-leo",
			Title:  "Review momentum quiz",
			Date:   "2024-03-10",
			Time:   "19:00",
			Type:   "study",
		},
	}
}

// Groups returns the default groups collection.
func Groups() []models.Group {
	return []models.Group{
		{
			ID:          "group-science-circle",
			CreatorID:   "user-maya",
			Name:        "Science Circle",
			Description: "Share boxes and plan sessions.",
			MemberIDs:   []string{"user-maya", "user-leo"},
		},
	}
}

// TutorSessions returns the default (empty) tutor sessions collection.
func TutorSessions() []models.TutorSession {
	return []models.TutorSession{}
}
