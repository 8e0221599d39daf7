package models

// User is the central account record. Social edges are kept as two
// independent id lists: if A follows B, B's id is in A.Following AND A's id
// is in B.Followers. Mutations must update both sides within one store
// update; nothing re-derives one list from the other.
type User struct {
	ID               string        `json:"id"`                      // Unique identifier
	Handle           string        `json:"handle"`                  // Unique, case-insensitive, always stored with a leading "@"
	Name             string        `json:"name"`                    // Display name
	Avatar           string        `json:"avatar,omitempty"`        // Avatar URL or emoji
	Bio              string        `json:"bio,omitempty"`           // Short profile text
	Role             RoleType      `json:"role"`                    // student, tutor, institute, professional or enthusiast
	Points           int           `json:"points"`                  // Current balance; mirrored by the transactions ledger
	Followers        []string      `json:"followers"`               // Ids of users following this user
	Following        []string      `json:"following"`               // Ids of users this user follows
	SubscribedBoxIDs []string      `json:"subscribedBoxIds"`        // Boxes this user subscribed to
	FavoriteBoxIDs   []string      `json:"favoriteBoxIds"`          // Boxes this user favorited
	SavedLessonIDs   []string      `json:"savedLessonIds"`          // Lessons this user bookmarked
	Streak           int           `json:"streak"`                  // Consecutive login day count
	LastLoginDate    string        `json:"lastLoginDate,omitempty"` // Calendar date (YYYY-MM-DD) of the last login bonus
	Tutor            *TutorProfile `json:"tutor,omitempty"`         // Present only when the role enables tutoring
}

// TutorProfile holds the tutoring-specific fields of a user.
type TutorProfile struct {
	Rate         int      `json:"rate"`         // Points per hour
	Subjects     []string `json:"subjects"`     // Subjects offered
	Availability []string `json:"availability"` // Free-form weekly slots, e.g. "mon 18:00-20:00"
}

// IsFollowing reports whether the user follows targetID.
func (u *User) IsFollowing(targetID string) bool {
	return containsID(u.Following, targetID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ToggleID removes id from ids when present, otherwise appends it.
// The second result is true when the id is present afterwards.
func ToggleID(ids []string, id string) ([]string, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...), false
		}
	}
	return append(ids, id), true
}
