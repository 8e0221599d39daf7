// Package services is the in-process request/response API over the
// collection store. Every operation sleeps a simulated latency, then runs
// one store transaction: read state, validate preconditions, apply the
// mutation, persist every touched collection.
//
// There is no queuing, retry or idempotency key. Two overlapping calls that
// touch the same collection race, and the last save wins; callers that need
// race-free behavior serialize related operations themselves.
//
// Services defined in this package:
// - AuthService: login (with daily bonus and streak), signup, logout
// - ContentService: boxes, lessons, comments, completions, likes
// - SocialService: follow/favorite/save/subscribe edges, events, groups,
//   tutor session booking
// - MessagingService: conversations and messages
// - NotificationService: read-state mutations
// - ReminderService: personal reminders
// - WalletService: point purchases
package services

import (
	"math/rand"
	"time"

	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/models"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/validation"
)

// delayFn sleeps the simulated request latency. The delay always resolves
// and the mutation after it always attempts to apply; context cancellation
// does not abort an issued operation.
type delayFn func()

// newDelay returns a delayFn sleeping a uniform duration in [min, max].
// A non-positive max disables the delay, which is what tests use.
func newDelay(min, max time.Duration) delayFn {
	if max <= 0 {
		return func() {}
	}
	if min < 0 {
		min = 0
	}
	return func() {
		d := min
		if max > min {
			d += time.Duration(rand.Int63n(int64(max - min)))
		}
		time.Sleep(d)
	}
}

// findUser returns the index of the user with the given id, or -1.
func findUser(users []models.User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}

// findUserByHandle returns the index of the first user whose handle matches
// case-insensitively, with or without the leading "@", or -1.
func findUserByHandle(users []models.User, handle string) int {
	for i := range users {
		if validation.HandlesEqual(users[i].Handle, handle) {
			return i
		}
	}
	return -1
}

// findBox returns the index of the box with the given id, or -1.
func findBox(boxes []models.Box, id string) int {
	for i := range boxes {
		if boxes[i].ID == id {
			return i
		}
	}
	return -1
}

// findLesson scans every box for the lesson id and returns the owning box
// index and the lesson, or (-1, nil).
func findLesson(boxes []models.Box, lessonID string) (int, *models.Lesson) {
	for i := range boxes {
		if lesson := boxes[i].FindLesson(lessonID); lesson != nil {
			return i, lesson
		}
	}
	return -1, nil
}

// notificationFrom builds a notification carrying a snapshot of the actor
// at the time of the event. The snapshot is frozen here and never refreshed
// from the live user record.
func notificationFrom(id string, recipientID string, typ models.NotificationType, actor *models.User, content, targetID string, ts time.Time) models.Notification {
	n := models.Notification{
		ID:          id,
		RecipientID: recipientID,
		Type:        typ,
		Content:     content,
		TargetID:    targetID,
		Timestamp:   ts,
	}
	if actor != nil {
		n.ActorID = actor.ID
		n.ActorName = actor.Name
		n.ActorAvatar = actor.Avatar
	}
	return n
}
