package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/models"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/models/dto"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/store"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/apperrors"
)

func newTestContentService(t *testing.T) (*contentServiceImpl, *store.Store) {
	t.Helper()
	st, cfg := newTestEnv(t)
	svc := NewContentService(st, cfg, zerolog.Nop()).(*contentServiceImpl)
	return svc, st
}

func lessonByID(t *testing.T, st *store.Store, lessonID string) models.Lesson {
	t.Helper()
	for _, box := range st.Boxes(context.Background()) {
		for _, lesson := range box.Lessons {
			if lesson.ID == lessonID {
				return lesson
			}
		}
	}
	t.Fatalf("lesson %s not found", lessonID)
	return models.Lesson{}
}

func TestCreateBox(t *testing.T) {
	svc, st := newTestContentService(t)
	svc.now = at(t, "2024-06-10T10:00:00Z")
	ctx := context.Background()

	box, err := svc.CreateBox(ctx, dto.CreateBoxRequest{
		CreatorID:   leoID,
		Title:       "Exam Survival",
		Description: "Everything I wish I knew before finals.",
		Category:    "study-skills",
		Tags:        []string{"exams"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, box.ID)
	assert.Empty(t, box.Lessons)
	assert.Len(t, st.Boxes(ctx), 3)
}

func TestCreateBoxErrors(t *testing.T) {
	svc, st := newTestContentService(t)
	ctx := context.Background()

	_, err := svc.CreateBox(ctx, dto.CreateBoxRequest{CreatorID: "user-ghost", Title: "Nope"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = svc.CreateBox(ctx, dto.CreateBoxRequest{CreatorID: leoID, Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.Len(t, st.Boxes(ctx), 2)
}

func TestUpdateBoxCreatorOnly(t *testing.T) {
	svc, st := newTestContentService(t)
	ctx := context.Background()

	_, err := svc.UpdateBox(ctx, leoID, physBox, dto.UpdateBoxRequest{Title: "Hijacked"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	box, err := svc.UpdateBox(ctx, mayaID, physBox, dto.UpdateBoxRequest{
		Title: "Pocket Physics II",
		Tags:  []string{"physics", "intermediate"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Pocket Physics II", box.Title)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Five-minute physics, one concept at a time.", box.Description)
	assert.Equal(t, "Pocket Physics II", st.Boxes(ctx)[0].Title)
}

func TestDeleteBox(t *testing.T) {
	svc, st := newTestContentService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteBox(ctx, irisID, physBox), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, svc.DeleteBox(ctx, mayaID, "box-ghost"), apperrors.ErrBoxNotFound)

	require.NoError(t, svc.DeleteBox(ctx, mayaID, physBox))
	boxes := st.Boxes(ctx)
	require.Len(t, boxes, 1)
	assert.Equal(t, "box-daily-kanji", boxes[0].ID)
}

func TestAddLesson(t *testing.T) {
	svc, st := newTestContentService(t)
	ctx := context.Background()

	err := svc.AddLesson(ctx, "box-daily-kanji", dto.AddLessonRequest{
		Title:   "川 — river",
		Content: "Three streams flowing down.",
	})
	require.NoError(t, err)

	boxes := st.Boxes(ctx)
	require.Len(t, boxes[1].Lessons, 2)
	added := boxes[1].Lessons[1]
	assert.Equal(t, "box-daily-kanji", added.BoxID)
	assert.Equal(t, models.LessonText, added.Type) // default when unset
	assert.Empty(t, added.CompletedByUserIDs)
}

func TestAddLessonUnknownBoxIsSilent(t *testing.T) {
	svc, st := newTestContentService(t)
	ctx := context.Background()

	err := svc.AddLesson(ctx, "box-ghost", dto.AddLessonRequest{
		Title:   "Orphan",
		Content: "Goes nowhere.",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, len(st.Boxes(ctx)))
}

func TestAddCommentSnapshotsAuthorAndNotifies(t *testing.T) {
	svc, st := newTestContentService(t)
	svc.now = at(t, "2024-06-10T12:00:00Z")
	ctx := context.Background()

	require.NoError(t, svc.AddComment(ctx, irisID, inertia, "Great example!"))

	lesson := lessonByID(t, st, inertia)
	require.Len(t, lesson.Comments, 2)
	comment := lesson.Comments[1]
	assert.Equal(t, irisID, comment.UserID)
	assert.Equal(t, "Iris Tanaka", comment.UserName)
	assert.Equal(t, "🌱", comment.UserAvatar)

	notifications := st.Notifications(ctx)
	require.Len(t, notifications, 2)
	assert.Equal(t, mayaID, notifications[1].RecipientID)
	assert.Equal(t, models.NotificationComment, notifications[1].Type)
	assert.Equal(t, inertia, notifications[1].TargetID)
}

func TestAddCommentOwnContentStaysQuiet(t *testing.T) {
	svc, st := newTestContentService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddComment(ctx, mayaID, inertia, "Follow-up coming soon."))
	assert.Len(t, st.Notifications(ctx), 1)
}

func TestAddCommentEdgeCases(t *testing.T) {
	svc, st := newTestContentService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.AddComment(ctx, "user-ghost", inertia, "hello"), apperrors.ErrUserNotFound)

	// Unknown lesson is dropped without error.
	require.NoError(t, svc.AddComment(ctx, leoID, "lesson-ghost", "hello"))
	assert.Len(t, lessonByID(t, st, inertia).Comments, 1)
}

func TestCompleteLessonIsIdempotentPerUser(t *testing.T) {
	svc, st := newTestContentService(t)
	ctx := context.Background()

	// Leo already completed this lesson in the seed data.
	require.NoError(t, svc.CompleteLesson(ctx, leoID, inertia))
	lesson := lessonByID(t, st, inertia)
	assert.Equal(t, 1, lesson.CompletionCount)
	assert.Equal(t, []string{leoID}, lesson.CompletedByUserIDs)

	require.NoError(t, svc.CompleteLesson(ctx, irisID, inertia))
	lesson = lessonByID(t, st, inertia)
	assert.Equal(t, 2, lesson.CompletionCount)
	assert.Contains(t, lesson.CompletedByUserIDs, irisID)

	assert.ErrorIs(t, svc.CompleteLesson(ctx, leoID, "lesson-ghost"), apperrors.ErrLessonNotFound)
}

func TestLikeLesson(t *testing.T) {
	svc, st := newTestContentService(t)
	ctx := context.Background()

	require.NoError(t, svc.LikeLesson(ctx, irisID, inertia))
	assert.Equal(t, 3, lessonByID(t, st, inertia).Likes)

	notifications := st.Notifications(ctx)
	require.Len(t, notifications, 2)
	assert.Equal(t, models.NotificationLike, notifications[1].Type)
	assert.Equal(t, mayaID, notifications[1].RecipientID)

	// Liking your own lesson still counts but does not notify.
	require.NoError(t, svc.LikeLesson(ctx, mayaID, inertia))
	assert.Equal(t, 4, lessonByID(t, st, inertia).Likes)
	assert.Len(t, st.Notifications(ctx), 2)

	assert.ErrorIs(t, svc.LikeLesson(ctx, irisID, "lesson-ghost"), apperrors.ErrLessonNotFound)
}
