package usecase

import (
	"testing"

	"bountyboard/internal/entity"
	"bountyboard/internal/repo"
	"bountyboard/internal/repo/memory"
	"bountyboard/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func newFeedbackFixture(t *testing.T) (FeedbackUseCase, *entity.Submission, *repo.Repositories) {
	t.Helper()

	store := memory.NewStore()
	repos := memory.NewRepositories(store)

	brief := &entity.Brief{
		Slug:   "test-brief",
		Title:  "Test Brief",
		Status: entity.BriefStatusPublished,
	}
	assert.NoError(t, repos.Briefs.Create(brief))

	sub := &entity.Submission{
		BriefID:      brief.ID,
		CreatorName:  "Jess Chen",
		CreatorEmail: "jess@example.com",
		Status:       entity.SubmissionStatusInReview,
		PayoutStatus: entity.PayoutStatusNotApplicable,
	}
	assert.NoError(t, repos.Submissions.CreateWithCap(sub, 0))

	uc := NewFeedbackUseCase(repos.Feedback, repos.Submissions, logger.New())
	return uc, sub, repos
}

func TestCreateFeedback(t *testing.T) {
	uc, sub, repos := newFeedbackFixture(t)

	fb, err := uc.CreateFeedback(sub.ID, "author-1", "Sam Reviewer", CreateFeedbackInput{
		Comment:        "Tighten the first three seconds",
		RequiresAction: true,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, fb.ID)
	assert.Equal(t, sub.ID, fb.SubmissionID)
	assert.Equal(t, "Sam Reviewer", fb.AuthorName)
	assert.True(t, fb.RequiresAction)
	assert.False(t, fb.IsRead)

	updated, err := repos.Submissions.GetByID(sub.ID)
	assert.NoError(t, err)
	assert.True(t, updated.HasFeedback)
}

func TestCreateFeedbackEmptyComment(t *testing.T) {
	uc, sub, _ := newFeedbackFixture(t)

	_, err := uc.CreateFeedback(sub.ID, "author-1", "Sam Reviewer", CreateFeedbackInput{})
	assert.Error(t, err)
}

func TestCreateFeedbackSubmissionNotFound(t *testing.T) {
	uc, _, _ := newFeedbackFixture(t)

	_, err := uc.CreateFeedback("00000000-0000-0000-0000-000000000000", "author-1", "Sam Reviewer", CreateFeedbackInput{
		Comment: "hello",
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListFeedbackNewestFirst(t *testing.T) {
	uc, sub, _ := newFeedbackFixture(t)

	_, err := uc.CreateFeedback(sub.ID, "author-1", "Sam Reviewer", CreateFeedbackInput{Comment: "first"})
	assert.NoError(t, err)
	_, err = uc.CreateFeedback(sub.ID, "author-1", "Sam Reviewer", CreateFeedbackInput{Comment: "second"})
	assert.NoError(t, err)

	items, err := uc.ListFeedback(sub.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Comment)
	assert.Equal(t, "first", items[1].Comment)
}

func TestListFeedbackSubmissionNotFound(t *testing.T) {
	uc, _, _ := newFeedbackFixture(t)

	_, err := uc.ListFeedback("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateFeedback(t *testing.T) {
	uc, sub, _ := newFeedbackFixture(t)

	fb, err := uc.CreateFeedback(sub.ID, "author-1", "Sam Reviewer", CreateFeedbackInput{
		Comment:        "needs work",
		RequiresAction: true,
	})
	assert.NoError(t, err)

	comment := "resolved, looks good"
	requiresAction := false
	isRead := true
	updated, err := uc.UpdateFeedback(fb.ID, UpdateFeedbackInput{
		Comment:        &comment,
		RequiresAction: &requiresAction,
		IsRead:         &isRead,
	})

	assert.NoError(t, err)
	assert.Equal(t, comment, updated.Comment)
	assert.False(t, updated.RequiresAction)
	assert.True(t, updated.IsRead)
}

func TestUpdateFeedbackEmptyComment(t *testing.T) {
	uc, sub, _ := newFeedbackFixture(t)

	fb, err := uc.CreateFeedback(sub.ID, "author-1", "Sam Reviewer", CreateFeedbackInput{Comment: "needs work"})
	assert.NoError(t, err)

	empty := ""
	_, err = uc.UpdateFeedback(fb.ID, UpdateFeedbackInput{Comment: &empty})
	assert.Error(t, err)
}

func TestDeleteFeedback(t *testing.T) {
	uc, sub, _ := newFeedbackFixture(t)

	fb, err := uc.CreateFeedback(sub.ID, "author-1", "Sam Reviewer", CreateFeedbackInput{Comment: "needs work"})
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteFeedback(fb.ID))

	items, err := uc.ListFeedback(sub.ID)
	assert.NoError(t, err)
	assert.Empty(t, items)

	assert.ErrorIs(t, uc.DeleteFeedback(fb.ID), entity.ErrNotFound)
}
