package usecase

import (
	"testing"
	"time"

	"bountyboard/internal/entity"
	"bountyboard/internal/repo/memory"
	"bountyboard/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func newSubmissionFixture(t *testing.T, maxPerCreator int) (SubmissionUseCase, *entity.Brief) {
	t.Helper()

	store := memory.NewStore()
	repos := memory.NewRepositories(store)

	brief := &entity.Brief{
		Slug:                     "test-brief",
		Title:                    "Test Brief",
		OrgName:                  "Acme",
		Status:                   entity.BriefStatusPublished,
		Reward:                   entity.Reward{Type: entity.RewardTypeCash, Amount: 500, Currency: "AUD"},
		MaxWinners:               3,
		MaxSubmissionsPerCreator: maxPerCreator,
	}
	err := repos.Briefs.Create(brief)
	assert.NoError(t, err)

	uc := NewSubmissionUseCase(repos.Submissions, repos.Briefs, logger.New())
	return uc, brief
}

func validInput(briefID string) CreateSubmissionInput {
	return CreateSubmissionInput{
		BriefID:      briefID,
		CreatorName:  "Jess Chen",
		CreatorEmail: "jess@example.com",
		VideoURL:     "https://cdn.example.com/submissions/abc.mp4",
	}
}

func TestCreateSubmission(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 2)

	sub, err := uc.CreateSubmission(validInput(brief.ID))

	assert.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, entity.SubmissionStatusReceived, sub.Status)
	assert.Equal(t, entity.PayoutStatusNotApplicable, sub.PayoutStatus)
	assert.Equal(t, 1, sub.SubmissionVersion)
}

func TestCreateSubmissionMissingFields(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 0)

	input := validInput(brief.ID)
	input.CreatorEmail = ""

	_, err := uc.CreateSubmission(input)
	assert.Error(t, err)
}

func TestCreateSubmissionBriefNotFound(t *testing.T) {
	uc, _ := newSubmissionFixture(t, 0)

	_, err := uc.CreateSubmission(validInput("00000000-0000-0000-0000-000000000000"))
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCreateSubmissionBriefNotOpen(t *testing.T) {
	store := memory.NewStore()
	repos := memory.NewRepositories(store)

	brief := &entity.Brief{Slug: "draft-brief", Title: "Draft", Status: entity.BriefStatusDraft}
	assert.NoError(t, repos.Briefs.Create(brief))

	uc := NewSubmissionUseCase(repos.Submissions, repos.Briefs, logger.New())

	_, err := uc.CreateSubmission(validInput(brief.ID))
	assert.ErrorIs(t, err, entity.ErrBriefNotOpen)
}

func TestCreateSubmissionCapEnforced(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 2)

	_, err := uc.CreateSubmission(validInput(brief.ID))
	assert.NoError(t, err)
	_, err = uc.CreateSubmission(validInput(brief.ID))
	assert.NoError(t, err)

	_, err = uc.CreateSubmission(validInput(brief.ID))
	assert.ErrorIs(t, err, entity.ErrSubmissionLimitReached)
}

func TestCreateSubmissionCapIsCaseInsensitive(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 1)

	_, err := uc.CreateSubmission(validInput(brief.ID))
	assert.NoError(t, err)

	input := validInput(brief.ID)
	input.CreatorEmail = "JESS@Example.COM"
	_, err = uc.CreateSubmission(input)
	assert.ErrorIs(t, err, entity.ErrSubmissionLimitReached)
}

func TestUpdateStatusHappyPath(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 0)
	sub, _ := uc.CreateSubmission(validInput(brief.ID))

	sub, err := uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusInReview})
	assert.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusInReview, sub.Status)

	sub, err = uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusSelected})
	assert.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusSelected, sub.Status)
}

func TestUpdateStatusSelectedCascadesPayout(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 0)
	sub, _ := uc.CreateSubmission(validInput(brief.ID))
	uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusInReview})

	sub, err := uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusSelected})

	assert.NoError(t, err)
	assert.Equal(t, entity.PayoutStatusPending, sub.PayoutStatus)
	assert.NotNil(t, sub.SelectedAt)
}

func TestUpdateStatusRejectsIllegalTransitions(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 0)
	sub, _ := uc.CreateSubmission(validInput(brief.ID))

	// RECEIVED can only move to IN_REVIEW.
	_, err := uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusSelected})
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)

	_, err = uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusNotSelected})
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)

	// SELECTED is terminal.
	uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusInReview})
	uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusSelected})
	_, err = uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusNotSelected})
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 0)
	sub, _ := uc.CreateSubmission(validInput(brief.ID))

	_, err := uc.UpdateStatus(sub.ID, ReviewInput{Status: "APPROVED"})
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestUpdateStatusNotSelectedSetsResubmissionFlag(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 0)
	sub, _ := uc.CreateSubmission(validInput(brief.ID))
	uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusInReview})

	allow := true
	sub, err := uc.UpdateStatus(sub.ID, ReviewInput{
		Status:             entity.SubmissionStatusNotSelected,
		AllowsResubmission: &allow,
		ReviewNotes:        "Audio too quiet, reshoot welcome",
	})

	assert.NoError(t, err)
	assert.True(t, sub.AllowsResubmission)
	assert.Equal(t, "Audio too quiet, reshoot welcome", sub.ReviewNotes)
}

func TestUpdatePayoutRequiresSelection(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 0)
	sub, _ := uc.CreateSubmission(validInput(brief.ID))

	_, err := uc.UpdatePayout(sub.ID, PayoutInput{PayoutStatus: entity.PayoutStatusPaid})
	assert.ErrorIs(t, err, entity.ErrPayoutNotSelected)
}

func TestUpdatePayoutPaidStampsTimestamp(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 0)
	sub, _ := uc.CreateSubmission(validInput(brief.ID))
	uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusInReview})
	uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusSelected})

	sub, err := uc.UpdatePayout(sub.ID, PayoutInput{PayoutStatus: entity.PayoutStatusPaid, Notes: "Paid via bank transfer"})

	assert.NoError(t, err)
	assert.Equal(t, entity.PayoutStatusPaid, sub.PayoutStatus)
	assert.NotNil(t, sub.PaidAt)
	assert.Equal(t, "Paid via bank transfer", sub.PayoutNotes)
}

func TestUpdatePayoutPaidIsTerminal(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 0)
	sub, _ := uc.CreateSubmission(validInput(brief.ID))
	uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusInReview})
	uc.UpdateStatus(sub.ID, ReviewInput{Status: entity.SubmissionStatusSelected})
	uc.UpdatePayout(sub.ID, PayoutInput{PayoutStatus: entity.PayoutStatusPaid})

	_, err := uc.UpdatePayout(sub.ID, PayoutInput{PayoutStatus: entity.PayoutStatusPending})
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestResubmit(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 0)
	parent, _ := uc.CreateSubmission(validInput(brief.ID))
	uc.UpdateStatus(parent.ID, ReviewInput{Status: entity.SubmissionStatusInReview})
	allow := true
	uc.UpdateStatus(parent.ID, ReviewInput{Status: entity.SubmissionStatusNotSelected, AllowsResubmission: &allow})

	child, err := uc.Resubmit(parent.ID, CreateSubmissionInput{
		VideoURL: "https://cdn.example.com/submissions/take2.mp4",
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, child.SubmissionVersion)
	assert.NotNil(t, child.ParentSubmissionID)
	assert.Equal(t, parent.ID, *child.ParentSubmissionID)
	assert.Equal(t, parent.CreatorEmail, child.CreatorEmail)
	assert.Equal(t, entity.SubmissionStatusReceived, child.Status)
}

func TestResubmitRequiresRejectionWithPermission(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 0)
	parent, _ := uc.CreateSubmission(validInput(brief.ID))

	_, err := uc.Resubmit(parent.ID, validInput(brief.ID))
	assert.ErrorIs(t, err, entity.ErrResubmissionNotAllowed)

	uc.UpdateStatus(parent.ID, ReviewInput{Status: entity.SubmissionStatusInReview})
	uc.UpdateStatus(parent.ID, ReviewInput{Status: entity.SubmissionStatusNotSelected})

	// Rejected without the resubmission flag.
	_, err = uc.Resubmit(parent.ID, validInput(brief.ID))
	assert.ErrorIs(t, err, entity.ErrResubmissionNotAllowed)
}

func TestResubmitCountsAgainstCap(t *testing.T) {
	uc, brief := newSubmissionFixture(t, 1)
	parent, _ := uc.CreateSubmission(validInput(brief.ID))
	uc.UpdateStatus(parent.ID, ReviewInput{Status: entity.SubmissionStatusInReview})
	allow := true
	uc.UpdateStatus(parent.ID, ReviewInput{Status: entity.SubmissionStatusNotSelected, AllowsResubmission: &allow})

	_, err := uc.Resubmit(parent.ID, CreateSubmissionInput{
		VideoURL: "https://cdn.example.com/submissions/take2.mp4",
	})
	assert.ErrorIs(t, err, entity.ErrSubmissionLimitReached)
}

func TestCreateSubmissionAfterDeadline(t *testing.T) {
	store := memory.NewStore()
	repos := memory.NewRepositories(store)

	deadline := time.Now().Add(-time.Hour)
	brief := &entity.Brief{
		Slug:     "closed-brief",
		Title:    "Closed",
		Status:   entity.BriefStatusPublished,
		Deadline: &deadline,
	}
	assert.NoError(t, repos.Briefs.Create(brief))

	uc := NewSubmissionUseCase(repos.Submissions, repos.Briefs, logger.New())

	_, err := uc.CreateSubmission(validInput(brief.ID))
	assert.ErrorIs(t, err, entity.ErrBriefNotOpen)
}
