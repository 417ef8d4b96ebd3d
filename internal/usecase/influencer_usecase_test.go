package usecase

import (
	"testing"
	"time"

	"bountyboard/internal/entity"
	"bountyboard/internal/repo"
	"bountyboard/internal/repo/memory"
	"bountyboard/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func newInfluencerFixture(t *testing.T) (InfluencerUseCase, *repo.Repositories) {
	t.Helper()
	repos := memory.NewRepositories(memory.NewStore())
	return NewInfluencerUseCase(repos.Influencers, repos.Invites, logger.New()), repos
}

func TestApply(t *testing.T) {
	uc, _ := newInfluencerFixture(t)

	inf, err := uc.Apply(ApplyInfluencerInput{
		Name:            "Sam Rivera",
		Email:           "sam@example.com",
		InstagramHandle: "@samrivera",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, inf.ID)
	assert.Equal(t, entity.InfluencerStatusPending, inf.Status)
}

func TestApplyDuplicateEmail(t *testing.T) {
	uc, _ := newInfluencerFixture(t)

	_, err := uc.Apply(ApplyInfluencerInput{Name: "Sam", Email: "sam@example.com"})
	assert.NoError(t, err)

	_, err = uc.Apply(ApplyInfluencerInput{Name: "Sam Again", Email: "SAM@example.com"})
	assert.ErrorIs(t, err, entity.ErrEmailTaken)
}

func TestApplyWithInviteConsumesItOnce(t *testing.T) {
	uc, repos := newInfluencerFixture(t)

	invite := &entity.InfluencerInvite{
		Email:      "sam@example.com",
		InviteCode: "ABCD1234",
		ExpiresAt:  time.Now().Add(time.Hour),
		Status:     entity.InviteStatusPending,
	}
	assert.NoError(t, repos.Invites.Create(invite))

	inf, err := uc.Apply(ApplyInfluencerInput{
		Name:       "Sam Rivera",
		Email:      "sam@example.com",
		InviteCode: "ABCD1234",
	})
	assert.NoError(t, err)
	assert.Equal(t, "ABCD1234", inf.InviteCodeUsed)

	stored, err := repos.Invites.GetByCode("ABCD1234")
	assert.NoError(t, err)
	assert.Equal(t, entity.InviteStatusAccepted, stored.Status)
	assert.NotNil(t, stored.AcceptedAt)

	// A second applicant cannot reuse the accepted invite.
	_, err = uc.Apply(ApplyInfluencerInput{
		Name:       "Alex Kim",
		Email:      "alex@example.com",
		InviteCode: "ABCD1234",
	})
	assert.ErrorIs(t, err, entity.ErrInviteNotUsable)
}

func TestApplyWithExpiredInvite(t *testing.T) {
	uc, repos := newInfluencerFixture(t)

	invite := &entity.InfluencerInvite{
		Email:      "sam@example.com",
		InviteCode: "OLDCODE1",
		ExpiresAt:  time.Now().Add(-time.Hour),
		Status:     entity.InviteStatusPending,
	}
	assert.NoError(t, repos.Invites.Create(invite))

	_, err := uc.Apply(ApplyInfluencerInput{
		Name:       "Sam Rivera",
		Email:      "sam@example.com",
		InviteCode: "OLDCODE1",
	})
	assert.ErrorIs(t, err, entity.ErrInviteExpired)

	// The lapsed invite is flipped to expired so admin listings stay honest.
	stored, err := repos.Invites.GetByCode("OLDCODE1")
	assert.NoError(t, err)
	assert.Equal(t, entity.InviteStatusExpired, stored.Status)
}

func TestApplyWithUnknownInvite(t *testing.T) {
	uc, _ := newInfluencerFixture(t)

	_, err := uc.Apply(ApplyInfluencerInput{
		Name:       "Sam Rivera",
		Email:      "sam@example.com",
		InviteCode: "NOPE0000",
	})
	assert.ErrorIs(t, err, entity.ErrInviteNotUsable)
}

func TestUpdateInfluencerTransitions(t *testing.T) {
	uc, _ := newInfluencerFixture(t)
	inf, _ := uc.Apply(ApplyInfluencerInput{Name: "Sam", Email: "sam@example.com"})

	approved := entity.InfluencerStatusApproved
	inf, err := uc.UpdateInfluencer(inf.ID, UpdateInfluencerInput{Status: &approved})
	assert.NoError(t, err)
	assert.Equal(t, entity.InfluencerStatusApproved, inf.Status)

	suspended := entity.InfluencerStatusSuspended
	inf, err = uc.UpdateInfluencer(inf.ID, UpdateInfluencerInput{Status: &suspended})
	assert.NoError(t, err)
	assert.Equal(t, entity.InfluencerStatusSuspended, inf.Status)

	// Suspended accounts reinstate, they do not re-enter vetting.
	pending := entity.InfluencerStatusPending
	_, err = uc.UpdateInfluencer(inf.ID, UpdateInfluencerInput{Status: &pending})
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestUpdateInfluencerRejectedIsTerminal(t *testing.T) {
	uc, _ := newInfluencerFixture(t)
	inf, _ := uc.Apply(ApplyInfluencerInput{Name: "Sam", Email: "sam@example.com"})

	rejected := entity.InfluencerStatusRejected
	_, err := uc.UpdateInfluencer(inf.ID, UpdateInfluencerInput{Status: &rejected})
	assert.NoError(t, err)

	approved := entity.InfluencerStatusApproved
	_, err = uc.UpdateInfluencer(inf.ID, UpdateInfluencerInput{Status: &approved})
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestUpdateInfluencerVerificationFlags(t *testing.T) {
	uc, _ := newInfluencerFixture(t)
	inf, _ := uc.Apply(ApplyInfluencerInput{Name: "Sam", Email: "sam@example.com"})

	yes := true
	notes := "ID checked against passport"
	inf, err := uc.UpdateInfluencer(inf.ID, UpdateInfluencerInput{
		IDVerified: &yes,
		Notes:      &notes,
	})

	assert.NoError(t, err)
	assert.True(t, inf.IDVerified)
	assert.False(t, inf.BankVerified)
	assert.Equal(t, notes, inf.Notes)
}
