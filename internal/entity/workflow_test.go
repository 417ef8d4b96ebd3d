package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionStatusTransitions(t *testing.T) {
	tests := []struct {
		from    SubmissionStatus
		to      SubmissionStatus
		allowed bool
	}{
		{SubmissionStatusReceived, SubmissionStatusInReview, true},
		{SubmissionStatusReceived, SubmissionStatusSelected, false},
		{SubmissionStatusReceived, SubmissionStatusNotSelected, false},
		{SubmissionStatusInReview, SubmissionStatusSelected, true},
		{SubmissionStatusInReview, SubmissionStatusNotSelected, true},
		{SubmissionStatusInReview, SubmissionStatusReceived, false},
		{SubmissionStatusSelected, SubmissionStatusReceived, false},
		{SubmissionStatusSelected, SubmissionStatusInReview, false},
		{SubmissionStatusSelected, SubmissionStatusNotSelected, false},
		{SubmissionStatusNotSelected, SubmissionStatusInReview, true},
		{SubmissionStatusNotSelected, SubmissionStatusSelected, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestPayoutStatusTransitions(t *testing.T) {
	assert.True(t, PayoutStatusNotApplicable.CanTransitionTo(PayoutStatusPending))
	assert.True(t, PayoutStatusPending.CanTransitionTo(PayoutStatusPaid))
	assert.False(t, PayoutStatusNotApplicable.CanTransitionTo(PayoutStatusPaid))
	assert.False(t, PayoutStatusPaid.CanTransitionTo(PayoutStatusPending))
	assert.False(t, PayoutStatusPaid.CanTransitionTo(PayoutStatusNotApplicable))
	assert.False(t, PayoutStatusPending.CanTransitionTo(PayoutStatusNotApplicable))
}

func TestInfluencerStatusTransitions(t *testing.T) {
	assert.True(t, InfluencerStatusPending.CanTransitionTo(InfluencerStatusApproved))
	assert.True(t, InfluencerStatusPending.CanTransitionTo(InfluencerStatusRejected))
	assert.True(t, InfluencerStatusApproved.CanTransitionTo(InfluencerStatusSuspended))
	assert.True(t, InfluencerStatusSuspended.CanTransitionTo(InfluencerStatusApproved))
	assert.False(t, InfluencerStatusRejected.CanTransitionTo(InfluencerStatusApproved))
	assert.False(t, InfluencerStatusPending.CanTransitionTo(InfluencerStatusSuspended))
}

func TestBriefStatusTransitions(t *testing.T) {
	assert.True(t, BriefStatusDraft.CanTransitionTo(BriefStatusPublished))
	assert.True(t, BriefStatusDraft.CanTransitionTo(BriefStatusArchived))
	assert.True(t, BriefStatusPublished.CanTransitionTo(BriefStatusArchived))
	assert.False(t, BriefStatusPublished.CanTransitionTo(BriefStatusDraft))
	assert.False(t, BriefStatusArchived.CanTransitionTo(BriefStatusPublished))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, SubmissionStatusReceived.Valid())
	assert.False(t, SubmissionStatus("BOGUS").Valid())
	assert.True(t, PayoutStatusPaid.Valid())
	assert.False(t, PayoutStatus("bogus").Valid())
	assert.True(t, InfluencerStatusPending.Valid())
	assert.False(t, InfluencerStatus("banana").Valid())
}

func TestBriefOpen(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	brief := &Brief{Status: BriefStatusPublished, Deadline: &future}
	assert.True(t, brief.Open(now))

	brief.Deadline = &past
	assert.False(t, brief.Open(now))

	brief.Deadline = nil
	assert.True(t, brief.Open(now))

	brief.Status = BriefStatusDraft
	assert.False(t, brief.Open(now))
}

func TestInviteUsable(t *testing.T) {
	now := time.Now()
	invite := &InfluencerInvite{
		Status:    InviteStatusPending,
		ExpiresAt: now.Add(time.Hour),
	}
	assert.True(t, invite.Usable(now))

	invite.Status = InviteStatusAccepted
	assert.False(t, invite.Usable(now))

	invite.Status = InviteStatusPending
	invite.ExpiresAt = now.Add(-time.Hour)
	assert.False(t, invite.Usable(now))
}
