package entity

import "time"

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusExpired  InviteStatus = "expired"
)

type InfluencerInvite struct {
	ID         string       `json:"id"`
	Email      string       `json:"email"`
	InviteCode string       `json:"inviteCode"`
	InvitedBy  string       `json:"invitedBy"`
	ExpiresAt  time.Time    `json:"expiresAt"`
	Status     InviteStatus `json:"status"`
	AcceptedAt *time.Time   `json:"acceptedAt,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// Usable reports whether the invite can still authorize an application.
func (i *InfluencerInvite) Usable(now time.Time) bool {
	return i.Status == InviteStatusPending && now.Before(i.ExpiresAt)
}
