package entity

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrSubmissionLimitReached = errors.New("submission limit reached")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrBriefNotOpen           = errors.New("brief is not accepting submissions")
	ErrResubmissionNotAllowed = errors.New("resubmission is not allowed for this submission")
	ErrPayoutNotSelected      = errors.New("payout requires a selected submission")
	ErrInviteNotUsable        = errors.New("invite code is not usable")
	ErrInviteExpired          = errors.New("invite code has expired")
	ErrSlugTaken              = errors.New("slug already taken")
	ErrEmailTaken             = errors.New("email already registered")
)
