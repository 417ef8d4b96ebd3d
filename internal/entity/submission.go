package entity

import "time"

type SubmissionStatus string

const (
	SubmissionStatusReceived    SubmissionStatus = "RECEIVED"
	SubmissionStatusInReview    SubmissionStatus = "IN_REVIEW"
	SubmissionStatusSelected    SubmissionStatus = "SELECTED"
	SubmissionStatusNotSelected SubmissionStatus = "NOT_SELECTED"
)

type PayoutStatus string

const (
	PayoutStatusNotApplicable PayoutStatus = "NOT_APPLICABLE"
	PayoutStatusPending       PayoutStatus = "PENDING"
	PayoutStatusPaid          PayoutStatus = "PAID"
)

type Submission struct {
	ID                 string           `json:"id"`
	BriefID            string           `json:"briefId"`
	CreatorName        string           `json:"creatorName"`
	CreatorEmail       string           `json:"creatorEmail"`
	CreatorPhone       string           `json:"creatorPhone,omitempty"`
	CreatorHandle      string           `json:"creatorHandle"`
	BettingAccount     string           `json:"bettingAccount,omitempty"`
	VideoURL           string           `json:"videoUrl"`
	VideoKey           string           `json:"videoKey,omitempty"`
	VideoFileName      string           `json:"videoFileName,omitempty"`
	VideoMimeType      string           `json:"videoMimeType,omitempty"`
	VideoSizeBytes     int64            `json:"videoSizeBytes,omitempty"`
	Status             SubmissionStatus `json:"status"`
	PayoutStatus       PayoutStatus     `json:"payoutStatus"`
	ReviewNotes        string           `json:"reviewNotes,omitempty"`
	PayoutNotes        string           `json:"payoutNotes,omitempty"`
	AllowsResubmission bool             `json:"allowsResubmission"`
	SubmissionVersion  int              `json:"submissionVersion"`
	ParentSubmissionID *string          `json:"parentSubmissionId,omitempty"`
	HasFeedback        bool             `json:"hasFeedback"`
	SelectedAt         *time.Time       `json:"selectedAt,omitempty"`
	PaidAt             *time.Time       `json:"paidAt,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}
