package entity

import "time"

type InfluencerStatus string

const (
	InfluencerStatusPending   InfluencerStatus = "pending"
	InfluencerStatusApproved  InfluencerStatus = "approved"
	InfluencerStatusRejected  InfluencerStatus = "rejected"
	InfluencerStatusSuspended InfluencerStatus = "suspended"
)

type Influencer struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone,omitempty"`
	InstagramHandle string           `json:"instagramHandle,omitempty"`
	TikTokHandle    string           `json:"tiktokHandle,omitempty"`
	YouTubeChannel  string           `json:"youtubeChannel,omitempty"`
	BankAccountName string           `json:"bankAccountName,omitempty"`
	BankAccountNo   string           `json:"bankAccountNo,omitempty"`
	TaxID           string           `json:"taxId,omitempty"`
	Status          InfluencerStatus `json:"status"`
	IDVerified      bool             `json:"idVerified"`
	BankVerified    bool             `json:"bankVerified"`
	Notes           string           `json:"notes,omitempty"`
	InviteCodeUsed  string           `json:"inviteCodeUsed,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
