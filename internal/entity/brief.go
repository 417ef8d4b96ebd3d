package entity

import "time"

type BriefStatus string

const (
	BriefStatusDraft     BriefStatus = "DRAFT"
	BriefStatusPublished BriefStatus = "PUBLISHED"
	BriefStatusArchived  BriefStatus = "ARCHIVED"
)

type RewardType string

const (
	RewardTypeCash      RewardType = "CASH"
	RewardTypeBonusBets RewardType = "BONUS_BETS"
	RewardTypeOther     RewardType = "OTHER"
)

// ValidRewardType reports whether the value is one of the known reward types.
func (r RewardType) ValidRewardType() bool {
	switch r {
	case RewardTypeCash, RewardTypeBonusBets, RewardTypeOther:
		return true
	}
	return false
}

type Deliverable struct {
	AspectRatio      string `json:"aspectRatio"`
	MaxLengthSeconds int    `json:"maxLengthSeconds"`
	Format           string `json:"format"`
}

type Reward struct {
	Type        RewardType `json:"type"`
	Amount      int        `json:"amount"`
	Currency    string     `json:"currency"`
	Description string     `json:"description,omitempty"`
}

type Brief struct {
	ID                       string      `json:"id"`
	Slug                     string      `json:"slug"`
	Title                    string      `json:"title"`
	OrgName                  string      `json:"orgName"`
	Description              string      `json:"description,omitempty"`
	Requirements             []string    `json:"requirements"`
	Deliverable              Deliverable `json:"deliverable"`
	Reward                   Reward      `json:"reward"`
	Deadline                 *time.Time  `json:"deadline,omitempty"`
	Status                   BriefStatus `json:"status"`
	MaxWinners               int         `json:"maxWinners"`
	MaxSubmissionsPerCreator int         `json:"maxSubmissionsPerCreator"`
	OwnerID                  string      `json:"ownerId"`
	CreatedAt                time.Time   `json:"createdAt"`
	UpdatedAt                time.Time   `json:"updatedAt"`
}

// Open reports whether the brief currently accepts submissions.
func (b *Brief) Open(now time.Time) bool {
	if b.Status != BriefStatusPublished {
		return false
	}
	if b.Deadline != nil && now.After(*b.Deadline) {
		return false
	}
	return true
}
