package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InfluencerInviteModel struct {
	ID         string         `gorm:"type:uuid;primary_key"`
	Email      string         `gorm:"type:varchar(255);not null;index"`
	InviteCode string         `gorm:"type:varchar(20);not null;uniqueIndex"`
	InvitedBy  string         `gorm:"type:uuid;not null"`
	ExpiresAt  time.Time      `gorm:"not null"`
	Status     string         `gorm:"type:varchar(20);default:'pending';index"`
	AcceptedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (InfluencerInviteModel) TableName() string { return "influencer_invites" }

func (i *InfluencerInviteModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
