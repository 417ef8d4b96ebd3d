package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InfluencerModel struct {
	ID              string         `gorm:"type:uuid;primary_key"`
	Name            string         `gorm:"type:varchar(255);not null"`
	Email           string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone           string         `gorm:"type:varchar(50)"`
	InstagramHandle string         `gorm:"type:varchar(100)"`
	TikTokHandle    string         `gorm:"type:varchar(100)"`
	YouTubeChannel  string         `gorm:"type:varchar(255)"`
	BankAccountName string         `gorm:"type:varchar(255)"`
	BankAccountNo   string         `gorm:"type:varchar(100)"`
	TaxID           string         `gorm:"type:varchar(100)"`
	Status          string         `gorm:"type:varchar(20);default:'pending';index"`
	IDVerified      bool           `gorm:"default:false"`
	BankVerified    bool           `gorm:"default:false"`
	Notes           string         `gorm:"type:text"`
	InviteCodeUsed  string         `gorm:"type:varchar(20)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (InfluencerModel) TableName() string { return "influencers" }

func (i *InfluencerModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
