package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BriefModel struct {
	ID                       string         `gorm:"type:uuid;primary_key"`
	Slug                     string         `gorm:"type:varchar(120);not null;uniqueIndex"`
	Title                    string         `gorm:"type:varchar(255);not null"`
	OrgName                  string         `gorm:"type:varchar(255);not null"`
	Description              string         `gorm:"type:text"`
	Requirements             string         `gorm:"type:jsonb;default:'[]'"`
	AspectRatio              string         `gorm:"type:varchar(20)"`
	MaxLengthSeconds         int            `gorm:"default:0"`
	Format                   string         `gorm:"type:varchar(50)"`
	RewardType               string         `gorm:"type:varchar(20);not null"`
	RewardAmount             int            `gorm:"default:0"`
	RewardCurrency           string         `gorm:"type:varchar(10)"`
	RewardDescription        string         `gorm:"type:text"`
	Deadline                 *time.Time     `gorm:"index"`
	Status                   string         `gorm:"type:varchar(20);default:'DRAFT';index"`
	MaxWinners               int            `gorm:"default:1"`
	MaxSubmissionsPerCreator int            `gorm:"default:1"`
	OwnerID                  string         `gorm:"type:uuid;not null;index"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
	DeletedAt                gorm.DeletedAt `gorm:"index"`
}

func (BriefModel) TableName() string { return "briefs" }

func (b *BriefModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
