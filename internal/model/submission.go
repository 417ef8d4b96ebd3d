package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionModel struct {
	ID                 string         `gorm:"type:uuid;primary_key"`
	BriefID            string         `gorm:"type:uuid;not null;index"`
	CreatorName        string         `gorm:"type:varchar(255);not null"`
	CreatorEmail       string         `gorm:"type:varchar(255);not null;index"`
	CreatorPhone       string         `gorm:"type:varchar(50)"`
	CreatorHandle      string         `gorm:"type:varchar(100)"`
	BettingAccount     string         `gorm:"type:varchar(100)"`
	VideoURL           string         `gorm:"type:varchar(500);not null"`
	VideoKey           string         `gorm:"type:varchar(500)"`
	VideoFileName      string         `gorm:"type:varchar(255)"`
	VideoMimeType      string         `gorm:"type:varchar(100)"`
	VideoSizeBytes     int64          `gorm:"default:0"`
	Status             string         `gorm:"type:varchar(20);default:'RECEIVED';index"`
	PayoutStatus       string         `gorm:"type:varchar(20);default:'NOT_APPLICABLE';index"`
	ReviewNotes        string         `gorm:"type:text"`
	PayoutNotes        string         `gorm:"type:text"`
	AllowsResubmission bool           `gorm:"default:false"`
	SubmissionVersion  int            `gorm:"default:1"`
	ParentSubmissionID *string        `gorm:"type:uuid;index"`
	HasFeedback        bool           `gorm:"default:false"`
	SelectedAt         *time.Time
	PaidAt             *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (SubmissionModel) TableName() string { return "submissions" }

func (s *SubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
