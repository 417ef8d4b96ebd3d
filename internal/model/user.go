package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID         string         `gorm:"type:uuid;primary_key"`
	Email      string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password   string         `gorm:"type:varchar(255);not null"`
	OrgName    string         `gorm:"type:varchar(255)"`
	OrgWebsite string         `gorm:"type:varchar(255)"`
	Role       string         `gorm:"type:varchar(20);default:'brand'"`
	Onboarded  bool           `gorm:"default:false"`
	IsActive   bool           `gorm:"default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
