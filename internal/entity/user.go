package entity

import "time"

type UserRole string

const (
	RoleBrand UserRole = "brand"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	OrgName    string    `json:"orgName"`
	OrgWebsite string    `json:"orgWebsite,omitempty"`
	Role       UserRole  `json:"role"`
	Onboarded  bool      `json:"onboarded"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
