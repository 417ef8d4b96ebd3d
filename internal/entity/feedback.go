package entity

import "time"

type Feedback struct {
	ID             string    `json:"id"`
	SubmissionID   string    `json:"submissionId"`
	AuthorID       string    `json:"authorId"`
	AuthorName     string    `json:"authorName"`
	Comment        string    `json:"comment"`
	RequiresAction bool      `json:"requiresAction"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
