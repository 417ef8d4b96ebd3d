package persistent

import (
	"bountyboard/internal/repo"

	"gorm.io/gorm"
)

// NewRepositories wires every GORM-backed repository against one shared
// database handle.
func NewRepositories(db *gorm.DB) *repo.Repositories {
	return &repo.Repositories{
		Briefs:      NewBriefRepository(db),
		Submissions: NewSubmissionRepository(db),
		Feedback:    NewFeedbackRepository(db),
		Influencers: NewInfluencerRepository(db),
		Invites:     NewInviteRepository(db),
		Users:       NewUserRepository(db),
	}
}
