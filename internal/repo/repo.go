// Package repo defines the storage ports implemented by repo/persistent
// (Postgres via GORM) and repo/memory (demo-mode fixtures). The
// implementation is chosen once at startup and injected; handlers never
// branch on storage configuration.
package repo

import "bountyboard/internal/entity"

type BriefRepository interface {
	Create(brief *entity.Brief) error
	GetByID(id string) (*entity.Brief, error)
	GetBySlug(slug string) (*entity.Brief, error)
	List(status entity.BriefStatus, limit, offset int) ([]*entity.Brief, error)
	ListAll(limit, offset int) ([]*entity.Brief, error)
	Update(brief *entity.Brief) error
	ExistsBySlug(slug string) (bool, error)
}

type SubmissionRepository interface {
	// CreateWithCap atomically checks the per-creator submission count for
	// the brief and inserts. Returns entity.ErrSubmissionLimitReached when
	// the creator already has maxPerCreator submissions.
	CreateWithCap(sub *entity.Submission, maxPerCreator int) error
	GetByID(id string) (*entity.Submission, error)
	ListByBrief(briefID string, limit, offset int) ([]*entity.Submission, error)
	CountByBriefAndEmail(briefID, email string) (int64, error)
	Update(sub *entity.Submission) error
}

type FeedbackRepository interface {
	Create(fb *entity.Feedback) error
	GetByID(id string) (*entity.Feedback, error)
	ListBySubmission(submissionID string) ([]*entity.Feedback, error)
	Update(fb *entity.Feedback) error
	Delete(id string) error
}

type InfluencerRepository interface {
	Create(inf *entity.Influencer) error
	GetByID(id string) (*entity.Influencer, error)
	GetByEmail(email string) (*entity.Influencer, error)
	List(status entity.InfluencerStatus, limit, offset int) ([]*entity.Influencer, error)
	Update(inf *entity.Influencer) error
}

type InviteRepository interface {
	Create(invite *entity.InfluencerInvite) error
	GetByCode(code string) (*entity.InfluencerInvite, error)
	ExistsByCode(code string) (bool, error)
	List(limit, offset int) ([]*entity.InfluencerInvite, error)
	Update(invite *entity.InfluencerInvite) error
}

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}

// Repositories bundles the full storage surface for injection into the app.
type Repositories struct {
	Briefs      BriefRepository
	Submissions SubmissionRepository
	Feedback    FeedbackRepository
	Influencers InfluencerRepository
	Invites     InviteRepository
	Users       UserRepository
}
