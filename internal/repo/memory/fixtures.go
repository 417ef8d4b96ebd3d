package memory

import (
	"time"

	"bountyboard/internal/entity"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the store with a demo admin, a published brief and one
// in-review submission so the API is explorable out of the box. The demo
// admin logs in with admin@bountyboard.app / admin123.
func Seed(s *Store) error {
	repos := NewRepositories(s)

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Email:     "admin@bountyboard.app",
		Password:  string(hashed),
		OrgName:   "BountyBoard",
		Role:      entity.RoleAdmin,
		Onboarded: true,
		IsActive:  true,
	}
	if err := repos.Users.Create(admin); err != nil {
		return err
	}

	deadline := time.Now().Add(30 * 24 * time.Hour)
	brief := &entity.Brief{
		Slug:    "spring-racing-carnival",
		Title:   "Spring Racing Carnival Highlights",
		OrgName: "Acme Wagering",
		Description: "Short-form vertical video capturing the atmosphere of " +
			"the spring racing carnival.",
		Requirements: []string{
			"Vertical 9:16 format",
			"Include the track atmosphere",
			"No third-party music",
		},
		Deliverable: entity.Deliverable{
			AspectRatio:      "9:16",
			MaxLengthSeconds: 60,
			Format:           "mp4",
		},
		Reward: entity.Reward{
			Type:     entity.RewardTypeCash,
			Amount:   500,
			Currency: "AUD",
		},
		Deadline:                 &deadline,
		Status:                   entity.BriefStatusPublished,
		MaxWinners:               3,
		MaxSubmissionsPerCreator: 2,
		OwnerID:                  admin.ID,
	}
	if err := repos.Briefs.Create(brief); err != nil {
		return err
	}

	sub := &entity.Submission{
		BriefID:           brief.ID,
		CreatorName:       "Demo Creator",
		CreatorEmail:      "creator@example.com",
		CreatorHandle:     "@democreator",
		VideoURL:          "https://cdn.example.com/videos/demo.mp4",
		VideoFileName:     "demo.mp4",
		VideoMimeType:     "video/mp4",
		VideoSizeBytes:    12582912,
		Status:            entity.SubmissionStatusInReview,
		PayoutStatus:      entity.PayoutStatusNotApplicable,
		SubmissionVersion: 1,
	}
	return repos.Submissions.CreateWithCap(sub, brief.MaxSubmissionsPerCreator)
}
