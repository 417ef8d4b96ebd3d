package main

import (
	"errors"
	"fmt"
	"time"

	"bountyboard/internal/entity"
	"bountyboard/internal/repo"
	"bountyboard/internal/repo/persistent"
	"bountyboard/pkg/config"
	"bountyboard/pkg/database"
	"bountyboard/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the configured Postgres database with an admin account and a sample
// published brief. Safe to run repeatedly; existing records are kept.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	if cfg.DemoMode() {
		log.Error("No database configured; demo mode seeds itself at startup")
		return
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	repos := persistent.NewRepositories(db)
	if err := seed(repos, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seed(repos *repo.Repositories, log *logger.Logger) error {
	admin, err := repos.Users.GetByEmail("admin@bountyboard.app")
	if errors.Is(err, entity.ErrNotFound) {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin = &entity.User{
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
		log.Info("Created admin account admin@bountyboard.app")
	} else if err != nil {
		return err
	}

	if _, err := repos.Briefs.GetBySlug("spring-racing-carnival"); err == nil {
		log.Info("Sample brief already present, nothing to do")
		return nil
	} else if !errors.Is(err, entity.ErrNotFound) {
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
	log.Info("Created sample brief %s", brief.Slug)
	return nil
}
