package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bountyboard/internal/entity"
	"bountyboard/internal/repo"
	"bountyboard/pkg/logger"

	"github.com/gosimple/slug"
	"github.com/redis/go-redis/v9"
)

const briefCacheTTL = 10 * time.Minute

type CreateBriefInput struct {
	Title                    string
	OrgName                  string
	Description              string
	Requirements             []string
	Deliverable              entity.Deliverable
	Reward                   entity.Reward
	Deadline                 *time.Time
	MaxWinners               int
	MaxSubmissionsPerCreator int
}

type UpdateBriefInput struct {
	Title                    *string
	Description              *string
	Requirements             []string
	Deliverable              *entity.Deliverable
	Reward                   *entity.Reward
	Deadline                 *time.Time
	Status                   *entity.BriefStatus
	MaxWinners               *int
	MaxSubmissionsPerCreator *int
}

type BriefUseCase interface {
	CreateBrief(ownerID string, input CreateBriefInput) (*entity.Brief, error)
	GetBrief(id string) (*entity.Brief, error)
	GetBriefBySlug(slug string) (*entity.Brief, error)
	ListPublished(limit, offset int) ([]*entity.Brief, error)
	ListAll(limit, offset int) ([]*entity.Brief, error)
	UpdateBrief(id string, input UpdateBriefInput) (*entity.Brief, error)
}

type briefUseCase struct {
	briefRepo   repo.BriefRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewBriefUseCase(briefRepo repo.BriefRepository, redisClient *redis.Client, logger *logger.Logger) BriefUseCase {
	return &briefUseCase{
		briefRepo:   briefRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *briefUseCase) CreateBrief(ownerID string, input CreateBriefInput) (*entity.Brief, error) {
	if input.Title == "" || input.OrgName == "" {
		return nil, fmt.Errorf("title and orgName are required")
	}
	if !input.Reward.Type.ValidRewardType() {
		return nil, fmt.Errorf("invalid reward type: %s", input.Reward.Type)
	}

	briefSlug, err := uc.uniqueSlug(input.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to generate slug: %w", err)
	}

	maxWinners := input.MaxWinners
	if maxWinners <= 0 {
		maxWinners = 1
	}
	maxPerCreator := input.MaxSubmissionsPerCreator
	if maxPerCreator <= 0 {
		maxPerCreator = 1
	}

	brief := &entity.Brief{
		Slug:                     briefSlug,
		Title:                    input.Title,
		OrgName:                  input.OrgName,
		Description:              input.Description,
		Requirements:             input.Requirements,
		Deliverable:              input.Deliverable,
		Reward:                   input.Reward,
		Deadline:                 input.Deadline,
		Status:                   entity.BriefStatusDraft,
		MaxWinners:               maxWinners,
		MaxSubmissionsPerCreator: maxPerCreator,
		OwnerID:                  ownerID,
	}

	if err := uc.briefRepo.Create(brief); err != nil {
		uc.logger.Error("Failed to create brief: %v", err)
		return nil, fmt.Errorf("failed to create brief: %w", err)
	}

	return brief, nil
}

func (uc *briefUseCase) GetBrief(id string) (*entity.Brief, error) {
	return uc.briefRepo.GetByID(id)
}

func (uc *briefUseCase) GetBriefBySlug(briefSlug string) (*entity.Brief, error) {
	if cached := uc.cachedBrief(briefSlug); cached != nil {
		return cached, nil
	}

	brief, err := uc.briefRepo.GetBySlug(briefSlug)
	if err != nil {
		return nil, err
	}

	uc.cacheBrief(brief)
	return brief, nil
}

func (uc *briefUseCase) ListPublished(limit, offset int) ([]*entity.Brief, error) {
	return uc.briefRepo.List(entity.BriefStatusPublished, limit, offset)
}

func (uc *briefUseCase) ListAll(limit, offset int) ([]*entity.Brief, error) {
	return uc.briefRepo.ListAll(limit, offset)
}

func (uc *briefUseCase) UpdateBrief(id string, input UpdateBriefInput) (*entity.Brief, error) {
	brief, err := uc.briefRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != brief.Status {
		if !input.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %s", entity.ErrInvalidTransition, *input.Status)
		}
		if !brief.Status.CanTransitionTo(*input.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", entity.ErrInvalidTransition, brief.Status, *input.Status)
		}
		brief.Status = *input.Status
	}

	if input.Title != nil {
		brief.Title = *input.Title
	}
	if input.Description != nil {
		brief.Description = *input.Description
	}
	if input.Requirements != nil {
		brief.Requirements = input.Requirements
	}
	if input.Deliverable != nil {
		brief.Deliverable = *input.Deliverable
	}
	if input.Reward != nil {
		if !input.Reward.Type.ValidRewardType() {
			return nil, fmt.Errorf("invalid reward type: %s", input.Reward.Type)
		}
		brief.Reward = *input.Reward
	}
	if input.Deadline != nil {
		brief.Deadline = input.Deadline
	}
	if input.MaxWinners != nil && *input.MaxWinners > 0 {
		brief.MaxWinners = *input.MaxWinners
	}
	if input.MaxSubmissionsPerCreator != nil && *input.MaxSubmissionsPerCreator > 0 {
		brief.MaxSubmissionsPerCreator = *input.MaxSubmissionsPerCreator
	}

	if err := uc.briefRepo.Update(brief); err != nil {
		uc.logger.Error("Failed to update brief %s: %v", id, err)
		return nil, fmt.Errorf("failed to update brief: %w", err)
	}

	uc.invalidateBrief(brief.Slug)
	return brief, nil
}

// uniqueSlug slugifies the title and appends a numeric suffix until the
// slug is free.
func (uc *briefUseCase) uniqueSlug(title string) (string, error) {
	base := slug.Make(title)
	candidate := base
	for i := 2; ; i++ {
		exists, err := uc.briefRepo.ExistsBySlug(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

func (uc *briefUseCase) cachedBrief(briefSlug string) *entity.Brief {
	if uc.redisClient == nil {
		return nil
	}
	data, err := uc.redisClient.Get(context.Background(), briefCacheKey(briefSlug)).Result()
	if err != nil {
		return nil
	}
	var brief entity.Brief
	if err := json.Unmarshal([]byte(data), &brief); err != nil {
		return nil
	}
	return &brief
}

func (uc *briefUseCase) cacheBrief(brief *entity.Brief) {
	if uc.redisClient == nil {
		return
	}
	data, err := json.Marshal(brief)
	if err != nil {
		return
	}
	uc.redisClient.Set(context.Background(), briefCacheKey(brief.Slug), data, briefCacheTTL)
}

func (uc *briefUseCase) invalidateBrief(briefSlug string) {
	if uc.redisClient == nil {
		return
	}
	uc.redisClient.Del(context.Background(), briefCacheKey(briefSlug))
}

func briefCacheKey(briefSlug string) string {
	return fmt.Sprintf("brief:slug:%s", briefSlug)
}
