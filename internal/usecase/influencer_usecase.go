package usecase

import (
	"errors"
	"fmt"
	"time"

	"bountyboard/internal/entity"
	"bountyboard/internal/repo"
	"bountyboard/pkg/logger"
)

type ApplyInfluencerInput struct {
	Name            string
	Email           string
	Phone           string
	InstagramHandle string
	TikTokHandle    string
	YouTubeChannel  string
	InviteCode      string
}

type UpdateInfluencerInput struct {
	Status       *entity.InfluencerStatus
	IDVerified   *bool
	BankVerified *bool
	Notes        *string
}

type InfluencerUseCase interface {
	Apply(input ApplyInfluencerInput) (*entity.Influencer, error)
	GetInfluencer(id string) (*entity.Influencer, error)
	ListInfluencers(status entity.InfluencerStatus, limit, offset int) ([]*entity.Influencer, error)
	UpdateInfluencer(id string, input UpdateInfluencerInput) (*entity.Influencer, error)
}

type influencerUseCase struct {
	influencerRepo repo.InfluencerRepository
	inviteRepo     repo.InviteRepository
	logger         *logger.Logger
	now            func() time.Time
}

func NewInfluencerUseCase(
	influencerRepo repo.InfluencerRepository,
	inviteRepo repo.InviteRepository,
	logger *logger.Logger,
) InfluencerUseCase {
	return &influencerUseCase{
		influencerRepo: influencerRepo,
		inviteRepo:     inviteRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// Apply registers a new influencer application. An invite code is optional;
// when present it must be pending and unexpired, and is consumed exactly once.
func (uc *influencerUseCase) Apply(input ApplyInfluencerInput) (*entity.Influencer, error) {
	if input.Name == "" || input.Email == "" {
		return nil, fmt.Errorf("name and email are required")
	}

	if existing, err := uc.influencerRepo.GetByEmail(input.Email); err == nil && existing != nil {
		return nil, entity.ErrEmailTaken
	} else if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	var invite *entity.InfluencerInvite
	if input.InviteCode != "" {
		var err error
		invite, err = uc.inviteRepo.GetByCode(input.InviteCode)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return nil, entity.ErrInviteNotUsable
			}
			return nil, err
		}
		if !invite.Usable(uc.now()) {
			// Mark lapsed invites so the admin list reflects reality.
			if invite.Status == entity.InviteStatusPending {
				invite.Status = entity.InviteStatusExpired
				if err := uc.inviteRepo.Update(invite); err != nil {
					uc.logger.Warn("Failed to expire invite %s: %v", invite.ID, err)
				}
				return nil, entity.ErrInviteExpired
			}
			return nil, entity.ErrInviteNotUsable
		}
	}

	inf := &entity.Influencer{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		InstagramHandle: input.InstagramHandle,
		TikTokHandle:    input.TikTokHandle,
		YouTubeChannel:  input.YouTubeChannel,
		Status:          entity.InfluencerStatusPending,
		InviteCodeUsed:  input.InviteCode,
	}
	if err := uc.influencerRepo.Create(inf); err != nil {
		uc.logger.Error("Failed to create influencer %s: %v", input.Email, err)
		return nil, fmt.Errorf("failed to create influencer: %w", err)
	}

	if invite != nil {
		now := uc.now()
		invite.Status = entity.InviteStatusAccepted
		invite.AcceptedAt = &now
		if err := uc.inviteRepo.Update(invite); err != nil {
			uc.logger.Error("Failed to mark invite %s accepted: %v", invite.ID, err)
		}
	}

	uc.logger.Info("Influencer application received from %s", inf.Email)
	return inf, nil
}

func (uc *influencerUseCase) GetInfluencer(id string) (*entity.Influencer, error) {
	return uc.influencerRepo.GetByID(id)
}

func (uc *influencerUseCase) ListInfluencers(status entity.InfluencerStatus, limit, offset int) ([]*entity.Influencer, error) {
	return uc.influencerRepo.List(status, limit, offset)
}

func (uc *influencerUseCase) UpdateInfluencer(id string, input UpdateInfluencerInput) (*entity.Influencer, error) {
	inf, err := uc.influencerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown influencer status %s", entity.ErrInvalidTransition, *input.Status)
		}
		if !inf.Status.CanTransitionTo(*input.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", entity.ErrInvalidTransition, inf.Status, *input.Status)
		}
		inf.Status = *input.Status
	}
	if input.IDVerified != nil {
		inf.IDVerified = *input.IDVerified
	}
	if input.BankVerified != nil {
		inf.BankVerified = *input.BankVerified
	}
	if input.Notes != nil {
		inf.Notes = *input.Notes
	}

	if err := uc.influencerRepo.Update(inf); err != nil {
		uc.logger.Error("Failed to update influencer %s: %v", id, err)
		return nil, fmt.Errorf("failed to update influencer: %w", err)
	}
	return inf, nil
}
