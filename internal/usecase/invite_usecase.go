package usecase

import (
	"fmt"
	"time"

	"bountyboard/internal/entity"
	"bountyboard/internal/repo"
	"bountyboard/pkg/logger"
	"bountyboard/pkg/queue"
)

const defaultInviteTTL = 7 * 24 * time.Hour

type CreateInviteInput struct {
	Email     string
	ExpiresIn time.Duration
	SendEmail bool
}

type InviteUseCase interface {
	CreateInvite(invitedBy string, input CreateInviteInput) (*entity.InfluencerInvite, error)
	ListInvites(limit, offset int) ([]*entity.InfluencerInvite, error)
}

type inviteUseCase struct {
	inviteRepo  repo.InviteRepository
	queueClient *queue.Client
	logger      *logger.Logger
	now         func() time.Time
}

func NewInviteUseCase(inviteRepo repo.InviteRepository, queueClient *queue.Client, logger *logger.Logger) InviteUseCase {
	return &inviteUseCase{
		inviteRepo:  inviteRepo,
		queueClient: queueClient,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *inviteUseCase) CreateInvite(invitedBy string, input CreateInviteInput) (*entity.InfluencerInvite, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("email is required")
	}

	code, err := GenerateInviteCode(uc.inviteRepo)
	if err != nil {
		uc.logger.Error("Failed to generate invite code: %v", err)
		return nil, fmt.Errorf("failed to generate invite code: %w", err)
	}

	ttl := input.ExpiresIn
	if ttl <= 0 {
		ttl = defaultInviteTTL
	}

	invite := &entity.InfluencerInvite{
		Email:      input.Email,
		InviteCode: code,
		InvitedBy:  invitedBy,
		ExpiresAt:  uc.now().Add(ttl),
		Status:     entity.InviteStatusPending,
	}
	if err := uc.inviteRepo.Create(invite); err != nil {
		uc.logger.Error("Failed to create invite for %s: %v", input.Email, err)
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	if input.SendEmail && uc.queueClient != nil {
		go uc.publishInviteEmail(invite)
	}

	return invite, nil
}

func (uc *inviteUseCase) ListInvites(limit, offset int) ([]*entity.InfluencerInvite, error) {
	return uc.inviteRepo.List(limit, offset)
}

func (uc *inviteUseCase) publishInviteEmail(invite *entity.InfluencerInvite) {
	task := queue.InviteEmailTask{
		Email:      invite.Email,
		InviteCode: invite.InviteCode,
		InvitedBy:  invite.InvitedBy,
		ExpiresAt:  invite.ExpiresAt.Format(time.RFC3339),
	}
	if err := uc.queueClient.PublishInviteEmailTask(task); err != nil {
		uc.logger.Error("Failed to publish invite email task for %s: %v", invite.Email, err)
	}
}
