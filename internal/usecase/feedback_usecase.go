package usecase

import (
	"fmt"

	"bountyboard/internal/entity"
	"bountyboard/internal/repo"
	"bountyboard/pkg/logger"
)

type CreateFeedbackInput struct {
	Comment        string
	RequiresAction bool
}

type UpdateFeedbackInput struct {
	Comment        *string
	RequiresAction *bool
	IsRead         *bool
}

type FeedbackUseCase interface {
	CreateFeedback(submissionID, authorID, authorName string, input CreateFeedbackInput) (*entity.Feedback, error)
	ListFeedback(submissionID string) ([]*entity.Feedback, error)
	UpdateFeedback(id string, input UpdateFeedbackInput) (*entity.Feedback, error)
	DeleteFeedback(id string) error
}

type feedbackUseCase struct {
	feedbackRepo   repo.FeedbackRepository
	submissionRepo repo.SubmissionRepository
	logger         *logger.Logger
}

func NewFeedbackUseCase(
	feedbackRepo repo.FeedbackRepository,
	submissionRepo repo.SubmissionRepository,
	logger *logger.Logger,
) FeedbackUseCase {
	return &feedbackUseCase{
		feedbackRepo:   feedbackRepo,
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

func (uc *feedbackUseCase) CreateFeedback(submissionID, authorID, authorName string, input CreateFeedbackInput) (*entity.Feedback, error) {
	if input.Comment == "" {
		return nil, fmt.Errorf("comment is required")
	}

	sub, err := uc.submissionRepo.GetByID(submissionID)
	if err != nil {
		return nil, err
	}

	fb := &entity.Feedback{
		SubmissionID:   submissionID,
		AuthorID:       authorID,
		AuthorName:     authorName,
		Comment:        input.Comment,
		RequiresAction: input.RequiresAction,
	}
	if err := uc.feedbackRepo.Create(fb); err != nil {
		uc.logger.Error("Failed to create feedback for submission %s: %v", submissionID, err)
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	// The submission flag is kept in sync on every create, not just some
	// paths.
	if !sub.HasFeedback {
		sub.HasFeedback = true
		if err := uc.submissionRepo.Update(sub); err != nil {
			uc.logger.Error("Failed to flag submission %s as having feedback: %v", submissionID, err)
		}
	}

	return fb, nil
}

func (uc *feedbackUseCase) ListFeedback(submissionID string) ([]*entity.Feedback, error) {
	if _, err := uc.submissionRepo.GetByID(submissionID); err != nil {
		return nil, err
	}
	return uc.feedbackRepo.ListBySubmission(submissionID)
}

func (uc *feedbackUseCase) UpdateFeedback(id string, input UpdateFeedbackInput) (*entity.Feedback, error) {
	fb, err := uc.feedbackRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Comment != nil {
		if *input.Comment == "" {
			return nil, fmt.Errorf("comment cannot be empty")
		}
		fb.Comment = *input.Comment
	}
	if input.RequiresAction != nil {
		fb.RequiresAction = *input.RequiresAction
	}
	if input.IsRead != nil {
		fb.IsRead = *input.IsRead
	}

	if err := uc.feedbackRepo.Update(fb); err != nil {
		uc.logger.Error("Failed to update feedback %s: %v", id, err)
		return nil, fmt.Errorf("failed to update feedback: %w", err)
	}
	return fb, nil
}

func (uc *feedbackUseCase) DeleteFeedback(id string) error {
	if _, err := uc.feedbackRepo.GetByID(id); err != nil {
		return err
	}
	return uc.feedbackRepo.Delete(id)
}
