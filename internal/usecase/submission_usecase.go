package usecase

import (
	"fmt"
	"time"

	"bountyboard/internal/entity"
	"bountyboard/internal/repo"
	"bountyboard/pkg/logger"
)

type CreateSubmissionInput struct {
	BriefID        string
	CreatorName    string
	CreatorEmail   string
	CreatorPhone   string
	CreatorHandle  string
	BettingAccount string
	VideoURL       string
	VideoKey       string
	VideoFileName  string
	VideoMimeType  string
	VideoSizeBytes int64
}

type ReviewInput struct {
	Status             entity.SubmissionStatus
	AllowsResubmission *bool
	ReviewNotes        string
}

type PayoutInput struct {
	PayoutStatus entity.PayoutStatus
	Notes        string
}

type SubmissionUseCase interface {
	CreateSubmission(input CreateSubmissionInput) (*entity.Submission, error)
	Resubmit(parentID string, input CreateSubmissionInput) (*entity.Submission, error)
	GetSubmission(id string) (*entity.Submission, error)
	ListByBrief(briefID string, limit, offset int) ([]*entity.Submission, error)
	UpdateStatus(id string, input ReviewInput) (*entity.Submission, error)
	UpdatePayout(id string, input PayoutInput) (*entity.Submission, error)
}

type submissionUseCase struct {
	submissionRepo repo.SubmissionRepository
	briefRepo      repo.BriefRepository
	logger         *logger.Logger
	now            func() time.Time
}

func NewSubmissionUseCase(
	submissionRepo repo.SubmissionRepository,
	briefRepo repo.BriefRepository,
	logger *logger.Logger,
) SubmissionUseCase {
	return &submissionUseCase{
		submissionRepo: submissionRepo,
		briefRepo:      briefRepo,
		logger:         logger,
		now:            time.Now,
	}
}

func (uc *submissionUseCase) CreateSubmission(input CreateSubmissionInput) (*entity.Submission, error) {
	if err := validateSubmissionInput(input); err != nil {
		return nil, err
	}

	brief, err := uc.briefRepo.GetByID(input.BriefID)
	if err != nil {
		return nil, err
	}
	if !brief.Open(uc.now()) {
		return nil, entity.ErrBriefNotOpen
	}

	sub := newSubmission(input)
	if err := uc.submissionRepo.CreateWithCap(sub, brief.MaxSubmissionsPerCreator); err != nil {
		return nil, err
	}

	uc.logger.Info("Submission %s created for brief %s by %s", sub.ID, brief.ID, sub.CreatorEmail)
	return sub, nil
}

// Resubmit creates a new version of a rejected submission. The parent must
// be NOT_SELECTED with resubmission allowed; the child counts against the
// same per-creator cap.
func (uc *submissionUseCase) Resubmit(parentID string, input CreateSubmissionInput) (*entity.Submission, error) {
	parent, err := uc.submissionRepo.GetByID(parentID)
	if err != nil {
		return nil, err
	}
	if parent.Status != entity.SubmissionStatusNotSelected || !parent.AllowsResubmission {
		return nil, entity.ErrResubmissionNotAllowed
	}

	input.BriefID = parent.BriefID
	if input.CreatorName == "" {
		input.CreatorName = parent.CreatorName
	}
	if input.CreatorEmail == "" {
		input.CreatorEmail = parent.CreatorEmail
	}
	if input.CreatorHandle == "" {
		input.CreatorHandle = parent.CreatorHandle
	}
	if err := validateSubmissionInput(input); err != nil {
		return nil, err
	}

	brief, err := uc.briefRepo.GetByID(parent.BriefID)
	if err != nil {
		return nil, err
	}
	if !brief.Open(uc.now()) {
		return nil, entity.ErrBriefNotOpen
	}

	sub := newSubmission(input)
	sub.SubmissionVersion = parent.SubmissionVersion + 1
	sub.ParentSubmissionID = &parent.ID

	if err := uc.submissionRepo.CreateWithCap(sub, brief.MaxSubmissionsPerCreator); err != nil {
		return nil, err
	}

	uc.logger.Info("Submission %s resubmitted as %s (v%d)", parent.ID, sub.ID, sub.SubmissionVersion)
	return sub, nil
}

func (uc *submissionUseCase) GetSubmission(id string) (*entity.Submission, error) {
	return uc.submissionRepo.GetByID(id)
}

func (uc *submissionUseCase) ListByBrief(briefID string, limit, offset int) ([]*entity.Submission, error) {
	if _, err := uc.briefRepo.GetByID(briefID); err != nil {
		return nil, err
	}
	return uc.submissionRepo.ListByBrief(briefID, limit, offset)
}

// UpdateStatus applies a review transition. Selection always cascades the
// payout status to PENDING and stamps selectedAt.
func (uc *submissionUseCase) UpdateStatus(id string, input ReviewInput) (*entity.Submission, error) {
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %s", entity.ErrInvalidTransition, input.Status)
	}

	sub, err := uc.submissionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !sub.Status.CanTransitionTo(input.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", entity.ErrInvalidTransition, sub.Status, input.Status)
	}

	sub.Status = input.Status
	if input.ReviewNotes != "" {
		sub.ReviewNotes = input.ReviewNotes
	}

	switch input.Status {
	case entity.SubmissionStatusSelected:
		now := uc.now()
		sub.SelectedAt = &now
		sub.PayoutStatus = entity.PayoutStatusPending
	case entity.SubmissionStatusNotSelected:
		if input.AllowsResubmission != nil {
			sub.AllowsResubmission = *input.AllowsResubmission
		}
	}

	if err := uc.submissionRepo.Update(sub); err != nil {
		uc.logger.Error("Failed to update submission %s status: %v", id, err)
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}

	uc.logger.Info("Submission %s status -> %s", id, sub.Status)
	return sub, nil
}

// UpdatePayout applies a payout transition. Payouts only move forward and
// only for selected submissions.
func (uc *submissionUseCase) UpdatePayout(id string, input PayoutInput) (*entity.Submission, error) {
	if !input.PayoutStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown payout status %s", entity.ErrInvalidTransition, input.PayoutStatus)
	}

	sub, err := uc.submissionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if sub.Status != entity.SubmissionStatusSelected {
		return nil, entity.ErrPayoutNotSelected
	}
	if !sub.PayoutStatus.CanTransitionTo(input.PayoutStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", entity.ErrInvalidTransition, sub.PayoutStatus, input.PayoutStatus)
	}

	sub.PayoutStatus = input.PayoutStatus
	if input.Notes != "" {
		sub.PayoutNotes = input.Notes
	}
	if input.PayoutStatus == entity.PayoutStatusPaid {
		now := uc.now()
		sub.PaidAt = &now
	}

	if err := uc.submissionRepo.Update(sub); err != nil {
		uc.logger.Error("Failed to update submission %s payout: %v", id, err)
		return nil, fmt.Errorf("failed to update payout status: %w", err)
	}

	uc.logger.Info("Submission %s payout -> %s", id, sub.PayoutStatus)
	return sub, nil
}

func validateSubmissionInput(input CreateSubmissionInput) error {
	switch {
	case input.BriefID == "":
		return fmt.Errorf("briefId is required")
	case input.CreatorEmail == "":
		return fmt.Errorf("creatorEmail is required")
	case input.CreatorName == "":
		return fmt.Errorf("creatorName is required")
	case input.VideoURL == "":
		return fmt.Errorf("videoUrl is required")
	}
	return nil
}

func newSubmission(input CreateSubmissionInput) *entity.Submission {
	return &entity.Submission{
		BriefID:           input.BriefID,
		CreatorName:       input.CreatorName,
		CreatorEmail:      input.CreatorEmail,
		CreatorPhone:      input.CreatorPhone,
		CreatorHandle:     input.CreatorHandle,
		BettingAccount:    input.BettingAccount,
		VideoURL:          input.VideoURL,
		VideoKey:          input.VideoKey,
		VideoFileName:     input.VideoFileName,
		VideoMimeType:     input.VideoMimeType,
		VideoSizeBytes:    input.VideoSizeBytes,
		Status:            entity.SubmissionStatusReceived,
		PayoutStatus:      entity.PayoutStatusNotApplicable,
		SubmissionVersion: 1,
	}
}
