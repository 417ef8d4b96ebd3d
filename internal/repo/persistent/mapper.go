package persistent

import (
	"encoding/json"

	"bountyboard/internal/entity"
	"bountyboard/internal/model"
)

func ToBriefEntity(m *model.BriefModel) *entity.Brief {
	if m == nil {
		return nil
	}

	var requirements []string
	if m.Requirements != "" {
		_ = json.Unmarshal([]byte(m.Requirements), &requirements)
	}

	return &entity.Brief{
		ID:           m.ID,
		Slug:         m.Slug,
		Title:        m.Title,
		OrgName:      m.OrgName,
		Description:  m.Description,
		Requirements: requirements,
		Deliverable: entity.Deliverable{
			AspectRatio:      m.AspectRatio,
			MaxLengthSeconds: m.MaxLengthSeconds,
			Format:           m.Format,
		},
		Reward: entity.Reward{
			Type:        entity.RewardType(m.RewardType),
			Amount:      m.RewardAmount,
			Currency:    m.RewardCurrency,
			Description: m.RewardDescription,
		},
		Deadline:                 m.Deadline,
		Status:                   entity.BriefStatus(m.Status),
		MaxWinners:               m.MaxWinners,
		MaxSubmissionsPerCreator: m.MaxSubmissionsPerCreator,
		OwnerID:                  m.OwnerID,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}

func ToBriefModel(e *entity.Brief) *model.BriefModel {
	if e == nil {
		return nil
	}

	requirements := "[]"
	if e.Requirements != nil {
		if data, err := json.Marshal(e.Requirements); err == nil {
			requirements = string(data)
		}
	}

	return &model.BriefModel{
		ID:                       e.ID,
		Slug:                     e.Slug,
		Title:                    e.Title,
		OrgName:                  e.OrgName,
		Description:              e.Description,
		Requirements:             requirements,
		AspectRatio:              e.Deliverable.AspectRatio,
		MaxLengthSeconds:         e.Deliverable.MaxLengthSeconds,
		Format:                   e.Deliverable.Format,
		RewardType:               string(e.Reward.Type),
		RewardAmount:             e.Reward.Amount,
		RewardCurrency:           e.Reward.Currency,
		RewardDescription:        e.Reward.Description,
		Deadline:                 e.Deadline,
		Status:                   string(e.Status),
		MaxWinners:               e.MaxWinners,
		MaxSubmissionsPerCreator: e.MaxSubmissionsPerCreator,
		OwnerID:                  e.OwnerID,
		CreatedAt:                e.CreatedAt,
		UpdatedAt:                e.UpdatedAt,
	}
}

func ToSubmissionEntity(m *model.SubmissionModel) *entity.Submission {
	if m == nil {
		return nil
	}

	return &entity.Submission{
		ID:                 m.ID,
		BriefID:            m.BriefID,
		CreatorName:        m.CreatorName,
		CreatorEmail:       m.CreatorEmail,
		CreatorPhone:       m.CreatorPhone,
		CreatorHandle:      m.CreatorHandle,
		BettingAccount:     m.BettingAccount,
		VideoURL:           m.VideoURL,
		VideoKey:           m.VideoKey,
		VideoFileName:      m.VideoFileName,
		VideoMimeType:      m.VideoMimeType,
		VideoSizeBytes:     m.VideoSizeBytes,
		Status:             entity.SubmissionStatus(m.Status),
		PayoutStatus:       entity.PayoutStatus(m.PayoutStatus),
		ReviewNotes:        m.ReviewNotes,
		PayoutNotes:        m.PayoutNotes,
		AllowsResubmission: m.AllowsResubmission,
		SubmissionVersion:  m.SubmissionVersion,
		ParentSubmissionID: m.ParentSubmissionID,
		HasFeedback:        m.HasFeedback,
		SelectedAt:         m.SelectedAt,
		PaidAt:             m.PaidAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func ToSubmissionModel(e *entity.Submission) *model.SubmissionModel {
	if e == nil {
		return nil
	}

	return &model.SubmissionModel{
		ID:                 e.ID,
		BriefID:            e.BriefID,
		CreatorName:        e.CreatorName,
		CreatorEmail:       e.CreatorEmail,
		CreatorPhone:       e.CreatorPhone,
		CreatorHandle:      e.CreatorHandle,
		BettingAccount:     e.BettingAccount,
		VideoURL:           e.VideoURL,
		VideoKey:           e.VideoKey,
		VideoFileName:      e.VideoFileName,
		VideoMimeType:      e.VideoMimeType,
		VideoSizeBytes:     e.VideoSizeBytes,
		Status:             string(e.Status),
		PayoutStatus:       string(e.PayoutStatus),
		ReviewNotes:        e.ReviewNotes,
		PayoutNotes:        e.PayoutNotes,
		AllowsResubmission: e.AllowsResubmission,
		SubmissionVersion:  e.SubmissionVersion,
		ParentSubmissionID: e.ParentSubmissionID,
		HasFeedback:        e.HasFeedback,
		SelectedAt:         e.SelectedAt,
		PaidAt:             e.PaidAt,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func ToFeedbackEntity(m *model.FeedbackModel) *entity.Feedback {
	if m == nil {
		return nil
	}

	return &entity.Feedback{
		ID:             m.ID,
		SubmissionID:   m.SubmissionID,
		AuthorID:       m.AuthorID,
		AuthorName:     m.AuthorName,
		Comment:        m.Comment,
		RequiresAction: m.RequiresAction,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToFeedbackModel(e *entity.Feedback) *model.FeedbackModel {
	if e == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:             e.ID,
		SubmissionID:   e.SubmissionID,
		AuthorID:       e.AuthorID,
		AuthorName:     e.AuthorName,
		Comment:        e.Comment,
		RequiresAction: e.RequiresAction,
		IsRead:         e.IsRead,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToInfluencerEntity(m *model.InfluencerModel) *entity.Influencer {
	if m == nil {
		return nil
	}

	return &entity.Influencer{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		InstagramHandle: m.InstagramHandle,
		TikTokHandle:    m.TikTokHandle,
		YouTubeChannel:  m.YouTubeChannel,
		BankAccountName: m.BankAccountName,
		BankAccountNo:   m.BankAccountNo,
		TaxID:           m.TaxID,
		Status:          entity.InfluencerStatus(m.Status),
		IDVerified:      m.IDVerified,
		BankVerified:    m.BankVerified,
		Notes:           m.Notes,
		InviteCodeUsed:  m.InviteCodeUsed,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToInfluencerModel(e *entity.Influencer) *model.InfluencerModel {
	if e == nil {
		return nil
	}

	return &model.InfluencerModel{
		ID:              e.ID,
		Name:            e.Name,
		Email:           e.Email,
		Phone:           e.Phone,
		InstagramHandle: e.InstagramHandle,
		TikTokHandle:    e.TikTokHandle,
		YouTubeChannel:  e.YouTubeChannel,
		BankAccountName: e.BankAccountName,
		BankAccountNo:   e.BankAccountNo,
		TaxID:           e.TaxID,
		Status:          string(e.Status),
		IDVerified:      e.IDVerified,
		BankVerified:    e.BankVerified,
		Notes:           e.Notes,
		InviteCodeUsed:  e.InviteCodeUsed,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToInviteEntity(m *model.InfluencerInviteModel) *entity.InfluencerInvite {
	if m == nil {
		return nil
	}

	return &entity.InfluencerInvite{
		ID:         m.ID,
		Email:      m.Email,
		InviteCode: m.InviteCode,
		InvitedBy:  m.InvitedBy,
		ExpiresAt:  m.ExpiresAt,
		Status:     entity.InviteStatus(m.Status),
		AcceptedAt: m.AcceptedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToInviteModel(e *entity.InfluencerInvite) *model.InfluencerInviteModel {
	if e == nil {
		return nil
	}

	return &model.InfluencerInviteModel{
		ID:         e.ID,
		Email:      e.Email,
		InviteCode: e.InviteCode,
		InvitedBy:  e.InvitedBy,
		ExpiresAt:  e.ExpiresAt,
		Status:     string(e.Status),
		AcceptedAt: e.AcceptedAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:         m.ID,
		Email:      m.Email,
		Password:   m.Password,
		OrgName:    m.OrgName,
		OrgWebsite: m.OrgWebsite,
		Role:       entity.UserRole(m.Role),
		Onboarded:  m.Onboarded,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:         e.ID,
		Email:      e.Email,
		Password:   e.Password,
		OrgName:    e.OrgName,
		OrgWebsite: e.OrgWebsite,
		Role:       string(e.Role),
		Onboarded:  e.Onboarded,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
