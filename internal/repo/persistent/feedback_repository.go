package persistent

import (
	"errors"

	"bountyboard/internal/entity"
	"bountyboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *feedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(fb *entity.Feedback) error {
	fbModel := ToFeedbackModel(fb)
	if fbModel.ID == "" {
		fbModel.ID = uuid.New().String()
	}
	if err := r.db.Create(fbModel).Error; err != nil {
		return err
	}
	*fb = *ToFeedbackEntity(fbModel)
	return nil
}

func (r *feedbackRepository) GetByID(id string) (*entity.Feedback, error) {
	var fbModel model.FeedbackModel
	if err := r.db.Where("id = ?", id).First(&fbModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToFeedbackEntity(&fbModel), nil
}

func (r *feedbackRepository) ListBySubmission(submissionID string) ([]*entity.Feedback, error) {
	var fbModels []model.FeedbackModel
	if err := r.db.Where("submission_id = ?", submissionID).
		Order("created_at DESC").Find(&fbModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.Feedback, len(fbModels))
	for i := range fbModels {
		items[i] = ToFeedbackEntity(&fbModels[i])
	}
	return items, nil
}

func (r *feedbackRepository) Update(fb *entity.Feedback) error {
	fbModel := ToFeedbackModel(fb)
	return r.db.Save(fbModel).Error
}

func (r *feedbackRepository) Delete(id string) error {
	return r.db.Delete(&model.FeedbackModel{}, "id = ?", id).Error
}
