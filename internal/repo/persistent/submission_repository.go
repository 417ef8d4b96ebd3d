package persistent

import (
	"errors"

	"bountyboard/internal/entity"
	"bountyboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *submissionRepository {
	return &submissionRepository{db: db}
}

// CreateWithCap locks the brief row for the duration of the transaction so
// two concurrent submissions from the same creator cannot both pass the
// count check.
func (r *submissionRepository) CreateWithCap(sub *entity.Submission, maxPerCreator int) error {
	subModel := ToSubmissionModel(sub)
	if subModel.ID == "" {
		subModel.ID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var brief model.BriefModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", sub.BriefID).First(&brief).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrNotFound
			}
			return err
		}

		if maxPerCreator > 0 {
			var count int64
			if err := tx.Model(&model.SubmissionModel{}).
				Where("brief_id = ? AND LOWER(creator_email) = LOWER(?)", sub.BriefID, sub.CreatorEmail).
				Count(&count).Error; err != nil {
				return err
			}
			if count >= int64(maxPerCreator) {
				return entity.ErrSubmissionLimitReached
			}
		}

		if err := tx.Create(subModel).Error; err != nil {
			return err
		}

		*sub = *ToSubmissionEntity(subModel)
		return nil
	})
}

func (r *submissionRepository) GetByID(id string) (*entity.Submission, error) {
	var subModel model.SubmissionModel
	if err := r.db.Where("id = ?", id).First(&subModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToSubmissionEntity(&subModel), nil
}

func (r *submissionRepository) ListByBrief(briefID string, limit, offset int) ([]*entity.Submission, error) {
	var subModels []model.SubmissionModel
	query := r.db.Where("brief_id = ?", briefID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&subModels).Error; err != nil {
		return nil, err
	}

	subs := make([]*entity.Submission, len(subModels))
	for i := range subModels {
		subs[i] = ToSubmissionEntity(&subModels[i])
	}
	return subs, nil
}

func (r *submissionRepository) CountByBriefAndEmail(briefID, email string) (int64, error) {
	var count int64
	err := r.db.Model(&model.SubmissionModel{}).
		Where("brief_id = ? AND LOWER(creator_email) = LOWER(?)", briefID, email).
		Count(&count).Error
	return count, err
}

func (r *submissionRepository) Update(sub *entity.Submission) error {
	subModel := ToSubmissionModel(sub)
	return r.db.Save(subModel).Error
}
