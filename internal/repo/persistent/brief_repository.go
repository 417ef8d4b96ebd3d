package persistent

import (
	"errors"

	"bountyboard/internal/entity"
	"bountyboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type briefRepository struct {
	db *gorm.DB
}

func NewBriefRepository(db *gorm.DB) *briefRepository {
	return &briefRepository{db: db}
}

func (r *briefRepository) Create(brief *entity.Brief) error {
	briefModel := ToBriefModel(brief)
	if briefModel.ID == "" {
		briefModel.ID = uuid.New().String()
	}
	if err := r.db.Create(briefModel).Error; err != nil {
		return err
	}
	*brief = *ToBriefEntity(briefModel)
	return nil
}

func (r *briefRepository) GetByID(id string) (*entity.Brief, error) {
	var briefModel model.BriefModel
	if err := r.db.Where("id = ?", id).First(&briefModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToBriefEntity(&briefModel), nil
}

func (r *briefRepository) GetBySlug(slug string) (*entity.Brief, error) {
	var briefModel model.BriefModel
	if err := r.db.Where("slug = ?", slug).First(&briefModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToBriefEntity(&briefModel), nil
}

func (r *briefRepository) List(status entity.BriefStatus, limit, offset int) ([]*entity.Brief, error) {
	var briefModels []model.BriefModel
	query := r.db.Where("status = ?", string(status)).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&briefModels).Error; err != nil {
		return nil, err
	}

	briefs := make([]*entity.Brief, len(briefModels))
	for i := range briefModels {
		briefs[i] = ToBriefEntity(&briefModels[i])
	}
	return briefs, nil
}

func (r *briefRepository) ListAll(limit, offset int) ([]*entity.Brief, error) {
	var briefModels []model.BriefModel
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&briefModels).Error; err != nil {
		return nil, err
	}

	briefs := make([]*entity.Brief, len(briefModels))
	for i := range briefModels {
		briefs[i] = ToBriefEntity(&briefModels[i])
	}
	return briefs, nil
}

func (r *briefRepository) Update(brief *entity.Brief) error {
	briefModel := ToBriefModel(brief)
	return r.db.Save(briefModel).Error
}

func (r *briefRepository) ExistsBySlug(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.BriefModel{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
