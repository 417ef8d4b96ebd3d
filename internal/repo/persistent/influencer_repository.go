package persistent

import (
	"errors"

	"bountyboard/internal/entity"
	"bountyboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type influencerRepository struct {
	db *gorm.DB
}

func NewInfluencerRepository(db *gorm.DB) *influencerRepository {
	return &influencerRepository{db: db}
}

func (r *influencerRepository) Create(inf *entity.Influencer) error {
	infModel := ToInfluencerModel(inf)
	if infModel.ID == "" {
		infModel.ID = uuid.New().String()
	}
	if err := r.db.Create(infModel).Error; err != nil {
		return err
	}
	*inf = *ToInfluencerEntity(infModel)
	return nil
}

func (r *influencerRepository) GetByID(id string) (*entity.Influencer, error) {
	var infModel model.InfluencerModel
	if err := r.db.Where("id = ?", id).First(&infModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToInfluencerEntity(&infModel), nil
}

func (r *influencerRepository) GetByEmail(email string) (*entity.Influencer, error) {
	var infModel model.InfluencerModel
	if err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&infModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToInfluencerEntity(&infModel), nil
}

func (r *influencerRepository) List(status entity.InfluencerStatus, limit, offset int) ([]*entity.Influencer, error) {
	var infModels []model.InfluencerModel
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&infModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.Influencer, len(infModels))
	for i := range infModels {
		items[i] = ToInfluencerEntity(&infModels[i])
	}
	return items, nil
}

func (r *influencerRepository) Update(inf *entity.Influencer) error {
	infModel := ToInfluencerModel(inf)
	return r.db.Save(infModel).Error
}
