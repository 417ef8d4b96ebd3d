package persistent

import (
	"errors"

	"bountyboard/internal/entity"
	"bountyboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type inviteRepository struct {
	db *gorm.DB
}

func NewInviteRepository(db *gorm.DB) *inviteRepository {
	return &inviteRepository{db: db}
}

func (r *inviteRepository) Create(invite *entity.InfluencerInvite) error {
	inviteModel := ToInviteModel(invite)
	if inviteModel.ID == "" {
		inviteModel.ID = uuid.New().String()
	}
	if err := r.db.Create(inviteModel).Error; err != nil {
		return err
	}
	*invite = *ToInviteEntity(inviteModel)
	return nil
}

func (r *inviteRepository) GetByCode(code string) (*entity.InfluencerInvite, error) {
	var inviteModel model.InfluencerInviteModel
	if err := r.db.Where("invite_code = ?", code).First(&inviteModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToInviteEntity(&inviteModel), nil
}

func (r *inviteRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	err := r.db.Model(&model.InfluencerInviteModel{}).Where("invite_code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *inviteRepository) List(limit, offset int) ([]*entity.InfluencerInvite, error) {
	var inviteModels []model.InfluencerInviteModel
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&inviteModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.InfluencerInvite, len(inviteModels))
	for i := range inviteModels {
		items[i] = ToInviteEntity(&inviteModels[i])
	}
	return items, nil
}

func (r *inviteRepository) Update(invite *entity.InfluencerInvite) error {
	inviteModel := ToInviteModel(invite)
	return r.db.Save(inviteModel).Error
}
