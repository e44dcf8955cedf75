package repository

import (
	"github.com/prajwalb/sameeksha/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(response *model.Response) error
	Update(response *model.Response) error
	FindByID(id uint) (*model.Response, error)
	FindByIDAndUser(id, userID uint) (*model.Response, error)
	// FindDraftsByUser returns every draft owned by the user, most recently
	// saved first. Under normal operation there is at most one.
	FindDraftsByUser(userID uint) ([]model.Response, error)
	FindSubmittedByUser(userID uint) ([]model.Response, error)
	FindAllSubmitted() ([]model.Response, error)
	DeleteByID(id uint) (int64, error)
	DeleteByIDAndUser(id, userID uint) (int64, error)
	DeleteByIDs(ids []uint) (int64, error)
	DraftUserIDs() ([]uint, error)
	CountDrafts() (int64, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *model.Response) error {
	return r.db.Create(response).Error
}

func (r *responseRepository) Update(response *model.Response) error {
	return r.db.Save(response).Error
}

func (r *responseRepository) FindByID(id uint) (*model.Response, error) {
	var response model.Response
	if err := r.db.Preload("User").First(&response, id).Error; err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindByIDAndUser(id, userID uint) (*model.Response, error) {
	var response model.Response
	err := r.db.Preload("User").
		Where("id = ? AND user_id = ?", id, userID).
		First(&response).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindDraftsByUser(userID uint) ([]model.Response, error) {
	var drafts []model.Response
	err := r.db.
		Where("user_id = ? AND status = ?", userID, model.StatusDraft).
		Order("last_saved_at DESC, created_at DESC").
		Find(&drafts).Error
	return drafts, err
}

func (r *responseRepository) FindSubmittedByUser(userID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Preload("User").
		Where("user_id = ? AND status = ?", userID, model.StatusSubmitted).
		Order("submitted_at DESC").
		Find(&responses).Error
	return responses, err
}

func (r *responseRepository) FindAllSubmitted() ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Preload("User").
		Where("status = ?", model.StatusSubmitted).
		Order("submitted_at DESC").
		Find(&responses).Error
	return responses, err
}

func (r *responseRepository) DeleteByID(id uint) (int64, error) {
	result := r.db.Delete(&model.Response{}, id)
	return result.RowsAffected, result.Error
}

func (r *responseRepository) DeleteByIDAndUser(id, userID uint) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&model.Response{}, id)
	return result.RowsAffected, result.Error
}

func (r *responseRepository) DeleteByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Delete(&model.Response{}, ids)
	return result.RowsAffected, result.Error
}

func (r *responseRepository) DraftUserIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Response{}).
		Where("status = ?", model.StatusDraft).
		Distinct("user_id").
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *responseRepository) CountDrafts() (int64, error) {
	var count int64
	err := r.db.Model(&model.Response{}).
		Where("status = ?", model.StatusDraft).
		Count(&count).Error
	return count, err
}
