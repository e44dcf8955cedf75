package repository

import (
	"github.com/prajwalb/sameeksha/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	Update(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindAll() ([]model.Question, error)
	// FindBySectionAndIndex resolves a question by its position within a section.
	FindBySectionAndIndex(section string, index int) (*model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Order("section ASC, order_in_section ASC").
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindBySectionAndIndex(section string, index int) (*model.Question, error) {
	var question model.Question
	err := r.db.
		Where("section = ? AND order_in_section = ?", section, index).
		First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}
