package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/prajwalb/sameeksha/internal/apperror"
	"github.com/prajwalb/sameeksha/internal/dto"
	"github.com/prajwalb/sameeksha/internal/model"
	"github.com/prajwalb/sameeksha/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuestionService serves the bilingual questionnaire definition.
type QuestionService interface {
	ListQuestions() ([]dto.SectionDTO, error)
	GetQuestion(id uint) (*dto.QuestionDTO, error)
	GetQuestionByIndex(section string, index int) (*dto.QuestionDTO, error)
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionDTO, error)
	UpdateQuestion(id uint, req dto.QuestionCreateDTO) (*dto.QuestionDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func (s *questionService) ListQuestions() ([]dto.SectionDTO, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListQuestions: repository error")
		return nil, apperror.Store(err)
	}

	// Questions arrive ordered by (section, order_in_section); group in order.
	var sections []dto.SectionDTO
	for _, question := range questions {
		questionDTO := toQuestionDTO(&question)
		if n := len(sections); n > 0 && sections[n-1].Section == question.Section {
			sections[n-1].Questions = append(sections[n-1].Questions, questionDTO)
			continue
		}
		sections = append(sections, dto.SectionDTO{
			Section:   question.Section,
			Questions: []dto.QuestionDTO{questionDTO},
		})
	}
	return sections, nil
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question not found")
		}
		return nil, apperror.Store(err)
	}
	result := toQuestionDTO(question)
	return &result, nil
}

func (s *questionService) GetQuestionByIndex(section string, index int) (*dto.QuestionDTO, error) {
	question, err := s.questionRepo.FindBySectionAndIndex(section, index)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question not found")
		}
		return nil, apperror.Store(err)
	}
	result := toQuestionDTO(question)
	return &result, nil
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionDTO, error) {
	var question model.Question
	if err := copier.Copy(&question, &req); err != nil {
		return nil, apperror.Store(err)
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Str("section", req.Section).Msg("CreateQuestion: repository error")
		return nil, apperror.Store(err)
	}
	result := toQuestionDTO(&question)
	return &result, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.QuestionCreateDTO) (*dto.QuestionDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("question not found")
		}
		return nil, apperror.Store(err)
	}

	if err := copier.Copy(question, &req); err != nil {
		return nil, apperror.Store(err)
	}
	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("id", id).Msg("UpdateQuestion: repository error")
		return nil, apperror.Store(err)
	}
	result := toQuestionDTO(question)
	return &result, nil
}

func toQuestionDTO(question *model.Question) dto.QuestionDTO {
	var result dto.QuestionDTO
	if err := copier.Copy(&result, question); err != nil {
		log.Error().Err(err).Msg("Failed to copy Question model to DTO")
	}
	return result
}
