package service

import (
	"sort"
	"testing"

	"github.com/prajwalb/sameeksha/internal/apperror"
	"github.com/prajwalb/sameeksha/internal/dto"
	"github.com/prajwalb/sameeksha/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubQuestionRepo struct {
	nextID    uint
	questions []*model.Question
}

func newStubQuestionRepo() *stubQuestionRepo {
	return &stubQuestionRepo{nextID: 1}
}

func (r *stubQuestionRepo) Create(question *model.Question) error {
	question.ID = r.nextID
	r.nextID++
	stored := *question
	r.questions = append(r.questions, &stored)
	return nil
}

func (r *stubQuestionRepo) Update(question *model.Question) error {
	for i, stored := range r.questions {
		if stored.ID == question.ID {
			updated := *question
			r.questions[i] = &updated
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubQuestionRepo) FindByID(id uint) (*model.Question, error) {
	for _, stored := range r.questions {
		if stored.ID == id {
			found := *stored
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubQuestionRepo) FindAll() ([]model.Question, error) {
	results := make([]model.Question, 0, len(r.questions))
	for _, stored := range r.questions {
		results = append(results, *stored)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Section != results[j].Section {
			return results[i].Section < results[j].Section
		}
		return results[i].OrderInSection < results[j].OrderInSection
	})
	return results, nil
}

func (r *stubQuestionRepo) FindBySectionAndIndex(section string, index int) (*model.Question, error) {
	for _, stored := range r.questions {
		if stored.Section == section && stored.OrderInSection == index {
			found := *stored
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func TestListQuestionsGroupsBySection(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo)

	for _, q := range []model.Question{
		{Section: "personal", OrderInSection: 2, FieldKey: "age", TextEn: "Your age?", TextKn: "ನಿಮ್ಮ ವಯಸ್ಸು?", Type: "number"},
		{Section: "personal", OrderInSection: 1, FieldKey: "name", TextEn: "Your name?", Type: "text"},
		{Section: "household", OrderInSection: 1, FieldKey: "members", TextEn: "Household size?", Type: "number"},
	} {
		question := q
		require.NoError(t, repo.Create(&question))
	}

	sections, err := svc.ListQuestions()
	require.NoError(t, err)
	require.Len(t, sections, 2)

	assert.Equal(t, "household", sections[0].Section)
	require.Len(t, sections[1].Questions, 2)
	assert.Equal(t, "name", sections[1].Questions[0].FieldKey)
	assert.Equal(t, "age", sections[1].Questions[1].FieldKey)
	assert.Equal(t, "ನಿಮ್ಮ ವಯಸ್ಸು?", sections[1].Questions[1].TextKn)
}

func TestGetQuestionByIndex(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo)

	question := model.Question{Section: "personal", OrderInSection: 1, FieldKey: "name", TextEn: "Your name?", Type: "text"}
	require.NoError(t, repo.Create(&question))

	got, err := svc.GetQuestionByIndex("personal", 1)
	require.NoError(t, err)
	assert.Equal(t, "name", got.FieldKey)

	_, err = svc.GetQuestionByIndex("personal", 99)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestCreateAndUpdateQuestion(t *testing.T) {
	repo := newStubQuestionRepo()
	svc := NewQuestionService(repo)

	created, err := svc.CreateQuestion(dto.QuestionCreateDTO{
		Section:        "personal",
		OrderInSection: 1,
		FieldKey:       "email",
		TextEn:         "Your email?",
		Type:           "email",
		Required:       true,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	updated, err := svc.UpdateQuestion(created.ID, dto.QuestionCreateDTO{
		Section:        "personal",
		OrderInSection: 1,
		FieldKey:       "email",
		TextEn:         "Your email address?",
		TextKn:         "ನಿಮ್ಮ ಇಮೇಲ್?",
		Type:           "email",
	})
	require.NoError(t, err)
	assert.Equal(t, "Your email address?", updated.TextEn)

	_, err = svc.UpdateQuestion(9999, dto.QuestionCreateDTO{Section: "x", OrderInSection: 1, FieldKey: "y", TextEn: "z", Type: "text"})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
