package dto

import (
	"time"

	"github.com/prajwalb/sameeksha/internal/model"
)

type QuestionCreateDTO struct {
	Section        string           `json:"section" binding:"required"`
	OrderInSection int              `json:"order_in_section" binding:"required,min=1"`
	FieldKey       string           `json:"field_key" binding:"required"`
	TextEn         string           `json:"text_en" binding:"required"`
	TextKn         string           `json:"text_kn"`
	Type           string           `json:"type" binding:"required,oneof=text number select multiselect phone email"`
	Options        model.OptionList `json:"options"`
	Required       bool             `json:"required"`
}

type QuestionDTO struct {
	ID             uint             `json:"id"`
	Section        string           `json:"section"`
	OrderInSection int              `json:"order_in_section"`
	FieldKey       string           `json:"field_key"`
	TextEn         string           `json:"text_en"`
	TextKn         string           `json:"text_kn,omitempty"`
	Type           string           `json:"type"`
	Options        model.OptionList `json:"options,omitempty"`
	Required       bool             `json:"required"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// SectionDTO groups questionnaire entries for one named section, ordered.
type SectionDTO struct {
	Section   string        `json:"section"`
	Questions []QuestionDTO `json:"questions"`
}
