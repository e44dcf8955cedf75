package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// OptionList carries the selectable options of a question with labels in both
// survey languages. Stored as jsonb.
type OptionList []Option

type Option struct {
	Value   string `json:"value"`
	LabelEn string `json:"label_en"`
	LabelKn string `json:"label_kn,omitempty"`
}

func (o OptionList) Value() (driver.Value, error) {
	if o == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(o)
}

func (o *OptionList) Scan(value any) error {
	if value == nil {
		*o = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for OptionList", value)
	}
	return json.Unmarshal(raw, o)
}

// Question is one entry of the questionnaire definition.
type Question struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Section        string         `json:"section" gorm:"not null;index"`
	OrderInSection int            `json:"order_in_section" gorm:"not null"`
	FieldKey       string         `json:"field_key" gorm:"not null"` // key used inside the answers document
	TextEn         string         `json:"text_en" gorm:"type:text;not null"`
	TextKn         string         `json:"text_kn,omitempty" gorm:"type:text"` // Kannada wording
	Type           string         `json:"type" gorm:"not null"`               // "text", "number", "select", "multiselect", "phone", "email"
	Options        OptionList     `json:"options,omitempty" gorm:"type:jsonb"`
	Required       bool           `json:"required"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
