package dto

type TranslateRequest struct {
	Text       []string `json:"text" binding:"required,min=1"`
	TargetLang string   `json:"target_lang" binding:"required,oneof=en kn"`
}

type TranslateResponseDTO struct {
	Translations []string `json:"translations"`
	TargetLang   string   `json:"target_lang"`
}
