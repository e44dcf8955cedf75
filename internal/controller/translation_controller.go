package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prajwalb/sameeksha/internal/dto"
	"github.com/prajwalb/sameeksha/internal/service"
)

type TranslationController struct {
	translationService service.TranslationService
}

func NewTranslationController(translationService service.TranslationService) *TranslationController {
	return &TranslationController{translationService: translationService}
}

// Translate godoc
// @Summary Translate UI strings between English and Kannada
// @Description Best-effort: strings the translate API cannot handle come back unchanged.
// @Tags Translation
// @Accept json
// @Produce json
// @Param request body dto.TranslateRequest true "Strings and target language"
// @Success 200 {object} dto.TranslateResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /translate [post]
func (c *TranslationController) Translate(ctx *gin.Context) {
	var req dto.TranslateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	translations := c.translationService.TranslateBatch(ctx.Request.Context(), req.Text, req.TargetLang)
	ctx.JSON(http.StatusOK, dto.TranslateResponseDTO{
		Translations: translations,
		TargetLang:   req.TargetLang,
	})
}
