package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prajwalb/sameeksha/internal/dto"
	"github.com/prajwalb/sameeksha/internal/middleware"
	"github.com/prajwalb/sameeksha/internal/service"
)

type ResponseController struct {
	responseService service.ResponseService
}

func NewResponseController(responseService service.ResponseService) *ResponseController {
	return &ResponseController{responseService: responseService}
}

// Submit godoc
// @Summary Submit a completed questionnaire response
// @Description Validates the answers and stores them as a permanent submitted response. The caller's draft, if any, is cleared.
// @Tags Responses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.SaveResponseRequest true "Answers document with optional response correlation id"
// @Success 201 {object} dto.ResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Per-field validation messages"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /responses [post]
func (c *ResponseController) Submit(ctx *gin.Context) {
	var req dto.SaveResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.responseService.SubmitResponse(middleware.UserIDFromContext(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// SaveDraft godoc
// @Summary Create or update the caller's single draft
// @Tags Responses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draft body dto.SaveResponseRequest true "Answers document"
// @Success 200 {object} dto.ResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /responses/draft [post]
func (c *ResponseController) SaveDraft(ctx *gin.Context) {
	var req dto.SaveResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.responseService.SaveDraft(middleware.UserIDFromContext(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetDraft godoc
// @Summary Fetch the caller's draft
// @Tags Responses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResponseDTO
// @Failure 404 {object} dto.ErrorResponse "No draft exists"
// @Router /responses/draft [get]
func (c *ResponseController) GetDraft(ctx *gin.Context) {
	result, err := c.responseService.GetDraft(middleware.UserIDFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListMine godoc
// @Summary List the caller's submitted responses
// @Tags Responses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /responses [get]
func (c *ResponseController) ListMine(ctx *gin.Context) {
	results, err := c.responseService.GetAllResponses(middleware.UserIDFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetByID godoc
// @Summary Fetch a single response
// @Description Admins can read any response; users only their own. Anything else is reported as not found.
// @Tags Responses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Response ID"
// @Success 200 {object} dto.ResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /responses/{id} [get]
func (c *ResponseController) GetByID(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	result, err := c.responseService.GetResponseByID(
		middleware.UserIDFromContext(ctx),
		middleware.RoleFromContext(ctx),
		id,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Delete godoc
// @Summary Delete a response
// @Tags Responses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Response ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /responses/{id} [delete]
func (c *ResponseController) Delete(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	err := c.responseService.DeleteResponse(
		middleware.UserIDFromContext(ctx),
		middleware.RoleFromContext(ctx),
		id,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "response deleted"})
}

// ListAll godoc
// @Summary (Admin) List every submitted response
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ResponseDTO
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/responses [get]
func (c *ResponseController) ListAll(ctx *gin.Context) {
	results, err := c.responseService.GetAllResponsesAdmin()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}
