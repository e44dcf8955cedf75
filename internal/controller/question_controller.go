package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prajwalb/sameeksha/internal/dto"
	"github.com/prajwalb/sameeksha/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// List godoc
// @Summary List the questionnaire definition grouped by section
// @Tags Questions
// @Produce json
// @Success 200 {array} dto.SectionDTO
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	sections, err := c.questionService.ListQuestions()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sections)
}

// GetByID godoc
// @Summary Fetch one question by id
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (c *QuestionController) GetByID(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	question, err := c.questionService.GetQuestion(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// GetByIndex godoc
// @Summary Fetch one question by its position in a section
// @Tags Questions
// @Produce json
// @Param index path int true "Order within section"
// @Param section query string true "Section name"
// @Success 200 {object} dto.QuestionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/id/{index} [get]
func (c *QuestionController) GetByIndex(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid index format"})
		return
	}
	section := ctx.Query("section")
	if section == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "section query parameter is required"})
		return
	}

	question, err := c.questionService.GetQuestionByIndex(section, index)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// Create godoc
// @Summary (Admin) Create a questionnaire entry
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.QuestionCreateDTO true "Question definition"
// @Success 201 {object} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.CreateQuestion(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// Update godoc
// @Summary (Admin) Update a questionnaire entry
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param question body dto.QuestionCreateDTO true "Question definition"
// @Success 200 {object} dto.QuestionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.UpdateQuestion(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}
