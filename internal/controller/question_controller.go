package controller

import (
	"errors"

	"quiz_arena_backend/internal/service"
	"quiz_arena_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// Index godoc
// @Summary List the caller's questions
// @Description Returns only questions created by the authenticated creator
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Question}
// @Router /questions [get]
func (c *QuestionController) Index(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	questions, err := c.QuestionService.ListByCreator(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// Store godoc
// @Summary Create a question with its choices
// @Description Requires at least two choices; question and choices persist atomically
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateQuestionReq true "question payload"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 422 {object} util.Response
// @Router /questions [post]
func (c *QuestionController) Store(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateQuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Create(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.ValidationError(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, question)
}

// Show godoc
// @Summary Get one of the caller's questions
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 403 {object} util.Response "question belongs to another creator"
// @Failure 404 {object} util.Response
// @Router /questions/{id} [get]
func (c *QuestionController) Show(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	question, err := c.QuestionService.Get(claims.UserID, id)
	if err != nil {
		writeQuestionError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// Update godoc
// @Summary Update a question
// @Description Content, category and difficulty only; choices are creation-only
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Param body body service.UpdateQuestionReq true "fields to update"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req service.UpdateQuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Update(claims.UserID, id, req)
	if err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.ValidationError(ctx, err.Error())
			return
		}
		writeQuestionError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// Destroy godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [delete]
func (c *QuestionController) Destroy(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.QuestionService.Delete(claims.UserID, id); err != nil {
		writeQuestionError(ctx, err)
		return
	}

	util.Message(ctx, "Question deleted successfully")
}

func writeQuestionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrQuestionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, "Unauthorized to access this question.")
	default:
		util.LogInternalError(ctx, err)
	}
}
