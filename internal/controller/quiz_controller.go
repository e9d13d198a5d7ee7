package controller

import (
	"errors"

	"quiz_arena_backend/internal/service"
	"quiz_arena_backend/internal/util"
	"quiz_arena_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// swagger:model StartQuizRequest
type StartQuizRequest struct {
	CategoryID uint `form:"category_id" binding:"required"`
	Count      int  `form:"count" binding:"omitempty,min=1,max=50"`
}

// Start godoc
// @Summary Start a quiz
// @Description Samples up to count random questions of the category. Choices carry no correctness flags. No attempt record is created.
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param category_id query int true "category id"
// @Param count query int false "question count (1-50, default 10)"
// @Success 200 {object} util.Response{data=[]service.QuizQuestion}
// @Failure 422 {object} util.Response "unknown category"
// @Router /quiz/start [get]
func (c *QuizController) Start(ctx *gin.Context) {
	var req StartQuizRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	questions, err := c.QuizService.Start(req.CategoryID, req.Count)
	if err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.ValidationError(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, questions)
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	Answers []service.AnswerReq `json:"answers" binding:"required,min=1,dive"`
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Grades the submitted pairs in order and records one attempt with per-answer rows. Not idempotent.
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitQuizRequest true "answers"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 422 {object} util.Response "empty submission or unknown question/choice"
// @Router /quiz/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	result, err := c.QuizService.Submit(claims.UserID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptySubmission),
			errors.Is(err, util.ErrQuestionNotFound),
			errors.Is(err, util.ErrChoiceNotFound),
			errors.Is(err, util.ErrChoiceMismatch):
			monitoring.QuizSubmissions.WithLabelValues("rejected").Inc()
			util.ValidationError(ctx, err.Error())
		default:
			monitoring.QuizSubmissions.WithLabelValues("error").Inc()
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.QuizSubmissions.WithLabelValues("graded").Inc()
	util.Success(ctx, result)
}

// History godoc
// @Summary List the caller's quiz attempts
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /quiz/history [get]
func (c *QuizController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quizzes, err := c.QuizService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, quizzes)
}
