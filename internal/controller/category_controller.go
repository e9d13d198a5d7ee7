package controller

import (
	"errors"

	"quiz_arena_backend/internal/service"
	"quiz_arena_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

// swagger:model CreateCategoryRequest
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Index godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /categories [get]
func (c *CategoryController) Index(ctx *gin.Context) {
	categories, err := c.CategoryService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// Store godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateCategoryRequest true "category payload"
// @Success 201 {object} util.Response{data=model.Category}
// @Failure 422 {object} util.Response "missing or duplicate name"
// @Router /categories [post]
func (c *CategoryController) Store(ctx *gin.Context) {
	var req CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Create(req.Name, req.Description)
	if err != nil {
		if errors.Is(err, util.ErrCategoryNameTaken) {
			util.ValidationError(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, category)
}

// Show godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "category id"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 404 {object} util.Response
// @Router /categories/{id} [get]
func (c *CategoryController) Show(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	category, err := c.CategoryService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, category)
}

// Update godoc
// @Summary Update a category
// @Description Name uniqueness excludes the category itself
// @Tags categories
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "category id"
// @Param body body service.CategoryReq true "fields to update"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 404 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req service.CategoryReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCategoryNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrCategoryNameTaken):
			util.ValidationError(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, category)
}

// Destroy godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "category id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /categories/{id} [delete]
func (c *CategoryController) Destroy(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.CategoryService.Delete(id); err != nil {
		if errors.Is(err, util.ErrCategoryNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Message(ctx, "Category deleted successfully")
}
