package service

import (
	"errors"

	"quiz_arena_backend/internal/model"
	"quiz_arena_backend/internal/util"

	"gorm.io/gorm"
)

type CategoryService struct {
	Categories CategoryRepo
}

func NewCategoryService(categories CategoryRepo) *CategoryService {
	return &CategoryService{Categories: categories}
}

type CategoryReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *CategoryService) List() ([]model.Category, error) {
	return s.Categories.FindAll()
}

func (s *CategoryService) Get(id uint) (*model.Category, error) {
	category, err := s.Categories.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Create(name, description string) (*model.Category, error) {
	taken, err := s.Categories.NameExists(name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrCategoryNameTaken
	}

	category := &model.Category{
		Name:        name,
		Description: description,
	}
	if err := s.Categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update applies the present fields. The uniqueness check excludes the row
// itself so a category can be re-saved under its current name.
func (s *CategoryService) Update(id uint, req CategoryReq) (*model.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		taken, err := s.Categories.NameExists(*req.Name, category.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, util.ErrCategoryNameTaken
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.Categories.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Categories.Delete(id)
}
