package service

import (
	"errors"

	"quiz_arena_backend/internal/model"
	"quiz_arena_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	Questions  QuestionRepo
	Categories CategoryRepo
}

func NewQuestionService(questions QuestionRepo, categories CategoryRepo) *QuestionService {
	return &QuestionService{Questions: questions, Categories: categories}
}

type ChoiceReq struct {
	Content   string `json:"content" binding:"required"`
	IsCorrect *bool  `json:"is_correct" binding:"required"`
}

type CreateQuestionReq struct {
	Content    string      `json:"content" binding:"required"`
	CategoryID uint        `json:"category_id" binding:"required"`
	Difficulty string      `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Choices    []ChoiceReq `json:"choices" binding:"required,min=2,dive"`
}

type UpdateQuestionReq struct {
	Content    *string `json:"content"`
	CategoryID *uint   `json:"category_id"`
	Difficulty *string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

// Create stores the question and its bundled choices atomically, attributed
// to the authenticated creator. Choices are creation-only: updates never
// touch them.
func (s *QuestionService) Create(creatorID uint, req CreateQuestionReq) (*model.Question, error) {
	if _, err := s.Categories.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}

	question := &model.Question{
		Content:    req.Content,
		CategoryID: req.CategoryID,
		CreatorID:  creatorID,
		Difficulty: model.Difficulty(req.Difficulty),
	}

	choices := make([]model.Choice, 0, len(req.Choices))
	for _, c := range req.Choices {
		choices = append(choices, model.Choice{
			Content:   c.Content,
			IsCorrect: *c.IsCorrect,
		})
	}

	if err := s.Questions.CreateWithChoices(question, choices); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) ListByCreator(creatorID uint) ([]model.Question, error) {
	return s.Questions.FindByCreator(creatorID)
}

// Get returns the question only to its creator. An existing question owned
// by someone else is a permission failure, not a not-found.
func (s *QuestionService) Get(creatorID, id uint) (*model.Question, error) {
	question, err := s.Questions.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	if question.CreatorID != creatorID {
		return nil, util.ErrPermissionDenied
	}
	return question, nil
}

func (s *QuestionService) Update(creatorID, id uint, req UpdateQuestionReq) (*model.Question, error) {
	question, err := s.Get(creatorID, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.Categories.FindByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrCategoryNotFound
			}
			return nil, err
		}
		question.CategoryID = *req.CategoryID
		question.Category = nil
	}
	if req.Content != nil && *req.Content != "" {
		question.Content = *req.Content
	}
	if req.Difficulty != nil {
		question.Difficulty = model.Difficulty(*req.Difficulty)
	}

	if err := s.Questions.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Delete(creatorID, id uint) error {
	if _, err := s.Get(creatorID, id); err != nil {
		return err
	}
	return s.Questions.Delete(id)
}
