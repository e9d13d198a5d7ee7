package repository

import (
	"quiz_arena_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// CreateWithChoices persists the question and its bundled choices in one
// transaction. Choices exist only as part of their question.
func (r *QuestionRepository) CreateWithChoices(question *model.Question, choices []model.Choice) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		for i := range choices {
			choices[i].QuestionID = question.ID
		}
		if err := tx.Create(&choices).Error; err != nil {
			return err
		}
		question.Choices = choices
		return nil
	})
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("Choices").Preload("Category").First(&question, id).Error
	return &question, err
}

func (r *QuestionRepository) FindByCreator(creatorID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Preload("Choices").Preload("Category").
		Where("creator_id = ?", creatorID).
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Omit("Choices", "Category").Save(question).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Choice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}

// RandomByCategory samples up to limit questions of the category in random
// order, choices attached.
func (r *QuestionRepository) RandomByCategory(categoryID uint, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Preload("Choices").
		Where("category_id = ?", categoryID).
		Order("RAND()").
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

// ExistingIDs returns the subset of ids that reference live questions.
func (r *QuestionRepository) ExistingIDs(ids []uint) (map[uint]bool, error) {
	var found []uint
	err := r.DB.Model(&model.Question{}).Where("id IN ?", ids).Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}
	existing := make(map[uint]bool, len(found))
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

func (r *QuestionRepository) ChoicesByIDs(ids []uint) ([]model.Choice, error) {
	var choices []model.Choice
	err := r.DB.Where("id IN ?", ids).Find(&choices).Error
	return choices, err
}
