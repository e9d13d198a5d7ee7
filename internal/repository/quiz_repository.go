package repository

import (
	"quiz_arena_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// CreateWithAnswers writes the attempt, its answer rows and the player's
// running-score increment as one transaction. Either the whole submission
// lands or none of it does.
func (r *QuizRepository) CreateWithAnswers(quiz *model.Quiz, answers []model.Answer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].QuizID = quiz.ID
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		if quiz.Score > 0 {
			if err := tx.Model(&model.User{}).
				Where("id = ?", quiz.PlayerID).
				Update("score", gorm.Expr("score + ?", quiz.Score)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByPlayer lists the player's own attempts, newest first.
func (r *QuizRepository) FindByPlayer(playerID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("player_id = ?", playerID).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}
