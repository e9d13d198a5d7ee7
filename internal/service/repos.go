package service

import "quiz_arena_backend/internal/model"

// Repository interfaces consumed by the services. The GORM implementations
// live in internal/repository; tests substitute in-memory fakes.

type UserRepo interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	FindTopPlayers(limit int) ([]model.User, error)
}

type CategoryRepo interface {
	Create(category *model.Category) error
	FindByID(id uint) (*model.Category, error)
	FindAll() ([]model.Category, error)
	Update(category *model.Category) error
	Delete(id uint) error
	NameExists(name string, excludeID uint) (bool, error)
}

type QuestionRepo interface {
	CreateWithChoices(question *model.Question, choices []model.Choice) error
	FindByID(id uint) (*model.Question, error)
	FindByCreator(creatorID uint) ([]model.Question, error)
	Update(question *model.Question) error
	Delete(id uint) error
	RandomByCategory(categoryID uint, limit int) ([]model.Question, error)
	ExistingIDs(ids []uint) (map[uint]bool, error)
	ChoicesByIDs(ids []uint) ([]model.Choice, error)
}

type QuizRepo interface {
	CreateWithAnswers(quiz *model.Quiz, answers []model.Answer) error
	FindByPlayer(playerID uint) ([]model.Quiz, error)
}
