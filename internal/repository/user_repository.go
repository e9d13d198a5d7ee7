package repository

import (
	"quiz_arena_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// FindTopPlayers returns player-role users ordered by accumulated score.
func (r *UserRepository) FindTopPlayers(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("role = ?", model.Player).
		Order("score DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}
