package service

import (
	"errors"

	"quiz_arena_backend/internal/model"
	"quiz_arena_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	Users UserRepo
}

func NewUserService(users UserRepo) *UserService {
	return &UserService{Users: users}
}

// UpdateName changes the display name only. Email and role are fixed at
// registration.
func (s *UserService) UpdateName(userID uint, name string) (*model.User, error) {
	user, err := s.find(userID)
	if err != nil {
		return nil, err
	}
	user.Name = name
	if err := s.Users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetAvatar(userID uint, url string) (*model.User, error) {
	user, err := s.find(userID)
	if err != nil {
		return nil, err
	}
	user.Avatar = url
	if err := s.Users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) find(userID uint) (*model.User, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
