package service

import (
	"errors"

	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/model"
	"github.com/rslist/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

// defaultVoteBudget is the vote allowance every new user starts with.
const defaultVoteBudget = 10

type UserService interface {
	Register(request dto.UserRequest) (model.User, error)
	GetByID(id uint) (model.User, error)
	Delete(id uint) error
}

type userService struct {
	repositories repository.Repositories
}

func newUserService(repositories repository.Repositories) UserService {
	return &userService{
		repositories: repositories,
	}
}

func (u *userService) Register(request dto.UserRequest) (model.User, error) {
	user, err := u.repositories.User().Create(model.User{
		UserName:   request.UserName,
		Gender:     request.Gender,
		Age:        request.Age,
		Phone:      request.Phone,
		Email:      request.Email,
		VoteBudget: defaultVoteBudget,
	})
	if err != nil {
		return model.User{}, err
	}

	logrus.Infof("Registered user %d (%s)", user.ID, user.UserName)

	return user, nil
}

func (u *userService) GetByID(id uint) (model.User, error) {
	user, err := u.repositories.User().GetByID(id)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return model.User{}, dto.ErrUserNotFound
		}
		return model.User{}, err
	}

	return user, nil
}

// Delete removes a user together with the events the user owns.
func (u *userService) Delete(id uint) error {
	return u.repositories.Atomically(func(repos repository.Repositories) error {
		if _, err := repos.User().GetByID(id); err != nil {
			if errors.Is(err, dto.ErrNotFound) {
				return dto.ErrUserNotFound
			}
			return err
		}

		if err := repos.Event().DeleteByUserID(id); err != nil {
			return err
		}

		return repos.User().DeleteByID(id)
	})
}
