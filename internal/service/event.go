package service

import (
	"errors"

	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/model"
	"github.com/rslist/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

type EventService interface {
	Create(request dto.EventRequest) (model.Event, error)
}

type eventService struct {
	repositories repository.Repositories
}

func newEventService(repositories repository.Repositories) EventService {
	return &eventService{
		repositories: repositories,
	}
}

// Create submits a new event for an existing user. New events start with a
// zero score at the tail of the standings.
func (e *eventService) Create(request dto.EventRequest) (model.Event, error) {
	var created model.Event
	err := e.repositories.Atomically(func(repos repository.Repositories) error {
		user, err := repos.User().GetByID(request.UserID)
		if err != nil {
			if errors.Is(err, dto.ErrNotFound) {
				return dto.ErrUserNotFound
			}
			return err
		}

		count, err := repos.Event().Count()
		if err != nil {
			return err
		}

		created, err = repos.Event().Create(model.Event{
			EventName: request.EventName,
			Keyword:   request.Keyword,
			Rank:      int(count) + 1,
			VoteScore: 0,
			UserID:    user.ID,
		})
		return err
	})
	if err != nil {
		return model.Event{}, err
	}

	logrus.Infof("User %d created event %d at rank %d", request.UserID, created.ID, created.Rank)

	return created, nil
}
