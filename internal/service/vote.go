package service

import (
	"errors"

	"github.com/rslist/backend/internal/client"
	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/model"
	"github.com/rslist/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

type VoteService interface {
	Vote(eventID uint, request dto.VoteRequest) error
	History(eventID uint) ([]model.Vote, error)
}

type voteService struct {
	repositories repository.Repositories
	rabbitClient client.RabbitClient
}

func newVoteService(repositories repository.Repositories, rabbitClient client.RabbitClient) VoteService {
	return &voteService{
		repositories: repositories,
		rabbitClient: rabbitClient,
	}
}

// Vote spends request.Amount of the user's vote budget on an event. The
// vote record, the budget debit and the score credit are applied in one
// transaction; none is observable without the others.
func (v *voteService) Vote(eventID uint, request dto.VoteRequest) error {
	if request.Amount <= 0 {
		return dto.ErrRequestInvalid
	}

	var voted model.Event
	err := v.repositories.Atomically(func(repos repository.Repositories) error {
		event, err := repos.Event().GetByID(eventID)
		if err != nil {
			if errors.Is(err, dto.ErrNotFound) {
				return dto.ErrEventNotFound
			}
			return err
		}

		user, err := repos.User().GetByID(request.UserID)
		if err != nil {
			if errors.Is(err, dto.ErrNotFound) {
				return dto.ErrUserNotFound
			}
			return err
		}

		if request.Amount > user.VoteBudget {
			return dto.ErrBudgetExceeded
		}

		_, err = repos.Vote().Create(model.Vote{
			EventID: event.ID,
			UserID:  user.ID,
			Amount:  request.Amount,
			VotedAt: request.VotedAt,
		})
		if err != nil {
			return err
		}

		user.VoteBudget -= request.Amount
		if _, err := repos.User().Save(user); err != nil {
			return err
		}

		event.VoteScore += request.Amount
		voted, err = repos.Event().Save(event)
		return err
	})
	if err != nil {
		return err
	}

	logrus.Infof("User %d voted %d on event %d", request.UserID, request.Amount, eventID)
	publishStandings(v.rabbitClient, voted)

	return nil
}

func (v *voteService) History(eventID uint) ([]model.Vote, error) {
	if _, err := v.repositories.Event().GetByID(eventID); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return nil, dto.ErrEventNotFound
		}
		return nil, err
	}

	return v.repositories.Vote().FindByEventID(eventID)
}
