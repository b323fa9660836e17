package service

import (
	"errors"

	"github.com/rslist/backend/internal/client"
	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/model"
	"github.com/rslist/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

type TradeService interface {
	Buy(eventID uint, request dto.TradeRequest) error
}

type tradeService struct {
	repositories repository.Repositories
	rabbitClient client.RabbitClient
}

func newTradeService(repositories repository.Repositories, rabbitClient client.RabbitClient) TradeService {
	return &tradeService{
		repositories: repositories,
		rabbitClient: rabbitClient,
	}
}

// Buy claims a rank slot for an event. The bid must strictly exceed the
// highest trade ever recorded at that rank; the event holding the beaten
// bid is deleted. Eviction, rank reassignment and the new trade record are
// one transaction.
func (t *tradeService) Buy(eventID uint, request dto.TradeRequest) error {
	var bought model.Event
	err := t.repositories.Atomically(func(repos repository.Repositories) error {
		event, err := repos.Event().GetByID(eventID)
		if err != nil {
			if errors.Is(err, dto.ErrNotFound) {
				return dto.ErrEventNotFound
			}
			return err
		}

		reigning, err := repos.Trade().FindHighestByRank(request.Rank)
		switch {
		case err == nil:
			if reigning.Amount >= request.Amount {
				return dto.ErrPaymentInsufficient
			}
			// Do not evict when the beaten bid belongs to the event being
			// re-bought.
			if reigning.EventID != event.ID {
				if err := repos.Event().DeleteByID(reigning.EventID); err != nil {
					return err
				}
			}
		case errors.Is(err, dto.ErrNotFound):
			// Rank never sold; any bid wins.
		default:
			return err
		}

		event.Rank = request.Rank
		bought, err = repos.Event().Save(event)
		if err != nil {
			return err
		}

		_, err = repos.Trade().Create(model.Trade{
			Amount:  request.Amount,
			Rank:    request.Rank,
			EventID: event.ID,
		})
		return err
	})
	if err != nil {
		return err
	}

	logrus.Infof("Event %d bought rank %d for %.2f", eventID, request.Rank, request.Amount)
	publishStandings(t.rabbitClient, bought)

	return nil
}
