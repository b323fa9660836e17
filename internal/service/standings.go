package service

import (
	"encoding/json"

	"github.com/rslist/backend/internal/client"
	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/model"
	"github.com/sirupsen/logrus"
)

// publishStandings broadcasts an event's new standing after a vote or a
// rank purchase. Best effort: broker failures are logged, never surfaced.
func publishStandings(rabbitClient client.RabbitClient, event model.Event) {
	update := dto.StandingsUpdate{
		EventID:   event.ID,
		Rank:      event.Rank,
		VoteScore: event.VoteScore,
	}

	payload, err := json.Marshal(update)
	if err != nil {
		logrus.Errorf("Error marshaling standings update: %v", err)
		return
	}

	if err := rabbitClient.PublishMessage(payload); err != nil {
		logrus.Errorf("Error publishing standings update: %v", err)
	}
}
