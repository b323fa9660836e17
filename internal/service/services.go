package service

import (
	"github.com/rslist/backend/internal/client"
	"github.com/rslist/backend/internal/repository"
)

type Services interface {
	User() UserService
	Event() EventService
	Vote() VoteService
	Trade() TradeService
	Ranking() RankingService
}

type services struct {
	userService    UserService
	eventService   EventService
	voteService    VoteService
	tradeService   TradeService
	rankingService RankingService
}

func NewServices(repositories repository.Repositories, clients client.Clients) Services {
	rabbitClient := clients.RabbitMQClient()
	return &services{
		userService:    newUserService(repositories),
		eventService:   newEventService(repositories),
		voteService:    newVoteService(repositories, rabbitClient),
		tradeService:   newTradeService(repositories, rabbitClient),
		rankingService: newRankingService(repositories.Event()),
	}
}

func (s services) User() UserService {
	return s.userService
}

func (s services) Event() EventService {
	return s.eventService
}

func (s services) Vote() VoteService {
	return s.voteService
}

func (s services) Trade() TradeService {
	return s.tradeService
}

func (s services) Ranking() RankingService {
	return s.rankingService
}
