package repository

import (
	"github.com/rslist/backend/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Repositories interface {
	User() UserRepository
	Event() EventRepository
	Vote() VoteRepository
	Trade() TradeRepository

	// Atomically runs fn against repositories bound to a single database
	// transaction. An error from fn rolls everything back.
	Atomically(fn func(Repositories) error) error
}

type repositories struct {
	db              *gorm.DB
	userRepository  UserRepository
	eventRepository EventRepository
	voteRepository  VoteRepository
	tradeRepository TradeRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	err := db.AutoMigrate(&model.User{}, &model.Event{}, &model.Vote{}, &model.Trade{})
	if err != nil {
		logrus.Panic(err)
	}
	return newRepositories(db)
}

func newRepositories(db *gorm.DB) Repositories {
	return &repositories{
		db:              db,
		userRepository:  newUserRepository(db),
		eventRepository: newEventRepository(db),
		voteRepository:  newVoteRepository(db),
		tradeRepository: newTradeRepository(db),
	}
}

func (r *repositories) User() UserRepository {
	return r.userRepository
}

func (r *repositories) Event() EventRepository {
	return r.eventRepository
}

func (r *repositories) Vote() VoteRepository {
	return r.voteRepository
}

func (r *repositories) Trade() TradeRepository {
	return r.tradeRepository
}

func (r *repositories) Atomically(fn func(Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx))
	})
}
