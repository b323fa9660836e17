package service

import (
	"fmt"
	"sort"

	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/model"
	"github.com/rslist/backend/internal/repository"
)

// fakeStore backs the fake repositories with plain maps and slices so the
// services can be exercised without a database.
type fakeStore struct {
	users  map[uint]model.User
	events map[uint]model.Event
	votes  []model.Vote
	trades []model.Trade
	nextID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[uint]model.User),
		events: make(map[uint]model.Event),
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) addUser(user model.User) model.User {
	if user.ID == 0 {
		user.ID = s.id()
	}
	s.users[user.ID] = user
	return user
}

func (s *fakeStore) addEvent(event model.Event) model.Event {
	if event.ID == 0 {
		event.ID = s.id()
	}
	s.events[event.ID] = event
	return event
}

func (s *fakeStore) addTrade(trade model.Trade) model.Trade {
	if trade.ID == 0 {
		trade.ID = s.id()
	}
	s.trades = append(s.trades, trade)
	return trade
}

type fakeRepositories struct {
	store *fakeStore
}

func newFakeRepositories(store *fakeStore) repository.Repositories {
	return &fakeRepositories{store: store}
}

func (f *fakeRepositories) User() repository.UserRepository {
	return &fakeUserRepository{store: f.store}
}

func (f *fakeRepositories) Event() repository.EventRepository {
	return &fakeEventRepository{store: f.store}
}

func (f *fakeRepositories) Vote() repository.VoteRepository {
	return &fakeVoteRepository{store: f.store}
}

func (f *fakeRepositories) Trade() repository.TradeRepository {
	return &fakeTradeRepository{store: f.store}
}

func (f *fakeRepositories) Atomically(fn func(repository.Repositories) error) error {
	return fn(f)
}

type fakeUserRepository struct {
	store *fakeStore
}

func (f *fakeUserRepository) Create(user model.User) (model.User, error) {
	return f.store.addUser(user), nil
}

func (f *fakeUserRepository) GetByID(id uint) (model.User, error) {
	user, ok := f.store.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("%w: user %d", dto.ErrNotFound, id)
	}
	return user, nil
}

func (f *fakeUserRepository) Save(user model.User) (model.User, error) {
	f.store.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepository) DeleteByID(id uint) error {
	delete(f.store.users, id)
	return nil
}

type fakeEventRepository struct {
	store *fakeStore
}

func (f *fakeEventRepository) Create(event model.Event) (model.Event, error) {
	return f.store.addEvent(event), nil
}

func (f *fakeEventRepository) GetByID(id uint) (model.Event, error) {
	event, ok := f.store.events[id]
	if !ok {
		return model.Event{}, fmt.Errorf("%w: event %d", dto.ErrNotFound, id)
	}
	return event, nil
}

func (f *fakeEventRepository) Save(event model.Event) (model.Event, error) {
	f.store.events[event.ID] = event
	return event, nil
}

func (f *fakeEventRepository) DeleteByID(id uint) error {
	delete(f.store.events, id)
	return nil
}

func (f *fakeEventRepository) DeleteByUserID(userID uint) error {
	for id, event := range f.store.events {
		if event.UserID == userID {
			delete(f.store.events, id)
		}
	}
	return nil
}

func (f *fakeEventRepository) FindAllRanked() ([]model.Event, error) {
	events := make([]model.Event, 0, len(f.store.events))
	for _, event := range f.store.events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Rank != events[j].Rank {
			return events[i].Rank < events[j].Rank
		}
		if events[i].VoteScore != events[j].VoteScore {
			return events[i].VoteScore > events[j].VoteScore
		}
		return events[i].ID < events[j].ID
	})
	return events, nil
}

func (f *fakeEventRepository) FindRankedPage(page, size int) ([]model.Event, error) {
	events, _ := f.FindAllRanked()
	start := (page - 1) * size
	if start >= len(events) {
		return nil, nil
	}
	end := start + size
	if end > len(events) {
		end = len(events)
	}
	return events[start:end], nil
}

func (f *fakeEventRepository) Count() (int64, error) {
	return int64(len(f.store.events)), nil
}

type fakeVoteRepository struct {
	store *fakeStore
}

func (f *fakeVoteRepository) Create(vote model.Vote) (model.Vote, error) {
	vote.ID = f.store.id()
	f.store.votes = append(f.store.votes, vote)
	return vote, nil
}

func (f *fakeVoteRepository) FindByEventID(eventID uint) ([]model.Vote, error) {
	var votes []model.Vote
	for _, vote := range f.store.votes {
		if vote.EventID == eventID {
			votes = append(votes, vote)
		}
	}
	return votes, nil
}

type fakeTradeRepository struct {
	store *fakeStore
}

func (f *fakeTradeRepository) Create(trade model.Trade) (model.Trade, error) {
	return f.store.addTrade(trade), nil
}

func (f *fakeTradeRepository) FindHighestByRank(rank int) (model.Trade, error) {
	var best model.Trade
	found := false
	for _, trade := range f.store.trades {
		if trade.Rank != rank {
			continue
		}
		if !found || trade.Amount > best.Amount {
			best = trade
			found = true
		}
	}
	if !found {
		return model.Trade{}, fmt.Errorf("%w: no trade at rank %d", dto.ErrNotFound, rank)
	}
	return best, nil
}

type fakeRabbitClient struct {
	published [][]byte
}

func (f *fakeRabbitClient) PublishMessage(message []byte) error {
	f.published = append(f.published, message)
	return nil
}

func (f *fakeRabbitClient) Close() error {
	return nil
}
