package service

import (
	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/model"
	"github.com/rslist/backend/internal/repository"
)

// PageSize is the fixed listing page size.
const PageSize = 5

type RankingService interface {
	List(page int) ([]dto.EventSummary, error)
	Get(index int) (dto.EventSummary, error)
	ListRange(start, end int) ([]dto.EventSummary, error)
}

type rankingService struct {
	eventRepository repository.EventRepository
}

func newRankingService(eventRepository repository.EventRepository) RankingService {
	return &rankingService{
		eventRepository: eventRepository,
	}
}

// List returns the 1-indexed page of the standings, rank ascending with
// vote score descending breaking ties.
func (r *rankingService) List(page int) ([]dto.EventSummary, error) {
	if page < 1 {
		return nil, dto.ErrInvalidIndex
	}

	events, err := r.eventRepository.FindRankedPage(page, PageSize)
	if err != nil {
		return nil, err
	}

	return summarize(events), nil
}

// Get returns the event at a 1-indexed position of the full standings.
func (r *rankingService) Get(index int) (dto.EventSummary, error) {
	events, err := r.eventRepository.FindAllRanked()
	if err != nil {
		return dto.EventSummary{}, err
	}

	if index < 1 || index > len(events) {
		return dto.EventSummary{}, dto.ErrInvalidIndex
	}

	return summarizeOne(events[index-1]), nil
}

// ListRange returns the inclusive 1-indexed [start, end] slice of the full
// standings.
func (r *rankingService) ListRange(start, end int) ([]dto.EventSummary, error) {
	events, err := r.eventRepository.FindAllRanked()
	if err != nil {
		return nil, err
	}

	if start < 1 || end < start || end > len(events) {
		return nil, dto.ErrInvalidIndex
	}

	return summarize(events[start-1 : end]), nil
}

func summarize(events []model.Event) []dto.EventSummary {
	summaries := make([]dto.EventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, summarizeOne(event))
	}
	return summaries
}

func summarizeOne(event model.Event) dto.EventSummary {
	return dto.EventSummary{
		UserID:    event.UserID,
		EventName: event.EventName,
		Keyword:   event.Keyword,
		Rank:      event.Rank,
		VoteScore: event.VoteScore,
	}
}
