package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/service"
)

type EventController interface {
	Create(c echo.Context) error
	Vote(c echo.Context) error
	VoteHistory(c echo.Context) error
	Buy(c echo.Context) error
}

type eventController struct {
	eventService service.EventService
	voteService  service.VoteService
	tradeService service.TradeService
}

func newEventController(eventService service.EventService, voteService service.VoteService, tradeService service.TradeService) EventController {
	return &eventController{
		eventService: eventService,
		voteService:  voteService,
		tradeService: tradeService,
	}
}

func (e *eventController) Create(c echo.Context) error {
	var request dto.EventRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrRequestInvalid.Error()})
	}

	event, err := e.eventService.Create(request)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, event)
}

func (e *eventController) Vote(c echo.Context) error {
	eventID, err := parseUintParam(c, "eventId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrRequestInvalid.Error()})
	}

	var request dto.VoteRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrRequestInvalid.Error()})
	}

	if err := e.voteService.Vote(eventID, request); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (e *eventController) VoteHistory(c echo.Context) error {
	eventID, err := parseUintParam(c, "eventId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrRequestInvalid.Error()})
	}

	votes, err := e.voteService.History(eventID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, votes)
}

func (e *eventController) Buy(c echo.Context) error {
	eventID, err := parseUintParam(c, "eventId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrRequestInvalid.Error()})
	}

	var request dto.TradeRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrRequestInvalid.Error()})
	}

	if err := e.tradeService.Buy(eventID, request); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func parseUintParam(c echo.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
