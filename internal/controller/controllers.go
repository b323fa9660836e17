package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rslist/backend/internal/service"
)

type Controllers interface {
	User() UserController
	Event() EventController
	Ranking() RankingController
	Info() InfoController

	Route(e *echo.Echo)
}

type controllers struct {
	userController    UserController
	eventController   EventController
	rankingController RankingController
	infoController    InfoController
}

func NewControllers(services service.Services) Controllers {
	return &controllers{
		userController:    newUserController(services.User()),
		eventController:   newEventController(services.Event(), services.Vote(), services.Trade()),
		rankingController: newRankingController(services.Ranking()),
		infoController:    newInfoController(),
	}
}

func (c controllers) User() UserController {
	return c.userController
}

func (c controllers) Event() EventController {
	return c.eventController
}

func (c controllers) Ranking() RankingController {
	return c.rankingController
}

func (c controllers) Info() InfoController {
	return c.infoController
}

func (c controllers) Route(e *echo.Echo) {
	e.Use(CorrelationID())

	e.GET("/", c.infoController.Info)

	e.POST("/rs/event", c.eventController.Create)
	e.POST("/rs/vote/:eventId", c.eventController.Vote)
	e.GET("/rs/vote/:eventId", c.eventController.VoteHistory)
	e.POST("/rs/buy/:eventId", c.eventController.Buy)

	e.GET("/rs/list", c.rankingController.List)
	e.GET("/rs/range", c.rankingController.ListRange)
	e.GET("/rs/:index", c.rankingController.Get)

	e.POST("/user", c.userController.Register)
	e.GET("/user/:id", c.userController.Get)
	e.DELETE("/user/:id", c.userController.Delete)
}
