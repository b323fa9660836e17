package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/service"
)

type RankingController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	ListRange(c echo.Context) error
}

type rankingController struct {
	rankingService service.RankingService
}

func newRankingController(rankingService service.RankingService) RankingController {
	return &rankingController{
		rankingService: rankingService,
	}
}

func (r *rankingController) List(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrInvalidIndex.Error()})
		}
		page = parsed
	}

	summaries, err := r.rankingService.List(page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, summaries)
}

func (r *rankingController) Get(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrInvalidIndex.Error()})
	}

	summary, err := r.rankingService.Get(index)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

func (r *rankingController) ListRange(c echo.Context) error {
	start, err := strconv.Atoi(c.QueryParam("start"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrInvalidIndex.Error()})
	}
	end, err := strconv.Atoi(c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrInvalidIndex.Error()})
	}

	summaries, err := r.rankingService.ListRange(start, end)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, summaries)
}
