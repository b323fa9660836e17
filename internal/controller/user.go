package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rslist/backend/internal/dto"
	"github.com/rslist/backend/internal/service"
)

type UserController interface {
	Register(c echo.Context) error
	Get(c echo.Context) error
	Delete(c echo.Context) error
}

type userController struct {
	userService service.UserService
}

func newUserController(userService service.UserService) UserController {
	return &userController{
		userService: userService,
	}
}

func (u *userController) Register(c echo.Context) error {
	var request dto.UserRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrRequestInvalid.Error()})
	}

	user, err := u.userService.Register(request)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, user)
}

func (u *userController) Get(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrRequestInvalid.Error()})
	}

	user, err := u.userService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (u *userController) Delete(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrRequestInvalid.Error()})
	}

	if err := u.userService.Delete(id); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusOK)
}
