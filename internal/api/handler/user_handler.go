package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/minitweet/api/internal/core/domain"
	"github.com/minitweet/api/internal/core/ports"
)

// UserHandler serves public account lookups.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Get handles GET /users/:user_id.
//
// @Summary      Get a user's public profile
// @Tags         users
// @Produce      json
// @Param        user_id  path      int  true  "User id"
// @Success      200      {object}  userResponse
// @Failure      404      {object}  errorResponse
// @Router       /users/{user_id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	user, err := h.users.GetUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}
