package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minitweet/api/internal/core/domain"
	"github.com/minitweet/api/internal/core/ports"
)

// SocialHandler handles follow and unfollow.
type SocialHandler struct {
	users ports.UserService
}

func NewSocialHandler(users ports.UserService) *SocialHandler {
	return &SocialHandler{users: users}
}

// Follow handles POST /follow.
//
// @Summary      Follow a user
// @Tags         social
// @Accept       json
// @Produce      plain
// @Security     TokenAuth
// @Param        body  body      followRequest  true  "Followee id"
// @Success      200   {string}  string  "success"
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /follow [post]
func (h *SocialHandler) Follow(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req followRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.users.Follow(c.Request().Context(), userID, req.Follow); err != nil {
		if errors.Is(err, domain.ErrSelfFollow) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "cannot follow yourself"})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return err
	}

	return c.String(http.StatusOK, "success")
}

// Unfollow handles POST /unfollow. Removing an absent edge still succeeds.
//
// @Summary      Unfollow a user
// @Tags         social
// @Accept       json
// @Produce      plain
// @Security     TokenAuth
// @Param        body  body      unfollowRequest  true  "Followee id"
// @Success      200   {string}  string  "success"
// @Failure      400   {object}  errorResponse
// @Router       /unfollow [post]
func (h *SocialHandler) Unfollow(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req unfollowRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.users.Unfollow(c.Request().Context(), userID, req.Unfollow); err != nil {
		return err
	}

	return c.String(http.StatusOK, "success")
}
