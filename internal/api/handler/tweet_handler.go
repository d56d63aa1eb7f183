package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/minitweet/api/internal/api/metrics"
	"github.com/minitweet/api/internal/core/domain"
	"github.com/minitweet/api/internal/core/ports"
)

// TweetHandler handles posting and timeline reads.
type TweetHandler struct {
	tweets ports.TweetService
}

func NewTweetHandler(tweets ports.TweetService) *TweetHandler {
	return &TweetHandler{tweets: tweets}
}

// Post handles POST /tweet.
//
// @Summary      Post a tweet
// @Tags         tweets
// @Accept       json
// @Produce      plain
// @Security     TokenAuth
// @Param        body  body      tweetRequest  true  "Tweet body (max 300 characters)"
// @Success      200   {string}  string  "success"
// @Failure      400   {string}  string  "over 300 characters"
// @Router       /tweet [post]
func (h *TweetHandler) Post(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req tweetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if _, err := h.tweets.Post(c.Request().Context(), userID, req.Tweet); err != nil {
		if errors.Is(err, domain.ErrTweetTooLong) {
			metrics.TweetsRejectedTotal.Inc()
			return c.String(http.StatusBadRequest, "over 300 characters")
		}
		return err
	}

	metrics.TweetsCreatedTotal.Inc()
	return c.String(http.StatusOK, "success")
}

// PublicTimeline handles GET /timeline/:user_id — anyone may read any
// user's aggregated timeline.
//
// @Summary      Get a user's timeline
// @Tags         tweets
// @Produce      json
// @Param        user_id  path      int  true  "User id"
// @Success      200      {object}  timelineResponse
// @Failure      400      {object}  errorResponse
// @Router       /timeline/{user_id} [get]
func (h *TweetHandler) PublicTimeline(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	metrics.TimelineRequestsTotal.WithLabelValues("public").Inc()
	return h.respondTimeline(c, userID)
}

// OwnTimeline handles GET /timeline for the authenticated user.
//
// @Summary      Get the authenticated user's timeline
// @Tags         tweets
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  timelineResponse
// @Router       /timeline [get]
func (h *TweetHandler) OwnTimeline(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	metrics.TimelineRequestsTotal.WithLabelValues("authenticated").Inc()
	return h.respondTimeline(c, userID)
}

func (h *TweetHandler) respondTimeline(c echo.Context, userID int64) error {
	entries, err := h.tweets.Timeline(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.TimelineEntry{}
	}

	metrics.TimelineLength.Observe(float64(len(entries)))
	return c.JSON(http.StatusOK, timelineResponse{UserID: userID, Timeline: entries})
}
