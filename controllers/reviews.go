package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/pharmacy-portal/middleware"
	"github.com/meinhoongagan/pharmacy-portal/models"
)

// GetReviews godoc
// @Summary Patient reviews and rating summary for the signed-in provider
// @Tags reviews
// @Produce json
// @Success 200 {object} models.ReviewSummary
// @Failure 502 {object} utils.ErrorResponse
// @Router /reviews [get]
func (h *Handler) GetReviews(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	reviews, err := h.Reviews.FetchReviews(c.UserContext(), sess.UpstreamToken, sess.AccountID)
	if err != nil {
		return h.fail(c, err, "Failed to fetch reviews")
	}
	return c.JSON(models.SummarizeReviews(reviews))
}
