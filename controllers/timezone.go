package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/pharmacy-portal/middleware"
	"github.com/meinhoongagan/pharmacy-portal/models"
)

type formatted struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	DateTime       string `json:"dateTime"`
	DateTimeWithTz string `json:"dateTimeWithTz"`
	Relative       string `json:"relative"`
	Abbreviation   string `json:"timezoneAbbr"`
}

type timezoneResponse struct {
	Timezone     string           `json:"timezone"`
	DisplayName  string           `json:"displayName"`
	Location     string           `json:"location"`
	Formatted    formatted        `json:"formatted"`
	PharmacyData *models.Pharmacy `json:"pharmacyData"`
}

// GetTimezone godoc
// @Summary Resolved timezone for the signed-in profile
// @Description Formats the ?at= instant (now when absent) in the resolved zone.
// @Tags timezone
// @Produce json
// @Param at query string false "ISO-8601 instant"
// @Success 200 {object} timezoneResponse
// @Router /timezone [get]
func (h *Handler) GetTimezone(c *fiber.Ctx) error {
	tz, pharmacy := h.Profiles.Timezone(c.UserContext(), middleware.CurrentSession(c))
	f := tz.Formatters

	var at any = h.Appointments.Now()
	if q := c.Query("at"); q != "" {
		at = q
	}

	return c.JSON(timezoneResponse{
		Timezone:    tz.Zone,
		DisplayName: f.DisplayName(),
		Location:    tz.Location,
		Formatted: formatted{
			Date:           f.Date(at),
			Time:           f.Time(at),
			DateTime:       f.DateTime(at),
			DateTimeWithTz: f.DateTimeWithTz(at),
			Relative:       f.Relative(at),
			Abbreviation:   f.TimezoneAbbr(at),
		},
		PharmacyData: pharmacy,
	})
}
