package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/pharmacy-portal/middleware"
	"github.com/meinhoongagan/pharmacy-portal/utils"
)

// UploadInsuranceDocument godoc
// @Summary Upload an insurance document and attach it to the profile
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param document formData file true "Insurance document"
// @Success 200 {object} models.Pharmacy
// @Failure 400 {object} utils.ErrorResponse
// @Router /profile/insurance-document [post]
func (h *Handler) UploadInsuranceDocument(c *fiber.Ctx) error {
	fh, err := c.FormFile("document")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "No document provided", err)
	}
	file, err := fh.Open()
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "Failed to read document", err)
	}
	defer file.Close()

	p, err := h.Profiles.UploadInsuranceDocument(c.UserContext(), middleware.CurrentSession(c), file)
	if err != nil {
		return h.fail(c, err, "Failed to update profile")
	}
	return c.JSON(p)
}
