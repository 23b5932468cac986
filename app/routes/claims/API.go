package claims

import (
	"errors"

	"github.com/Tonii11/aurelius-claim-flow/app/formatting"
	"github.com/Tonii11/aurelius-claim-flow/app/models"
	"github.com/Tonii11/aurelius-claim-flow/app/routes/auth"
	"github.com/Tonii11/aurelius-claim-flow/app/routes/uploads"
	"github.com/Tonii11/aurelius-claim-flow/app/services"
	"github.com/gofiber/fiber/v2"
)

func ClaimsPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("claims/index", fiber.Map{
		"Title":       "Lecturer Dashboard - AureliusClaims",
		"CurrentPage": "claims",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"user":        user,
	})
}

// SubmitClaimAPI creates a pending claim for the signed-in lecturer.
func SubmitClaimAPI(c *fiber.Ctx) error {
	type SubmitRequest struct {
		HoursWorked  *float64 `json:"hours_worked"`
		HourlyRate   *float64 `json:"hourly_rate"`
		Notes        string   `json:"notes"`
		DocumentPath string   `json:"document_path"`
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.HoursWorked == nil || req.HourlyRate == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Hours worked and hourly rate are required"})
	}

	lecturerID := c.Locals("user_id").(string)

	// A linked document must live under the caller's own storage prefix.
	if req.DocumentPath != "" && uploads.KeyOwner(req.DocumentPath) != lecturerID {
		return c.Status(400).JSON(fiber.Map{"error": "Document does not belong to this user"})
	}

	ctx, cancel := auth.RequestContext(c)
	defer cancel()

	claim, err := claimService().Submit(ctx, lecturerID, *req.HoursWorked, *req.HourlyRate, req.Notes, req.DocumentPath)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit claim"})
	}

	return c.Status(fiber.StatusCreated).JSON(formatting.NewClaimView(*claim))
}

// GetOwnClaimsAPI lists the caller's claims, newest first.
func GetOwnClaimsAPI(c *fiber.Ctx) error {
	ctx, cancel := auth.RequestContext(c)
	defer cancel()

	lecturerID := c.Locals("user_id").(string)
	list, err := claimService().ListOwn(ctx, lecturerID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to load claims",
			"details": err.Error(),
		})
	}
	claims := make([]models.Claim, len(list))
	for i, claim := range list {
		claims[i] = *claim
	}
	return c.JSON(formatting.ClaimViews(claims))
}
