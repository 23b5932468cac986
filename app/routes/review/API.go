package review

import (
	"errors"

	"github.com/Tonii11/aurelius-claim-flow/app/formatting"
	"github.com/Tonii11/aurelius-claim-flow/app/models"
	"github.com/Tonii11/aurelius-claim-flow/app/routes/auth"
	"github.com/Tonii11/aurelius-claim-flow/app/services"
	"github.com/gofiber/fiber/v2"
)

func ReviewPageHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("review/index", fiber.Map{
		"Title":       "Approver Dashboard - AureliusClaims",
		"CurrentPage": "review",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"user":        user,
	})
}

// GetAllClaimsAPI lists every claim with submitter identity, optionally
// filtered by ?status=pending|approved|rejected.
func GetAllClaimsAPI(c *fiber.Ctx) error {
	ctx, cancel := auth.RequestContext(c)
	defer cancel()

	role := c.Locals("user_role").(models.Role)
	status := models.ClaimStatus(c.Query("status"))

	list, err := claimService().ListAll(ctx, role, status)
	if err != nil {
		return reviewError(c, err, "Failed to load claims")
	}
	claims := make([]models.Claim, len(list))
	for i, claim := range list {
		claims[i] = *claim
	}
	return c.JSON(formatting.ClaimViews(claims))
}

// ApproveClaimAPI transitions a pending claim to approved.
func ApproveClaimAPI(c *fiber.Ctx) error {
	ctx, cancel := auth.RequestContext(c)
	defer cancel()

	role := c.Locals("user_role").(models.Role)
	reviewerID := c.Locals("user_id").(string)

	if err := claimService().Approve(ctx, c.Params("id"), reviewerID, role); err != nil {
		return reviewError(c, err, "Failed to approve claim")
	}
	return c.JSON(fiber.Map{"message": "Claim approved"})
}

// RejectClaimAPI transitions a pending claim to rejected with a reason.
func RejectClaimAPI(c *fiber.Ctx) error {
	type RejectRequest struct {
		Reason string `json:"reason"`
	}

	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	ctx, cancel := auth.RequestContext(c)
	defer cancel()

	role := c.Locals("user_role").(models.Role)
	reviewerID := c.Locals("user_id").(string)

	if err := claimService().Reject(ctx, c.Params("id"), reviewerID, role, req.Reason); err != nil {
		return reviewError(c, err, "Failed to reject claim")
	}
	return c.JSON(fiber.Map{"message": "Claim rejected"})
}

// reviewError maps service errors to HTTP status codes.
func reviewError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrPermission):
		return c.Status(403).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidState):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": fallback})
	}
}
