package home

import (
	"github.com/Tonii11/aurelius-claim-flow/app/models"
	"github.com/Tonii11/aurelius-claim-flow/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupHomeRoutes(app *fiber.App) {
	app.Get("/", auth.AuthMiddleware, ResolveHandler)
}

// PathForRole maps a role to its dashboard. Empty string means the role is
// not routable.
func PathForRole(role models.Role) string {
	switch role {
	case models.RoleLecturer:
		return "/claims"
	case models.RoleCoordinator, models.RoleAcademicManager:
		return "/review"
	default:
		return ""
	}
}

// ResolveHandler routes a signed-in user to the dashboard for their role.
// A user with no recognizable role is a configuration error and gets an
// explicit 403 page rather than a silent dead end.
func ResolveHandler(c *fiber.Ctx) error {
	role := c.Locals("user_role").(models.Role)

	if path := PathForRole(role); path != "" {
		return c.Redirect(path)
	}

	return c.Status(403).Render("error", fiber.Map{
		"CurrentPage":  "",
		"Title":        "No Role Assigned - AureliusClaims",
		"ErrorCode":    "403",
		"ErrorTitle":   "No Role Assigned",
		"ErrorMessage": "Your account has no role assigned. Contact an administrator.",
		"user":         c.Locals("user"),
	})
}
