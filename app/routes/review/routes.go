package review

import (
	"github.com/Tonii11/aurelius-claim-flow/app/config"
	"github.com/Tonii11/aurelius-claim-flow/app/database"
	"github.com/Tonii11/aurelius-claim-flow/app/models"
	"github.com/Tonii11/aurelius-claim-flow/app/routes/auth"
	"github.com/Tonii11/aurelius-claim-flow/app/services"
	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	approvers := auth.RoleMiddleware(models.RoleCoordinator, models.RoleAcademicManager)

	// Web Routes
	web := app.Group("/review")
	web.Use(auth.AuthMiddleware, approvers)
	web.Get("/", ReviewPageHandler)

	// API Routes
	api := app.Group("/api/review")
	api.Use(auth.AuthMiddleware, approvers)
	api.Get("/claims", GetAllClaimsAPI)
	api.Post("/claims/:id/approve", ApproveClaimAPI)
	api.Post("/claims/:id/reject", RejectClaimAPI)
}

func claimService() *services.ClaimService {
	return services.NewClaimService(&database.ClaimStore{DB: config.GetDB()})
}
