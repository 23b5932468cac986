package claims

import (
	"github.com/Tonii11/aurelius-claim-flow/app/config"
	"github.com/Tonii11/aurelius-claim-flow/app/database"
	"github.com/Tonii11/aurelius-claim-flow/app/routes/auth"
	"github.com/Tonii11/aurelius-claim-flow/app/services"
	"github.com/gofiber/fiber/v2"
)

func SetupClaimsRoutes(app *fiber.App) {
	// Web Routes
	web := app.Group("/claims")
	web.Use(auth.AuthMiddleware)
	web.Get("/", ClaimsPageHandler)

	// API Routes
	api := app.Group("/api/claims")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetOwnClaimsAPI)
	api.Post("/", SubmitClaimAPI)
}

func claimService() *services.ClaimService {
	return services.NewClaimService(&database.ClaimStore{DB: config.GetDB()})
}
