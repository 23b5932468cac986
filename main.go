package main

import (
	"log"
	"time"

	"github.com/Tonii11/aurelius-claim-flow/app/config"
	"github.com/Tonii11/aurelius-claim-flow/app/database"
	"github.com/Tonii11/aurelius-claim-flow/app/routes/auth"
	"github.com/Tonii11/aurelius-claim-flow/app/routes/claims"
	"github.com/Tonii11/aurelius-claim-flow/app/routes/home"
	"github.com/Tonii11/aurelius-claim-flow/app/routes/review"
	"github.com/Tonii11/aurelius-claim-flow/app/routes/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	// Handle different error codes for web requests
	switch code {
	case 404:
		return c.Status(404).Render("error", fiber.Map{
			"CurrentPage":  "",
			"Title":        "Page Not Found - AureliusClaims",
			"ErrorCode":    "404",
			"ErrorTitle":   "Page Not Found",
			"ErrorMessage": "The page you are looking for does not exist.",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"CurrentPage":  "",
			"Title":        "Unauthorized - AureliusClaims",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"CurrentPage":  "",
			"Title":        "Error - AureliusClaims",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Set global time zone to South African Standard Time
	loc, err := time.LoadLocation("Africa/Johannesburg")
	if err != nil {
		log.Printf("Warning: Failed to load Africa/Johannesburg location, falling back to UTC+2: %v", err)
		time.Local = time.FixedZone("SAST", 2*60*60)
	} else {
		time.Local = loc
	}

	// Initialize configuration and database
	config.InitConfig()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
		BodyLimit:         uploads.RequestBodyLimit,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Health check
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := config.GetDB().Ping(); err != nil {
			return c.Status(503).JSON(fiber.Map{"status": "degraded", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	home.SetupHomeRoutes(app)
	auth.SetupAuthRoutes(app)
	claims.SetupClaimsRoutes(app)
	review.SetupReviewRoutes(app)
	uploads.SetupUploadsRoutes(app)

	port := config.AppConfig.Port
	log.Printf("Starting AureliusClaims on :%s", port)
	log.Fatal(app.Listen(":" + port))
}
