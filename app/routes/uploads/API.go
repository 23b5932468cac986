package uploads

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Tonii11/aurelius-claim-flow/app/config"
	"github.com/Tonii11/aurelius-claim-flow/app/models"
	"github.com/Tonii11/aurelius-claim-flow/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupUploadsRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Use(auth.AuthMiddleware)
	api.Post("/uploads", UploadDocumentAPI)
	api.Get("/documents/+", DownloadDocumentAPI)
}

// UploadDocumentAPI validates and stores one supporting document, returning
// the storage key to link into a claim submission.
func UploadDocumentAPI(c *fiber.Ctx) error {
	file, err := c.FormFile("document")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": ErrNoFile.Error()})
	}

	if err := ValidateDocument(file.Filename, file.Size); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	userID := c.Locals("user_id").(string)
	key := BuildKey(userID, file.Filename)

	dest := filepath.Join(config.UploadDir(), filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store file"})
	}
	if err := c.SaveFile(file, dest); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store file"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"document_path": key,
		"file_name":     file.Filename,
	})
}

// DownloadDocumentAPI serves a stored document. Lecturers may only fetch
// files under their own prefix; approvers may fetch any.
func DownloadDocumentAPI(c *fiber.Ctx) error {
	key, err := normalizeKey(c.Params("+"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid document path"})
	}

	role := c.Locals("user_role").(models.Role)
	userID := c.Locals("user_id").(string)
	if !role.IsApprover() && KeyOwner(key) != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	dest := filepath.Join(config.UploadDir(), filepath.FromSlash(key))
	if _, err := os.Stat(dest); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Document not found"})
	}
	return c.SendFile(dest)
}

// normalizeKey rejects traversal outside the upload directory.
func normalizeKey(raw string) (string, error) {
	key := strings.TrimPrefix(path.Clean("/"+raw), "/")
	if key == "" || key == "." || strings.HasPrefix(key, "..") || strings.Contains(key, "../") {
		return "", os.ErrInvalid
	}
	return key, nil
}
