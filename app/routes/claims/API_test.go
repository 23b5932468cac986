package claims

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Tonii11/aurelius-claim-flow/app/config"
	"github.com/Tonii11/aurelius-claim-flow/app/models"
	"github.com/Tonii11/aurelius-claim-flow/app/routes/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitRequest(t *testing.T, userID, body string) *http.Request {
	t.Helper()
	token, err := auth.GenerateJWT(&models.User{
		ID:    userID,
		Email: "lecturer@uni.ac.za",
		Role:  models.RoleLecturer,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/claims", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "jwt_token", Value: token})
	return req
}

// A submission may only link a document stored under the caller's own
// prefix; a key under another user's prefix is rejected up front.
func TestSubmitRejectsForeignDocumentPath(t *testing.T) {
	config.AppConfig = &config.Config{}
	app := fiber.New()
	SetupClaimsRoutes(app)

	req := submitRequest(t, "user-1",
		`{"hours_worked": 10, "hourly_rate": 50, "document_path": "user-2/123_timesheet.pdf"}`)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitRequiresHoursAndRate(t *testing.T) {
	config.AppConfig = &config.Config{}
	app := fiber.New()
	SetupClaimsRoutes(app)

	resp, err := app.Test(submitRequest(t, "user-1", `{"hours_worked": 10}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
