package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	apimodels "talenttrek-backend/models/api"
)

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(16))
	app.Post("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run(`small body passes`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(`{"a":1}`)), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run(`large body rejected`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(strings.Repeat("x", 17))), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.Nil(t, err)
		var errResp apimodels.ErrorResponse
		require.Nil(t, json.Unmarshal(body, &errResp))
		require.Contains(t, errResp.Error, "Maximum allowed: 16 bytes")
	})
}

func TestErrNotify(t *testing.T) {
	received := make(chan errNotification, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var n errNotification
		_ = json.NewDecoder(r.Body).Decode(&n)
		received <- n
	}))
	defer srv.Close()

	app := fiber.New()
	app.Use(ErrNotify(srv.URL))
	app.Post("/fail", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(apimodels.ErrInternalServer))
	})
	app.Post("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run(`5xx is reported`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/fail", nil), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		select {
		case n := <-received:
			require.Equal(t, fiber.StatusInternalServerError, n.Code)
			require.Equal(t, fiber.MethodPost, n.Method)
			require.Equal(t, "/fail", n.Path)
			require.Equal(t, apimodels.ErrInternalServer, n.Error)
		case <-time.After(5 * time.Second):
			t.Fatal("notification was not sent")
		}
	})

	t.Run(`2xx is not reported`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/ok", nil), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		select {
		case <-received:
			t.Fatal("unexpected notification")
		case <-time.After(200 * time.Millisecond):
		}
	})
}
