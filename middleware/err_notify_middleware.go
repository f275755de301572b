package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	apimodels "talenttrek-backend/models/api"
)

type errNotification struct {
	Code      int    `json:"code"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrNotify отправляет уведомление на addr о каждом ответе 5xx. Пустой addr отключает уведомления
func ErrNotify(addr string) fiber.Handler {
	client := &http.Client{Timeout: 10 * time.Second}
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if addr == "" {
			return err
		}
		statusCode := c.Response().StatusCode()
		if statusCode < fiber.StatusInternalServerError {
			return err
		}

		var data apimodels.ErrorResponse
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil {
			log.WithError(unmErr).Warn("error unmarshalling response body in middleware")
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		msg := data.Error
		if msg == "" {
			msg = string(c.Response().Body())
		}
		payload, marshalErr := json.Marshal(errNotification{
			Code:      statusCode,
			Method:    c.Method(),
			Path:      path,
			Error:     msg,
			RequestID: c.GetRespHeader(fiber.HeaderXRequestID),
		})
		if marshalErr != nil {
			log.WithError(marshalErr).Warn("error marshalling error notification")
			return err
		}

		go func() {
			resp, reqErr := client.Post(addr, fiber.MIMEApplicationJSON, bytes.NewReader(payload))
			if reqErr != nil {
				log.WithError(reqErr).Warn("error sending error notification")
				return
			}
			_ = resp.Body.Close()
		}()
		return err
	}
}
