package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

// BodyParser разбирает JSON тело запроса независимо от Content-Type, пустое тело не является ошибкой
func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	body := ctx.Body()
	if len(body) == 0 {
		return nil
	}
	if err := ctx.App().Config().JSONDecoder(body, out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}
