package apiv1

import "github.com/gofiber/fiber/v2"

const greetingText = "Hello from TalentTrek!"

// @Summary Проверка доступности
// @Tags Health
// @Produce plain
// @Success 200 {string} string
// @router / [get]
func Greeting(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).SendString(greetingText)
}
