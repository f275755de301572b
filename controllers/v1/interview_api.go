package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"talenttrek-backend/controllers"
	pdfexport "talenttrek-backend/lib/export/pdf"
	xlsexport "talenttrek-backend/lib/export/xls"
	interviewhandler "talenttrek-backend/lib/interview"
	apimodels "talenttrek-backend/models/api"
	interviewapimodels "talenttrek-backend/models/api/interview"

	log "github.com/sirupsen/logrus"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app fiber.Router) {
	controller := interviewApiController{}
	app.Route("generate-interview-questions", func(route fiber.Router) {
		route.Post("", controller.GenerateQuestions)
		route.Post("xlsx", controller.ExportQuestionsXlsx)
		route.Post("pdf", controller.ExportQuestionsPdf)
	})
}

// @Summary Сгенерировать вопросы для интервью
// @Tags Interview
// @Description Сгенерировать 10 вопросов с ответами для интервью по должности
// @Param	body				body		interviewapimodels.GenerateQuestionsRequest	true	"request body"
// @Success 200 {object} interviewapimodels.GenerateQuestionsResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/generate-interview-questions [post]
func (c *interviewApiController) GenerateQuestions(ctx *fiber.Ctx) error {
	payload, err := c.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	questions, err := interviewhandler.Instance.GenerateQuestions(ctx.UserContext(), payload.JobTitle)
	if err != nil {
		return sendGenerationError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(interviewapimodels.GenerateQuestionsResponse{Questions: questions})
}

// @Summary Сгенерировать вопросы для интервью в xlsx
// @Tags Interview
// @Description Сгенерировать 10 вопросов с ответами для интервью по должности и выгрузить в xlsx
// @Param	body				body		interviewapimodels.GenerateQuestionsRequest	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/generate-interview-questions/xlsx [post]
func (c *interviewApiController) ExportQuestionsXlsx(ctx *fiber.Ctx) error {
	payload, err := c.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	questions, err := interviewhandler.Instance.GenerateQuestions(ctx.UserContext(), payload.JobTitle)
	if err != nil {
		return sendGenerationError(ctx, err)
	}
	buf, err := xlsexport.Instance.ExportQuestions(payload.JobTitle, questions)
	if err != nil {
		log.WithError(err).Error("ошибка выгрузки вопросов в xlsx")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(apimodels.ErrInternalServer))
	}
	ctx.Attachment("interview-questions.xlsx")
	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Сгенерировать вопросы для интервью в pdf
// @Tags Interview
// @Description Сгенерировать 10 вопросов с ответами для интервью по должности и выгрузить в pdf
// @Param	body				body		interviewapimodels.GenerateQuestionsRequest	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/generate-interview-questions/pdf [post]
func (c *interviewApiController) ExportQuestionsPdf(ctx *fiber.Ctx) error {
	payload, err := c.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	questions, err := interviewhandler.Instance.GenerateQuestions(ctx.UserContext(), payload.JobTitle)
	if err != nil {
		return sendGenerationError(ctx, err)
	}
	body, err := pdfexport.GenerateQuestions(payload.JobTitle, questions)
	if err != nil {
		log.WithError(err).Error("ошибка выгрузки вопросов в pdf")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(apimodels.ErrInternalServer))
	}
	ctx.Attachment("interview-questions.pdf")
	ctx.Set(fiber.HeaderContentType, pdfContentType)
	return ctx.Status(fiber.StatusOK).Send(body)
}

// parseRequest текст ошибки возвращается клиенту как есть
func (c *interviewApiController) parseRequest(ctx *fiber.Ctx) (payload interviewapimodels.GenerateQuestionsRequest, err error) {
	if err = c.BodyParser(ctx, &payload); err != nil {
		return payload, errors.New(apimodels.ErrInvalidRequestBody)
	}
	if err = payload.Validate(); err != nil {
		return payload, errors.New(apimodels.ErrNoJobTitle)
	}
	return payload, nil
}

// sendGenerationError сводит типы ошибок генерации к 400 и 500, подробности остаются в логе
func sendGenerationError(ctx *fiber.Ctx, err error) error {
	if interviewhandler.KindOf(err) == interviewhandler.InvalidRequest {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(apimodels.ErrNoJobTitle))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(apimodels.ErrInternalServer))
}
