package interviewhandler

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"talenttrek-backend/db"
	gpthandler "talenttrek-backend/lib/gpt"
	ailogstore "talenttrek-backend/lib/gpt/store"
	interviewapimodels "talenttrek-backend/models/api/interview"
	dbmodels "talenttrek-backend/models/db"
)

type Provider interface {
	// GenerateQuestions ровно одно обращение к ИИ на запрос, без повторов
	GenerateQuestions(ctx context.Context, jobTitle string) ([]interviewapimodels.QuestionAnswer, error)
}

type impl struct {
	gpt        gpthandler.Provider
	aiLogStore ailogstore.Provider
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(gpthandler.Instance, ailogstore.NewInstance(db.DB))
}

func NewInstance(gpt gpthandler.Provider, aiLogStore ailogstore.Provider) Provider {
	return impl{
		gpt:        gpt,
		aiLogStore: aiLogStore,
	}
}

func (i impl) GenerateQuestions(ctx context.Context, jobTitle string) (questions []interviewapimodels.QuestionAnswer, err error) {
	jobTitle = strings.TrimSpace(jobTitle)
	logger := log.WithField("job_title", jobTitle)
	logger.Info("запрос на генерацию вопросов для интервью")
	if jobTitle == "" {
		return nil, newError(InvalidRequest, interviewapimodels.ErrEmptyJobTitle)
	}

	started := time.Now()
	defer func() {
		i.saveAiLog(ctx, jobTitle, time.Since(started), err)
	}()

	raw, err := i.gpt.Generate(ctx, buildPromt(jobTitle))
	if err != nil {
		logger.
			WithField("ai_name", i.gpt.AiName()).
			WithError(err).
			Error("ошибка генерации вопросов через ИИ")
		return nil, newError(UpstreamInvocationError, err)
	}
	logger.WithField("raw_response", raw).Info("получен ответ ИИ")

	questions, err = parseQuestions(raw)
	if err != nil {
		logger.
			WithField("raw_response", raw).
			WithField("error_kind", KindOf(err)).
			WithError(err).
			Error("ошибка разбора ответа ИИ")
		return nil, err
	}
	return questions, nil
}

func (i impl) saveAiLog(ctx context.Context, jobTitle string, duration time.Duration, genErr error) {
	rec := dbmodels.AiLog{
		JobTitle:   jobTitle,
		ReqestType: dbmodels.AiInterviewQuestionsType,
		AiName:     i.gpt.AiName(),
		Model:      i.gpt.Model(),
		Status:     dbmodels.AiLogSuccess,
		Duration:   duration,
	}
	if genErr != nil {
		rec.Status = dbmodels.AiLogFail
		rec.ErrorKind = string(KindOf(genErr))
	}
	// запрос клиента мог завершиться, запись журнала не должна от этого зависеть
	if _, err := i.aiLogStore.Save(context.WithoutCancel(ctx), rec); err != nil {
		log.
			WithField("job_title", jobTitle).
			WithError(err).
			Warn("не удалось сохранить журнал обращения к ИИ")
	}
}
