package gpthandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talenttrek-backend/config"
	geminiclient "talenttrek-backend/lib/gpt/gemini-client"
	yagptclient "talenttrek-backend/lib/gpt/yagpt-client"
	dbmodels "talenttrek-backend/models/db"
)

// Provider генерация текста по промту во внешнем ИИ
type Provider interface {
	Generate(ctx context.Context, promt string) (text string, err error)
	AiName() dbmodels.AiName
	Model() string
}

type client interface {
	GenerateByPromt(ctx context.Context, promt string) (string, error)
	Model() string
}

type impl struct {
	aiName dbmodels.AiName
	client client
	// ошибка инициализации клиента, возвращается на каждый запрос
	initErr error
}

var Instance Provider

func NewHandler(ctx context.Context) {
	Instance = newProvider(ctx, *config.Conf)
}

func newProvider(ctx context.Context, conf config.Configuration) Provider {
	var (
		aiName dbmodels.AiName
		cl     client
		err    error
	)
	switch dbmodels.AiName(conf.AI.Provider) {
	case dbmodels.AiYaGptType:
		aiName = dbmodels.AiYaGptType
		cl, err = yagptclient.NewClient(conf.YandexGPT.IAMToken, conf.YandexGPT.CatalogID)
	case dbmodels.AiGeminiType, "":
		aiName = dbmodels.AiGeminiType
		cl, err = geminiclient.NewClient(ctx, conf.Gemini.APIKey, conf.Gemini.Model)
	default:
		aiName = dbmodels.AiName(conf.AI.Provider)
		err = errors.Errorf("неизвестный провайдер ИИ: %s", conf.AI.Provider)
	}
	if err != nil {
		// сервис стартует, но каждый запрос генерации завершится ошибкой
		log.
			WithField("ai_name", aiName).
			WithError(err).
			Error("ошибка инициализации клиента ИИ")
		return impl{aiName: aiName, initErr: err}
	}
	log.WithField("ai_name", aiName).WithField("model", cl.Model()).Info("клиент ИИ инициализирован")
	return impl{aiName: aiName, client: cl}
}

func (i impl) Generate(ctx context.Context, promt string) (string, error) {
	if i.initErr != nil {
		return "", i.initErr
	}
	return i.client.GenerateByPromt(ctx, promt)
}

func (i impl) AiName() dbmodels.AiName {
	return i.aiName
}

func (i impl) Model() string {
	if i.client == nil {
		return ""
	}
	return i.client.Model()
}
