package yagptclient

import (
	"context"

	"github.com/pkg/errors"
	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
)

type Provider interface {
	GenerateByPromt(ctx context.Context, promt string) (generatedText string, err error)
	Model() string
}

type impl struct {
	client    *yandexgptclient.YandexGPTClient
	catalogID string
}

func NewClient(token, catalog string) (Provider, error) {
	if token == "" || catalog == "" {
		return nil, errors.New("не заданы IAM токен или каталог YandexGPT")
	}
	return impl{
		client:    yandexgptclient.NewYandexGPTClientWithIAMToken(token),
		catalogID: catalog,
	}, nil
}

func (i impl) Model() string {
	return yandexgptclient.YandexGPTModelLite.String()
}

func (i impl) GenerateByPromt(ctx context.Context, promt string) (string, error) {
	request := yandexgptclient.YandexGPTRequest{
		ModelURI: yandexgptclient.MakeModelURI(i.catalogID, yandexgptclient.YandexGPTModelLite),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: 0.3,
			MaxTokens:   2000,
		},
		Messages: []yandexgptclient.YandexGPTMessage{
			{
				Role: yandexgptclient.YandexGPTMessageRoleUser,
				Text: promt,
			},
		},
	}

	response, err := i.client.CreateRequest(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "ошибка при отправке запроса на генерацию в API YandexGPT")
	}
	return firstAlternative(response)
}

func firstAlternative(response yandexgptclient.YandexGPTResponse) (string, error) {
	if len(response.Result.Alternatives) == 0 {
		return "", errors.New("API YandexGPT вернуло пустой ответ")
	}
	return response.Result.Alternatives[0].Message.Text, nil
}
