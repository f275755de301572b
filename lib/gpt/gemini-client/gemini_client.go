package geminiclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

type Provider interface {
	GenerateByPromt(ctx context.Context, promt string) (generatedText string, err error)
	Model() string
}

type impl struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (Provider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("не задан API ключ Gemini")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания клиента Gemini")
	}
	if model == "" {
		model = DefaultModel
	}
	return impl{
		client: client,
		model:  model,
	}, nil
}

func (i impl) Model() string {
	return i.model
}

func (i impl) GenerateByPromt(ctx context.Context, promt string) (string, error) {
	result, err := i.client.Models.GenerateContent(ctx, i.model, genai.Text(promt), nil)
	if err != nil {
		return "", describeError(err)
	}
	return result.Text(), nil
}

func describeError(err error) error {
	code := 0
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr):
		code = apiErrPtr.Code
	}
	switch {
	case code == http.StatusTooManyRequests:
		return errors.Wrap(err, "превышена квота запросов к API Gemini")
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return errors.Wrap(err, "ошибка авторизации в API Gemini")
	case code >= http.StatusInternalServerError:
		return errors.Wrap(err, "API Gemini недоступно")
	}
	return errors.Wrap(err, "ошибка при отправке запроса на генерацию в API Gemini")
}
