package gpthandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"talenttrek-backend/config"
	dbmodels "talenttrek-backend/models/db"
)

func TestNewProvider(t *testing.T) {
	t.Run(`gemini without api key fails on generate`, func(t *testing.T) {
		conf := config.Configuration{}
		conf.AI.Provider = "gemini"
		p := newProvider(context.TODO(), conf)
		require.Equal(t, dbmodels.AiGeminiType, p.AiName())
		require.Equal(t, "", p.Model())
		_, err := p.Generate(context.TODO(), "promt")
		require.NotNil(t, err)
	})

	t.Run(`empty provider means gemini`, func(t *testing.T) {
		p := newProvider(context.TODO(), config.Configuration{})
		require.Equal(t, dbmodels.AiGeminiType, p.AiName())
	})

	t.Run(`yandexgpt without token fails on generate`, func(t *testing.T) {
		conf := config.Configuration{}
		conf.AI.Provider = "yandexgpt"
		p := newProvider(context.TODO(), conf)
		require.Equal(t, dbmodels.AiYaGptType, p.AiName())
		_, err := p.Generate(context.TODO(), "promt")
		require.NotNil(t, err)
	})

	t.Run(`yandexgpt configured`, func(t *testing.T) {
		conf := config.Configuration{}
		conf.AI.Provider = "yandexgpt"
		conf.YandexGPT.IAMToken = "token"
		conf.YandexGPT.CatalogID = "catalog"
		p := newProvider(context.TODO(), conf)
		require.Equal(t, dbmodels.AiYaGptType, p.AiName())
		require.NotEmpty(t, p.Model())
	})

	t.Run(`unknown provider`, func(t *testing.T) {
		conf := config.Configuration{}
		conf.AI.Provider = "gpt-9"
		p := newProvider(context.TODO(), conf)
		_, err := p.Generate(context.TODO(), "promt")
		require.EqualError(t, err, "неизвестный провайдер ИИ: gpt-9")
	})
}
