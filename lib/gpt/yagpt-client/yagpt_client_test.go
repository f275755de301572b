package yagptclient

import (
	"testing"

	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run(`credentials required`, func(t *testing.T) {
		cases := [][2]string{{"", ""}, {"token", ""}, {"", "catalog"}}
		for _, c := range cases {
			client, err := NewClient(c[0], c[1])
			require.NotNil(t, err)
			require.Nil(t, client)
		}
	})

	t.Run(`model name`, func(t *testing.T) {
		client, err := NewClient("token", "catalog")
		require.Nil(t, err)
		require.Equal(t, "yandexgpt-lite", client.Model())
	})
}

func TestFirstAlternative(t *testing.T) {
	t.Run(`empty alternatives`, func(t *testing.T) {
		text, err := firstAlternative(yandexgptclient.YandexGPTResponse{})
		require.NotNil(t, err)
		require.Empty(t, text)
	})

	t.Run(`first alternative taken`, func(t *testing.T) {
		response := yandexgptclient.YandexGPTResponse{}
		response.Result.Alternatives = []yandexgptclient.YandexGPTAlternative{
			{Message: yandexgptclient.YandexGPTMessage{Text: "[1]"}},
			{Message: yandexgptclient.YandexGPTMessage{Text: "[2]"}},
		}
		text, err := firstAlternative(response)
		require.Nil(t, err)
		require.Equal(t, "[1]", text)
	})
}
