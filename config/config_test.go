package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfiguration(t *testing.T) {
	t.Run(`ListenPort check`, func(t *testing.T) {
		conf := Configuration{}
		cases := map[string]int{
			"":      DefaultPort,
			"abc":   DefaultPort,
			"-1":    DefaultPort,
			"0":     DefaultPort,
			"70000": DefaultPort,
			"3000":  3000,
			" 8080": 8080,
		}
		for value, expected := range cases {
			conf.App.Port = value
			require.Equal(t, expected, conf.ListenPort(), value)
		}
	})

	t.Run(`CorsOrigins check`, func(t *testing.T) {
		conf := Configuration{}
		conf.Cors.AllowOrigins = "http://localhost:5174, https://talenttrek.vercel.app/,,"
		require.Equal(t, []string{"http://localhost:5174", "https://talenttrek.vercel.app"}, conf.CorsOrigins())

		for _, value := range []string{"", " ", ",/,"} {
			conf.Cors.AllowOrigins = value
			require.Equal(t, DefaultCorsOrigins, conf.CorsOrigins(), value)
		}
	})

	t.Run(`DatabaseEnabled check`, func(t *testing.T) {
		conf := Configuration{}
		require.False(t, conf.DatabaseEnabled())
		enabled := true
		conf.Database.Enabled = &enabled
		require.True(t, conf.DatabaseEnabled())
	})
}
