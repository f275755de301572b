package config

import (
	"strconv"
	"strings"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DefaultPort = 8000

var DefaultCorsOrigins = []string{"http://localhost:5174", "https://talenttrek.vercel.app"}

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		// строка, а не int: неверное значение PORT не должно ронять старт
		Port       string `default:"" env:"PORT"`
		BodyLimit  int    `default:"1048576" env:"APP_BODY_LIMIT"`
		LogLevel   string `default:"info" env:"LOG_LEVEL"`
	}
	AI struct {
		Provider string `default:"gemini" env:"AI_PROVIDER"` // gemini | yandexgpt
	}
	Gemini struct {
		APIKey string `default:"" env:"GEMINI_API_KEY"`
		Model  string `default:"gemini-2.0-flash" env:"GEMINI_MODEL"`
	}
	YandexGPT struct {
		IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
		CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
	}
	Cors struct {
		AllowOrigins string `default:"http://localhost:5174,https://talenttrek.vercel.app" env:"CORS_ALLOW_ORIGINS"`
	}
	Database struct {
		Enabled        *bool  `default:"false" env:"DB_ENABLED"`
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"talenttrek" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	ErrNotify struct {
		Addr string `default:"" env:"ERR_NOTIFY_ADDR"`
	}
}

// ListenPort возвращает порт из PORT, либо DefaultPort если значение не задано или некорректно
func (c Configuration) ListenPort() int {
	port, err := strconv.Atoi(strings.TrimSpace(c.App.Port))
	if err != nil || port <= 0 || port > 65535 {
		return DefaultPort
	}
	return port
}

// CorsOrigins возвращает список разрешенных origin без завершающих слешей.
// Пустой список заменяется на DefaultCorsOrigins, иначе cors разрешит любой origin
func (c Configuration) CorsOrigins() []string {
	result := []string{}
	for _, origin := range strings.Split(c.Cors.AllowOrigins, ",") {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin != "" {
			result = append(result, origin)
		}
	}
	if len(result) == 0 {
		return append([]string{}, DefaultCorsOrigins...)
	}
	return result
}

func (c Configuration) DatabaseEnabled() bool {
	return c.Database.Enabled != nil && *c.Database.Enabled
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("файл .env не загружен")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
