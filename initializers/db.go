package initializers

import (
	log "github.com/sirupsen/logrus"
	"talenttrek-backend/config"
	"talenttrek-backend/db"
)

// InitDBConnection подключает БД журнала обращений к ИИ, если он включен
func InitDBConnection() {
	if !config.Conf.DatabaseEnabled() {
		log.Info("журнал обращений к ИИ отключен, БД не используется")
		return
	}
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
}
