package initializers

import (
	"context"

	"talenttrek-backend/config"
	"talenttrek-backend/fiberlog"
	xlsexport "talenttrek-backend/lib/export/xls"
	gpthandler "talenttrek-backend/lib/gpt"
	interviewhandler "talenttrek-backend/lib/interview"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)
	InitDBConnection()
	gpthandler.NewHandler(ctx)
	interviewhandler.NewHandler()
	xlsexport.NewHandler()
}
