package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/madsholme/spotlink/internal"
	"github.com/madsholme/spotlink/internal/constants"
	"github.com/madsholme/spotlink/internal/util"
)

func main() {
	// A .env file is optional, the envs may as well come from the actual environment
	_ = godotenv.Load()

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}

	if logFile := util.Env(constants.EnvLogFile, ""); logFile != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    20, // MB
			MaxBackups: 5,
			MaxAge:     28, // days
		}

		log.Logger = log.Output(zerolog.MultiLevelWriter(consoleWriter, fileWriter))
	} else {
		log.Logger = log.Output(consoleWriter)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	internal.RunInProduction()
}
