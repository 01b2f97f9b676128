package cmd

import (
	"os"
	"path/filepath"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

func GetCurrentEnv() string {
	env := os.Getenv("SEMAFOR_ENV")
	if env == "" {
		env = "development"
	}

	return env
}

func NewLogFormatterWithEnv(env string) log.Formatter {
	switch env {
	case "production", "prod", "stag", "staging":
		// always use json formatter for production and staging
		return &log.JSONFormatter{}
	}

	return &prefixed.TextFormatter{}
}

// setupLogging configures the standard logger. Production environments also keep a
// size rotated json log under logDir.
func setupLogging(logger *log.Logger, env string, debug bool, logDir string) {
	logger.SetFormatter(NewLogFormatterWithEnv(env))

	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	switch env {
	case "production", "prod":
		if logDir == "" {
			return
		}

		writer := &lumberjack.Logger{
			Filename:   filepath.Join(logDir, "semafor.log"),
			MaxSize:    100, // megabytes
			MaxBackups: 7,
			MaxAge:     30, // days
		}

		logger.AddHook(
			lfshook.NewHook(
				lfshook.WriterMap{
					log.DebugLevel: writer,
					log.InfoLevel:  writer,
					log.WarnLevel:  writer,
					log.ErrorLevel: writer,
					log.FatalLevel: writer,
				},
				&log.JSONFormatter{},
			),
		)
	}
}
