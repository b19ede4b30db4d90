package config

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger routes logrus output to stdout and a size-rotated file under
// logs/. Debug level is enabled outside production.
func InitLogger() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if os.Getenv("APP_ENV") == "production" {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(log.DebugLevel)
	}

	rotator := &lumberjack.Logger{
		Filename:   "logs/anvogue-storefront.log",
		MaxSize:    20, // MB
		MaxBackups: 5,
		MaxAge:     15, // days
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotator))
}
