package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/timelogger/timelogger/internal/cli"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	cli.Execute()
}
