package main

import (
	"os"

	"bikeshare/config"
	"bikeshare/loader"
	"bikeshare/prompt"
	"bikeshare/session"

	log "github.com/sirupsen/logrus"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

func main() {
	explorerConfig, err := config.LoadConfig(config.ConfigFilepath)
	if err != nil {
		log.Fatalf("[component: explorer][status: error] error loading config: %s", err.Error())
	}

	if err := InitLogger(explorerConfig.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}

	prompter := prompt.NewPrompter(os.Stdin, os.Stdout)
	explorerSession := session.NewSession(explorerConfig, prompter, loader.NewLoader(explorerConfig))

	if err := explorerSession.Run(); err != nil {
		log.Fatalf("[component: explorer][status: error] %s", err.Error())
	}

	log.Debug("[component: explorer] finish main.go")
}
