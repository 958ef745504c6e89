package app

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/crossmesh/chainid/models"
	"gopkg.in/yaml.v2"
)

var (
	Config models.Config
)

func InitConfig(configFile string, envFile string) {
	readConfigFromConfigFile(configFile)
	readConfigFromEnv(envFile)
	validateConfig()
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}
	yamlFile, err := os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
	}
	return true
}

func validateConfig() {
	if Config.Logger.Level == "" {
		log.Info("[CONFIG] Logger.Level is empty, defaulting to info")
		Config.Logger.Level = "info"
	}
	if Config.Logger.Format == "" {
		log.Info("[CONFIG] Logger.Format is empty, defaulting to text")
		Config.Logger.Format = "text"
	}
}
