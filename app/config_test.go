package app

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestReadConfigFromConfigFile(t *testing.T) {
	t.Run("Config File Provided", func(t *testing.T) {
		configFile := "../config.sample.yml"

		read := readConfigFromConfigFile(configFile)

		assert.Equal(t, read, true)
		assert.Equal(t, Config.Logger.Level, "debug")
		assert.Equal(t, Config.Logger.Format, "text")
	})

	t.Run("No Config File Provided", func(t *testing.T) {
		configFile := ""

		read := readConfigFromConfigFile(configFile)
		assert.Equal(t, read, false)
	})

	t.Run("Invalid Config File Path", func(t *testing.T) {
		configFile := "../config.sample.invalid.yml"

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { readConfigFromConfigFile(configFile) }, "readConfigFromConfigFile should panic")
	})

	t.Run("Invalid Config File Contents", func(t *testing.T) {
		configFile := "../README.md"

		defer func() { log.StandardLogger().ExitFunc = nil }()
		log.StandardLogger().ExitFunc = func(num int) { panic(fmt.Sprintf("exit %d", num)) }

		assert.Panics(t, func() { readConfigFromConfigFile(configFile) }, "readConfigFromConfigFile should panic")
	})
}

func TestReadConfigFromEnv(t *testing.T) {
	t.Run("Env File Provided", func(t *testing.T) {
		Config.Logger.Level = ""
		Config.Logger.Format = ""

		readConfigFromEnv("../sample.env")

		assert.Equal(t, Config.Logger.Level, "debug")
		assert.Equal(t, Config.Logger.Format, "text")
	})

	t.Run("Env Overrides Config File", func(t *testing.T) {
		readConfigFromConfigFile("../config.sample.yml")
		t.Setenv("LOGGER_LEVEL", "warn")

		readConfigFromEnv("")

		assert.Equal(t, Config.Logger.Level, "warn")
	})
}

func TestValidateConfig(t *testing.T) {
	t.Run("Defaults Applied", func(t *testing.T) {
		Config.Logger.Level = ""
		Config.Logger.Format = ""

		validateConfig()

		assert.Equal(t, Config.Logger.Level, "info")
		assert.Equal(t, Config.Logger.Format, "text")
	})

	t.Run("Existing Values Kept", func(t *testing.T) {
		Config.Logger.Level = "error"
		Config.Logger.Format = "json"

		validateConfig()

		assert.Equal(t, Config.Logger.Level, "error")
		assert.Equal(t, Config.Logger.Format, "json")
	})
}

func TestInitConfig(t *testing.T) {
	t.Run("Config Initialization Success", func(t *testing.T) {
		configFile := "../config.sample.yml"
		envFile := "../sample.env"

		InitConfig(configFile, envFile)
	})

	t.Run("Config Initialization No Config File", func(t *testing.T) {
		configFile := ""
		envFile := "../sample.env"

		InitConfig(configFile, envFile)
	})
}
