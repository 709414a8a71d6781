package config

import (
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
)

func TestGetConfigurations(t *testing.T) {
	config1 := GetConfigurations()
	config2 := GetConfigurations()

	assert.Same(t, config1, config2, "GetConfigurations should return the same configuration object every time it's called")
}

func TestLoadConfigurations_Defaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	config := LoadConfigurations(fs, "/missing/config.yml")

	assert.Equal(t, DefaultPort, config.Port)
	assert.Equal(t, DefaultHost, config.Host)
	assert.Equal(t, "drafts.db", config.DBPath)
	assert.Equal(t, uint64(DefaultEnhanceTimeoutSeconds), config.EnhanceTimeoutSeconds)
	assert.Equal(t, DefaultOpenRouterModel, config.OpenRouterModel)
	assert.Equal(t, "http://localhost:3001", config.ServerURL())
}

func TestLoadConfigurations_FileThenEnv(t *testing.T) {
	fs := afero.NewMemMapFs()
	fileConfig := &StatusDrafterConfigurations{
		Port:            "4000",
		DBPath:          "/var/lib/statusdrafter/drafts.db",
		OpenRouterModel: "file/model",
	}
	assert.NoError(t, SaveConfigurations(fs, "/etc/config.yml", fileConfig))

	os.Setenv("STATUSDRAFTER_PORT", "5000")
	os.Setenv("OPENROUTER_API_KEY", "sk-test")
	os.Setenv("STATUSDRAFTER_ENHANCE_TIMEOUT_SECONDS", "15")
	defer os.Unsetenv("STATUSDRAFTER_PORT")
	defer os.Unsetenv("OPENROUTER_API_KEY")
	defer os.Unsetenv("STATUSDRAFTER_ENHANCE_TIMEOUT_SECONDS")

	config := LoadConfigurations(fs, "/etc/config.yml")

	assert.Equal(t, "5000", config.Port)
	assert.Equal(t, "/var/lib/statusdrafter/drafts.db", config.DBPath)
	assert.Equal(t, "file/model", config.OpenRouterModel)
	assert.Equal(t, "sk-test", config.OpenRouterAPIKey)
	assert.Equal(t, uint64(15), config.EnhanceTimeoutSeconds)
	assert.Equal(t, DefaultHost, config.Host)
}

func TestGetConfigFromEnv(t *testing.T) {
	os.Setenv("STATUSDRAFTER_LOG_LEVEL", "debug")
	os.Setenv("STATUSDRAFTER_TIMEZONE", "Europe/London")
	os.Setenv("OPENROUTER_MODEL", "env/model")
	defer os.Unsetenv("STATUSDRAFTER_LOG_LEVEL")
	defer os.Unsetenv("STATUSDRAFTER_TIMEZONE")
	defer os.Unsetenv("OPENROUTER_MODEL")

	config := getConfigFromEnv()

	assert.NotNil(t, config)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "Europe/London", config.Timezone)
	assert.Equal(t, "env/model", config.OpenRouterModel)
	assert.Equal(t, "", config.Port)
}
