package config

import (
	"fmt"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
	"os"
	"path/filepath"
	"statusdrafter/pkg/constants"
	"sync"
)

const (
	DefaultLogLevel              = "INFO"
	DefaultHost                  = "localhost"
	DefaultPort                  = "3001"
	DefaultTimezone              = "Local"
	DefaultEnhanceTimeoutSeconds = 60
	DefaultOpenRouterModel       = "tngtech/deepseek-r1t2-chimera:free"
	DefaultOpenRouterURL         = "https://openrouter.ai/api/v1/chat/completions"
)

// StatusDrafterConfigurations global configurations
type StatusDrafterConfigurations struct {
	LogLevel              string `json:"logLevel" yaml:"LogLevel"`
	Host                  string `json:"host" yaml:"Host"`
	Port                  string `json:"port" yaml:"Port"`
	DBPath                string `json:"dbPath" yaml:"DBPath"`
	StaticDir             string `json:"staticDir" yaml:"StaticDir"`
	Timezone              string `json:"timezone" yaml:"Timezone"`
	EnhanceTimeoutSeconds uint64 `json:"enhanceTimeoutSeconds" yaml:"EnhanceTimeoutSeconds"`
	OpenRouterAPIKey      string `json:"openRouterApiKey" yaml:"OpenRouterAPIKey"`
	OpenRouterModel       string `json:"openRouterModel" yaml:"OpenRouterModel"`
	OpenRouterURL         string `json:"openRouterUrl" yaml:"OpenRouterURL"`
}

// ServerURL is the base address clients use to reach the API
func (configs *StatusDrafterConfigurations) ServerURL() string {
	return fmt.Sprintf("http://%s:%s", configs.Host, configs.Port)
}

type StatusDrafterConfig interface {
	GetConfigurations() *StatusDrafterConfigurations
}

type statusDrafterConfig struct{}

func NewStatusDrafterConfig() StatusDrafterConfig {
	return &statusDrafterConfig{}
}

func (_ *statusDrafterConfig) GetConfigurations() *StatusDrafterConfigurations {
	return GetConfigurations()
}

// env var names keyed by the viper key they are bound to
var envBindings = map[string]string{
	"LogLevel":              "STATUSDRAFTER_LOG_LEVEL",
	"Host":                  "STATUSDRAFTER_HOST",
	"Port":                  "STATUSDRAFTER_PORT",
	"DBPath":                "STATUSDRAFTER_DB_PATH",
	"StaticDir":             "STATUSDRAFTER_STATIC_DIR",
	"Timezone":              "STATUSDRAFTER_TIMEZONE",
	"EnhanceTimeoutSeconds": "STATUSDRAFTER_ENHANCE_TIMEOUT_SECONDS",
	"OpenRouterAPIKey":      "OPENROUTER_API_KEY",
	"OpenRouterModel":       "OPENROUTER_MODEL",
	"OpenRouterURL":         "OPENROUTER_URL",
}

var cachedConfig *StatusDrafterConfigurations
var once sync.Once

// GetConfigurations returns the configurations, the file and the environment
// are read once per process
func GetConfigurations() *StatusDrafterConfigurations {
	once.Do(func() {
		cachedConfig = LoadConfigurations(afero.NewOsFs(), ConfigFilePath())
	})
	return cachedConfig
}

// LoadConfigurations layers defaults, the yaml file at path (when present)
// and the environment, in that order
func LoadConfigurations(fs afero.Fs, path string) *StatusDrafterConfigurations {
	config := defaultConfig()

	fileConfig, err := getConfigFromFile(fs, path)
	if err == nil {
		merge(config, fileConfig)
	}

	merge(config, getConfigFromEnv())

	return config
}

func ConfigFilePath() string {
	dir, err := os.Getwd()
	if err != nil {
		return constants.ConfigFileName
	}
	return filepath.Join(dir, constants.ConfigFileName)
}

// SaveConfigurations writes configs as yaml to path
func SaveConfigurations(fs afero.Fs, path string, configs *StatusDrafterConfigurations) error {
	data, err := yaml.Marshal(configs)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0600)
}

func defaultConfig() *StatusDrafterConfigurations {
	return &StatusDrafterConfigurations{
		LogLevel:              DefaultLogLevel,
		Host:                  DefaultHost,
		Port:                  DefaultPort,
		DBPath:                constants.SqliteDbFileName,
		Timezone:              DefaultTimezone,
		EnhanceTimeoutSeconds: DefaultEnhanceTimeoutSeconds,
		OpenRouterModel:       DefaultOpenRouterModel,
		OpenRouterURL:         DefaultOpenRouterURL,
	}
}

func getConfigFromFile(fs afero.Fs, path string) (*StatusDrafterConfigurations, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	config := StatusDrafterConfigurations{}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func getConfigFromEnv() *StatusDrafterConfigurations {
	v := viper.New()
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	return &StatusDrafterConfigurations{
		LogLevel:              v.GetString("LogLevel"),
		Host:                  v.GetString("Host"),
		Port:                  v.GetString("Port"),
		DBPath:                v.GetString("DBPath"),
		StaticDir:             v.GetString("StaticDir"),
		Timezone:              v.GetString("Timezone"),
		EnhanceTimeoutSeconds: v.GetUint64("EnhanceTimeoutSeconds"),
		OpenRouterAPIKey:      v.GetString("OpenRouterAPIKey"),
		OpenRouterModel:       v.GetString("OpenRouterModel"),
		OpenRouterURL:         v.GetString("OpenRouterURL"),
	}
}

// merge copies every non zero value of src over dst
func merge(dst *StatusDrafterConfigurations, src *StatusDrafterConfigurations) {
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Host != "" {
		dst.Host = src.Host
	}
	if src.Port != "" {
		dst.Port = src.Port
	}
	if src.DBPath != "" {
		dst.DBPath = src.DBPath
	}
	if src.StaticDir != "" {
		dst.StaticDir = src.StaticDir
	}
	if src.Timezone != "" {
		dst.Timezone = src.Timezone
	}
	if src.EnhanceTimeoutSeconds != 0 {
		dst.EnhanceTimeoutSeconds = src.EnhanceTimeoutSeconds
	}
	if src.OpenRouterAPIKey != "" {
		dst.OpenRouterAPIKey = src.OpenRouterAPIKey
	}
	if src.OpenRouterModel != "" {
		dst.OpenRouterModel = src.OpenRouterModel
	}
	if src.OpenRouterURL != "" {
		dst.OpenRouterURL = src.OpenRouterURL
	}
}
