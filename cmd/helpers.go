package cmd

import (
	"github.com/hashicorp/go-hclog"
	"net/http"
	"statusdrafter/pkg/client"
	"statusdrafter/pkg/config"
	"statusdrafter/pkg/constants"
	"statusdrafter/pkg/db"
	"statusdrafter/pkg/draftime"
	"statusdrafter/pkg/orchestrator"
	"time"
)

func newLogger(configs *config.StatusDrafterConfigurations) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  constants.AppName,
		Level: hclog.LevelFromString(configs.LogLevel),
	})
}

func newClient(configs *config.StatusDrafterConfigurations) *client.Client {
	baseURL := serverURL
	if baseURL == "" {
		baseURL = configs.ServerURL()
	}
	return client.NewClient(baseURL, &http.Client{
		Timeout: time.Duration(configs.EnhanceTimeoutSeconds+5) * time.Second,
	})
}

func newClock(configs *config.StatusDrafterConfigurations) (*draftime.DrafterTime, error) {
	clock := draftime.GetDrafterTime()
	if err := clock.SetTimezone(configs.Timezone); err != nil {
		return nil, err
	}
	return clock, nil
}

func newViewModel(configs *config.StatusDrafterConfigurations, logger hclog.Logger, clock *draftime.DrafterTime) *orchestrator.ViewModel {
	return orchestrator.NewViewModel(logger, newClient(configs), clock)
}

// openMigratedDb opens the configured sqlite file and brings its schema up to date
func openMigratedDb(configs *config.StatusDrafterConfigurations, logger hclog.Logger) (db.DataStore, int, error) {
	store := db.NewSqliteDbConnection(logger, configs.DBPath)
	if _, err := store.OpenConnectionToExistingDB(); err != nil {
		return nil, 0, err
	}
	version, err := store.RunMigration()
	if err != nil {
		_ = store.Close()
		return nil, 0, err
	}
	return store, version, nil
}
