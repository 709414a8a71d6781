package service

import (
	"database/sql"
	"github.com/hashicorp/go-hclog"
	"net/http"
	"statusdrafter/pkg/config"
	"statusdrafter/pkg/db"
	draft_repo "statusdrafter/pkg/repository/draft"
	project_repo "statusdrafter/pkg/repository/project"
	role_repo "statusdrafter/pkg/repository/role"
	"statusdrafter/pkg/service/draft"
	"statusdrafter/pkg/service/enhancer"
	"statusdrafter/pkg/service/project"
	"statusdrafter/pkg/service/role"
	"time"
)

type Service struct {
	DataStore       db.DataStore
	ProjectService  project.ProjectService
	RoleService     role.RoleService
	DraftService    draft.DraftService
	EnhancerService enhancer.EnhancerService
}

// NewService opens the configured database, migrates it and wires every service
func NewService(logger hclog.Logger, configs *config.StatusDrafterConfigurations) (*Service, error) {
	dataStore := db.NewSqliteDbConnection(logger, configs.DBPath)
	version, err := dataStore.RunMigration()
	if err != nil {
		_ = dataStore.Close()
		return nil, err
	}
	logger.Info("database ready", "path", configs.DBPath, "schema_version", version)

	provider := enhancer.NewOpenRouterProvider(logger, configs, &http.Client{})
	serv := NewServiceWithConnection(logger, configs, dataStore.GetOpenConnection(), provider)
	serv.DataStore = dataStore
	return serv, nil
}

// NewServiceWithConnection wires the services over an already migrated connection
func NewServiceWithConnection(
	logger hclog.Logger,
	configs *config.StatusDrafterConfigurations,
	conn *sql.DB,
	provider enhancer.Provider,
) *Service {
	projectRepo := project_repo.NewProjectRepo(logger, conn)
	roleRepo := role_repo.NewRoleRepo(logger, conn)
	draftRepo := draft_repo.NewDraftRepo(logger, conn)

	timeout := time.Duration(configs.EnhanceTimeoutSeconds) * time.Second

	return &Service{
		ProjectService:  project.NewProjectService(logger, projectRepo),
		RoleService:     role.NewRoleService(logger, roleRepo),
		DraftService:    draft.NewDraftService(logger, draftRepo),
		EnhancerService: enhancer.NewEnhancerService(logger, provider, timeout),
	}
}

func (serv *Service) Close() error {
	if serv.DataStore == nil {
		return nil
	}
	return serv.DataStore.Close()
}
