package server

import (
	"context"
	"errors"
	"fmt"
	httpLogger "github.com/go-http-utils/logger"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/unrolled/secure"
	"io"
	"net/http"
	"os"
	"statusdrafter/pkg/config"
	"statusdrafter/pkg/constants"
	"statusdrafter/pkg/http/server/controllers"
	"statusdrafter/pkg/http/server/middlewares"
	"statusdrafter/pkg/service"
	"time"
)

// NewRouter mounts the REST API under /api and, when a static directory is
// configured, the browser UI at the root
func NewRouter(logger hclog.Logger, configs *config.StatusDrafterConfigurations, serv *service.Service) *mux.Router {
	router := mux.NewRouter()

	// Security middleware
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
	})

	// Initialize controllers
	draftController := controllers.NewDraftController(logger, serv.DraftService)
	projectController := controllers.NewProjectController(logger, serv.ProjectService, serv.RoleService)
	roleController := controllers.NewRoleController(logger, serv.RoleService)
	enhanceController := controllers.NewEnhanceController(logger, serv.EnhancerService)
	healthCheckController := controllers.NewHealthCheckController(logger, serv.DataStore)

	// Mount middleware
	middleware := middlewares.NewMiddlewareHandler(logger)

	router.Use(middleware.RecoveryMiddleware)
	router.Use(secureMiddleware.Handler)
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.ContextMiddleware)

	api := constants.APIBase

	// Drafts Endpoint
	router.HandleFunc(fmt.Sprintf("%s/drafts", api), draftController.ListDrafts).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc(fmt.Sprintf("%s/drafts", api), draftController.CreateOneDraft).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc(fmt.Sprintf("%s/drafts/{id}", api), draftController.DeleteOneDraft).Methods(http.MethodDelete, http.MethodOptions)

	// Projects Endpoint
	router.HandleFunc(fmt.Sprintf("%s/projects", api), projectController.ListProjects).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc(fmt.Sprintf("%s/projects", api), projectController.CreateOneProject).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc(fmt.Sprintf("%s/projects/{id}", api), projectController.DeleteOneProject).Methods(http.MethodDelete, http.MethodOptions)
	router.HandleFunc(fmt.Sprintf("%s/projects/{id}/roles", api), projectController.ListProjectRoles).Methods(http.MethodGet, http.MethodOptions)

	// Roles Endpoint
	router.HandleFunc(fmt.Sprintf("%s/roles", api), roleController.CreateOneRole).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc(fmt.Sprintf("%s/roles/{id}", api), roleController.DeleteOneRole).Methods(http.MethodDelete, http.MethodOptions)

	// Enhance Endpoint
	router.HandleFunc(fmt.Sprintf("%s/enhance", api), enhanceController.Enhance).Methods(http.MethodPost, http.MethodOptions)

	// Healthcheck Endpoint
	router.HandleFunc(fmt.Sprintf("%s/healthcheck", api), healthCheckController.HealthCheck).Methods(http.MethodGet)

	if configs.StaticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(configs.StaticDir))).Methods(http.MethodGet)
	}

	return router
}

// NewHandler wraps the router with the combined access log
func NewHandler(logger hclog.Logger, configs *config.StatusDrafterConfigurations, serv *service.Service, accessLog io.Writer) http.Handler {
	return httpLogger.Handler(NewRouter(logger, configs, serv), accessLog, httpLogger.CombineLoggerType)
}

// Start runs the http server until ctx is cancelled
func Start(ctx context.Context) error {
	configs := config.NewStatusDrafterConfig().GetConfigurations()
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  constants.AppName,
		Level: hclog.LevelFromString(configs.LogLevel),
	})

	serv, err := service.NewService(logger, configs)
	if err != nil {
		logger.Error("failed to initialize services", "error", err.Error())
		return err
	}
	defer serv.Close()

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", configs.Host, configs.Port),
		Handler:           NewHandler(logger, configs, serv, os.Stderr),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("server is running", "address", configs.ServerURL())
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("failed to start http-server", "error", err.Error())
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down http-server")
		return server.Shutdown(shutdownCtx)
	}
}
