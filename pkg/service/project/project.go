package project

import (
	"github.com/hashicorp/go-hclog"
	"statusdrafter/pkg/models"
	"statusdrafter/pkg/repository/project"
	"statusdrafter/pkg/utils"
)

// ProjectService project server the layer on top db repos
type projectService struct {
	projectRepo project.ProjectRepo
	logger      hclog.Logger
}

//go:generate mockery --name ProjectService --output ./ --inpackage
type ProjectService interface {
	CreateOne(project models.Project) (*models.Project, *utils.GenericError)
	GetOneByID(project *models.Project) *utils.GenericError
	GetOneByName(project *models.Project) *utils.GenericError
	DeleteOneByID(project models.Project) *utils.GenericError
	List() ([]models.Project, *utils.GenericError)
}

func NewProjectService(logger hclog.Logger, projectRepo project.ProjectRepo) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger.Named("project-service"),
	}
}

// CreateOne creates a new project
func (projectService *projectService) CreateOne(project models.Project) (*models.Project, *utils.GenericError) {
	_, err := projectService.projectRepo.CreateOne(&project)
	if err != nil {
		return nil, err
	}
	projectService.logger.Debug("created project", "id", project.ID, "name", project.Name)
	return &project, nil
}

func (projectService *projectService) GetOneByID(project *models.Project) *utils.GenericError {
	return projectService.projectRepo.GetOneByID(project)
}

// GetOneByName returns a project that matches the name
func (projectService *projectService) GetOneByName(project *models.Project) *utils.GenericError {
	return projectService.projectRepo.GetOneByName(project)
}

// DeleteOneByID deletes a single project and its roles. Deleting a missing
// project succeeds.
func (projectService *projectService) DeleteOneByID(project models.Project) *utils.GenericError {
	count, err := projectService.projectRepo.DeleteOneByID(project)
	if err != nil {
		return err
	}
	projectService.logger.Debug("deleted project", "id", project.ID, "changes", count)
	return nil
}

func (projectService *projectService) List() ([]models.Project, *utils.GenericError) {
	return projectService.projectRepo.List()
}
