package controllers

import (
	"github.com/hashicorp/go-hclog"
	"net/http"
	"statusdrafter/pkg/models"
	"statusdrafter/pkg/service/project"
	"statusdrafter/pkg/service/role"
	"statusdrafter/pkg/utils"
)

type projectController struct {
	projectService project.ProjectService
	roleService    role.RoleService
	logger         hclog.Logger
}

type ProjectHTTPController interface {
	CreateOneProject(w http.ResponseWriter, r *http.Request)
	ListProjects(w http.ResponseWriter, r *http.Request)
	DeleteOneProject(w http.ResponseWriter, r *http.Request)
	ListProjectRoles(w http.ResponseWriter, r *http.Request)
}

func NewProjectController(logger hclog.Logger, projectService project.ProjectService, roleService role.RoleService) ProjectHTTPController {
	return &projectController{
		projectService: projectService,
		roleService:    roleService,
		logger:         logger.Named("project-controller"),
	}
}

func (controller *projectController) CreateOneProject(w http.ResponseWriter, r *http.Request) {
	projectBody := models.Project{}
	if err := utils.DecodeBody(r, &projectBody); err != nil {
		utils.SendError(w, err)
		return
	}
	projectBody.ID = 0

	created, err := controller.projectService.CreateOne(projectBody)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendSuccess(w, created)
}

func (controller *projectController) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := controller.projectService.List()
	if err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendSuccess(w, projects)
}

func (controller *projectController) DeleteOneProject(w http.ResponseWriter, r *http.Request) {
	projectId, err := utils.GetIDPathParam(r, "id")
	if err != nil {
		utils.SendError(w, err)
		return
	}

	if err := controller.projectService.DeleteOneByID(models.Project{ID: projectId}); err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendDeleted(w, nil)
}

func (controller *projectController) ListProjectRoles(w http.ResponseWriter, r *http.Request) {
	projectId, err := utils.GetIDPathParam(r, "id")
	if err != nil {
		utils.SendError(w, err)
		return
	}

	roles, err := controller.roleService.ListByProjectID(projectId)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendSuccess(w, roles)
}
