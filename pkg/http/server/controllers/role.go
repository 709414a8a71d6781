package controllers

import (
	"github.com/hashicorp/go-hclog"
	"net/http"
	"statusdrafter/pkg/models"
	"statusdrafter/pkg/service/role"
	"statusdrafter/pkg/utils"
)

type roleController struct {
	roleService role.RoleService
	logger      hclog.Logger
}

type RoleHTTPController interface {
	CreateOneRole(w http.ResponseWriter, r *http.Request)
	DeleteOneRole(w http.ResponseWriter, r *http.Request)
}

func NewRoleController(logger hclog.Logger, roleService role.RoleService) RoleHTTPController {
	return &roleController{
		roleService: roleService,
		logger:      logger.Named("role-controller"),
	}
}

func (controller *roleController) CreateOneRole(w http.ResponseWriter, r *http.Request) {
	roleBody := models.Role{}
	if err := utils.DecodeBody(r, &roleBody); err != nil {
		utils.SendError(w, err)
		return
	}
	roleBody.ID = 0

	created, err := controller.roleService.CreateOne(roleBody)
	if err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendSuccess(w, created)
}

func (controller *roleController) DeleteOneRole(w http.ResponseWriter, r *http.Request) {
	roleId, err := utils.GetIDPathParam(r, "id")
	if err != nil {
		utils.SendError(w, err)
		return
	}

	if err := controller.roleService.DeleteOneByID(models.Role{ID: roleId}); err != nil {
		utils.SendError(w, err)
		return
	}

	utils.SendDeleted(w, nil)
}
