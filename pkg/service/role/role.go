package role

import (
	"github.com/hashicorp/go-hclog"
	"statusdrafter/pkg/models"
	"statusdrafter/pkg/repository/role"
	"statusdrafter/pkg/utils"
)

type roleService struct {
	roleRepo role.RoleRepo
	logger   hclog.Logger
}

//go:generate mockery --name RoleService --output ./ --inpackage
type RoleService interface {
	CreateOne(role models.Role) (*models.Role, *utils.GenericError)
	ListByProjectID(projectID int64) ([]models.Role, *utils.GenericError)
	DeleteOneByID(role models.Role) *utils.GenericError
}

func NewRoleService(logger hclog.Logger, roleRepo role.RoleRepo) RoleService {
	return &roleService{
		roleRepo: roleRepo,
		logger:   logger.Named("role-service"),
	}
}

// CreateOne creates a role under an existing project
func (roleService *roleService) CreateOne(role models.Role) (*models.Role, *utils.GenericError) {
	_, err := roleService.roleRepo.CreateOne(&role)
	if err != nil {
		return nil, err
	}
	roleService.logger.Debug("created role", "id", role.ID, "project_id", role.ProjectID)
	return &role, nil
}

func (roleService *roleService) ListByProjectID(projectID int64) ([]models.Role, *utils.GenericError) {
	return roleService.roleRepo.ListByProjectID(projectID)
}

func (roleService *roleService) DeleteOneByID(role models.Role) *utils.GenericError {
	count, err := roleService.roleRepo.DeleteOneByID(role)
	if err != nil {
		return err
	}
	roleService.logger.Debug("deleted role", "id", role.ID, "changes", count)
	return nil
}
