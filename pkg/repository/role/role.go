package role

import (
	"database/sql"
	"fmt"
	sq "github.com/Masterminds/squirrel"
	"github.com/hashicorp/go-hclog"
	"net/http"
	"statusdrafter/pkg/constants"
	"statusdrafter/pkg/models"
	"statusdrafter/pkg/utils"
)

//go:generate mockery --name RoleRepo --output ./ --inpackage
type RoleRepo interface {
	CreateOne(role *models.Role) (int64, *utils.GenericError)
	GetOneByID(role *models.Role) *utils.GenericError
	ListByProjectID(projectID int64) ([]models.Role, *utils.GenericError)
	DeleteOneByID(role models.Role) (int64, *utils.GenericError)
}

type roleRepo struct {
	conn   *sql.DB
	logger hclog.Logger
}

func NewRoleRepo(logger hclog.Logger, conn *sql.DB) RoleRepo {
	return &roleRepo{
		conn:   conn,
		logger: logger.Named("role-repo"),
	}
}

// CreateOne inserts a role, the foreign key rejects unknown projects
func (roleRepo *roleRepo) CreateOne(role *models.Role) (int64, *utils.GenericError) {
	res, err := sq.Insert(constants.RolesTableName).
		Columns(
			constants.RolesNameColumn,
			constants.RolesProjectIdColumn,
		).
		Values(
			role.Name,
			role.ProjectID,
		).
		RunWith(roleRepo.conn).
		Exec()
	if err != nil {
		roleRepo.logger.Error("failed to insert role", "name", role.Name, "project_id", role.ProjectID, "error", err.Error())
		return -1, utils.StoreError(err)
	}

	insertedId, err := res.LastInsertId()
	if err != nil {
		return -1, utils.StoreError(err)
	}
	role.ID = insertedId

	return insertedId, nil
}

func (roleRepo *roleRepo) GetOneByID(role *models.Role) *utils.GenericError {
	err := sq.Select(
		constants.RolesIdColumn,
		constants.RolesProjectIdColumn,
		constants.RolesNameColumn,
	).
		From(constants.RolesTableName).
		Where(fmt.Sprintf("%s = ?", constants.RolesIdColumn), role.ID).
		RunWith(roleRepo.conn).
		QueryRow().
		Scan(&role.ID, &role.ProjectID, &role.Name)
	if err == sql.ErrNoRows {
		return utils.HTTPGenericError(http.StatusNotFound, "role does not exist")
	}
	if err != nil {
		return utils.StoreError(err)
	}
	return nil
}

// ListByProjectID returns the roles of a project, empty for unknown projects
func (roleRepo *roleRepo) ListByProjectID(projectID int64) ([]models.Role, *utils.GenericError) {
	rows, err := sq.Select(
		constants.RolesIdColumn,
		constants.RolesProjectIdColumn,
		constants.RolesNameColumn,
	).
		From(constants.RolesTableName).
		Where(fmt.Sprintf("%s = ?", constants.RolesProjectIdColumn), projectID).
		OrderBy(constants.RolesIdColumn).
		RunWith(roleRepo.conn).
		Query()
	if err != nil {
		return nil, utils.StoreError(err)
	}
	defer rows.Close()

	roles := []models.Role{}
	for rows.Next() {
		role := models.Role{}
		if err := rows.Scan(&role.ID, &role.ProjectID, &role.Name); err != nil {
			return nil, utils.StoreError(err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, utils.StoreError(err)
	}

	return roles, nil
}

func (roleRepo *roleRepo) DeleteOneByID(role models.Role) (int64, *utils.GenericError) {
	res, err := sq.Delete(constants.RolesTableName).
		Where(fmt.Sprintf("%s = ?", constants.RolesIdColumn), role.ID).
		RunWith(roleRepo.conn).
		Exec()
	if err != nil {
		roleRepo.logger.Error("failed to delete role", "id", role.ID, "error", err.Error())
		return -1, utils.StoreError(err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return -1, utils.StoreError(err)
	}

	return count, nil
}
