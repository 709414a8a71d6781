package project

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

//go:generate mockery --name ProjectRepo --output ./ --inpackage
type ProjectRepo interface {
	CreateOne(project *models.Project) (int64, *utils.GenericError)
	GetOneByName(project *models.Project) *utils.GenericError
	GetOneByID(project *models.Project) *utils.GenericError
	List() ([]models.Project, *utils.GenericError)
	DeleteOneByID(project models.Project) (int64, *utils.GenericError)
}

type projectRepo struct {
	conn   *sql.DB
	logger hclog.Logger
}

func NewProjectRepo(logger hclog.Logger, conn *sql.DB) ProjectRepo {
	return &projectRepo{
		conn:   conn,
		logger: logger.Named("project-repo"),
	}
}

// CreateOne inserts a project, a duplicate name fails with the store's unique constraint
func (projectRepo *projectRepo) CreateOne(project *models.Project) (int64, *utils.GenericError) {
	res, err := sq.Insert(constants.ProjectsTableName).
		Columns(constants.ProjectsNameColumn).
		Values(project.Name).
		RunWith(projectRepo.conn).
		Exec()
	if err != nil {
		projectRepo.logger.Error("failed to insert project", "name", project.Name, "error", err.Error())
		return -1, utils.StoreError(err)
	}

	insertedId, err := res.LastInsertId()
	if err != nil {
		return -1, utils.StoreError(err)
	}
	project.ID = insertedId

	return insertedId, nil
}

// GetOneByName returns a project with a matching name
func (projectRepo *projectRepo) GetOneByName(project *models.Project) *utils.GenericError {
	err := sq.Select(
		constants.ProjectsIdColumn,
		constants.ProjectsNameColumn,
	).
		From(constants.ProjectsTableName).
		Where(fmt.Sprintf("%s = ?", constants.ProjectsNameColumn), project.Name).
		RunWith(projectRepo.conn).
		QueryRow().
		Scan(&project.ID, &project.Name)
	if err == sql.ErrNoRows {
		return utils.HTTPGenericError(http.StatusNotFound, "project with name : "+project.Name+" does not exist")
	}
	if err != nil {
		return utils.StoreError(err)
	}
	return nil
}

// GetOneByID returns a project that matches the id
func (projectRepo *projectRepo) GetOneByID(project *models.Project) *utils.GenericError {
	err := sq.Select(
		constants.ProjectsIdColumn,
		constants.ProjectsNameColumn,
	).
		From(constants.ProjectsTableName).
		Where(fmt.Sprintf("%s = ?", constants.ProjectsIdColumn), project.ID).
		RunWith(projectRepo.conn).
		QueryRow().
		Scan(&project.ID, &project.Name)
	if err == sql.ErrNoRows {
		return utils.HTTPGenericError(http.StatusNotFound, "project does not exist")
	}
	if err != nil {
		return utils.StoreError(err)
	}
	return nil
}

// List returns every project in insertion order
func (projectRepo *projectRepo) List() ([]models.Project, *utils.GenericError) {
	rows, err := sq.Select(
		constants.ProjectsIdColumn,
		constants.ProjectsNameColumn,
	).
		From(constants.ProjectsTableName).
		OrderBy(constants.ProjectsIdColumn).
		RunWith(projectRepo.conn).
		Query()
	if err != nil {
		return nil, utils.StoreError(err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		project := models.Project{}
		if err := rows.Scan(&project.ID, &project.Name); err != nil {
			return nil, utils.StoreError(err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, utils.StoreError(err)
	}

	return projects, nil
}

// DeleteOneByID deletes a project, its roles go with it. Drafts keep their
// project id. A missing id is not an error.
func (projectRepo *projectRepo) DeleteOneByID(project models.Project) (int64, *utils.GenericError) {
	res, err := sq.Delete(constants.ProjectsTableName).
		Where(fmt.Sprintf("%s = ?", constants.ProjectsIdColumn), project.ID).
		RunWith(projectRepo.conn).
		Exec()
	if err != nil {
		projectRepo.logger.Error("failed to delete project", "id", project.ID, "error", err.Error())
		return -1, utils.StoreError(err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return -1, utils.StoreError(err)
	}

	return count, nil
}
