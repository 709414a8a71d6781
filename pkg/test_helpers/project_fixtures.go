package test_helpers

import (
	"database/sql"
	"fmt"
	"github.com/brianvoe/gofakeit/v6"
	"statusdrafter/pkg/constants"
	"statusdrafter/pkg/models"
	"testing"
)

func InsertProject(name string, conn *sql.DB) (int64, error) {
	rs, err := conn.Exec(fmt.Sprintf("INSERT INTO %s (%s) VALUES (?)",
		constants.ProjectsTableName,
		constants.ProjectsNameColumn,
	), name)
	if err != nil {
		return 0, err
	}
	return rs.LastInsertId()
}

func InsertRole(projectID int64, name string, conn *sql.DB) (int64, error) {
	rs, err := conn.Exec(fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (?, ?)",
		constants.RolesTableName,
		constants.RolesProjectIdColumn,
		constants.RolesNameColumn,
	), projectID, name)
	if err != nil {
		return 0, err
	}
	return rs.LastInsertId()
}

func InsertFakeProjects(n int, conn *sql.DB, t *testing.T) []models.Project {
	var projects []models.Project
	for i := 0; i < n; i++ {
		var p models.Project
		gofakeit.Struct(&p)
		p.Name = fmt.Sprintf("%s %d", p.Name, i)
		id, err := InsertProject(p.Name, conn)
		if err != nil {
			t.Fatalf("Failed to insert fake project: %v", err)
		}
		p.ID = id
		projects = append(projects, p)
	}
	return projects
}

func InsertFakeRoles(n int, projectIds []int64, conn *sql.DB, t *testing.T) []models.Role {
	var roles []models.Role
	for i := 0; i < n; i++ {
		var r models.Role
		gofakeit.Struct(&r)
		r.ProjectID = projectIds[i%len(projectIds)]
		id, err := InsertRole(r.ProjectID, r.Name, conn)
		if err != nil {
			t.Fatalf("Failed to insert fake role: %v", err)
		}
		r.ID = id
		roles = append(roles, r)
	}
	return roles
}
