package role

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"net/http"
	"statusdrafter/pkg/models"
	role_repo "statusdrafter/pkg/repository/role"
	"statusdrafter/pkg/test_helpers"
	"statusdrafter/pkg/utils"
	"testing"
)

func Test_RoleService_CreateOne(t *testing.T) {
	logger := test_helpers.NewTestLogger("role-service-test")
	roleRepo := role_repo.NewMockRoleRepo(t)
	roleRepo.On("CreateOne", mock.AnythingOfType("*models.Role")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Role).ID = 3
		}).
		Return(int64(3), nil)

	roleService := NewRoleService(logger, roleRepo)
	created, err := roleService.CreateOne(models.Role{Name: "Backend", ProjectID: 1})

	assert.Nil(t, err)
	assert.Equal(t, &models.Role{ID: 3, ProjectID: 1, Name: "Backend"}, created)
}

func Test_RoleService_CreateOne_InvalidProject(t *testing.T) {
	logger := test_helpers.NewTestLogger("role-service-test")
	conn := test_helpers.NewMigratedTestDb(t)
	roleService := NewRoleService(logger, role_repo.NewRoleRepo(logger, conn))

	created, err := roleService.CreateOne(models.Role{Name: "Backend", ProjectID: 99})

	assert.Nil(t, created)
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Type)
}

func Test_RoleService_ListAndDelete(t *testing.T) {
	logger := test_helpers.NewTestLogger("role-service-test")
	roleRepo := role_repo.NewMockRoleRepo(t)
	roles := []models.Role{{ID: 1, ProjectID: 2, Name: "QA"}}
	roleRepo.On("ListByProjectID", int64(2)).Return(roles, nil)
	roleRepo.On("DeleteOneByID", models.Role{ID: 1}).Return(int64(1), nil)
	roleRepo.On("DeleteOneByID", models.Role{ID: 9}).Return(int64(-1), utils.HTTPGenericError(http.StatusBadRequest, "database is locked"))

	roleService := NewRoleService(logger, roleRepo)

	listed, err := roleService.ListByProjectID(2)
	assert.Nil(t, err)
	assert.Equal(t, roles, listed)

	assert.Nil(t, roleService.DeleteOneByID(models.Role{ID: 1}))

	deleteErr := roleService.DeleteOneByID(models.Role{ID: 9})
	assert.NotNil(t, deleteErr)
	assert.Equal(t, "database is locked", deleteErr.Message)
}
