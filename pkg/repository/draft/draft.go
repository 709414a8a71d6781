package draft

import (
	"database/sql"
	"fmt"
	sq "github.com/Masterminds/squirrel"
	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-hclog"
	"net/http"
	"statusdrafter/pkg/constants"
	"statusdrafter/pkg/models"
	"statusdrafter/pkg/utils"
	"time"
)

//go:generate mockery --name DraftRepo --output ./ --inpackage
type DraftRepo interface {
	CreateOne(draft *models.Draft) (int64, *utils.GenericError)
	GetOneByID(draft *models.Draft) *utils.GenericError
	List(limit int64) ([]models.Draft, *utils.GenericError)
	Count() (int64, *utils.GenericError)
	DeleteOneByID(draft models.Draft) (int64, *utils.GenericError)
}

type draftRepo struct {
	conn   *sql.DB
	logger hclog.Logger
}

func NewDraftRepo(logger hclog.Logger, conn *sql.DB) DraftRepo {
	return &draftRepo{
		conn:   conn,
		logger: logger.Named("draft-repo"),
	}
}

func draftColumn(column string) string {
	return fmt.Sprintf("d.%s", column)
}

func selectDrafts() sq.SelectBuilder {
	return sq.Select(
		draftColumn(constants.DraftsIdColumn),
		draftColumn(constants.DraftsTypeColumn),
		draftColumn(constants.DraftsContentColumn),
		draftColumn(constants.DraftsProjectIdColumn),
		draftColumn(constants.DraftsRoleIdColumn),
		fmt.Sprintf("cast(d.\"%s\" as text)", constants.DraftsCreatedAtColumn),
		fmt.Sprintf("p.%s as %s", constants.ProjectsNameColumn, constants.DraftsProjectNameColumn),
		fmt.Sprintf("r.%s as %s", constants.RolesNameColumn, constants.DraftsRoleNameColumn),
	).
		From(fmt.Sprintf("%s d", constants.DraftsTableName)).
		LeftJoin(fmt.Sprintf("%s p ON d.%s = p.%s", constants.ProjectsTableName, constants.DraftsProjectIdColumn, constants.ProjectsIdColumn)).
		LeftJoin(fmt.Sprintf("%s r ON d.%s = r.%s", constants.RolesTableName, constants.DraftsRoleIdColumn, constants.RolesIdColumn))
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDraft(row rowScanner, draft *models.Draft) error {
	var (
		draftType   sql.NullString
		content     sql.NullString
		projectID   sql.NullInt64
		roleID      sql.NullInt64
		dateString  sql.NullString
		projectName sql.NullString
		roleName    sql.NullString
	)
	err := row.Scan(
		&draft.ID,
		&draftType,
		&content,
		&projectID,
		&roleID,
		&dateString,
		&projectName,
		&roleName,
	)
	if err != nil {
		return err
	}

	// databases created before the CHECK constraints may hold NULL text
	draft.Type = models.DraftType(draftType.String)
	draft.Content = content.String

	draft.ProjectID = nil
	if projectID.Valid {
		draft.ProjectID = &projectID.Int64
	}
	draft.RoleID = nil
	if roleID.Valid {
		draft.RoleID = &roleID.Int64
	}
	draft.ProjectName = nil
	if projectName.Valid {
		draft.ProjectName = &projectName.String
	}
	draft.RoleName = nil
	if roleName.Valid {
		draft.RoleName = &roleName.String
	}

	draft.CreatedAt = time.Time{}
	if dateString.Valid && dateString.String != "" {
		// CURRENT_TIMESTAMP is UTC without a zone suffix
		t, errParse := dateparse.ParseIn(dateString.String, time.UTC)
		if errParse != nil {
			return fmt.Errorf("%s dateString: %s", errParse.Error(), dateString.String)
		}
		draft.CreatedAt = t.UTC()
	}

	return nil
}

// CreateOne inserts a draft, created_at is assigned by the store
func (draftRepo *draftRepo) CreateOne(draft *models.Draft) (int64, *utils.GenericError) {
	res, err := sq.Insert(constants.DraftsTableName).
		Columns(
			constants.DraftsTypeColumn,
			constants.DraftsContentColumn,
			constants.DraftsProjectIdColumn,
			constants.DraftsRoleIdColumn,
		).
		Values(
			draft.Type,
			draft.Content,
			draft.ProjectID,
			draft.RoleID,
		).
		RunWith(draftRepo.conn).
		Exec()
	if err != nil {
		draftRepo.logger.Error("failed to insert draft", "type", draft.Type, "error", err.Error())
		return -1, utils.StoreError(err)
	}

	insertedId, err := res.LastInsertId()
	if err != nil {
		return -1, utils.StoreError(err)
	}
	draft.ID = insertedId

	return insertedId, nil
}

func (draftRepo *draftRepo) GetOneByID(draft *models.Draft) *utils.GenericError {
	row := selectDrafts().
		Where(fmt.Sprintf("d.%s = ?", constants.DraftsIdColumn), draft.ID).
		RunWith(draftRepo.conn).
		QueryRow()

	err := scanDraft(row, draft)
	if err == sql.ErrNoRows {
		return utils.HTTPGenericError(http.StatusNotFound, "draft does not exist")
	}
	if err != nil {
		return utils.StoreError(err)
	}
	return nil
}

// List returns the newest drafts first with their project and role names.
// A limit of zero or less means the default page size.
func (draftRepo *draftRepo) List(limit int64) ([]models.Draft, *utils.GenericError) {
	if limit <= 0 {
		limit = constants.DefaultDraftsLimit
	}

	rows, err := selectDrafts().
		OrderBy(
			fmt.Sprintf("d.%s DESC", constants.DraftsCreatedAtColumn),
			fmt.Sprintf("d.%s DESC", constants.DraftsIdColumn),
		).
		Limit(uint64(limit)).
		RunWith(draftRepo.conn).
		Query()
	if err != nil {
		return nil, utils.StoreError(err)
	}
	defer rows.Close()

	drafts := []models.Draft{}
	for rows.Next() {
		draft := models.Draft{}
		if err := scanDraft(rows, &draft); err != nil {
			return nil, utils.StoreError(err)
		}
		drafts = append(drafts, draft)
	}
	if err := rows.Err(); err != nil {
		return nil, utils.StoreError(err)
	}

	return drafts, nil
}

func (draftRepo *draftRepo) Count() (int64, *utils.GenericError) {
	var count int64
	err := sq.Select("count(*)").
		From(constants.DraftsTableName).
		RunWith(draftRepo.conn).
		QueryRow().
		Scan(&count)
	if err != nil {
		return 0, utils.StoreError(err)
	}
	return count, nil
}

// DeleteOneByID returns the number of deleted rows, zero for a missing id
func (draftRepo *draftRepo) DeleteOneByID(draft models.Draft) (int64, *utils.GenericError) {
	res, err := sq.Delete(constants.DraftsTableName).
		Where(fmt.Sprintf("%s = ?", constants.DraftsIdColumn), draft.ID).
		RunWith(draftRepo.conn).
		Exec()
	if err != nil {
		draftRepo.logger.Error("failed to delete draft", "id", draft.ID, "error", err.Error())
		return -1, utils.StoreError(err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return -1, utils.StoreError(err)
	}

	return count, nil
}
