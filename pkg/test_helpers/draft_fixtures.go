package test_helpers

import (
	"database/sql"
	"fmt"
	"github.com/brianvoe/gofakeit/v6"
	"statusdrafter/pkg/constants"
	"statusdrafter/pkg/formatter"
	"statusdrafter/pkg/models"
	"testing"
	"time"
)

// InsertDraft writes a draft with an explicit created_at so tests control ordering
func InsertDraft(draft models.Draft, conn *sql.DB) (int64, error) {
	rs, err := conn.Exec(fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES (?, ?, ?, ?, ?)",
		constants.DraftsTableName,
		constants.DraftsTypeColumn,
		constants.DraftsContentColumn,
		constants.DraftsProjectIdColumn,
		constants.DraftsRoleIdColumn,
		constants.DraftsCreatedAtColumn,
	),
		draft.Type,
		draft.Content,
		draft.ProjectID,
		draft.RoleID,
		draft.CreatedAt.UTC().Format(constants.SqliteTimeLayout),
	)
	if err != nil {
		return 0, err
	}
	return rs.LastInsertId()
}

// FakeDraftFields fills every form field with generated text
func FakeDraftFields() models.DraftFields {
	fields := models.NewDraftFields()
	fields.UserName = gofakeit.Name()
	fields.TaskTitle = gofakeit.Sentence(5)
	fields.TaskDesc = gofakeit.Sentence(12)
	fields.NextSteps = gofakeit.Sentence(8)
	if gofakeit.Bool() {
		fields.Blockers = gofakeit.Sentence(4)
	}
	return fields
}

// InsertFakeDrafts inserts n drafts one hour apart going back from now, newest first
func InsertFakeDrafts(n int, projectID *int64, roleID *int64, now time.Time, conn *sql.DB, t *testing.T) []models.Draft {
	var drafts []models.Draft
	for i := 0; i < n; i++ {
		draftType := models.DailyDraft
		if i%3 == 2 {
			draftType = models.WeeklyDraft
		}
		createdAt := now.Add(-time.Duration(i) * time.Hour).UTC().Truncate(time.Second)
		draft := models.Draft{
			Type:      draftType,
			Content:   formatter.Format(draftType, FakeDraftFields(), createdAt),
			ProjectID: projectID,
			RoleID:    roleID,
			CreatedAt: createdAt,
		}
		id, err := InsertDraft(draft, conn)
		if err != nil {
			t.Fatalf("Failed to insert fake draft: %v", err)
		}
		draft.ID = id
		drafts = append(drafts, draft)
	}
	return drafts
}
