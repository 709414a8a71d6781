package models

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDraftFields_SetAndGet(t *testing.T) {
	fields := NewDraftFields()
	assert.Equal(t, DefaultProgressStatus, fields.ProgressStatus)

	assert.True(t, fields.Set(FieldTaskTitle, "Fix bug"))
	assert.True(t, fields.Set(FieldBlockers, "waiting on API"))
	assert.False(t, fields.Set("mood", "great"))

	value, ok := fields.Get(FieldTaskTitle)
	assert.True(t, ok)
	assert.Equal(t, "Fix bug", value)

	_, ok = fields.Get("mood")
	assert.False(t, ok)
}

func TestDraftFields_Subset(t *testing.T) {
	fields := DraftFields{
		UserName:  "Ada",
		TaskTitle: "Fix bug",
		TaskDesc:  "Patched the login flow",
		NextSteps: "Write tests",
	}

	subset := fields.Subset(EnhanceableFields)
	assert.Equal(t, map[string]string{
		FieldTaskTitle: "Fix bug",
		FieldTaskDesc:  "Patched the login flow",
		FieldBlockers:  "",
		FieldNextSteps: "Write tests",
	}, subset)
}

func TestDraftType_Valid(t *testing.T) {
	assert.True(t, DailyDraft.Valid())
	assert.True(t, WeeklyDraft.Valid())
	assert.False(t, DraftType("monthly").Valid())
}
