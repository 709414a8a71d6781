package models

import (
	"encoding/json"
	"time"
)

type DraftType string

const (
	DailyDraft  DraftType = "daily"
	WeeklyDraft DraftType = "weekly"
)

func (draftType DraftType) Valid() bool {
	return draftType == DailyDraft || draftType == WeeklyDraft
}

// Draft a rendered status report. ProjectID and RoleID are weak references,
// ProjectName and RoleName are filled by the list query and are nil once the
// referenced rows are gone.
type Draft struct {
	ID          int64     `json:"id"`
	Type        DraftType `json:"type"`
	Content     string    `json:"content"`
	ProjectID   *int64    `json:"project_id"`
	RoleID      *int64    `json:"role_id"`
	CreatedAt   time.Time `json:"created_at"`
	ProjectName *string   `json:"project_name"`
	RoleName    *string   `json:"role_name"`
}

// CreatedDraft is what the API echoes back after an insert
type CreatedDraft struct {
	ID      int64     `json:"id"`
	Type    DraftType `json:"type"`
	Content string    `json:"content"`
}

// ToJSON returns content of draft as JSON
func (draftModel *Draft) ToJSON() ([]byte, error) {
	return json.Marshal(draftModel)
}

// FromJSON extracts content of JSON object into draft
func (draftModel *Draft) FromJSON(body []byte) error {
	if err := json.Unmarshal(body, &draftModel); err != nil {
		return err
	}
	return nil
}
