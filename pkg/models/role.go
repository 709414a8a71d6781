package models

import (
	"encoding/json"
)

// Role a role a person holds inside a project
type Role struct {
	ID        int64  `json:"id" fake:"skip"`
	ProjectID int64  `json:"project_id" fake:"skip"`
	Name      string `json:"name" fake:"{jobtitle}"`
}

// ToJSON returns content of role as JSON
func (roleModel *Role) ToJSON() ([]byte, error) {
	return json.Marshal(roleModel)
}

// FromJSON extracts content of JSON object into role
func (roleModel *Role) FromJSON(body []byte) error {
	if err := json.Unmarshal(body, &roleModel); err != nil {
		return err
	}
	return nil
}
