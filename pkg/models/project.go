package models

import (
	"encoding/json"
)

// Project a model representation for projects
type Project struct {
	ID   int64  `json:"id" fake:"skip"`
	Name string `json:"name" fake:"{appname}"`
}

// ToJSON returns content of project as JSON
func (projectModel *Project) ToJSON() ([]byte, error) {
	return json.Marshal(projectModel)
}

// FromJSON extracts content of JSON object into project
func (projectModel *Project) FromJSON(body []byte) error {
	if err := json.Unmarshal(body, &projectModel); err != nil {
		return err
	}
	return nil
}
