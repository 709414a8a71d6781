package models

// DraftFields the form fields a report is rendered from
type DraftFields struct {
	UserName       string `json:"userName"`
	DateRange      string `json:"dateRange"`
	TaskTitle      string `json:"taskTitle"`
	ProgressStatus string `json:"progressStatus"`
	TaskDesc       string `json:"taskDesc"`
	Blockers       string `json:"blockers"`
	NextSteps      string `json:"nextSteps"`
}

const (
	FieldUserName       = "userName"
	FieldDateRange      = "dateRange"
	FieldTaskTitle      = "taskTitle"
	FieldProgressStatus = "progressStatus"
	FieldTaskDesc       = "taskDesc"
	FieldBlockers       = "blockers"
	FieldNextSteps      = "nextSteps"
)

const DefaultProgressStatus = "In Progress"

// EnhanceableFields are the free text fields sent for rewriting
var EnhanceableFields = []string{FieldTaskTitle, FieldTaskDesc, FieldBlockers, FieldNextSteps}

func NewDraftFields() DraftFields {
	return DraftFields{ProgressStatus: DefaultProgressStatus}
}

func (fields *DraftFields) Get(name string) (string, bool) {
	switch name {
	case FieldUserName:
		return fields.UserName, true
	case FieldDateRange:
		return fields.DateRange, true
	case FieldTaskTitle:
		return fields.TaskTitle, true
	case FieldProgressStatus:
		return fields.ProgressStatus, true
	case FieldTaskDesc:
		return fields.TaskDesc, true
	case FieldBlockers:
		return fields.Blockers, true
	case FieldNextSteps:
		return fields.NextSteps, true
	}
	return "", false
}

// Set assigns a field by its JSON name, unknown names are reported with false
func (fields *DraftFields) Set(name string, value string) bool {
	switch name {
	case FieldUserName:
		fields.UserName = value
	case FieldDateRange:
		fields.DateRange = value
	case FieldTaskTitle:
		fields.TaskTitle = value
	case FieldProgressStatus:
		fields.ProgressStatus = value
	case FieldTaskDesc:
		fields.TaskDesc = value
	case FieldBlockers:
		fields.Blockers = value
	case FieldNextSteps:
		fields.NextSteps = value
	default:
		return false
	}
	return true
}

// Subset returns the named fields as a mapping
func (fields *DraftFields) Subset(names []string) map[string]string {
	subset := make(map[string]string, len(names))
	for _, name := range names {
		if value, ok := fields.Get(name); ok {
			subset[name] = value
		}
	}
	return subset
}
