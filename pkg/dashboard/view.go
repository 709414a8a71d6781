package dashboard

import (
	"golang.org/x/exp/slices"
	"regexp"
	"statusdrafter/pkg/models"
	"strings"
	"time"
)

const (
	EmptyMessage     = "No drafts found."
	RowDateLayout    = "02/01/2006"
	SummaryMaxLength = 60
)

type ActionKind string

const (
	ActionLoad   ActionKind = "load"
	ActionDelete ActionKind = "delete"
)

// Action is dispatched by id, rows never carry handlers
type Action struct {
	Kind    ActionKind
	DraftID int64
}

type Row struct {
	DraftID     int64
	Date        string
	Type        models.DraftType
	Summary     string
	ProjectName string
	Actions     []Action
}

// View is the rendered dashboard table. Empty views carry the placeholder
// text and no rows.
type View struct {
	Rows        []Row
	Placeholder string
}

func (view View) Empty() bool {
	return len(view.Rows) == 0
}

var titleLine = regexp.MustCompile(`Daily Update.*|Weekly Summary.*`)

// Sort orders drafts by created_at, ties keep their input order
func Sort(drafts []models.Draft, order SortOrder) []models.Draft {
	sorted := make([]models.Draft, len(drafts))
	copy(sorted, drafts)

	slices.SortStableFunc(sorted, func(a, b models.Draft) bool {
		if order == SortAsc {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return sorted
}

// Summarize picks a one line title for a draft: the Task: line, else the
// Highlight: line, else the first line without its report heading
func Summarize(content string) string {
	lines := strings.Split(content, "\n")

	summary := ""
	if line, ok := firstWithPrefix(lines, "Task:"); ok {
		summary = strings.TrimSpace(strings.Replace(line, "Task:", "", 1))
	} else if line, ok := firstWithPrefix(lines, "Highlight:"); ok {
		summary = strings.TrimSpace(strings.Replace(line, "Highlight:", "", 1))
	} else {
		summary = strings.TrimSpace(titleLine.ReplaceAllString(lines[0], ""))
		if summary == "" && len(lines) > 1 {
			summary = lines[1]
		}
		if summary == "" {
			summary = "Untitled"
		}
	}

	runes := []rune(summary)
	if len(runes) > SummaryMaxLength {
		summary = string(runes[:SummaryMaxLength]) + "..."
	}
	return summary
}

func firstWithPrefix(lines []string, prefix string) (string, bool) {
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return line, true
		}
	}
	return "", false
}

func NewRow(draft models.Draft, loc *time.Location) Row {
	projectName := ""
	if draft.ProjectName != nil {
		projectName = *draft.ProjectName
	}
	return Row{
		DraftID:     draft.ID,
		Date:        draft.CreatedAt.In(loc).Format(RowDateLayout),
		Type:        draft.Type,
		Summary:     Summarize(draft.Content),
		ProjectName: projectName,
		Actions: []Action{
			{Kind: ActionLoad, DraftID: draft.ID},
			{Kind: ActionDelete, DraftID: draft.ID},
		},
	}
}

// Build runs search, type, project and timeframe filters, sorts, and renders
// rows in now's location
func Build(drafts []models.Draft, query Query, now time.Time) View {
	filtered := Filter(drafts, query.Predicates(now)...)
	sorted := Sort(filtered, query.Sort)

	if len(sorted) == 0 {
		return View{Placeholder: EmptyMessage}
	}

	rows := make([]Row, 0, len(sorted))
	for _, draft := range sorted {
		rows = append(rows, NewRow(draft, now.Location()))
	}
	return View{Rows: rows}
}
