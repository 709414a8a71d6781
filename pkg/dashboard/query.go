package dashboard

import (
	"statusdrafter/pkg/draftime"
	"statusdrafter/pkg/models"
	"strconv"
	"strings"
	"time"
)

type Timeframe string

const (
	TimeframeAll      Timeframe = "all"
	TimeframeThisWeek Timeframe = "this_week"
	TimeframeLastWeek Timeframe = "last_week"
	TimeframeCustom   Timeframe = "custom"
)

type SortOrder string

const (
	SortDesc SortOrder = "desc"
	SortAsc  SortOrder = "asc"
)

// FilterAll disables the type and project filters
const FilterAll = "all"

const DateFilterLayout = "2006-01-02"

// Query holds the dashboard controls. Type and ProjectID take FilterAll or
// a concrete value, Date is only read by the custom timeframe.
type Query struct {
	Search    string
	Type      string
	ProjectID string
	Timeframe Timeframe
	Date      string
	Sort      SortOrder
}

func DefaultQuery() Query {
	return Query{
		Type:      FilterAll,
		ProjectID: FilterAll,
		Timeframe: TimeframeAll,
		Sort:      SortDesc,
	}
}

// Predicate reports whether a draft survives one dashboard filter
type Predicate func(draft models.Draft) bool

// MatchesSearch is a case insensitive substring match over content, type
// and project name
func MatchesSearch(search string) Predicate {
	needle := strings.ToLower(search)
	return func(draft models.Draft) bool {
		if needle == "" {
			return true
		}
		if strings.Contains(strings.ToLower(draft.Content), needle) {
			return true
		}
		if strings.Contains(strings.ToLower(string(draft.Type)), needle) {
			return true
		}
		return draft.ProjectName != nil && strings.Contains(strings.ToLower(*draft.ProjectName), needle)
	}
}

func MatchesType(draftType string) Predicate {
	return func(draft models.Draft) bool {
		return draftType == "" || draftType == FilterAll || string(draft.Type) == draftType
	}
}

// MatchesProject compares project ids, drafts without a project never match
// a specific id
func MatchesProject(projectID string) Predicate {
	if projectID == "" || projectID == FilterAll {
		return func(models.Draft) bool { return true }
	}
	id, err := strconv.ParseInt(projectID, 10, 64)
	return func(draft models.Draft) bool {
		return err == nil && draft.ProjectID != nil && *draft.ProjectID == id
	}
}

// MatchesTimeframe classifies created_at against the weeks containing now,
// in now's location. Weeks start on Monday.
func MatchesTimeframe(timeframe Timeframe, date string, now time.Time) Predicate {
	thisWeek, lastWeek := WeekStarts(now)
	loc := now.Location()

	switch timeframe {
	case TimeframeThisWeek:
		return func(draft models.Draft) bool {
			return !draft.CreatedAt.Before(thisWeek)
		}
	case TimeframeLastWeek:
		return func(draft models.Draft) bool {
			return !draft.CreatedAt.Before(lastWeek) && draft.CreatedAt.Before(thisWeek)
		}
	case TimeframeCustom:
		return func(draft models.Draft) bool {
			return date == "" || draft.CreatedAt.In(loc).Format(DateFilterLayout) == date
		}
	}
	return func(models.Draft) bool { return true }
}

// WeekStarts returns Monday 00:00 of the current and of the previous week
func WeekStarts(now time.Time) (time.Time, time.Time) {
	thisWeek := draftime.StartOfWeek(now)
	return thisWeek, thisWeek.AddDate(0, 0, -7)
}

func (query Query) Predicates(now time.Time) []Predicate {
	return []Predicate{
		MatchesSearch(query.Search),
		MatchesType(query.Type),
		MatchesProject(query.ProjectID),
		MatchesTimeframe(query.Timeframe, query.Date, now),
	}
}

// Filter keeps the drafts matching every predicate, preserving input order
func Filter(drafts []models.Draft, predicates ...Predicate) []models.Draft {
	filtered := make([]models.Draft, 0, len(drafts))
	for _, draft := range drafts {
		keep := true
		for _, predicate := range predicates {
			if !predicate(draft) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, draft)
		}
	}
	return filtered
}
