package draftime

import (
	"time"
)

// DrafterTime converts instants into the location drafts are dated in
type DrafterTime struct {
	loc *time.Location
	now func() time.Time
}

func GetDrafterTime() *DrafterTime {
	return &DrafterTime{now: time.Now}
}

// SetTimezone accepts any IANA name; "Local" and "" both mean the host zone
func (drafterTime *DrafterTime) SetTimezone(tz string) error {
	if tz == "" {
		tz = "Local"
	}
	location, err := time.LoadLocation(tz)
	if err != nil {
		return err
	}
	drafterTime.loc = location
	return nil
}

func (drafterTime *DrafterTime) Location() *time.Location {
	if drafterTime.loc == nil {
		return time.Local
	}
	return drafterTime.loc
}

func (drafterTime *DrafterTime) GetTime(t time.Time) time.Time {
	if drafterTime.loc == nil {
		return t
	}
	return t.In(drafterTime.loc)
}

func (drafterTime *DrafterTime) Now() time.Time {
	now := drafterTime.now
	if now == nil {
		now = time.Now
	}
	return now().In(drafterTime.Location())
}

// Freeze pins Now to t, used by tests and the dashboard command's --now flag
func (drafterTime *DrafterTime) Freeze(t time.Time) {
	drafterTime.now = func() time.Time { return t }
}

// StartOfWeek returns Monday 00:00 of the week containing t, in t's location
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}
