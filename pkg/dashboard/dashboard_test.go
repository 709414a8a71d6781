package dashboard_test

import (
	"fmt"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"statusdrafter/pkg/dashboard"
	"statusdrafter/pkg/models"
	"strings"
	"time"
)

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

func ids(drafts []models.Draft) []int64 {
	var result []int64
	for _, draft := range drafts {
		result = append(result, draft.ID)
	}
	return result
}

var _ = Describe("Dashboard", func() {
	loc := time.FixedZone("UTC+2", 2*60*60)
	// Wednesday
	now := time.Date(2024, 3, 13, 15, 0, 0, 0, loc)

	drafts := []models.Draft{
		{
			ID:          1,
			Type:        models.DailyDraft,
			Content:     "Daily Update - 13/03/2024\n\nTask: Fix login bug\nStatus: In Progress",
			ProjectID:   int64Ptr(1),
			ProjectName: strPtr("Website App"),
			CreatedAt:   time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Type:        models.WeeklyDraft,
			Content:     "Weekly Summary (04/03/2024 - 08/03/2024)\nHighlight: Released Android beta",
			ProjectID:   int64Ptr(2),
			ProjectName: strPtr("Android App"),
			CreatedAt:   time.Date(2024, 3, 8, 16, 0, 0, 0, time.UTC),
		},
		{
			ID:        3,
			Type:      models.DailyDraft,
			Content:   "Weekly sync notes",
			CreatedAt: time.Date(2024, 3, 11, 0, 30, 0, 0, time.UTC),
		},
		{
			ID:        4,
			Type:      models.WeeklyDraft,
			Content:   "Weekly Summary (old)\nstale",
			ProjectID: int64Ptr(9),
			CreatedAt: time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          5,
			Type:        models.DailyDraft,
			Content:     "Task: Same second as one",
			ProjectID:   int64Ptr(1),
			ProjectName: strPtr("Website App"),
			CreatedAt:   time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC),
		},
	}

	Context("filters", func() {
		It("matches search case insensitively over content, type and project name", func() {
			Expect(ids(dashboard.Filter(drafts, dashboard.MatchesSearch("LOGIN")))).To(Equal([]int64{1}))
			Expect(ids(dashboard.Filter(drafts, dashboard.MatchesSearch("weekly")))).To(Equal([]int64{2, 3, 4}))
			Expect(ids(dashboard.Filter(drafts, dashboard.MatchesSearch("android")))).To(Equal([]int64{2}))
			Expect(dashboard.Filter(drafts, dashboard.MatchesSearch(""))).To(HaveLen(5))
		})

		It("filters by type", func() {
			Expect(ids(dashboard.Filter(drafts, dashboard.MatchesType("weekly")))).To(Equal([]int64{2, 4}))
			Expect(dashboard.Filter(drafts, dashboard.MatchesType(dashboard.FilterAll))).To(HaveLen(5))
		})

		It("filters by project id and never matches drafts without a project", func() {
			Expect(ids(dashboard.Filter(drafts, dashboard.MatchesProject("1")))).To(Equal([]int64{1, 5}))
			Expect(ids(dashboard.Filter(drafts, dashboard.MatchesProject("9")))).To(Equal([]int64{4}))
			Expect(dashboard.Filter(drafts, dashboard.MatchesProject("3"))).To(BeEmpty())
			Expect(dashboard.Filter(drafts, dashboard.MatchesProject(dashboard.FilterAll))).To(HaveLen(5))
		})

		It("classifies this week and last week from Monday 00:00 local time", func() {
			thisWeek := dashboard.Filter(drafts, dashboard.MatchesTimeframe(dashboard.TimeframeThisWeek, "", now))
			Expect(ids(thisWeek)).To(Equal([]int64{1, 3, 5}))

			lastWeek := dashboard.Filter(drafts, dashboard.MatchesTimeframe(dashboard.TimeframeLastWeek, "", now))
			Expect(ids(lastWeek)).To(Equal([]int64{2}))
		})

		It("puts Monday 00:00 in this week and the instant before it in last week", func() {
			startOfWeek := time.Date(2024, 3, 11, 0, 0, 0, 0, loc)
			edges := []models.Draft{
				{ID: 10, Type: models.DailyDraft, Content: "Task: at midnight", CreatedAt: startOfWeek.UTC()},
				{ID: 11, Type: models.DailyDraft, Content: "Task: just before", CreatedAt: startOfWeek.Add(-time.Nanosecond).UTC()},
			}

			thisWeek := dashboard.Filter(edges, dashboard.MatchesTimeframe(dashboard.TimeframeThisWeek, "", now))
			Expect(ids(thisWeek)).To(Equal([]int64{10}))

			lastWeek := dashboard.Filter(edges, dashboard.MatchesTimeframe(dashboard.TimeframeLastWeek, "", now))
			Expect(ids(lastWeek)).To(Equal([]int64{11}))
		})

		It("keeps only the custom calendar date, independent of time of day", func() {
			custom := dashboard.Filter(drafts, dashboard.MatchesTimeframe(dashboard.TimeframeCustom, "2024-03-13", now))
			Expect(ids(custom)).To(Equal([]int64{1, 5}))

			// 00:30 UTC is 02:30 on the same day at UTC+2, 23:30 UTC would roll over
			custom = dashboard.Filter(drafts, dashboard.MatchesTimeframe(dashboard.TimeframeCustom, "2024-03-11", now))
			Expect(ids(custom)).To(Equal([]int64{3}))
		})

		It("passes everything for a custom timeframe without a date", func() {
			Expect(dashboard.Filter(drafts, dashboard.MatchesTimeframe(dashboard.TimeframeCustom, "", now))).To(HaveLen(5))
		})

		It("gives the same result whatever order the filters run in", func() {
			query := dashboard.Query{
				Search:    "app",
				Type:      "daily",
				ProjectID: "1",
				Timeframe: dashboard.TimeframeThisWeek,
			}
			predicates := query.Predicates(now)
			expected := ids(dashboard.Filter(drafts, predicates...))

			reversed := []dashboard.Predicate{predicates[3], predicates[2], predicates[1], predicates[0]}
			Expect(ids(dashboard.Filter(drafts, reversed...))).To(Equal(expected))

			chained := drafts
			for _, predicate := range reversed {
				chained = dashboard.Filter(chained, predicate)
			}
			Expect(ids(chained)).To(Equal(expected))
			Expect(expected).To(Equal([]int64{1, 5}))
		})
	})

	Context("sorting", func() {
		It("sorts newest first by default and keeps ties in input order", func() {
			Expect(ids(dashboard.Sort(drafts, dashboard.SortDesc))).To(Equal([]int64{1, 5, 3, 2, 4}))
			Expect(ids(dashboard.Sort(drafts, ""))).To(Equal([]int64{1, 5, 3, 2, 4}))
		})

		It("sorts oldest first and keeps ties in input order", func() {
			Expect(ids(dashboard.Sort(drafts, dashboard.SortAsc))).To(Equal([]int64{4, 2, 3, 1, 5}))
		})

		It("does not reorder its input", func() {
			dashboard.Sort(drafts, dashboard.SortAsc)
			Expect(ids(drafts)).To(Equal([]int64{1, 2, 3, 4, 5}))
		})
	})

	Context("summaries", func() {
		It("uses the Task line", func() {
			Expect(dashboard.Summarize("Daily Update - x\n\nTask: Fix login bug\nStatus: Done")).To(Equal("Fix login bug"))
		})

		It("uses the Highlight line when there is no Task line", func() {
			Expect(dashboard.Summarize("Weekly Summary (x)\nHighlight:   Shipped v2  ")).To(Equal("Shipped v2"))
		})

		It("falls back to a cleaned first line", func() {
			Expect(dashboard.Summarize("[Ada] Daily Update - 01/02/2024\n\nStatus: ok")).To(Equal("[Ada]"))
			Expect(dashboard.Summarize("Weekly Summary (This Week)\nAuthor: Ada")).To(Equal("Author: Ada"))
			Expect(dashboard.Summarize("Random notes\nmore")).To(Equal("Random notes"))
			Expect(dashboard.Summarize("Daily Update - x")).To(Equal("Untitled"))
			Expect(dashboard.Summarize("")).To(Equal("Untitled"))
		})

		It("truncates to 60 characters", func() {
			long := strings.Repeat("a", 61)
			Expect(dashboard.Summarize("Task: " + long)).To(Equal(strings.Repeat("a", 60) + "..."))
			Expect(dashboard.Summarize("Task: " + strings.Repeat("b", 60))).To(Equal(strings.Repeat("b", 60)))
		})
	})

	Context("views", func() {
		It("renders rows carrying their id and actions", func() {
			query := dashboard.DefaultQuery()
			query.ProjectID = "1"

			view := dashboard.Build(drafts, query, now)

			Expect(view.Empty()).To(BeFalse())
			Expect(view.Rows).To(HaveLen(2))
			Expect(view.Rows[0]).To(Equal(dashboard.Row{
				DraftID:     1,
				Date:        "13/03/2024",
				Type:        models.DailyDraft,
				Summary:     "Fix login bug",
				ProjectName: "Website App",
				Actions: []dashboard.Action{
					{Kind: dashboard.ActionLoad, DraftID: 1},
					{Kind: dashboard.ActionDelete, DraftID: 1},
				},
			}))
		})

		It("renders the placeholder when nothing matches", func() {
			query := dashboard.DefaultQuery()
			query.Search = "no such draft"

			view := dashboard.Build(drafts, query, now)

			Expect(view.Empty()).To(BeTrue())
			Expect(view.Placeholder).To(Equal(dashboard.EmptyMessage))
		})

		It("dates rows in the location of now", func() {
			late := models.Draft{ID: 8, Type: models.DailyDraft, CreatedAt: time.Date(2024, 3, 12, 23, 30, 0, 0, time.UTC)}
			row := dashboard.NewRow(late, loc)
			Expect(row.Date).To(Equal("13/03/2024"))
			Expect(row.ProjectName).To(Equal(""))
			Expect(fmt.Sprint(row.Actions[1].Kind)).To(Equal("delete"))
		})
	})
})
