package corpus

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmostafa/mdindex/internal/extract"
)

func testOptions() ReportOptions {
	return ReportOptions{
		Directory:    "blogs",
		GeneratedAt:  time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		OutlineLimit: 10,
	}
}

func TestBuildReportOrdersByModTimeDescending(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	summaries := []DocumentSummary{
		{Filename: "t1.md", Title: "One", ModifiedAt: base.Add(1 * time.Hour)},
		{Filename: "t2.md", Title: "Two", ModifiedAt: base},
		{Filename: "t3.md", Title: "Three", ModifiedAt: base.Add(2 * time.Hour)},
	}

	report := BuildReport(summaries, testOptions())

	i3 := strings.Index(report, "`t3.md`")
	i1 := strings.Index(report, "`t1.md`")
	i2 := strings.Index(report, "`t2.md`")
	require.NotEqual(t, -1, i3)
	require.NotEqual(t, -1, i1)
	require.NotEqual(t, -1, i2)
	assert.Less(t, i3, i1, "most recent document should be listed first")
	assert.Less(t, i1, i2)

	// Input order is preserved.
	assert.Equal(t, "t1.md", summaries[0].Filename)
}

func TestBuildReportStableTies(t *testing.T) {
	ts := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	summaries := []DocumentSummary{
		{Filename: "a.md", Title: "A", ModifiedAt: ts},
		{Filename: "b.md", Title: "B", ModifiedAt: ts},
		{Filename: "c.md", Title: "C", ModifiedAt: ts},
	}

	report := BuildReport(summaries, testOptions())

	ia := strings.Index(report, "`a.md`")
	ib := strings.Index(report, "`b.md`")
	ic := strings.Index(report, "`c.md`")
	assert.Less(t, ia, ib, "equal timestamps must keep input order")
	assert.Less(t, ib, ic)
}

func TestBuildReportSameMinuteKeepsInputOrder(t *testing.T) {
	// Ordering granularity is the rendered minute: documents modified
	// seconds apart within one minute keep their input order.
	base := time.Date(2026, 8, 1, 10, 0, 5, 0, time.UTC)
	summaries := []DocumentSummary{
		{Filename: "early.md", Title: "Early", ModifiedAt: base},
		{Filename: "late.md", Title: "Late", ModifiedAt: base.Add(40 * time.Second)},
	}

	report := BuildReport(summaries, testOptions())

	iEarly := strings.Index(report, "`early.md`")
	iLate := strings.Index(report, "`late.md`")
	assert.Less(t, iEarly, iLate, "same-minute documents must keep input order")
}

func TestBuildReportEmptySet(t *testing.T) {
	report := BuildReport(nil, testOptions())

	assert.Contains(t, report, "- **Documents**: 0")
	assert.Contains(t, report, "- **Average words**: 0 per document")
	assert.Contains(t, report, "- **Last updated**: n/a")
}

func TestBuildReportStatistics(t *testing.T) {
	ts := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	summaries := []DocumentSummary{
		{Filename: "a.md", Title: "A", WordCount: 1500, SizeKB: 2.5, ModifiedAt: ts},
		{Filename: "b.md", Title: "B", WordCount: 500, SizeKB: 1.5, ModifiedAt: ts.Add(time.Hour)},
	}

	report := BuildReport(summaries, testOptions())

	assert.Contains(t, report, "- **Documents**: 2")
	assert.Contains(t, report, "- **Total words**: 2,000")
	assert.Contains(t, report, "- **Total size**: 4.0 KB")
	// Floor average.
	assert.Contains(t, report, "- **Average words**: 1,000 per document")
	assert.Contains(t, report, "- **Last updated**: 2026-08-01 11:00")
}

func TestBuildReportOutlineTruncation(t *testing.T) {
	outline := make([]extract.HeadingEntry, 13)
	for i := range outline {
		outline[i] = extract.HeadingEntry{Level: 2, Text: fmt.Sprintf("Section %d", i+1), Line: i + 1}
	}
	summaries := []DocumentSummary{{
		Filename:   "big.md",
		Title:      "Big",
		ModifiedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Outline:    outline,
	}}

	report := BuildReport(summaries, testOptions())

	assert.Contains(t, report, "- Section 10")
	assert.NotContains(t, report, "- Section 11")
	assert.Contains(t, report, "... 3 more sections omitted")
}

func TestBuildReportNoSectionsPlaceholder(t *testing.T) {
	summaries := []DocumentSummary{{
		Filename:   "flat.md",
		Title:      "Flat",
		ModifiedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}}

	report := BuildReport(summaries, testOptions())

	assert.Contains(t, report, "*(this document has no sections)*")
	assert.NotContains(t, report, "**Outline**:")
}

func TestBuildReportListingRow(t *testing.T) {
	summaries := []DocumentSummary{{
		Filename:    "post.md",
		Title:       "My Post",
		ModifiedAt:  time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
		WordCount:   1234,
		SizeKB:      3.25,
		Description: "A teaser...",
	}}

	report := BuildReport(summaries, testOptions())

	assert.Contains(t, report,
		"| 1 | **My Post** | `post.md` | 2026-08-01 10:30 | 1,234 | 3.25KB | [read](./post.md) |")
	assert.Contains(t, report, "**Summary**: A teaser...")
	assert.Contains(t, report, "### [My Post](./post.md)")
}

func TestBuildReportOutlineIndentation(t *testing.T) {
	summaries := []DocumentSummary{{
		Filename:   "deep.md",
		Title:      "Deep",
		ModifiedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Outline: []extract.HeadingEntry{
			{Level: 1, Text: "Top", Line: 1},
			{Level: 3, Text: "Nested", Line: 5},
		},
	}}

	report := BuildReport(summaries, testOptions())

	assert.Contains(t, report, "\n- Top\n")
	assert.Contains(t, report, "\n    - Nested\n")
}
