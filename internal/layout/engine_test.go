package layout

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/models"
)

func docWithExperience(n int) *models.ResumeDocument {
	doc := models.NewResumeDocument("doc-1")
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.PersonalInfo.Summary = strings.Repeat("Shipped production systems. ", 10)
	for i := 0; i < n; i++ {
		doc.Experience = append(doc.Experience, models.Experience{
			ID:          fmt.Sprintf("exp-%d", i),
			Company:     "Acme Corp",
			Position:    "Software Engineer",
			StartDate:   "2019-01",
			EndDate:     "present",
			Description: strings.Repeat("Designed, built and operated distributed services. ", 8),
		})
	}
	return doc
}

func TestComputeEmptyDocumentIsOnePage(t *testing.T) {
	doc := models.NewResumeDocument("doc-1")
	l := Compute(doc, Params{}, access.TierFree)

	require.Len(t, l.Pages, 1)
	assert.Equal(t, 0.0, l.Pages[0].Offset)
	assert.False(t, l.Truncated)
}

func TestComputePageCountIsCeilOfFlowOverWindow(t *testing.T) {
	for _, n := range []int{1, 5, 12, 45} {
		doc := docWithExperience(n)
		l := Compute(doc, Params{Page: PageA4, FontSize: 11, Template: TemplateModern}, access.TierPro)

		expected := int(math.Ceil(l.ContentHeight / l.PageContentHeight))
		if expected > MaxSlots {
			expected = MaxSlots
			assert.True(t, l.Truncated, "n=%d", n)
		}
		assert.Len(t, l.Pages, expected, "n=%d", n)
	}
}

func TestComputeSlotOffsetsAreWindowMultiples(t *testing.T) {
	l := Compute(docWithExperience(12), Params{Page: PageLetter, FontSize: 11}, access.TierPro)
	require.True(t, len(l.Pages) > 1)
	for i, pg := range l.Pages {
		assert.Equal(t, i, pg.Index)
		assert.Equal(t, float64(i)*l.PageContentHeight, pg.Offset)
	}
}

func TestComputeFontScaleGrowsContentNotWindow(t *testing.T) {
	doc := docWithExperience(6)
	small := Compute(doc, Params{Page: PageA4, FontSize: 10}, access.TierPro)
	large := Compute(doc, Params{Page: PageA4, FontSize: 14}, access.TierPro)

	assert.Equal(t, small.PageContentHeight, large.PageContentHeight)
	assert.Greater(t, large.ContentHeight, small.ContentHeight)
	assert.GreaterOrEqual(t, len(large.Pages), len(small.Pages))
}

func TestComputePageSizesDifferOnlyInWindow(t *testing.T) {
	doc := docWithExperience(4)
	a4 := Compute(doc, Params{Page: PageA4, FontSize: 11}, access.TierPro)
	legal := Compute(doc, Params{Page: PageLegal, FontSize: 11}, access.TierPro)

	assert.Greater(t, legal.PageContentHeight, a4.PageContentHeight)
	// 1in margins either side of the full page height.
	assert.InDelta(t, legal.PageHeight-192, legal.PageContentHeight, 0.001)
}

func TestComputeMutationChangesLayout(t *testing.T) {
	doc := docWithExperience(3)
	before := Compute(doc, Params{Page: PageA4, FontSize: 11}, access.TierPro)

	doc.Experience = append(doc.Experience, models.Experience{
		ID:          "exp-extra",
		Description: strings.Repeat("More work. ", 40),
	})
	after := Compute(doc, Params{Page: PageA4, FontSize: 11}, access.TierPro)

	assert.Greater(t, after.ContentHeight, before.ContentHeight)
}

func TestComputeSidebarColumnsPaginateIndependently(t *testing.T) {
	doc := models.NewResumeDocument("doc-1")
	doc.PersonalInfo.FullName = "Jane Doe"
	// long sidebar, short main: page count must follow the taller column.
	for i := 0; i < 120; i++ {
		doc.Skills = append(doc.Skills, models.Skill{ID: fmt.Sprintf("s-%d", i), Name: "Skill"})
	}
	l := Compute(doc, Params{Page: PageA4, FontSize: 11, Template: TemplateSidebar}, access.TierPro)

	assert.Greater(t, l.SidebarHeight, l.ContentHeight)
	expected := int(math.Ceil(l.SidebarHeight / l.PageContentHeight))
	if expected > MaxSlots {
		expected = MaxSlots
	}
	assert.Len(t, l.Pages, expected)
	for i, pg := range l.Pages {
		assert.Equal(t, float64(i)*l.PageContentHeight, pg.SidebarOffset)
	}
}

func TestComputeSidebarSectionsLeaveMainFlow(t *testing.T) {
	doc := models.NewResumeDocument("doc-1")
	for i := 0; i < 30; i++ {
		doc.Languages = append(doc.Languages, models.Language{ID: fmt.Sprintf("l-%d", i), Name: "Lang", Proficiency: "Fluent"})
	}
	single := Compute(doc, Params{Template: TemplateModern}, access.TierPro)
	split := Compute(doc, Params{Template: TemplateSidebar}, access.TierPro)

	assert.Greater(t, single.ContentHeight, split.ContentHeight)
	assert.Greater(t, split.SidebarHeight, 0.0)
}

func TestComputeWatermarkPerTier(t *testing.T) {
	doc := docWithExperience(8)
	for _, tt := range []struct {
		tier access.Tier
		want bool
	}{
		{access.TierGuest, true},
		{access.TierFree, true},
		{access.TierPro, false},
	} {
		l := Compute(doc, Params{}, tt.tier)
		for _, pg := range l.Pages {
			assert.Equal(t, tt.want, pg.Watermark, "tier %s", tt.tier)
		}
	}
}

func TestAvailableTemplates(t *testing.T) {
	assert.Len(t, AvailableTemplates(access.TierGuest), 4)
	assert.Len(t, AvailableTemplates(access.TierFree), 4)
	assert.Equal(t, AllTemplates, AvailableTemplates(access.TierPro))
}

func TestRegionDateFormatting(t *testing.T) {
	tests := []struct {
		region Region
		in     string
		want   string
	}{
		{RegionUSA, "2020-06-01", "June 2020"},
		{RegionCanada, "2020-06", "June 2020"},
		{RegionUK, "2020-06-01", "01/06/2020"},
		{RegionEurope, "not a date", "not a date"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.region.FormatDate(tt.in), "%s %s", tt.region, tt.in)
	}

	assert.Equal(t, "June 2020 — Present", RegionUSA.FormatDateRange("2020-06-01", "present"))
	assert.Equal(t, "", RegionUSA.FormatDateRange("", ""))
}

func TestRegionPhotoRule(t *testing.T) {
	assert.True(t, RegionSingapore.ShowsPhoto())
	assert.True(t, RegionEurope.ShowsPhoto())
	assert.False(t, RegionUSA.ShowsPhoto())
	assert.False(t, RegionUK.ShowsPhoto())
}
