package layout

import (
	"math"
	"strings"

	"github.com/shahhub/resumehub/internal/models"
)

// The measurer estimates the rendered height of the continuous resume flow
// without a browser: text wraps at an average glyph width, block spacing
// mirrors the template stylesheet. All vertical quantities scale with the
// base font size; the page window does not.

const (
	lineHeightEm     = 1.5
	avgGlyphWidthEm  = 0.55
	headingHeightEm  = 2.6 // section title + underline + padding
	entryGapEm       = 0.8
	sectionGapEm     = 2.0
	nameHeightEm     = 3.6 // 3em name line plus leading
	contactLineEm    = 1.2
	photoBlockHeight = 128.0 // fixed portrait box, independent of font size
)

// sidebarSections render in the narrow column of the Sidebar template.
var sidebarSections = map[models.Collection]bool{
	models.CollectionSkills:         true,
	models.CollectionCertifications: true,
	models.CollectionInterests:      true,
	models.CollectionLanguages:      true,
}

// sidebar column takes roughly a third of the content width.
const sidebarWidthRatio = 0.32
const mainColumnRatio = 0.64

type measurer struct {
	fontSize float64
	width    float64 // wrapping width in px
	region   Region
}

func (m measurer) em(v float64) float64 { return v * m.fontSize }

// textLines estimates wrapped line count for a text run at the measurer's
// width. Explicit newlines each start a new line.
func (m measurer) textLines(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	perLine := int(m.width / (avgGlyphWidthEm * m.fontSize))
	if perLine < 1 {
		perLine = 1
	}
	lines := 0
	for _, seg := range strings.Split(s, "\n") {
		n := len([]rune(strings.TrimSpace(seg)))
		if n == 0 {
			lines++
			continue
		}
		lines += (n + perLine - 1) / perLine
	}
	return lines
}

func (m measurer) textHeight(s string) float64 {
	return float64(m.textLines(s)) * m.em(lineHeightEm)
}

// lineOrZero charges one wrapped run for a composed meta line (title, dates)
// when any part is non-empty.
func (m measurer) lineOrZero(parts ...string) float64 {
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			return m.textHeight(strings.Join(parts, "  "))
		}
	}
	return 0
}

func (m measurer) headerHeight(info models.PersonalInfo) float64 {
	h := m.em(nameHeightEm)
	contact := 0
	for _, v := range []string{info.Email, info.Phone, info.Location, info.Website, info.LinkedIn} {
		if v != "" {
			contact++
		}
	}
	if contact > 0 {
		// contact chips wrap three to a row
		rows := (contact + 2) / 3
		h += float64(rows) * m.em(contactLineEm)
	}
	if m.region.ShowsPhoto() && info.PhotoURL != "" {
		if ph := photoBlockHeight; ph > h {
			h = ph
		}
	}
	return h + m.em(sectionGapEm)
}

func (m measurer) sectionHeight(doc *models.ResumeDocument, col models.Collection) float64 {
	var entries []float64
	switch col {
	case models.CollectionExperience:
		for _, e := range doc.Experience {
			h := m.lineOrZero(e.Position, e.Company)
			h += m.lineOrZero(m.region.FormatDateRange(e.StartDate, e.EndDate))
			h += m.textHeight(e.Description)
			entries = append(entries, h)
		}
	case models.CollectionEducation:
		for _, e := range doc.Education {
			entries = append(entries, m.lineOrZero(e.School, e.Degree, e.Year))
		}
	case models.CollectionSkills:
		for _, e := range doc.Skills {
			entries = append(entries, m.lineOrZero(e.Name))
		}
	case models.CollectionProjects:
		for _, e := range doc.Projects {
			entries = append(entries, m.lineOrZero(e.Name)+m.textHeight(e.Description))
		}
	case models.CollectionCertifications:
		for _, e := range doc.Certifications {
			entries = append(entries, m.lineOrZero(e.Name, e.Issuer, e.Year))
		}
	case models.CollectionInterests:
		for _, e := range doc.Interests {
			entries = append(entries, m.lineOrZero(e.Name))
		}
	case models.CollectionVolunteering:
		for _, e := range doc.Volunteering {
			h := m.lineOrZero(e.Role, e.Organization)
			h += m.lineOrZero(m.region.FormatDateRange(e.StartDate, e.EndDate))
			h += m.textHeight(e.Description)
			entries = append(entries, h)
		}
	case models.CollectionHonors:
		for _, e := range doc.Honors {
			entries = append(entries, m.lineOrZero(e.Title, e.Issuer, e.Date)+m.textHeight(e.Description))
		}
	case models.CollectionLanguages:
		for _, e := range doc.Languages {
			entries = append(entries, m.lineOrZero(e.Name, e.Proficiency))
		}
	case models.CollectionPublications:
		for _, e := range doc.Publications {
			entries = append(entries, m.lineOrZero(e.Title, e.Publisher, e.Date)+m.textHeight(e.Description))
		}
	case models.CollectionRecommendations:
		for _, e := range doc.Recommendations {
			entries = append(entries, m.lineOrZero(e.Name, e.Title)+m.textHeight(e.Text))
		}
	}

	if len(entries) == 0 {
		return 0
	}
	h := m.em(headingHeightEm)
	for i, eh := range entries {
		if i > 0 {
			h += m.em(entryGapEm)
		}
		h += eh
	}
	return h + m.em(sectionGapEm)
}

func (m measurer) summaryHeight(summary string) float64 {
	if strings.TrimSpace(summary) == "" {
		return 0
	}
	return m.em(headingHeightEm) + m.textHeight(summary) + m.em(sectionGapEm)
}

// measureFlow computes the total heights of the main flow and, for the
// Sidebar template, the sidebar flow. For single-column templates the
// sidebar height is zero and every section is charged to the main flow.
func measureFlow(doc *models.ResumeDocument, p Params) (main, sidebar float64) {
	contentWidth := p.Page.ContentWidth()

	if p.Template != TemplateSidebar {
		m := measurer{fontSize: p.FontSize, width: contentWidth, region: p.Region}
		main = m.headerHeight(doc.PersonalInfo)
		main += m.summaryHeight(doc.PersonalInfo.Summary)
		for _, col := range models.Collections {
			main += m.sectionHeight(doc, col)
		}
		return main, 0
	}

	mainM := measurer{fontSize: p.FontSize, width: contentWidth * mainColumnRatio, region: p.Region}
	sideM := measurer{fontSize: p.FontSize, width: contentWidth * sidebarWidthRatio, region: p.Region}

	// header spans both columns; charge it to the main flow only.
	main = mainM.headerHeight(doc.PersonalInfo)
	main += mainM.summaryHeight(doc.PersonalInfo.Summary)
	for _, col := range models.Collections {
		if sidebarSections[col] {
			sidebar += sideM.sectionHeight(doc, col)
		} else {
			main += mainM.sectionHeight(doc, col)
		}
	}
	return main, sidebar
}

func pagesFor(height, window float64) int {
	if height <= 0 {
		return 1
	}
	return int(math.Ceil(height / window))
}
