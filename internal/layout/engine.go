// Package layout computes how the continuous resume flow splits across
// fixed-size page slots. Pagination is offset windowing: each slot shows the
// flow shifted up by a page-window multiple and clipped to the window, so an
// entry may straddle a page boundary. That approximation is the product
// policy, not an accident; a true flow layout would have to keep headings
// attached to their first body line and push whole entries that would break
// at the top of a page.
package layout

import (
	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/models"
)

// Page is one rendered slot.
type Page struct {
	Index int `json:"index"`
	// Offset is how far the main flow is shifted up inside this slot, px.
	Offset float64 `json:"offset"`
	// SidebarOffset is the independent shift of the sidebar flow; zero for
	// single-column templates.
	SidebarOffset float64 `json:"sidebar_offset"`
	// Watermark is set for every slot rendered below the Pro tier.
	Watermark bool `json:"watermark"`
}

// Layout is the result of one full pagination pass.
type Layout struct {
	Pages []Page `json:"pages"`

	PageWidth         float64 `json:"page_width"`
	PageHeight        float64 `json:"page_height"`
	PageContentHeight float64 `json:"page_content_height"`

	ContentHeight float64 `json:"content_height"`
	SidebarHeight float64 `json:"sidebar_height"`

	// Truncated is set when the flow needs more than MaxSlots pages.
	Truncated bool `json:"truncated"`
}

// Compute paginates the document under the given formatting parameters.
// There is no incremental path: every call measures the whole flow from the
// current content, font scale, page size and template, so any mutation is
// fully reflected. The watermark decision reads the tier passed in on this
// call and nothing else.
func Compute(doc *models.ResumeDocument, p Params, tier access.Tier) Layout {
	p = p.withDefaults()

	w, h := p.Page.Dimensions()
	window := p.Page.ContentHeight()

	mainH, sideH := measureFlow(doc, p)

	need := pagesFor(mainH, window)
	if sideN := pagesFor(sideH, window); p.Template == TemplateSidebar && sideN > need {
		need = sideN
	}

	truncated := false
	if need > MaxSlots {
		need = MaxSlots
		truncated = true
	}

	watermark := tier != access.TierPro
	pages := make([]Page, need)
	for i := range pages {
		pages[i] = Page{
			Index:         i,
			Offset:        float64(i) * window,
			SidebarOffset: float64(i) * window,
			Watermark:     watermark,
		}
		if p.Template != TemplateSidebar {
			pages[i].SidebarOffset = 0
		}
	}

	return Layout{
		Pages:             pages,
		PageWidth:         w,
		PageHeight:        h,
		PageContentHeight: window,
		ContentHeight:     mainH,
		SidebarHeight:     sideH,
		Truncated:         truncated,
	}
}

// AvailableTemplates returns the template catalog for a tier: every template
// for Pro, the first four otherwise.
func AvailableTemplates(tier access.Tier) []Template {
	if tier == access.TierPro {
		return append([]Template(nil), AllTemplates...)
	}
	return append([]Template(nil), AllTemplates[:freeTemplateCount]...)
}
