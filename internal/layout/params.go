package layout

// PageSize is the physical page kind. Dimensions are in CSS pixels at 96dpi,
// matching what the browser print path produces.
type PageSize string

const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "Letter"
	PageLegal  PageSize = "Legal"
)

const (
	dpi = 96.0
	// Pages use 1-inch margins on every side.
	marginPx = 1.0 * dpi

	// MaxSlots bounds the pre-rendered page slots. Content past the last
	// slot is reported as truncated rather than growing the document.
	MaxSlots = 5
)

func (p PageSize) valid() bool {
	return p == PageA4 || p == PageLetter || p == PageLegal
}

// Dimensions returns full page width and height in pixels.
func (p PageSize) Dimensions() (w, h float64) {
	switch p {
	case PageLetter:
		return 8.5 * dpi, 11.0 * dpi
	case PageLegal:
		return 8.5 * dpi, 14.0 * dpi
	default: // A4
		return 8.27 * dpi, 11.69 * dpi
	}
}

// ContentWidth is the width inside the margins.
func (p PageSize) ContentWidth() float64 {
	w, _ := p.Dimensions()
	return w - 2*marginPx
}

// ContentHeight is the vertical extent of one page's content window. It
// depends on page size only; font scale changes how much content fits, not
// the window itself.
func (p PageSize) ContentHeight() float64 {
	_, h := p.Dimensions()
	return h - 2*marginPx
}

// Template names a visual resume template. Only TemplateSidebar changes the
// pagination model (two independent columns); the rest differ in styling the
// client owns.
type Template string

const (
	TemplateModern    Template = "Modern"
	TemplateExecutive Template = "Executive"
	TemplateSidebar   Template = "Sidebar"
	TemplateAcademic  Template = "Academic"
	TemplateWordPro1  Template = "Word-Pro-1"
	TemplateWordPro2  Template = "Word-Pro-2"
	TemplateWordPro3  Template = "Word-Pro-3"
	TemplateWordPro4  Template = "Word-Pro-4"
	TemplateWordPro5  Template = "Word-Pro-5"
	TemplateWordPro6  Template = "Word-Pro-6"
)

// AllTemplates in catalog order. The first four are available to every tier;
// the Word-Pro set is Pro-only.
var AllTemplates = []Template{
	TemplateModern, TemplateExecutive, TemplateSidebar, TemplateAcademic,
	TemplateWordPro1, TemplateWordPro2, TemplateWordPro3,
	TemplateWordPro4, TemplateWordPro5, TemplateWordPro6,
}

const freeTemplateCount = 4

// Params are the formatting inputs of one layout pass.
type Params struct {
	Page     PageSize
	FontSize float64 // base font size in px; 11 when zero
	Template Template
	Region   Region
}

func (p Params) withDefaults() Params {
	if !p.Page.valid() {
		p.Page = PageA4
	}
	if p.FontSize <= 0 {
		p.FontSize = 11
	}
	if p.Template == "" {
		p.Template = TemplateModern
	}
	if p.Region == "" {
		p.Region = RegionUSA
	}
	return p
}
