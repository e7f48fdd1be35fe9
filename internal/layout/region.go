package layout

import "time"

// Region selects regional formatting conventions: date style and whether a
// portrait photo block is rendered.
type Region string

const (
	RegionUSA       Region = "USA"
	RegionUK        Region = "UK"
	RegionCanada    Region = "Canada"
	RegionEurope    Region = "Europe"
	RegionSingapore Region = "Singapore"
	RegionIndia     Region = "India"
	RegionChina     Region = "China"
	RegionAsia      Region = "Asia"
)

func (r Region) isAsian() bool {
	switch r {
	case RegionSingapore, RegionIndia, RegionChina, RegionAsia:
		return true
	}
	return false
}

func (r Region) isNorthAmerican() bool {
	return r == RegionUSA || r == RegionCanada
}

// ShowsPhoto reports whether the template header includes the portrait block
// in this region.
func (r Region) ShowsPhoto() bool {
	return r.isAsian() || r == RegionEurope
}

var dateLayouts = []string{
	"2006-01-02", "2006-01", "01/2006", "January 2006", "Jan 2006", "2006",
}

// FormatDate renders an opaque date string in the regional convention.
// Strings that parse under none of the common layouts pass through unchanged.
func (r Region) FormatDate(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if r.isNorthAmerican() {
			return t.Format("January 2006")
		}
		return t.Format("02/01/2006")
	}
	return s
}

// FormatDateRange joins a start/end pair, keeping "present" literal.
func (r Region) FormatDateRange(start, end string) string {
	formattedEnd := r.FormatDate(end)
	if equalsPresent(end) {
		formattedEnd = "Present"
	}
	if start == "" && end == "" {
		return ""
	}
	return r.FormatDate(start) + " — " + formattedEnd
}

func equalsPresent(s string) bool {
	return s == "present" || s == "Present" || s == "PRESENT"
}
