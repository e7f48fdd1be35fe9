package models

import "time"

// PersonalInfo is the singleton contact block of a resume. Every field is a
// plain string and defaults to "" so renderers never have to nil-check.
type PersonalInfo struct {
	FullName    string `json:"full_name" bson:"full_name"`
	Email       string `json:"email" bson:"email"`
	Phone       string `json:"phone" bson:"phone"`
	Location    string `json:"location" bson:"location"`
	Website     string `json:"website" bson:"website"`
	LinkedIn    string `json:"linkedin" bson:"linkedin"`
	Summary     string `json:"summary" bson:"summary"`
	DOB         string `json:"dob" bson:"dob"`
	Nationality string `json:"nationality" bson:"nationality"`
	PhotoURL    string `json:"photo_url" bson:"photo_url"`
	Gender      string `json:"gender" bson:"gender"`
	Race        string `json:"race" bson:"race"`
	Ethnicity   string `json:"ethnicity" bson:"ethnicity"`
}

type Experience struct {
	ID          string `json:"id" bson:"id"`
	Company     string `json:"company" bson:"company"`
	Position    string `json:"position" bson:"position"`
	StartDate   string `json:"start_date" bson:"start_date"`
	EndDate     string `json:"end_date" bson:"end_date"`
	Description string `json:"description" bson:"description"`
}

type Education struct {
	ID     string `json:"id" bson:"id"`
	School string `json:"school" bson:"school"`
	Degree string `json:"degree" bson:"degree"`
	Year   string `json:"year" bson:"year"`
}

type Skill struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

type Project struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}

type Certification struct {
	ID     string `json:"id" bson:"id"`
	Name   string `json:"name" bson:"name"`
	Issuer string `json:"issuer" bson:"issuer"`
	Year   string `json:"year" bson:"year"`
}

type Interest struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

type Volunteering struct {
	ID           string `json:"id" bson:"id"`
	Organization string `json:"organization" bson:"organization"`
	Role         string `json:"role" bson:"role"`
	StartDate    string `json:"start_date" bson:"start_date"`
	EndDate      string `json:"end_date" bson:"end_date"`
	Description  string `json:"description" bson:"description"`
}

type Honor struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Issuer      string `json:"issuer" bson:"issuer"`
	Date        string `json:"date" bson:"date"`
	Description string `json:"description" bson:"description"`
}

type Language struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Proficiency string `json:"proficiency" bson:"proficiency"`
}

type Publication struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Publisher   string `json:"publisher" bson:"publisher"`
	Date        string `json:"date" bson:"date"`
	Description string `json:"description" bson:"description"`
}

type Recommendation struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Title string `json:"title" bson:"title"`
	Text  string `json:"text" bson:"text"`
}

// ResumeDocument is the root aggregate of one editing session. ID is assigned
// once at creation and never changes. Collections keep insertion order; entry
// ids are unique within their collection, never across the document.
//
// Dates are opaque strings on purpose: the import pipeline cannot guarantee
// any calendar format.
type ResumeDocument struct {
	ID           string    `json:"id" bson:"id"`
	LastModified time.Time `json:"last_modified" bson:"last_modified"`

	PersonalInfo PersonalInfo `json:"personal_info" bson:"personal_info"`

	Experience      []Experience     `json:"experience" bson:"experience"`
	Education       []Education      `json:"education" bson:"education"`
	Skills          []Skill          `json:"skills" bson:"skills"`
	Projects        []Project        `json:"projects" bson:"projects"`
	Certifications  []Certification  `json:"certifications" bson:"certifications"`
	Interests       []Interest       `json:"interests" bson:"interests"`
	Volunteering    []Volunteering   `json:"volunteering" bson:"volunteering"`
	Honors          []Honor          `json:"honors" bson:"honors"`
	Languages       []Language       `json:"languages" bson:"languages"`
	Publications    []Publication    `json:"publications" bson:"publications"`
	Recommendations []Recommendation `json:"recommendations" bson:"recommendations"`
}

// NewResumeDocument returns an empty document with all collections allocated
// so JSON renders [] instead of null.
func NewResumeDocument(id string) *ResumeDocument {
	return &ResumeDocument{
		ID:              id,
		LastModified:    time.Now().UTC(),
		Experience:      []Experience{},
		Education:       []Education{},
		Skills:          []Skill{},
		Projects:        []Project{},
		Certifications:  []Certification{},
		Interests:       []Interest{},
		Volunteering:    []Volunteering{},
		Honors:          []Honor{},
		Languages:       []Language{},
		Publications:    []Publication{},
		Recommendations: []Recommendation{},
	}
}

// Clone deep-copies the document so snapshots (autosave, layout) are isolated
// from further edits.
func (d *ResumeDocument) Clone() *ResumeDocument {
	if d == nil {
		return nil
	}
	out := *d
	out.Experience = append([]Experience(nil), d.Experience...)
	out.Education = append([]Education(nil), d.Education...)
	out.Skills = append([]Skill(nil), d.Skills...)
	out.Projects = append([]Project(nil), d.Projects...)
	out.Certifications = append([]Certification(nil), d.Certifications...)
	out.Interests = append([]Interest(nil), d.Interests...)
	out.Volunteering = append([]Volunteering(nil), d.Volunteering...)
	out.Honors = append([]Honor(nil), d.Honors...)
	out.Languages = append([]Language(nil), d.Languages...)
	out.Publications = append([]Publication(nil), d.Publications...)
	out.Recommendations = append([]Recommendation(nil), d.Recommendations...)
	return &out
}
