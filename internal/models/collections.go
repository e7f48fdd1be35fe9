package models

// Collection names a resume entry collection. The values double as the
// section identifiers used by the capability gate and the HTTP routes.
type Collection string

const (
	CollectionExperience      Collection = "experience"
	CollectionEducation       Collection = "education"
	CollectionSkills          Collection = "skills"
	CollectionProjects        Collection = "projects"
	CollectionCertifications  Collection = "certifications"
	CollectionInterests       Collection = "interests"
	CollectionVolunteering    Collection = "volunteering"
	CollectionHonors          Collection = "honors"
	CollectionLanguages       Collection = "languages"
	CollectionPublications    Collection = "publications"
	CollectionRecommendations Collection = "recommendations"
)

// Collections lists every entry collection in render order.
var Collections = []Collection{
	CollectionExperience,
	CollectionEducation,
	CollectionSkills,
	CollectionProjects,
	CollectionCertifications,
	CollectionInterests,
	CollectionVolunteering,
	CollectionHonors,
	CollectionLanguages,
	CollectionPublications,
	CollectionRecommendations,
}

func ValidCollection(c Collection) bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}

func (e Experience) EntryID() string     { return e.ID }
func (e Education) EntryID() string      { return e.ID }
func (e Skill) EntryID() string          { return e.ID }
func (e Project) EntryID() string        { return e.ID }
func (e Certification) EntryID() string  { return e.ID }
func (e Interest) EntryID() string       { return e.ID }
func (e Volunteering) EntryID() string   { return e.ID }
func (e Honor) EntryID() string          { return e.ID }
func (e Language) EntryID() string       { return e.ID }
func (e Publication) EntryID() string    { return e.ID }
func (e Recommendation) EntryID() string { return e.ID }

func (e *Experience) SetField(name, value string) bool {
	switch name {
	case "company":
		e.Company = value
	case "position":
		e.Position = value
	case "start_date":
		e.StartDate = value
	case "end_date":
		e.EndDate = value
	case "description":
		e.Description = value
	default:
		return false
	}
	return true
}

func (e *Education) SetField(name, value string) bool {
	switch name {
	case "school":
		e.School = value
	case "degree":
		e.Degree = value
	case "year":
		e.Year = value
	default:
		return false
	}
	return true
}

func (e *Skill) SetField(name, value string) bool {
	if name != "name" {
		return false
	}
	e.Name = value
	return true
}

func (e *Project) SetField(name, value string) bool {
	switch name {
	case "name":
		e.Name = value
	case "description":
		e.Description = value
	default:
		return false
	}
	return true
}

func (e *Certification) SetField(name, value string) bool {
	switch name {
	case "name":
		e.Name = value
	case "issuer":
		e.Issuer = value
	case "year":
		e.Year = value
	default:
		return false
	}
	return true
}

func (e *Interest) SetField(name, value string) bool {
	if name != "name" {
		return false
	}
	e.Name = value
	return true
}

func (e *Volunteering) SetField(name, value string) bool {
	switch name {
	case "organization":
		e.Organization = value
	case "role":
		e.Role = value
	case "start_date":
		e.StartDate = value
	case "end_date":
		e.EndDate = value
	case "description":
		e.Description = value
	default:
		return false
	}
	return true
}

func (e *Honor) SetField(name, value string) bool {
	switch name {
	case "title":
		e.Title = value
	case "issuer":
		e.Issuer = value
	case "date":
		e.Date = value
	case "description":
		e.Description = value
	default:
		return false
	}
	return true
}

func (e *Language) SetField(name, value string) bool {
	switch name {
	case "name":
		e.Name = value
	case "proficiency":
		e.Proficiency = value
	default:
		return false
	}
	return true
}

func (e *Publication) SetField(name, value string) bool {
	switch name {
	case "title":
		e.Title = value
	case "publisher":
		e.Publisher = value
	case "date":
		e.Date = value
	case "description":
		e.Description = value
	default:
		return false
	}
	return true
}

func (e *Recommendation) SetField(name, value string) bool {
	switch name {
	case "name":
		e.Name = value
	case "title":
		e.Title = value
	case "text":
		e.Text = value
	default:
		return false
	}
	return true
}

type fieldEntry interface {
	EntryID() string
	SetField(name, value string) bool
}

func updateByID[T any, PT interface {
	*T
	fieldEntry
}](list []T, id, field, value string) bool {
	for i := range list {
		p := PT(&list[i])
		if p.EntryID() == id {
			return p.SetField(field, value)
		}
	}
	return false
}

func removeByID[T any, PT interface {
	*T
	fieldEntry
}](list []T, id string) ([]T, bool) {
	for i := range list {
		if PT(&list[i]).EntryID() == id {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}

// UpdateEntryField replaces one field of the entry with the given id,
// preserving every other field and the entry's position. It reports false
// when the entry or field does not exist; callers treat a missing entry as a
// stale reference, not an error.
func (d *ResumeDocument) UpdateEntryField(col Collection, id, field, value string) bool {
	switch col {
	case CollectionExperience:
		return updateByID[Experience](d.Experience, id, field, value)
	case CollectionEducation:
		return updateByID[Education](d.Education, id, field, value)
	case CollectionSkills:
		return updateByID[Skill](d.Skills, id, field, value)
	case CollectionProjects:
		return updateByID[Project](d.Projects, id, field, value)
	case CollectionCertifications:
		return updateByID[Certification](d.Certifications, id, field, value)
	case CollectionInterests:
		return updateByID[Interest](d.Interests, id, field, value)
	case CollectionVolunteering:
		return updateByID[Volunteering](d.Volunteering, id, field, value)
	case CollectionHonors:
		return updateByID[Honor](d.Honors, id, field, value)
	case CollectionLanguages:
		return updateByID[Language](d.Languages, id, field, value)
	case CollectionPublications:
		return updateByID[Publication](d.Publications, id, field, value)
	case CollectionRecommendations:
		return updateByID[Recommendation](d.Recommendations, id, field, value)
	}
	return false
}

// AppendBlank appends an empty entry carrying the given id to the end of the
// collection. Field values start as "".
func (d *ResumeDocument) AppendBlank(col Collection, id string) bool {
	switch col {
	case CollectionExperience:
		d.Experience = append(d.Experience, Experience{ID: id})
	case CollectionEducation:
		d.Education = append(d.Education, Education{ID: id})
	case CollectionSkills:
		d.Skills = append(d.Skills, Skill{ID: id})
	case CollectionProjects:
		d.Projects = append(d.Projects, Project{ID: id})
	case CollectionCertifications:
		d.Certifications = append(d.Certifications, Certification{ID: id})
	case CollectionInterests:
		d.Interests = append(d.Interests, Interest{ID: id})
	case CollectionVolunteering:
		d.Volunteering = append(d.Volunteering, Volunteering{ID: id})
	case CollectionHonors:
		d.Honors = append(d.Honors, Honor{ID: id})
	case CollectionLanguages:
		d.Languages = append(d.Languages, Language{ID: id})
	case CollectionPublications:
		d.Publications = append(d.Publications, Publication{ID: id})
	case CollectionRecommendations:
		d.Recommendations = append(d.Recommendations, Recommendation{ID: id})
	default:
		return false
	}
	return true
}

// RemoveEntry deletes the entry with the given id. Missing ids report false
// and leave the collection untouched.
func (d *ResumeDocument) RemoveEntry(col Collection, id string) bool {
	var ok bool
	switch col {
	case CollectionExperience:
		d.Experience, ok = removeByID[Experience](d.Experience, id)
	case CollectionEducation:
		d.Education, ok = removeByID[Education](d.Education, id)
	case CollectionSkills:
		d.Skills, ok = removeByID[Skill](d.Skills, id)
	case CollectionProjects:
		d.Projects, ok = removeByID[Project](d.Projects, id)
	case CollectionCertifications:
		d.Certifications, ok = removeByID[Certification](d.Certifications, id)
	case CollectionInterests:
		d.Interests, ok = removeByID[Interest](d.Interests, id)
	case CollectionVolunteering:
		d.Volunteering, ok = removeByID[Volunteering](d.Volunteering, id)
	case CollectionHonors:
		d.Honors, ok = removeByID[Honor](d.Honors, id)
	case CollectionLanguages:
		d.Languages, ok = removeByID[Language](d.Languages, id)
	case CollectionPublications:
		d.Publications, ok = removeByID[Publication](d.Publications, id)
	case CollectionRecommendations:
		d.Recommendations, ok = removeByID[Recommendation](d.Recommendations, id)
	}
	return ok
}

// EntryIDs returns the ids of a collection in order.
func (d *ResumeDocument) EntryIDs(col Collection) []string {
	var ids []string
	switch col {
	case CollectionExperience:
		for _, e := range d.Experience {
			ids = append(ids, e.ID)
		}
	case CollectionEducation:
		for _, e := range d.Education {
			ids = append(ids, e.ID)
		}
	case CollectionSkills:
		for _, e := range d.Skills {
			ids = append(ids, e.ID)
		}
	case CollectionProjects:
		for _, e := range d.Projects {
			ids = append(ids, e.ID)
		}
	case CollectionCertifications:
		for _, e := range d.Certifications {
			ids = append(ids, e.ID)
		}
	case CollectionInterests:
		for _, e := range d.Interests {
			ids = append(ids, e.ID)
		}
	case CollectionVolunteering:
		for _, e := range d.Volunteering {
			ids = append(ids, e.ID)
		}
	case CollectionHonors:
		for _, e := range d.Honors {
			ids = append(ids, e.ID)
		}
	case CollectionLanguages:
		for _, e := range d.Languages {
			ids = append(ids, e.ID)
		}
	case CollectionPublications:
		for _, e := range d.Publications {
			ids = append(ids, e.ID)
		}
	case CollectionRecommendations:
		for _, e := range d.Recommendations {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// SetPersonalField replaces a single personal-info field by its wire name.
func (d *ResumeDocument) SetPersonalField(name, value string) bool {
	switch name {
	case "full_name":
		d.PersonalInfo.FullName = value
	case "email":
		d.PersonalInfo.Email = value
	case "phone":
		d.PersonalInfo.Phone = value
	case "location":
		d.PersonalInfo.Location = value
	case "website":
		d.PersonalInfo.Website = value
	case "linkedin":
		d.PersonalInfo.LinkedIn = value
	case "summary":
		d.PersonalInfo.Summary = value
	case "dob":
		d.PersonalInfo.DOB = value
	case "nationality":
		d.PersonalInfo.Nationality = value
	case "photo_url":
		d.PersonalInfo.PhotoURL = value
	case "gender":
		d.PersonalInfo.Gender = value
	case "race":
		d.PersonalInfo.Race = value
	case "ethnicity":
		d.PersonalInfo.Ethnicity = value
	default:
		return false
	}
	return true
}
