// Package importer converts the loosely-shaped records produced by the AI
// structuring service into fully-typed, id-stamped resume documents. It
// trusts nothing about the incoming shape: every collection may be a list of
// objects, a list of bare strings, or missing entirely.
package importer

import (
	"encoding/json"

	"github.com/shahhub/resumehub/internal/identgen"
	"github.com/shahhub/resumehub/internal/models"
	"github.com/shahhub/resumehub/internal/utils"
)

// primaryField is where a bare-string entry lands for each collection, e.g.
// skills arriving as ["Go", "SQL"] become {id, name: "Go"} records.
var primaryField = map[models.Collection]string{
	models.CollectionExperience:      "position",
	models.CollectionEducation:       "school",
	models.CollectionSkills:          "name",
	models.CollectionProjects:        "name",
	models.CollectionCertifications:  "name",
	models.CollectionInterests:       "name",
	models.CollectionVolunteering:    "organization",
	models.CollectionHonors:          "title",
	models.CollectionLanguages:       "name",
	models.CollectionPublications:    "title",
	models.CollectionRecommendations: "name",
}

type rawRecord struct {
	PersonalInfo map[string]any `json:"personal_info"`

	Experience      []json.RawMessage `json:"experience"`
	Education       []json.RawMessage `json:"education"`
	Skills          []json.RawMessage `json:"skills"`
	Projects        []json.RawMessage `json:"projects"`
	Certifications  []json.RawMessage `json:"certifications"`
	Interests       []json.RawMessage `json:"interests"`
	Volunteering    []json.RawMessage `json:"volunteering"`
	Honors          []json.RawMessage `json:"honors"`
	Languages       []json.RawMessage `json:"languages"`
	Publications    []json.RawMessage `json:"publications"`
	Recommendations []json.RawMessage `json:"recommendations"`
}

// Normalize decodes a structured record into a complete document: every
// collection present (empty when the source omitted it), every entry carrying
// an allocator-issued id when the source had none, personal-info fields
// defaulting to "". The raw input is never mutated. The returned document has
// no ID of its own; the editor merges it onto the live session document.
//
// A payload that is not a JSON object at the top level is unusable and
// returns an INVALID_ARGUMENT error; the caller must leave the current
// document untouched in that case.
func Normalize(raw []byte, alloc identgen.Allocator) (*models.ResumeDocument, error) {
	const op = "importer.Normalize"

	var rec rawRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "structured record is not usable JSON", err)
	}

	doc := models.NewResumeDocument("")
	doc.PersonalInfo = normalizePersonal(rec.PersonalInfo)

	doc.Experience = decodeList[models.Experience](rec.Experience, models.CollectionExperience, alloc)
	doc.Education = decodeList[models.Education](rec.Education, models.CollectionEducation, alloc)
	doc.Skills = decodeList[models.Skill](rec.Skills, models.CollectionSkills, alloc)
	doc.Projects = decodeList[models.Project](rec.Projects, models.CollectionProjects, alloc)
	doc.Certifications = decodeList[models.Certification](rec.Certifications, models.CollectionCertifications, alloc)
	doc.Interests = decodeList[models.Interest](rec.Interests, models.CollectionInterests, alloc)
	doc.Volunteering = decodeList[models.Volunteering](rec.Volunteering, models.CollectionVolunteering, alloc)
	doc.Honors = decodeList[models.Honor](rec.Honors, models.CollectionHonors, alloc)
	doc.Languages = decodeList[models.Language](rec.Languages, models.CollectionLanguages, alloc)
	doc.Publications = decodeList[models.Publication](rec.Publications, models.CollectionPublications, alloc)
	doc.Recommendations = decodeList[models.Recommendation](rec.Recommendations, models.CollectionRecommendations, alloc)

	return doc, nil
}

func normalizePersonal(raw map[string]any) models.PersonalInfo {
	var p models.PersonalInfo
	doc := models.ResumeDocument{PersonalInfo: p}
	for key, val := range raw {
		if s, ok := val.(string); ok {
			doc.SetPersonalField(key, s)
		}
	}
	return doc.PersonalInfo
}

type settableEntry interface {
	EntryID() string
	SetField(name, value string) bool
}

// decodeList accepts three shapes per item: a JSON string (wrapped into the
// collection's primary field), an object (string values copied field by
// field, id stamped when missing), or anything else (skipped). Item order is
// preserved.
func decodeList[T any, PT interface {
	*T
	settableEntry
}](items []json.RawMessage, col models.Collection, alloc identgen.Allocator) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			var entry T
			p := PT(&entry)
			p.SetField(primaryField[col], s)
			setEntryID(p, alloc.Allocate())
			out = append(out, entry)
			continue
		}

		var obj map[string]any
		if err := json.Unmarshal(item, &obj); err != nil {
			continue
		}
		var entry T
		p := PT(&entry)
		id := ""
		for key, val := range obj {
			sv, ok := val.(string)
			if !ok {
				continue
			}
			if key == "id" {
				id = sv
				continue
			}
			p.SetField(key, sv)
		}
		if id == "" {
			id = alloc.Allocate()
		}
		setEntryID(p, id)
		out = append(out, entry)
	}
	return out
}

func setEntryID(e settableEntry, id string) {
	switch v := e.(type) {
	case *models.Experience:
		v.ID = id
	case *models.Education:
		v.ID = id
	case *models.Skill:
		v.ID = id
	case *models.Project:
		v.ID = id
	case *models.Certification:
		v.ID = id
	case *models.Interest:
		v.ID = id
	case *models.Volunteering:
		v.ID = id
	case *models.Honor:
		v.ID = id
	case *models.Language:
		v.ID = id
	case *models.Publication:
		v.ID = id
	case *models.Recommendation:
		v.ID = id
	}
}
