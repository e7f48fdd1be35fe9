package access

import "fmt"

// Tier is the account capability level.
type Tier int

const (
	TierGuest Tier = iota
	TierFree
	TierPro
)

func (t Tier) String() string {
	switch t {
	case TierGuest:
		return "guest"
	case TierFree:
		return "free"
	case TierPro:
		return "pro"
	default:
		return "unknown"
	}
}

// DeriveTier maps raw identity flags to a tier. The privileged email is
// treated as permanently Pro regardless of stored flags; this comparison is
// the only place the override exists.
func DeriveTier(isGuest, isPro bool, email, privilegedEmail string) Tier {
	if isPro || (privilegedEmail != "" && email == privilegedEmail) {
		return TierPro
	}
	if isGuest {
		return TierGuest
	}
	return TierFree
}

// Section identifies one editor section. Entry collections use their
// collection name; "personal" and "import" are the two non-collection
// sections.
type Section string

const (
	SectionPersonal        Section = "personal"
	SectionImport          Section = "import"
	SectionExperience      Section = "experience"
	SectionEducation       Section = "education"
	SectionSkills          Section = "skills"
	SectionProjects        Section = "projects"
	SectionCertifications  Section = "certifications"
	SectionInterests       Section = "interests"
	SectionVolunteering    Section = "volunteering"
	SectionHonors          Section = "honors"
	SectionLanguages       Section = "languages"
	SectionPublications    Section = "publications"
	SectionRecommendations Section = "recommendations"
)

// Level is the classification of a section for a tier.
type Level int

const (
	Open Level = iota
	RequiresSignIn
	RequiresPro
)

func (l Level) String() string {
	switch l {
	case Open:
		return "open"
	case RequiresSignIn:
		return "requires_sign_in"
	case RequiresPro:
		return "requires_pro"
	default:
		return "unknown"
	}
}

// Classify returns the access level of a section for the given tier. Pure and
// total: unknown sections are treated as Pro-only rather than open. Callers
// must re-evaluate on every operation, since tier can change mid-session
// when a sign-in or upgrade completes.
func Classify(tier Tier, section Section) Level {
	if tier == TierPro {
		return Open
	}

	switch section {
	case SectionPersonal, SectionExperience, SectionEducation, SectionImport:
		return Open
	case SectionSkills, SectionCertifications, SectionVolunteering:
		if tier == TierGuest {
			return RequiresSignIn
		}
		return Open
	case SectionProjects, SectionInterests, SectionHonors,
		SectionLanguages, SectionPublications, SectionRecommendations:
		return RequiresPro
	default:
		return RequiresPro
	}
}

// DeniedError reports a refused section operation together with the tier the
// caller would need.
type DeniedError struct {
	Section  Section
	Required Tier
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("access denied: section %q requires tier %s", e.Section, e.Required)
}

// Check returns nil when the tier may operate on the section, or a
// DeniedError naming the required tier.
func Check(tier Tier, section Section) error {
	switch Classify(tier, section) {
	case Open:
		return nil
	case RequiresSignIn:
		return &DeniedError{Section: section, Required: TierFree}
	default:
		return &DeniedError{Section: section, Required: TierPro}
	}
}
