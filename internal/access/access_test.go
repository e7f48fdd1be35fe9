package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPolicyTable(t *testing.T) {
	open := []Section{SectionPersonal, SectionExperience, SectionEducation, SectionImport}
	signIn := []Section{SectionSkills, SectionCertifications, SectionVolunteering}
	pro := []Section{
		SectionProjects, SectionInterests, SectionHonors,
		SectionLanguages, SectionPublications, SectionRecommendations,
	}

	for _, s := range open {
		assert.Equal(t, Open, Classify(TierGuest, s), "guest on %s", s)
		assert.Equal(t, Open, Classify(TierFree, s), "free on %s", s)
		assert.Equal(t, Open, Classify(TierPro, s), "pro on %s", s)
	}
	for _, s := range signIn {
		assert.Equal(t, RequiresSignIn, Classify(TierGuest, s), "guest on %s", s)
		assert.Equal(t, Open, Classify(TierFree, s), "free on %s", s)
		assert.Equal(t, Open, Classify(TierPro, s), "pro on %s", s)
	}
	for _, s := range pro {
		assert.Equal(t, RequiresPro, Classify(TierGuest, s), "guest on %s", s)
		assert.Equal(t, RequiresPro, Classify(TierFree, s), "free on %s", s)
		assert.Equal(t, Open, Classify(TierPro, s), "pro on %s", s)
	}
}

func TestClassifyUnknownSectionIsProOnly(t *testing.T) {
	assert.Equal(t, RequiresPro, Classify(TierFree, Section("bogus")))
	assert.Equal(t, Open, Classify(TierPro, Section("bogus")))
}

func TestDeriveTier(t *testing.T) {
	tests := []struct {
		name     string
		isGuest  bool
		isPro    bool
		email    string
		expected Tier
	}{
		{name: "guest", isGuest: true, expected: TierGuest},
		{name: "signed in free", expected: TierFree},
		{name: "paid pro", isPro: true, expected: TierPro},
		{name: "privileged email overrides flags", email: "founder@example.com", expected: TierPro},
		{name: "privileged email overrides guest flag", isGuest: true, email: "founder@example.com", expected: TierPro},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveTier(tt.isGuest, tt.isPro, tt.email, "founder@example.com")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDeriveTierEmptyPrivilegedEmailNeverMatches(t *testing.T) {
	assert.Equal(t, TierFree, DeriveTier(false, false, "", ""))
}

func TestCheckDeniedCarriesSectionAndRequiredTier(t *testing.T) {
	err := Check(TierGuest, SectionProjects)
	require.Error(t, err)
	denied, ok := err.(*DeniedError)
	require.True(t, ok)
	assert.Equal(t, SectionProjects, denied.Section)
	assert.Equal(t, TierPro, denied.Required)

	err = Check(TierGuest, SectionSkills)
	require.Error(t, err)
	denied = err.(*DeniedError)
	assert.Equal(t, TierFree, denied.Required)

	assert.NoError(t, Check(TierFree, SectionSkills))
	assert.NoError(t, Check(TierPro, SectionRecommendations))
}
