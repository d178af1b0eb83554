package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePath_Valid(t *testing.T) {
	for _, candidate := range []string{
		"personalInfo.name",
		"personalInfo.email",
		"personalInfo.phone",
		"personalInfo.title",
		"summary",
		"experience",
		"education",
		"skills",
		"certifications",
	} {
		p, ok := ParsePath(candidate)
		assert.True(t, ok, candidate)
		assert.Equal(t, candidate, p.String())
		assert.True(t, p.Valid())
	}
}

func TestParsePath_Rejected(t *testing.T) {
	for _, candidate := range []string{
		"",
		"name",
		"location",
		"website",
		"personalInfo",
		"personalInfo.",
		"personalInfo.location",
		"PersonalInfo.name",
		" summary",
		"summary ",
		"skills.0",
		"experience.title",
	} {
		p, ok := ParsePath(candidate)
		assert.False(t, ok, "%q should be rejected", candidate)
		assert.Empty(t, p)
	}
}

func TestAllPaths(t *testing.T) {
	paths := AllPaths()
	assert.Len(t, paths, 9)
	assert.Equal(t, PathName, paths[0])
	assert.Equal(t, PathCertifications, paths[len(paths)-1])

	// Callers get their own copy
	paths[0] = Path("mutated")
	assert.Equal(t, PathName, AllPaths()[0])
}

func TestPath_Segments(t *testing.T) {
	assert.Equal(t, []string{"personalInfo", "phone"}, PathPhone.Segments())
	assert.Equal(t, []string{"skills"}, PathSkills.Segments())
	assert.False(t, Path("bogus").Valid())
}
