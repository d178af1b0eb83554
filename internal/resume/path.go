// Package resume addresses and updates fields of a resume snapshot.
package resume

import "strings"

// Path identifies one addressable field of a Resume using dot-notation.
// Only the constants below are valid; use ParsePath for untrusted input.
type Path string

// Addressable fields
const (
	PathName           Path = "personalInfo.name"
	PathEmail          Path = "personalInfo.email"
	PathPhone          Path = "personalInfo.phone"
	PathTitle          Path = "personalInfo.title"
	PathSummary        Path = "summary"
	PathExperience     Path = "experience"
	PathEducation      Path = "education"
	PathSkills         Path = "skills"
	PathCertifications Path = "certifications"
)

var allPaths = []Path{
	PathName,
	PathEmail,
	PathPhone,
	PathTitle,
	PathSummary,
	PathExperience,
	PathEducation,
	PathSkills,
	PathCertifications,
}

var knownPaths = func() map[string]Path {
	m := make(map[string]Path, len(allPaths))
	for _, p := range allPaths {
		m[string(p)] = p
	}
	return m
}()

// ParsePath validates candidate against the fixed set of addressable fields.
// The match is exact: no trimming or case folding.
func ParsePath(candidate string) (Path, bool) {
	p, ok := knownPaths[candidate]
	return p, ok
}

// AllPaths returns every addressable field in document order.
func AllPaths() []Path {
	out := make([]Path, len(allPaths))
	copy(out, allPaths)
	return out
}

// Valid reports whether p is one of the addressable fields.
func (p Path) Valid() bool {
	_, ok := knownPaths[string(p)]
	return ok
}

// Segments splits the path on dots.
func (p Path) Segments() []string {
	return strings.Split(string(p), ".")
}

func (p Path) String() string {
	return string(p)
}
