package resume

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-chat/internal/types"
)

// Read returns the value stored at p. The second result is false when doc is
// nil, p is not addressable, or an intermediate record is missing.
func Read(doc *types.Resume, p Path) (any, bool) {
	if doc == nil || !p.Valid() {
		return nil, false
	}

	segments := p.Segments()
	switch segments[0] {
	case "personalInfo":
		if doc.PersonalInfo == nil || len(segments) < 2 {
			return nil, false
		}
		return readPersonalInfo(doc.PersonalInfo, segments[1])
	case "summary":
		return doc.Summary, true
	case "experience":
		return doc.Experience, true
	case "education":
		return doc.Education, true
	case "skills":
		return doc.Skills, true
	case "certifications":
		return doc.Certifications, true
	}
	return nil, false
}

func readPersonalInfo(info *types.PersonalInfo, field string) (any, bool) {
	switch field {
	case "name":
		return info.Name, true
	case "email":
		return info.Email, true
	case "phone":
		return info.Phone, true
	case "title":
		return info.Title, true
	}
	return nil, false
}

// Write returns a new snapshot in which the field at p holds value and every
// other field is unchanged. doc is never modified: the root (and for
// personalInfo.* paths the personal-info record) is cloned, siblings are shared
// by reference. A missing personal-info record is materialised empty. The
// written value is copied so later changes by the caller cannot leak in.
// A nil doc is treated as an empty resume.
func Write(doc *types.Resume, p Path, value any) (*types.Resume, error) {
	if !p.Valid() {
		return nil, &PathError{Path: p}
	}

	var next types.Resume
	if doc != nil {
		next = *doc
	}

	segments := p.Segments()
	switch segments[0] {
	case "personalInfo":
		s, ok := value.(string)
		if !ok {
			return nil, typeMismatch(p, "string", value)
		}
		var info types.PersonalInfo
		if next.PersonalInfo != nil {
			info = *next.PersonalInfo
		}
		switch segments[1] {
		case "name":
			info.Name = s
		case "email":
			info.Email = s
		case "phone":
			info.Phone = s
		case "title":
			info.Title = s
		}
		next.PersonalInfo = &info
	case "summary":
		s, ok := value.(string)
		if !ok {
			return nil, typeMismatch(p, "string", value)
		}
		next.Summary = s
	case "experience":
		v, ok := value.([]types.Experience)
		if !ok {
			return nil, typeMismatch(p, "[]types.Experience", value)
		}
		next.Experience = cloneExperience(v)
	case "education":
		v, ok := value.([]types.Education)
		if !ok {
			return nil, typeMismatch(p, "[]types.Education", value)
		}
		next.Education = cloneEducation(v)
	case "skills":
		v, ok := value.([]string)
		if !ok {
			return nil, typeMismatch(p, "[]string", value)
		}
		next.Skills = cloneStrings(v)
	case "certifications":
		v, ok := value.([]string)
		if !ok {
			return nil, typeMismatch(p, "[]string", value)
		}
		next.Certifications = cloneStrings(v)
	}

	return &next, nil
}

// DecodeValue decodes a wire value into the Go type of the field at p.
// JSON null decodes to the zero value of that type.
func DecodeValue(p Path, raw json.RawMessage) (any, error) {
	if !p.Valid() {
		return nil, &PathError{Path: p}
	}

	var (
		value any
		err   error
	)
	switch p {
	case PathName, PathEmail, PathPhone, PathTitle, PathSummary:
		var s string
		err = json.Unmarshal(raw, &s)
		value = s
	case PathExperience:
		var v []types.Experience
		err = json.Unmarshal(raw, &v)
		value = v
	case PathEducation:
		var v []types.Education
		err = json.Unmarshal(raw, &v)
		value = v
	case PathSkills, PathCertifications:
		var v []string
		err = json.Unmarshal(raw, &v)
		value = v
	}
	if err != nil {
		return nil, &ValueError{Path: p, Message: "failed to decode value", Cause: err}
	}
	return value, nil
}

func typeMismatch(p Path, want string, got any) error {
	return &ValueError{Path: p, Message: fmt.Sprintf("expected %s, got %T", want, got)}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneExperience(in []types.Experience) []types.Experience {
	if in == nil {
		return nil
	}
	out := make([]types.Experience, len(in))
	for i, exp := range in {
		out[i] = exp
		out[i].Achievements = cloneStrings(exp.Achievements)
	}
	return out
}

func cloneEducation(in []types.Education) []types.Education {
	if in == nil {
		return nil
	}
	out := make([]types.Education, len(in))
	copy(out, in)
	return out
}
