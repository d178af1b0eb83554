// Package types provides type definitions for structured data used throughout the resume-chat client.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is the document filled in by the conversation.
// A *Resume handed out by the engine is an immutable snapshot: nothing reachable
// from it may be modified. PersonalInfo is nil when the agent sent a document
// without a personal-info record.
type Resume struct {
	PersonalInfo   *PersonalInfo `json:"personalInfo,omitempty"`
	Summary        string        `json:"summary"`
	Experience     []Experience  `json:"experience"`
	Education      []Education   `json:"education"`
	Skills         []string      `json:"skills"`
	Certifications []string      `json:"certifications"`
}

// PersonalInfo holds the contact block at the top of the resume
type PersonalInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Title string `json:"title"`
}

// Experience represents a single position held
type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Period       string   `json:"period"`
	Achievements []string `json:"achievements"`
}

// Education represents a single degree
type Education struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Period string `json:"period"`
}

// EmptyResume returns the document a session starts from: an empty personal-info
// record, empty text and empty (non-nil) sequences.
func EmptyResume() *Resume {
	return &Resume{
		PersonalInfo:   &PersonalInfo{},
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         []string{},
		Certifications: []string{},
	}
}
