package pending

import (
	"testing"

	"github.com/jonathan/resume-chat/internal/resume"
	"github.com/stretchr/testify/assert"
)

func TestSet_MarkIdempotent(t *testing.T) {
	s := NewSet()
	s.Mark(resume.PathName)
	s.Mark(resume.PathName)

	assert.True(t, s.Has(resume.PathName))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []resume.Path{resume.PathName}, s.Paths())
}

func TestSet_ClearIdempotent(t *testing.T) {
	s := NewSet()
	s.Mark(resume.PathEmail)
	s.Mark(resume.PathSkills)

	s.Clear(resume.PathEmail)
	s.Clear(resume.PathEmail)
	s.Clear(resume.PathSummary)

	assert.False(t, s.Has(resume.PathEmail))
	assert.True(t, s.Has(resume.PathSkills))
	assert.Equal(t, 1, s.Len())
}

func TestSet_ClearAll(t *testing.T) {
	s := NewSet()
	for _, p := range resume.AllPaths() {
		s.Mark(p)
	}
	assert.Equal(t, 9, s.Len())

	s.ClearAll()
	s.ClearAll()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Paths())
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set
	assert.False(t, s.Has(resume.PathName))
	s.Clear(resume.PathName)
	s.ClearAll()

	s.Mark(resume.PathName)
	assert.True(t, s.Has(resume.PathName))
}

func TestSet_PathsSorted(t *testing.T) {
	s := NewSet()
	s.Mark(resume.PathSkills)
	s.Mark(resume.PathEducation)
	s.Mark(resume.PathName)

	assert.Equal(t, []resume.Path{resume.PathEducation, resume.PathName, resume.PathSkills}, s.Paths())
}
