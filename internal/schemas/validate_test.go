package schemas

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeFile_Valid(t *testing.T) {
	err := ValidateResumeFile(filepath.Join("testdata", "valid_resume.json"))
	assert.NoError(t, err)
}

func TestValidateResumeFile_WrongType(t *testing.T) {
	err := ValidateResumeFile(filepath.Join("testdata", "wrong_type.json"))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.Greater(t, len(validationErr.Errors), 0)
	assert.Equal(t, "skills", validationErr.Errors[0].Field)
}

func TestValidateResumeFile_Malformed(t *testing.T) {
	err := ValidateResumeFile(filepath.Join("testdata", "malformed.json"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateResumeFile_NonExistent(t *testing.T) {
	err := ValidateResumeFile("testdata/nonexistent.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateResume(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{"empty object", `{}`, false},
		{"missing personal info", `{"summary": "x", "skills": []}`, false},
		{"null lists", `{"experience": null, "skills": null}`, false},
		{"null text fields", `{"personalInfo": {"name": null, "email": null}, "summary": null}`, false},
		{"null personal info", `{"personalInfo": null}`, false},
		{"null entry fields", `{"experience": [{"title": null, "company": "Acme"}], "education": [{"degree": null}]}`, false},
		{"null skill item", `{"skills": [null]}`, true},
		{"extra fields ignored", `{"location": "New York, NY", "website": "www.johndoe.com"}`, false},
		{"array root", `[]`, true},
		{"string root", `"resume"`, true},
		{"numeric name", `{"personalInfo": {"name": 42}}`, true},
		{"experience not a list", `{"experience": {"title": "x"}}`, true},
		{"achievement not text", `{"experience": [{"title": "x", "achievements": [1]}]}`, true},
		{"education entry not object", `{"education": ["BSc"]}`, true},
		{"certifications wrong item", `{"certifications": [true]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResume([]byte(tt.document))
			if tt.wantError {
				require.Error(t, err)
				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Greater(t, len(validationErr.Errors), 0)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAnswer(t *testing.T) {
	assert.NoError(t, ValidateAnswer([]byte(`{"type":"answer","content":"Hi, my name is John Doe."}`)))
	assert.NoError(t, ValidateAnswer([]byte(`{"type":"answer","content":""}`)))

	for _, frame := range []string{
		`{"type":"answer"}`,
		`{"type":"question","content":"x"}`,
		`{"type":"answer","content":"x","extra":1}`,
		`{"type":"answer","content":7}`,
	} {
		err := ValidateAnswer([]byte(frame))
		assert.Error(t, err, frame)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "summary", Message: "Invalid type. Expected: string, given: integer"},
			{Field: "skills.0", Message: "Invalid type. Expected: string, given: boolean"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "summary")
	assert.Contains(t, errorMsg, "skills.0")
}
