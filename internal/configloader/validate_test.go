package configloader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docgate/pkg/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.True(t, Validate(config.NewConfig()).Valid())
	assert.True(t, Validate(nil).Valid())

	result := Validate(&config.Config{Format: "xml", Color: "rainbow"})
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "format", result.Errors[0].Field)
	assert.Equal(t, "color", result.Errors[1].Field)
	assert.Equal(t, []string{
		`error: format: invalid format "xml"; must be one of: text, json`,
		`error: color: invalid color mode "rainbow"; must be one of: auto, always, never`,
	}, result.AllMessages())
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  ValidationError
		want string
	}{
		{
			name: "file and line",
			err:  ValidationError{Field: "color", Message: "bad", FilePath: ".docgate.yml", Line: 3},
			want: ".docgate.yml:3: color: bad",
		},
		{
			name: "file only",
			err:  ValidationError{Message: "parse YAML: oops", FilePath: ".docgate.yml"},
			want: ".docgate.yml: parse YAML: oops",
		},
		{
			name: "message only",
			err:  ValidationError{Message: "bad"},
			want: "bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestValidationError_IsErrConfig(t *testing.T) {
	t.Parallel()

	var err error = &ValidationError{Message: "bad"}
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestValidateLayer_EnvironmentFieldNames(t *testing.T) {
	t.Parallel()

	result := validateLayer(&Layer{Source: SourceEnvironment, Format: ptr("yaml")})
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "DOCGATE_FORMAT", result.Errors[0].Field)
	assert.Empty(t, result.Errors[0].FilePath)
}
