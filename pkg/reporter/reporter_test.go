package reporter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docgate/pkg/config"
	"github.com/yaklabco/docgate/pkg/reporter"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  config.OutputFormat
		want    any
		wantErr bool
	}{
		{name: "empty defaults to text", format: "", want: &reporter.TextReporter{}},
		{name: "text", format: config.FormatText, want: &reporter.TextReporter{}},
		{name: "json", format: config.FormatJSON, want: &reporter.JSONReporter{}},
		{name: "unknown", format: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: tt.format})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported format")
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, rep)
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := reporter.DefaultOptions()
	assert.NotNil(t, opts.Writer)
	assert.Equal(t, config.FormatText, opts.Format)
	assert.Equal(t, config.ColorAuto, opts.Color)
	assert.False(t, opts.Suggestions)
	assert.Nil(t, opts.Anchors)
}
