package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedBranding(t *testing.T) {
	assert.Equal(t, "addfont", CLIName())
	assert.Equal(t, "AddFont", DisplayName())
	assert.Equal(t, ".addfont", HomeDir())
	assert.Equal(t, "ADDFONT", EnvPrefix())
	assert.NotEmpty(t, Description())
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"registry", "ADDFONT_REGISTRY"},
		{"CATALOG", "ADDFONT_CATALOG"},
		{"log_level", "ADDFONT_LOG_LEVEL"},
	}
	for _, tt := range tests {
		t.Run(tt.suffix, func(t *testing.T) {
			assert.Equal(t, tt.want, EnvVar(tt.suffix))
		})
	}
}
