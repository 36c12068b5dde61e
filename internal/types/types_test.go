package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{"intent", "intent", ModeIntent, false},
		{"b2b", "b2b", ModeB2B, false},
		{"upper case", "B2B", ModeB2B, false},
		{"surrounding whitespace", "  intent\n", ModeIntent, false},
		{"empty", "", "", true},
		{"unknown", "b2c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidMode), "error should wrap ErrInvalidMode")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeValid(t *testing.T) {
	for _, m := range Modes() {
		assert.True(t, m.Valid(), "mode %q should be valid", m)
	}
	assert.False(t, Mode("").Valid())
	assert.False(t, Mode("Intent").Valid())
}

func TestCheckQuery(t *testing.T) {
	assert.ErrorIs(t, CheckQuery(""), ErrEmptyQuery)
	assert.ErrorIs(t, CheckQuery(" \t\n"), ErrEmptyQuery)
	assert.NoError(t, CheckQuery("hi"))
}
