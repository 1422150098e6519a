package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avdeevko/taskhub/internal/service"
)

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
		invalid  bool
	}{
		{"valid", "42", 42, false},
		{"missing", "", 0, true},
		{"non numeric", "abc", 0, true},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"float", "1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIntParam("taskId", tt.raw)

			if tt.invalid {
				assert.NotNil(t, err)
				assert.Equal(t, service.ErrorCodeInvalidInput, err.Code)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Run("absent value is nil", func(t *testing.T) {
		got, err := parseTimestamp("startDate", "")
		assert.Nil(t, err)
		assert.Nil(t, got)
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := parseTimestamp("startDate", "2026-02-01T10:30:00Z")
		assert.Nil(t, err)
		assert.Equal(t, time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC), *got)
	})

	t.Run("date only", func(t *testing.T) {
		got, err := parseTimestamp("startDate", "2026-02-01")
		assert.Nil(t, err)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("unparsable", func(t *testing.T) {
		got, err := parseTimestamp("startDate", "next tuesday")
		assert.NotNil(t, err)
		assert.Equal(t, service.ErrorCodeInvalidInput, err.Code)
		assert.Nil(t, got)
	})
}
