package timezone_test

import (
	"reception/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	appTime := timezone.ToAppTime(utcTime)

	assert.True(t, appTime.Equal(utcTime))
	assert.Equal(t, timezone.GetLocation(), appTime.Location())
}

func TestParseAPITime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		check   func(t *testing.T, got time.Time)
	}{
		{
			name:  "api wall clock",
			value: "2024-03-01 14:05:09",
			check: func(t *testing.T, got time.Time) {
				assert.Equal(t, 14, got.Hour())
				assert.Equal(t, 5, got.Minute())
				assert.Equal(t, timezone.GetLocation(), got.Location())
			},
		},
		{
			name:  "rfc3339",
			value: "2024-03-01T14:05:09+05:30",
			check: func(t *testing.T, got time.Time) {
				assert.Equal(t, time.Date(2024, 3, 1, 8, 35, 9, 0, time.UTC), got.UTC())
			},
		},
		{
			name:    "garbage",
			value:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseAPITime(tt.value)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", timezone.Format(parsed, "2006-01-02"))
}
