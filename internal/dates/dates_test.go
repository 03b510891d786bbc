package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToISOFromEs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		year    int
		want    string
		wantErr string
	}{
		{name: "simple", input: "15 de enero", year: 2024, want: "2024-01-15"},
		{name: "single digit day", input: "5 de marzo", year: 2023, want: "2023-03-05"},
		{name: "extra spaces and case", input: "  07   de   DICIEMBRE ", year: 2022, want: "2022-12-07"},
		{name: "unknown month", input: "15 de enerox", year: 2024, wantErr: "unrecognized month"},
		{name: "english month", input: "15 de january", year: 2024, wantErr: "unrecognized month"},
		{name: "iso date", input: "2024-01-15", year: 2024, wantErr: "invalid date format"},
		{name: "missing de", input: "15 enero", year: 2024, wantErr: "invalid date format"},
		{name: "empty", input: "", year: 2024, wantErr: "invalid date format"},
		{name: "leap day", input: "29 de febrero", year: 2024, want: "2024-02-29"},
		{name: "leap day in common year", input: "29 de febrero", year: 2023, wantErr: "does not exist"},
		{name: "day past month end", input: "31 de febrero", year: 2024, wantErr: "does not exist"},
		{name: "day zero", input: "0 de enero", year: 2024, wantErr: "does not exist"},
		{name: "day 99", input: "99 de abril", year: 2024, wantErr: "does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToISOFromEs(tt.input, tt.year)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToISOFromEsDefaultsToCurrentYear(t *testing.T) {
	got, err := ToISOFromEs("1 de mayo", 0)
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006")+"-05-01", got)
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "2024-01-10", Canonical("2024-01-10"))
	assert.Equal(t, "2024-01-10", Canonical("2024-01-10T00:00:00"))
	assert.Equal(t, "2024-01-10", Canonical("2024-01-10T23:30:00-04:00"))
	assert.Equal(t, "2024-01-10", Canonical("2024-01-10T00:00:00.000Z"))
	assert.Equal(t, "not a date", Canonical(" not a date "))
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange("2024-01-10", "2024-01-10", "2024-01-31"))
	assert.True(t, InRange("2024-01-31T18:00:00Z", "2024-01-01", "2024-01-31"))
	assert.False(t, InRange("2024-02-01", "2024-01-01", "2024-01-31"))
	assert.False(t, InRange("garbage", "2024-01-01", "2024-01-31"))
	assert.False(t, InRange("2024-01-10", "bad", "2024-01-31"))
}
