package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
)

func TestDate_CalendarDay(t *testing.T) {
	hcm := time.FixedZone("ICT", 7*3600)

	tests := []struct {
		name  string
		input string
		loc   *time.Location
		want  string
	}{
		{name: "timestamp read in business zone", input: "2024-05-14T17:00:00.000Z", loc: hcm, want: "2024-05-15"},
		{name: "timestamp read in utc", input: "2024-05-14T17:00:00Z", loc: time.UTC, want: "2024-05-14"},
		{name: "timestamp with its own offset", input: "2024-05-15T06:00:00+07:00", loc: time.UTC, want: "2024-05-14"},
		{name: "plain date keeps its day", input: "2024-05-15", loc: hcm, want: "2024-05-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := domain.ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.CalendarDay(tt.loc).String())
		})
	}
}

func TestDate_CalendarDayAbsent(t *testing.T) {
	assert.False(t, domain.Date{}.CalendarDay(time.UTC).IsSet())
}
