package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	s, err := ParseStorage(start)
	require.NoError(t, err)
	e, err := ParseStorage(end)
	require.NoError(t, err)
	return Interval{Start: s, End: e}
}

func TestHasOverlap(t *testing.T) {
	tbl := []struct {
		name      string
		candidate Interval
		existing  []Interval
		want      bool
	}{
		{"partial", mustInterval(t, "01/01/2025", "10/01/2025"),
			[]Interval{mustInterval(t, "05/01/2025", "15/01/2025")}, true},
		{"adjacent", mustInterval(t, "01/01/2025", "10/01/2025"),
			[]Interval{mustInterval(t, "11/01/2025", "20/01/2025")}, false},
		{"identical", mustInterval(t, "01/01/2025", "10/01/2025"),
			[]Interval{mustInterval(t, "01/01/2025", "10/01/2025")}, true},
		{"shared bound", mustInterval(t, "01/01/2025", "10/01/2025"),
			[]Interval{mustInterval(t, "10/01/2025", "12/01/2025")}, true},
		{"contained", mustInterval(t, "01/01/2025", "31/01/2025"),
			[]Interval{mustInterval(t, "05/01/2025", "06/01/2025")}, true},
		{"before", mustInterval(t, "01/02/2025", "05/02/2025"),
			[]Interval{mustInterval(t, "01/01/2025", "31/01/2025")}, false},
		{"none", mustInterval(t, "01/01/2025", "10/01/2025"), nil, false},
		{"day first text order", mustInterval(t, "02/01/2025", "03/01/2025"),
			[]Interval{mustInterval(t, "01/02/2025", "28/02/2025")}, false},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasOverlap(tt.candidate, tt.existing))
		})
	}
}

func TestInterval_Validate(t *testing.T) {
	assert.NoError(t, mustInterval(t, "01/01/2025", "01/01/2025").Validate())
	err := mustInterval(t, "10/01/2025", "01/01/2025").Validate()
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, Interval{}.Validate(), ErrInvalidRange)
}

func TestInterval_Contains(t *testing.T) {
	iv := mustInterval(t, "01/01/2025", "10/01/2025")
	for s, want := range map[string]bool{"01/01/2025": true, "07/01/2025": true, "10/01/2025": true, "11/01/2025": false, "31/12/2024": false} {
		d, err := ParseStorage(s)
		require.NoError(t, err)
		assert.Equal(t, want, iv.Contains(d), s)
	}
}

func TestCheckWeekOverlap(t *testing.T) {
	week := func(id int64, cycle int, start, end string) StrategicWeek {
		iv := mustInterval(t, start, end)
		return StrategicWeek{ID: id, StartDate: iv.Start, EndDate: iv.End, Cycle: cycle}
	}
	weeks := []StrategicWeek{week(1, 20, "01/01/2025", "07/01/2025"), week(2, 21, "08/01/2025", "14/01/2025")}

	t.Run("conflict reports the week", func(t *testing.T) {
		err := CheckWeekOverlap(mustInterval(t, "10/01/2025", "20/01/2025"), weeks, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOverlapConflict)
		var oe *OverlapError
		require.True(t, errors.As(err, &oe))
		assert.Equal(t, int64(2), oe.ID)
		assert.Equal(t, 21, oe.Cycle)
		assert.Equal(t, "08/01/2025", oe.Interval.Start.String())
		assert.Contains(t, oe.Error(), "cycle 21")
	})

	t.Run("self excluded", func(t *testing.T) {
		assert.NoError(t, CheckWeekOverlap(mustInterval(t, "09/01/2025", "15/01/2025"), weeks, 2))
	})

	t.Run("free slot", func(t *testing.T) {
		assert.NoError(t, CheckWeekOverlap(mustInterval(t, "15/01/2025", "21/01/2025"), weeks, 0))
	})

	t.Run("inverted range", func(t *testing.T) {
		err := CheckWeekOverlap(mustInterval(t, "21/01/2025", "15/01/2025"), weeks, 0)
		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.NotErrorIs(t, err, ErrOverlapConflict)
	})
}
