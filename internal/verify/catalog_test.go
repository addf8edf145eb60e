package verify

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/sqlshim/pkg/dialect"
	"github.com/leapstack-labs/sqlshim/pkg/dialects/oscar"
	"github.com/leapstack-labs/sqlshim/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_RendersForOscar(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Catalog() {
		t.Run(p.Name, func(t *testing.T) {
			assert.False(t, seen[p.Name], "duplicate probe name")
			seen[p.Name] = true

			sql, err := format.Format(p.Stmt, oscar.Oscar)
			if p.WantUnsupported {
				require.Error(t, err)
				assert.True(t, errors.Is(err, dialect.ErrUnsupported))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, sql)
		})
	}
}

func TestCatalog_RenderedSQL(t *testing.T) {
	tests := []struct {
		probe    string
		contains string
	}{
		{"floor MONTH", "DATE_FORMAT('2024-05-15 13:45:30', '%Y-%m-01')"},
		{"floor WEEK", "STR_TO_DATE(DATE_FORMAT('2024-05-15 13:45:30', '%x%v-1'), '%x%v-%w')"},
		{"interval DAY TO HOUR", "DATE_ADD('2024-05-15 00:00:00', INTERVAL '1 2' DAY_HOUR)"},
		{"interval SECOND", "INTERVAL '6' SECOND)"},
		{"interval MINUTE TO SECOND", "INTERVAL '3:04' MINUTE_SECOND)"},
		{"single value, one row", "CASE COUNT(x) WHEN 0 THEN NULL WHEN 1 THEN x ELSE (SELECT NULL UNION ALL SELECT NULL) END"},
		{"nulls last", "x IS NULL"},
		{"offset without fetch", "LIMIT 1, 18446744073709551615"},
	}

	probes := make(map[string]Probe)
	for _, p := range Catalog() {
		probes[p.Name] = p
	}

	for _, tt := range tests {
		t.Run(tt.probe, func(t *testing.T) {
			p, ok := probes[tt.probe]
			require.True(t, ok, "probe %q not in catalog", tt.probe)

			sql, err := format.Format(p.Stmt, oscar.Oscar)
			require.NoError(t, err)
			assert.Contains(t, sql, tt.contains)
		})
	}
}

func TestCatalog_FractionalSecondEntry(t *testing.T) {
	var found *Probe
	for _, p := range Catalog() {
		if p.Name == "interval SECOND fractional 3" {
			found = &p
			break
		}
	}
	require.NotNil(t, found)
	assert.True(t, found.WantUnsupported)

	_, err := format.Format(found.Stmt, oscar.Oscar)
	var unsupported *dialect.UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "fractional second precision", unsupported.Construct)
}

func TestCatalog_Coverage(t *testing.T) {
	counts := make(map[string]int)
	for _, p := range Catalog() {
		counts[p.Construct]++
	}
	assert.Equal(t, 9, counts[ConstructFloor])
	assert.Equal(t, 18, counts[ConstructInterval])
	assert.Equal(t, 3, counts[ConstructSingleValue])
	assert.Equal(t, 4, counts[ConstructNulls])
	assert.Equal(t, 1, counts[ConstructPaging])
}

func TestFilter(t *testing.T) {
	all := Catalog()
	assert.Len(t, Filter(all), len(all))

	floors := Filter(all, ConstructFloor)
	require.NotEmpty(t, floors)
	for _, p := range floors {
		assert.Equal(t, ConstructFloor, p.Construct)
	}

	assert.Empty(t, Filter(all, "NOPE"))
}
