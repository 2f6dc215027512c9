package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		zone    string
		rack    int
		level   int
		errType error
	}{
		{name: "valid location", zone: "B", rack: 7, level: 2},
		{name: "valid at lower bounds", zone: "A", rack: kernel.RackMin, level: kernel.LevelMin},
		{name: "valid at upper bounds", zone: "ZZZ", rack: kernel.RackMax, level: kernel.LevelMax},
		{name: "missing zone", zone: "", rack: 1, level: 1, errType: errs.ErrValueIsRequired},
		{name: "lower-case zone", zone: "b", rack: 1, level: 1, errType: errs.ErrValueIsInvalid},
		{name: "zone too long", zone: "ABCD", rack: 1, level: 1, errType: errs.ErrValueIsOutOfRange},
		{name: "rack too small", zone: "A", rack: 0, level: 1, errType: errs.ErrValueIsOutOfRange},
		{name: "rack too large", zone: "A", rack: 100, level: 1, errType: errs.ErrValueIsOutOfRange},
		{name: "level too large", zone: "A", rack: 1, level: 10, errType: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.zone, tt.rack, tt.level)

			if tt.errType != nil {
				require.ErrorIs(t, err, tt.errType)
				assert.Equal(t, kernel.Location{}, loc)
				return
			}

			require.NoError(t, err)
			require.NoError(t, loc.Validate())
			assert.Equal(t, tt.zone, loc.Zone())
			assert.Equal(t, tt.rack, loc.Rack())
			assert.Equal(t, tt.level, loc.Level())
		})
	}
}

func TestParseLocation(t *testing.T) {
	t.Run("should parse canonical and relaxed codes", func(t *testing.T) {
		for in, want := range map[string]string{
			"B-07-2":   "B-07-2",
			"b-7-2":    "B-07-2",
			" AA-12-9": "AA-12-9",
		} {
			loc, err := kernel.ParseLocation(in)

			require.NoError(t, err, in)
			assert.Equal(t, want, loc.String())
		}
	})

	t.Run("should reject malformed codes", func(t *testing.T) {
		for _, in := range []string{"", "B07-2", "B-07", "1-07-2", "B-07-22"} {
			_, err := kernel.ParseLocation(in)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
		}
	})

	t.Run("should reject out of range rack", func(t *testing.T) {
		_, err := kernel.ParseLocation("B-00-1")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation("C", 3, 1)
	b, _ := kernel.ParseLocation("C-03-1")
	c, _ := kernel.NewLocation("C", 3, 2)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = a.IsEqual(kernel.Location{})
	require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
}
