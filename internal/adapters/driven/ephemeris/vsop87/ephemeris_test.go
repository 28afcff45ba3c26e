package vsop87

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nubicola/fortuna/internal/core/domain"
)

func TestNew_MissingDataDir(t *testing.T) {
	eph, err := New(t.TempDir())

	require.Error(t, err)
	assert.Nil(t, eph)
	assert.ErrorIs(t, err, domain.ErrEphemeris)
	assert.Contains(t, err.Error(), "Earth series")
}

func TestVsopIndex_CoversAllPlanets(t *testing.T) {
	// Sun and Moon are computed directly; every other tracked body needs
	// a VSOP87 series.
	for _, b := range domain.Bodies() {
		if b == domain.Sun || b == domain.Moon {
			continue
		}
		_, ok := vsopIndex[b]
		assert.True(t, ok, "no series index for %s", b)
	}
}
