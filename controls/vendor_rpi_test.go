//go:build vendor_rpi

package controls_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camctl/control"
	"camctl/controls"
)

func TestVendorRegistered(t *testing.T) {
	id, ok := controls.Lookup(uint32(controls.StatsOutputEnableID))
	require.True(t, ok)
	assert.Equal(t, "rpi", id.Vendor())
	assert.Contains(t, controls.All(), controls.ScalerCropsID)

	e, err := controls.MakeDyn(controls.Bcm2835StatsOutputID, control.Of[uint8](1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, controls.Bcm2835StatsOutput{1, 2, 3}, e)
}
