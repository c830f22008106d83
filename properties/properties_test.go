package properties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camctl/control"
	"camctl/controls"
	"camctl/native/propertyid"
	"camctl/properties"
)

func TestProperties(t *testing.T) {
	assert.Equal(t, uint32(propertyid.LOCATION), properties.LocationCameraBack.ID())
	assert.Equal(t, "CameraExternal", properties.LocationCameraExternal.String())
	assert.Equal(t, controls.SchemaDigest, properties.SchemaDigest)

	var model properties.Model
	require.NoError(t, model.UnmarshalControl(properties.Model("imx708").Value()))
	assert.Equal(t, properties.Model("imx708"), model)

	var size properties.PixelArraySize
	require.NoError(t, size.UnmarshalControl(control.Of(control.Size{Width: 4608, Height: 2592})))
	assert.Equal(t, "4608x2592", control.Size(size).String())
}

func TestCameraDescription(t *testing.T) {
	l := control.NewPropertyList()
	l.Set(properties.LocationCameraFront)
	l.Set(properties.Rotation(180))
	l.Set(properties.Model("ov5647"))
	l.Set(properties.SystemDevices{0x5100})
	l.SetRaw(99999, control.Of[int64](7))

	got := l.Format(properties.Registry)
	assert.Equal(t, `{Location: CameraFront, Rotation: 180, Model: ov5647, SystemDevices: [20736], 99999: Int64([7])}`, got)

	devices, err := control.GetProperty[properties.SystemDevices](l)
	require.NoError(t, err)
	assert.Equal(t, properties.SystemDevices{0x5100}, devices)

	_, err = control.GetProperty[properties.PixelArrayOpticalBlackRectangles](l)

	var notFound *control.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint32(propertyid.PIXEL_ARRAY_OPTICAL_BLACK_RECTANGLES), notFound.ID)

	id, ok := properties.Lookup(propertyid.ROTATION)
	require.True(t, ok)
	assert.Equal(t, "Rotation", id.String())
}
