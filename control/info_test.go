package control_test

import (
	"testing"
	"unsafe"

	"camctl/control"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenCell claims elements without backing data.
type brokenCell struct{}

func (brokenCell) Set(control.Tag, unsafe.Pointer, bool, int) {}

func (brokenCell) Tag() control.Tag { return control.TagInt32 }

func (brokenCell) Len() int { return 2 }

func (brokenCell) IsArray() bool { return true }

func (brokenCell) Data() unsafe.Pointer { return nil }

func cellOf(v control.Value) *control.MemCell {
	cell := &control.MemCell{}
	control.Encode(v, cell)

	return cell
}

func cameraInfos() *control.InfoMap {
	m := control.NewInfoMap()
	m.Set(modeID, control.Info{
		Min:    control.Of[int32](0),
		Max:    control.Of[int32](2),
		Def:    control.Of[int32](0),
		Values: []control.Value{control.Of[int32](0), control.Of[int32](1), control.Of[int32](2)},
	})
	m.Set(exposureID, control.Info{
		Min: control.Of[int32](100),
		Max: control.Of[int32](66666),
		Def: control.Of[int32](20000),
	})
	m.Set(42, control.Info{Min: control.Of[float32](1), Max: control.Of[float32](16)})

	return m
}

func TestInfoMapLookup(t *testing.T) {
	t.Parallel()

	m := cameraInfos()
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 1, m.Count(modeID))
	assert.Equal(t, 0, m.Count(7))

	info, ok := m.Find(exposureID)
	require.True(t, ok)
	assert.True(t, info.Def.Equal(control.Of[int32](20000)))
	assert.Empty(t, info.Values)

	_, ok = m.Find(7)
	assert.False(t, ok)

	info, err := m.At(modeID)
	require.NoError(t, err)
	assert.Len(t, info.Values, 3)

	_, err = m.At(7)

	var notFound *control.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint32(7), notFound.ID)

	info, err = control.InfoOf[exposure](m)
	require.NoError(t, err)
	assert.True(t, info.Max.Equal(control.Of[int32](66666)))

	var ids []uint32
	for id := range m.All() {
		ids = append(ids, id)
	}

	assert.Equal(t, []uint32{exposureID, modeID, 42}, ids)

	m.Set(42, control.Info{})
	assert.Equal(t, 3, m.Len(), "Set replaces an existing entry")

	var zero control.InfoMap
	zero.Set(1, control.Info{})
	assert.Equal(t, 1, zero.Len())
}

func TestInfoMapFormat(t *testing.T) {
	t.Parallel()

	got := cameraInfos().Format(testRegistry{})
	assert.Equal(t, "{"+
		"ExposureTime: [Int32([100])..Int32([66666])] def Int32([20000]), "+
		"AfMode: [Int32([0])..Int32([2])] def Int32([0]) of Int32([0])|Int32([1])|Int32([2]), "+
		"42: [Float([1])..Float([16])] def None}", got)

	assert.Equal(t, "{}", control.NewInfoMap().Format(testRegistry{}))
}

func TestReadInfo(t *testing.T) {
	t.Parallel()

	info, err := control.ReadInfo(
		cellOf(control.Of[int32](0)),
		cellOf(control.Of[int32](2)),
		cellOf(control.Of[int32](1)),
		cellOf(control.Of[int32](0)), cellOf(control.Of[int32](2)),
	)
	require.NoError(t, err)
	assert.True(t, info.Def.Equal(control.Of[int32](1)))
	require.Len(t, info.Values, 2)
	assert.True(t, info.Values[1].Equal(control.Of[int32](2)))

	empty := &control.MemCell{}
	empty.Set(control.TagString, nil, true, 0)

	info, err = control.ReadInfo(empty, empty, empty)
	require.NoError(t, err)
	assert.Equal(t, `[String("")..String("")] def String("")`, info.String())

	_, err = control.ReadInfo(cellOf(control.Of(true)), brokenCell{}, cellOf(control.None()))
	require.Error(t, err)
	assert.ErrorContains(t, err, "max: ")
	assert.ErrorIs(t, err, control.ErrInvalidData)
}

func TestInfoMapCBOR(t *testing.T) {
	t.Parallel()

	m := cameraInfos()

	data, err := m.MarshalCBOR()
	require.NoError(t, err)

	var got control.InfoMap
	require.NoError(t, got.UnmarshalCBOR(data))
	assert.Equal(t, m.Format(testRegistry{}), got.Format(testRegistry{}))
}
