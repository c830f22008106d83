package control_test

import (
	"fmt"
	"iter"
	"testing"

	"camctl/control"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exposureID = 1
	modeID     = 2
)

type exposure int32

func (exposure) ID() uint32 { return exposureID }

func (exposure) IsControl() {}

func (e exposure) Value() control.Value { return control.Of(int32(e)) }

func (e *exposure) UnmarshalControl(v control.Value) error {
	x, err := control.As[int32](v)
	if err != nil {
		return err
	}

	*e = exposure(x)

	return nil
}

type mode int32

const (
	modeManual mode = iota
	modeAuto
	modeContinuous
)

func (mode) ID() uint32 { return modeID }

func (mode) IsControl() {}

func (m mode) Value() control.Value { return control.Of(int32(m)) }

func (m mode) String() string {
	switch m {
	case modeManual:
		return "Manual"
	case modeAuto:
		return "Auto"
	case modeContinuous:
		return "Continuous"
	}

	return fmt.Sprintf("mode(%d)", int32(m))
}

func (m *mode) UnmarshalControl(v control.Value) error {
	x, err := control.As[int32](v)
	if err != nil {
		return err
	}

	if x < int32(modeManual) || x > int32(modeContinuous) {
		return &control.UnknownVariantError{Value: v}
	}

	*m = mode(x)

	return nil
}

const modelID = 3

type model string

func (model) ID() uint32 { return modelID }

func (model) IsProperty() {}

func (m model) Value() control.Value { return control.OfString(string(m)) }

func (m *model) UnmarshalControl(v control.Value) error {
	x, err := control.AsString(v)
	if err != nil {
		return err
	}

	*m = model(x)

	return nil
}

type testRegistry struct{}

func (testRegistry) Name(id uint32) (string, bool) {
	switch id {
	case exposureID:
		return "ExposureTime", true
	case modeID:
		return "AfMode", true
	}

	return "", false
}

func (testRegistry) MakeDyn(id uint32, v control.Value) (control.Entry, error) {
	switch id {
	case exposureID:
		return control.Dyn[exposure](v)
	case modeID:
		return control.Dyn[mode](v)
	}

	return nil, &control.UnknownIDError{ID: id}
}

func TestUnknownVariant(t *testing.T) {
	t.Parallel()

	_, err := control.Unmarshal[mode](control.Of[int32](3))

	var target *control.UnknownVariantError
	require.ErrorAs(t, err, &target)
	assert.True(t, target.Value.Equal(control.Of[int32](3)), spew.Sdump(target.Value))
	assert.Equal(t, "unknown enum variant Int32([3])", err.Error())
}

func TestMakeDyn(t *testing.T) {
	t.Parallel()

	var r control.Registry = testRegistry{}

	e, err := r.MakeDyn(modeID, control.Of[int32](1))
	require.NoError(t, err)
	assert.Equal(t, uint32(modeID), e.ID())
	assert.Equal(t, modeAuto, e)
	assert.True(t, e.Value().Equal(control.Of[int32](1)))

	_, err = r.MakeDyn(modeID, control.Of[int32](3))
	assert.Error(t, err)

	_, err = r.MakeDyn(modeID, control.Of(true))

	var typeErr *control.InvalidTypeError
	assert.ErrorAs(t, err, &typeErr)

	_, err = r.MakeDyn(99, control.Of[int32](1))

	var idErr *control.UnknownIDError
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, uint32(99), idErr.ID)
}

func TestList(t *testing.T) {
	t.Parallel()

	l := control.NewList()
	l.Set(exposure(10000))
	l.Set(modeAuto)
	l.SetRaw(exposureID, control.Of[int32](20000))

	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Contains(modeID))

	x, err := control.Get[exposure](l)
	require.NoError(t, err)
	assert.Equal(t, exposure(20000), x)

	_, err = l.GetRaw(42)

	var notFound *control.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint32(42), notFound.ID)

	var ids []uint32
	for id := range l.All() {
		ids = append(ids, id)
	}

	assert.Equal(t, []uint32{exposureID, modeID}, ids)

	assert.True(t, l.Delete(exposureID))
	assert.False(t, l.Delete(exposureID))
	assert.Equal(t, 1, l.Len())
}

func TestCategoryLists(t *testing.T) {
	t.Parallel()

	var (
		_ control.Control  = exposure(0)
		_ control.Control  = modeAuto
		_ control.Property = model("")
	)

	controls := control.NewControlList()
	controls.Set(modeContinuous)
	controls.SetRaw(exposureID, control.Of[int32](750))

	m, err := control.GetControl[mode](controls)
	require.NoError(t, err)
	assert.Equal(t, modeContinuous, m)

	x, err := control.GetControl[exposure](controls)
	require.NoError(t, err)
	assert.Equal(t, exposure(750), x)

	props := control.NewPropertyList()
	props.Set(model("imx477"))

	name, err := control.GetProperty[model](props)
	require.NoError(t, err)
	assert.Equal(t, model("imx477"), name)

	_, err = control.GetControl[mode](control.NewControlList())

	var notFound *control.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint32(modeID), notFound.ID)

	data, err := control.MarshalList(&controls.List)
	require.NoError(t, err)

	replayed := control.NewControlList()
	require.NoError(t, replayed.UnmarshalCBOR(data))
	assert.Equal(t, "{AfMode: Continuous, ExposureTime: 750}", replayed.Format(testRegistry{}))
}

func TestDescribeFallsBackToRaw(t *testing.T) {
	t.Parallel()

	l := control.NewList()
	l.SetRaw(modeID, control.Of[int32](3))
	l.SetRaw(77, control.Of[int64](5))
	l.Set(exposure(500))

	described := l.Describe(testRegistry{})
	require.Len(t, described, 3, spew.Sdump(described))

	var variantErr *control.UnknownVariantError
	assert.Equal(t, "AfMode", described[0].Name)
	assert.Nil(t, described[0].Entry)
	assert.ErrorAs(t, described[0].Err, &variantErr)
	assert.True(t, described[0].Raw.Equal(control.Of[int32](3)))

	var idErr *control.UnknownIDError
	assert.Empty(t, described[1].Name)
	assert.ErrorAs(t, described[1].Err, &idErr)

	assert.NoError(t, described[2].Err)
	assert.Equal(t, exposure(500), described[2].Entry)

	assert.Equal(t, "{AfMode: Int32([3]), 77: Int64([5]), ExposureTime: 500}", l.Format(testRegistry{}))
}

func cellsOf(pairs map[uint32]control.Value, order ...uint32) iter.Seq2[uint32, control.Cell] {
	return func(yield func(uint32, control.Cell) bool) {
		for _, id := range order {
			cell := &control.MemCell{}
			control.Encode(pairs[id], cell)

			if !yield(id, cell) {
				return
			}
		}
	}
}

func TestListCells(t *testing.T) {
	t.Parallel()

	l := control.NewList()
	err := l.ReadCells(cellsOf(map[uint32]control.Value{
		exposureID: control.Of[int32](33),
		modeID:     control.Of[int32](2),
	}, modeID, exposureID))
	require.NoError(t, err)

	m, err := control.Get[mode](l)
	require.NoError(t, err)
	assert.Equal(t, modeContinuous, m)

	cells := map[uint32]*control.MemCell{}
	err = l.WriteCells(func(id uint32) (control.Cell, error) {
		cells[id] = &control.MemCell{}
		return cells[id], nil
	})
	require.NoError(t, err)
	require.Len(t, cells, 2)

	x, err := control.ReadScalar[int32](cells[exposureID])
	require.NoError(t, err)
	assert.Equal(t, int32(33), x)

	err = l.WriteCells(func(id uint32) (control.Cell, error) {
		return nil, fmt.Errorf("no slot for %d", id)
	})
	assert.ErrorContains(t, err, "no slot for 2")
}
