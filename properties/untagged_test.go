//go:build !vendor_draft

package properties_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"camctl/control"
	"camctl/native/propertyid"
	"camctl/properties"
)

func TestDraftCompiledOut(t *testing.T) {
	_, err := properties.MakeDyn(properties.PropertyID(propertyid.COLOR_FILTER_ARRANGEMENT), control.Of[int32](0))

	var idErr *control.UnknownIDError
	require.ErrorAs(t, err, &idErr)

	_, ok := properties.Lookup(propertyid.COLOR_FILTER_ARRANGEMENT)
	require.False(t, ok)
}
