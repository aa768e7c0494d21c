package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShape_String(t *testing.T) {
	require.Equal(t, "Any", ShapeAny.String())
	require.Equal(t, "Number", ShapeNumber.String())
	require.Equal(t, "ColumnPath", ShapeColumnPath.String())
	require.Equal(t, "Unknown", Shape(99).String())
}

func TestShape_Hint(t *testing.T) {
	require.Equal(t, "<path>", ShapePath.Hint())
	require.Equal(t, "<value>", ShapeAny.Hint())
	require.Equal(t, "<value>", Shape(99).Hint())
}

func TestShape_TextRoundTrip(t *testing.T) {
	for _, shape := range Shapes {
		text, err := shape.MarshalText()
		require.NoError(t, err)

		var decoded Shape
		require.NoError(t, decoded.UnmarshalText(text))
		require.Equal(t, shape, decoded)
	}
}

func TestShape_UnmarshalText_Unknown(t *testing.T) {
	var s Shape
	require.Error(t, s.UnmarshalText([]byte("Gibberish")))
}
