package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestType_String(t *testing.T) {
	require.Equal(t, "Nothing", TypeNothing.String())
	require.Equal(t, "Table", TypeTable.String())
	require.Equal(t, "Unknown", Type(99).String())
}

func TestType_CompatibleWith(t *testing.T) {
	tests := []struct {
		name   string
		out    Type
		in     Type
		expect bool
	}{
		{"exact match", TypeString, TypeString, true},
		{"any output feeds anything", TypeAny, TypeInteger, true},
		{"any input accepts anything", TypeBinary, TypeAny, true},
		{"row promotes to table", TypeRow, TypeTable, true},
		{"table does not demote to row", TypeTable, TypeRow, false},
		{"mismatch", TypeString, TypeInteger, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expect, tt.out.CompatibleWith(tt.in))
		})
	}
}

func TestType_TextRoundTrip(t *testing.T) {
	for _, typ := range Types {
		text, err := typ.MarshalText()
		require.NoError(t, err)

		var decoded Type
		require.NoError(t, decoded.UnmarshalText(text))
		require.Equal(t, typ, decoded)
	}
}
