// Package pipeline defines the value types that flow between pipeline
// stages. A command signature declares which type it reads from the pipeline
// and which type it emits into it; the registry uses those declarations to
// type-check stage connections.
package pipeline

import "fmt"

// Type categorizes a value flowing between pipeline stages.
type Type int

const (
	// TypeNothing marks the absence of a value.
	TypeNothing Type = iota
	// TypeBoolean is a true/false value.
	TypeBoolean
	// TypeInteger is a whole number.
	TypeInteger
	// TypeDecimal is a fractional number.
	TypeDecimal
	// TypeString is a text value.
	TypeString
	// TypePath is a filesystem path.
	TypePath
	// TypeDate is a point in time.
	TypeDate
	// TypeDuration is a span of time.
	TypeDuration
	// TypeFileSize is a size in bytes.
	TypeFileSize
	// TypeBinary is raw bytes.
	TypeBinary
	// TypeRow is a single record of named columns.
	TypeRow
	// TypeTable is a stream of rows.
	TypeTable
	// TypeBlock is unevaluated pipeline code.
	TypeBlock
	// TypeAny matches every type.
	TypeAny
)

// Types lists all pipeline types in declaration order.
var Types = []Type{
	TypeNothing,
	TypeBoolean,
	TypeInteger,
	TypeDecimal,
	TypeString,
	TypePath,
	TypeDate,
	TypeDuration,
	TypeFileSize,
	TypeBinary,
	TypeRow,
	TypeTable,
	TypeBlock,
	TypeAny,
}

func (t Type) String() string {
	switch t {
	case TypeNothing:
		return "Nothing"
	case TypeBoolean:
		return "Boolean"
	case TypeInteger:
		return "Integer"
	case TypeDecimal:
		return "Decimal"
	case TypeString:
		return "String"
	case TypePath:
		return "Path"
	case TypeDate:
		return "Date"
	case TypeDuration:
		return "Duration"
	case TypeFileSize:
		return "FileSize"
	case TypeBinary:
		return "Binary"
	case TypeRow:
		return "Row"
	case TypeTable:
		return "Table"
	case TypeBlock:
		return "Block"
	case TypeAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// CompatibleWith reports whether a value of type t can feed a stage
// expecting the given input type. TypeAny is compatible in either direction;
// a Row satisfies a Table input since single rows are promoted to
// one-row tables at stage boundaries.
func (t Type) CompatibleWith(input Type) bool {
	if t == input || t == TypeAny || input == TypeAny {
		return true
	}
	if t == TypeRow && input == TypeTable {
		return true
	}
	return false
}

// MarshalText encodes the type as its stable name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type from its stable name.
func (t *Type) UnmarshalText(text []byte) error {
	for _, typ := range Types {
		if typ.String() == string(text) {
			*t = typ
			return nil
		}
	}
	return fmt.Errorf("unknown pipeline type %q", string(text))
}
