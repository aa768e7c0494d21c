// Package syntax defines the syntax shapes a command signature can declare
// for its arguments. A shape describes the expected lexical form of an
// argument value (a number, a path, a block, ...), not the runtime type of
// the value flowing through the pipeline.
package syntax

import "fmt"

// Shape identifies the expected lexical form of an argument.
type Shape int

const (
	// ShapeAny accepts any argument form.
	ShapeAny Shape = iota
	// ShapeString expects a string literal or bareword.
	ShapeString
	// ShapeNumber expects an integer or decimal literal.
	ShapeNumber
	// ShapeInt expects an integer literal.
	ShapeInt
	// ShapeRange expects a range literal (e.g. 1..10).
	ShapeRange
	// ShapePath expects a filesystem path.
	ShapePath
	// ShapePattern expects a glob pattern.
	ShapePattern
	// ShapeBlock expects a block of pipeline code.
	ShapeBlock
	// ShapeColumnPath expects a dotted column path (e.g. name.last).
	ShapeColumnPath
	// ShapeMember expects a single column member name.
	ShapeMember
)

// Shapes lists all shapes in declaration order.
var Shapes = []Shape{
	ShapeAny,
	ShapeString,
	ShapeNumber,
	ShapeInt,
	ShapeRange,
	ShapePath,
	ShapePattern,
	ShapeBlock,
	ShapeColumnPath,
	ShapeMember,
}

func (s Shape) String() string {
	switch s {
	case ShapeAny:
		return "Any"
	case ShapeString:
		return "String"
	case ShapeNumber:
		return "Number"
	case ShapeInt:
		return "Int"
	case ShapeRange:
		return "Range"
	case ShapePath:
		return "Path"
	case ShapePattern:
		return "Pattern"
	case ShapeBlock:
		return "Block"
	case ShapeColumnPath:
		return "ColumnPath"
	case ShapeMember:
		return "Member"
	default:
		return "Unknown"
	}
}

// Hint returns the placeholder used in usage text, e.g. "<path>".
func (s Shape) Hint() string {
	switch s {
	case ShapeAny:
		return "<value>"
	case ShapeString:
		return "<string>"
	case ShapeNumber:
		return "<number>"
	case ShapeInt:
		return "<int>"
	case ShapeRange:
		return "<range>"
	case ShapePath:
		return "<path>"
	case ShapePattern:
		return "<pattern>"
	case ShapeBlock:
		return "<block>"
	case ShapeColumnPath:
		return "<column-path>"
	case ShapeMember:
		return "<member>"
	default:
		return "<value>"
	}
}

// MarshalText encodes the shape as its stable name.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a shape from its stable name.
func (s *Shape) UnmarshalText(text []byte) error {
	for _, shape := range Shapes {
		if shape.String() == string(text) {
			*s = shape
			return nil
		}
	}
	return fmt.Errorf("unknown syntax shape %q", string(text))
}
