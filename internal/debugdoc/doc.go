// Package debugdoc builds structured document trees for diagnostic output.
//
// A Doc is an immutable tree of semantic nodes (descriptions, operators,
// delimited groups, ...) that a renderer can flatten to plain text or style
// for a terminal. Producers describe WHAT a value is made of; how it is
// colored or wrapped is the renderer's choice.
package debugdoc

import "strings"

// Kind identifies the semantic role of a doc node.
type Kind int

const (
	// KindEmpty renders nothing.
	KindEmpty Kind = iota
	// KindDescription is a plain descriptive word.
	KindDescription
	// KindKeyword is a reserved word.
	KindKeyword
	// KindOperator is a punctuation operator, e.g. "?".
	KindOperator
	// KindDelimiter is an opening or closing delimiter.
	KindDelimiter
	// KindTypeName is the name of a type or node kind.
	KindTypeName
	// KindSpace is a single separating space.
	KindSpace
	// KindSeq is an ordered sequence of child nodes.
	KindSeq
	// KindGroup marks children a renderer should keep together on one line
	// when it can.
	KindGroup
	// KindTyped labels its child with a node-kind name. The label is
	// structural: flattening omits it, Tree renders it.
	KindTyped
)

// Doc is one node of a document tree. The zero value is the empty doc.
type Doc struct {
	kind     Kind
	text     string
	children []Doc
}

// Kind returns the semantic role of the node.
func (d Doc) Kind() Kind { return d.kind }

// Text returns the literal text of a leaf node.
func (d Doc) Text() string { return d.text }

// Children returns the child nodes of a seq or group node.
func (d Doc) Children() []Doc { return d.children }

// IsEmpty reports whether the doc renders nothing.
func (d Doc) IsEmpty() bool {
	if d.kind == KindSeq || d.kind == KindGroup || d.kind == KindTyped {
		for _, c := range d.children {
			if !c.IsEmpty() {
				return false
			}
		}
		return true
	}
	return d.kind == KindEmpty
}

// Empty returns a doc that renders nothing.
func Empty() Doc { return Doc{} }

// Description builds a plain descriptive leaf.
func Description(text string) Doc {
	return Doc{kind: KindDescription, text: text}
}

// Keyword builds a keyword leaf.
func Keyword(text string) Doc {
	return Doc{kind: KindKeyword, text: text}
}

// Operator builds an operator leaf.
func Operator(text string) Doc {
	return Doc{kind: KindOperator, text: text}
}

// TypeName builds a type-name leaf.
func TypeName(text string) Doc {
	return Doc{kind: KindTypeName, text: text}
}

// Space builds a single separating space.
func Space() Doc {
	return Doc{kind: KindSpace}
}

// Seq concatenates docs in order with no separator.
func Seq(docs ...Doc) Doc {
	return Doc{kind: KindSeq, children: docs}
}

// Group wraps a doc so renderers keep it on one line when possible.
func Group(doc Doc) Doc {
	return Doc{kind: KindGroup, children: []Doc{doc}}
}

// Delimit wraps a doc in opening and closing delimiters.
func Delimit(open string, doc Doc, close string) Doc {
	return Seq(
		Doc{kind: KindDelimiter, text: open},
		doc,
		Doc{kind: KindDelimiter, text: close},
	)
}

// Typed labels doc as a node of the given kind. Flatten renders only the
// labeled doc; Tree includes the label.
func Typed(kind string, doc Doc) Doc {
	return Doc{kind: KindTyped, text: kind, children: []Doc{doc}}
}

// Intersperse joins docs with the given separator, skipping empty entries.
func Intersperse(sep Doc, docs ...Doc) Doc {
	out := make([]Doc, 0, len(docs)*2)
	for _, d := range docs {
		if d.IsEmpty() {
			continue
		}
		if len(out) > 0 {
			out = append(out, sep)
		}
		out = append(out, d)
	}
	return Doc{kind: KindSeq, children: out}
}

// Preceded prefixes doc with lead, unless doc is empty.
func Preceded(lead, doc Doc) Doc {
	if doc.IsEmpty() {
		return Empty()
	}
	return Seq(lead, doc)
}

// Flatten renders the tree as plain text on a single line.
func (d Doc) Flatten() string {
	var b strings.Builder
	d.flattenInto(&b)
	return b.String()
}

func (d Doc) flattenInto(b *strings.Builder) {
	switch d.kind {
	case KindEmpty:
	case KindSpace:
		b.WriteByte(' ')
	case KindSeq, KindGroup, KindTyped:
		for _, c := range d.children {
			c.flattenInto(b)
		}
	default:
		b.WriteString(d.text)
	}
}

// Tree renders the tree as an s-expression, keeping typed-node labels.
// Intended for diagnostics, not user-facing output.
func (d Doc) Tree() string {
	var b strings.Builder
	d.treeInto(&b)
	return b.String()
}

func (d Doc) treeInto(b *strings.Builder) {
	switch d.kind {
	case KindEmpty:
	case KindSpace:
		b.WriteByte(' ')
	case KindSeq, KindGroup:
		for _, c := range d.children {
			c.treeInto(b)
		}
	case KindTyped:
		b.WriteByte('(')
		b.WriteString(d.text)
		b.WriteByte(' ')
		for _, c := range d.children {
			c.treeInto(b)
		}
		b.WriteByte(')')
	default:
		b.WriteString(d.text)
	}
}

// Styler colors one leaf according to its kind. Renderers that do not style
// can pass nil to Render.
type Styler func(kind Kind, text string) string

// Render flattens the tree, passing each leaf through the styler.
func (d Doc) Render(style Styler) string {
	if style == nil {
		return d.Flatten()
	}
	var b strings.Builder
	d.renderInto(&b, style)
	return b.String()
}

func (d Doc) renderInto(b *strings.Builder, style Styler) {
	switch d.kind {
	case KindEmpty:
	case KindSpace:
		b.WriteByte(' ')
	case KindSeq, KindGroup, KindTyped:
		for _, c := range d.children {
			c.renderInto(b, style)
		}
	default:
		b.WriteString(style(d.kind, d.text))
	}
}
