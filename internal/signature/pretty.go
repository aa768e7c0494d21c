package signature

import "github.com/moray-shell/moray/internal/debugdoc"

// PrettyDebug renders the signature as a document tree for diagnostics: a
// "signature" node labeled with the command name, followed by the
// space-separated rendering of each positional parameter in declared order.
//
// This is the compact one-line summary; flags, the rest catch-all, and
// pipeline types are the help renderer's concern. The source text is the
// original command text the signature was declared against; the summary
// itself does not consult it, but the contract carries it for renderers
// that recover literal spans.
func (s Signature) PrettyDebug(source string) debugdoc.Doc {
	_ = source

	positionals := make([]debugdoc.Doc, 0, len(s.Positional))
	for _, p := range s.Positional {
		positionals = append(positionals, p.Type.Pretty())
	}

	return debugdoc.Typed("signature", debugdoc.Seq(
		debugdoc.Description(s.Name),
		debugdoc.Preceded(
			debugdoc.Space(),
			debugdoc.Intersperse(debugdoc.Space(), positionals...),
		),
	))
}
