package registry

import (
	"fmt"

	"github.com/moray-shell/moray/internal/pipeline"
	"github.com/moray-shell/moray/internal/signature"
)

// Diagnostic describes a suspicious signature found by Lint.
type Diagnostic struct {
	Command string
	Code    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Command, d.Code, d.Message)
}

// Lint checks all registered signatures for shapes that are legal to
// construct but almost certainly mistakes. It never modifies the
// registry; callers decide what to do with the diagnostics.
//
// Checks:
//   - filter-no-output: a filter command with no declared yield type,
//     or one that yields Nothing
//   - optional-before-mandatory: a mandatory positional declared after
//     an optional one, which the binder can never fill
func (r *Registry) Lint() []Diagnostic {
	var diags []Diagnostic

	for _, sig := range r.Signatures() {
		diags = append(diags, lintSignature(sig)...)
	}

	return diags
}

func lintSignature(sig signature.Signature) []Diagnostic {
	var diags []Diagnostic

	if sig.IsFilter && (sig.Yields == nil || *sig.Yields == pipeline.TypeNothing) {
		diags = append(diags, Diagnostic{
			Command: sig.Name,
			Code:    "filter-no-output",
			Message: "declared as a filter but yields nothing",
		})
	}

	seenOptional := false
	for _, pos := range sig.Positional {
		if pos.Type.IsOptional() {
			seenOptional = true
			continue
		}
		if seenOptional {
			diags = append(diags, Diagnostic{
				Command: sig.Name,
				Code:    "optional-before-mandatory",
				Message: fmt.Sprintf("mandatory positional %q follows an optional one", pos.Type.Name()),
			})
		}
	}

	return diags
}
