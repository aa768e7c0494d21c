// Package builtins declares the signatures of the built-in shell commands.
//
// The declarations here are data only. Evaluation of the commands lives
// elsewhere; this package exists so the registry, help output, and the
// catalog all describe the same surface.
package builtins

import (
	"github.com/moray-shell/moray/internal/pipeline"
	"github.com/moray-shell/moray/internal/registry"
	"github.com/moray-shell/moray/internal/signature"
	"github.com/moray-shell/moray/internal/syntax"
)

// All returns the builtin command signatures in display order.
func All() []signature.Signature {
	return []signature.Signature{
		signature.New("ls").
			Desc("View the contents of the current or given path").
			Optional("path", syntax.ShapePattern, "A path to view contents from").
			Switch("full", "List all available columns for each entry").
			YieldsType(pipeline.TypeTable),

		signature.New("ps").
			Desc("View information about system processes").
			Switch("full", "List all available columns for each entry").
			YieldsType(pipeline.TypeTable),

		signature.New("cd").
			Desc("Change to a new path").
			Optional("directory", syntax.ShapePath, "The directory to change to"),

		signature.New("echo").
			Desc("Echo the arguments back to the user").
			Rest(syntax.ShapeAny, "The values to echo").
			YieldsType(pipeline.TypeAny),

		signature.New("open").
			Desc("Load a file into a cell, convert to table if possible").
			Required("path", syntax.ShapePath, "The file path to load values from").
			Switch("raw", "Load content as a string instead of a table").
			YieldsType(pipeline.TypeAny),

		signature.New("save").
			Desc("Save the contents of the pipeline to a file").
			Optional("path", syntax.ShapePath, "The path to save contents to").
			Switch("raw", "Write without formatting (for piping raw data)").
			InputType(pipeline.TypeAny).
			YieldsType(pipeline.TypeNothing),

		signature.New("where").
			Desc("Filter table to match the condition").
			Required("condition", syntax.ShapeBlock, "The condition that must match").
			InputType(pipeline.TypeTable).
			YieldsType(pipeline.TypeTable).
			Filter(),

		signature.New("pick").
			Desc("Down-select table to only these columns").
			Rest(syntax.ShapeColumnPath, "The columns to select from the table").
			InputType(pipeline.TypeTable).
			YieldsType(pipeline.TypeTable).
			Filter(),

		signature.New("get").
			Desc("Open given cells as text").
			Rest(syntax.ShapeColumnPath, "Optionally return additional data by path").
			InputType(pipeline.TypeAny).
			YieldsType(pipeline.TypeAny).
			Filter(),

		signature.New("sort-by").
			Desc("Sort by the given columns").
			Rest(syntax.ShapeColumnPath, "The columns to sort by").
			Switch("reverse", "Sort in descending order").
			InputType(pipeline.TypeTable).
			YieldsType(pipeline.TypeTable).
			Filter(),

		signature.New("first").
			Desc("Show only the first number of rows").
			Optional("rows", syntax.ShapeInt, "Starting from the front, the number of rows to return").
			InputType(pipeline.TypeTable).
			YieldsType(pipeline.TypeTable).
			Filter(),

		signature.New("last").
			Desc("Show only the last number of rows").
			Optional("rows", syntax.ShapeInt, "Starting from the back, the number of rows to return").
			InputType(pipeline.TypeTable).
			YieldsType(pipeline.TypeTable).
			Filter(),

		signature.New("skip").
			Desc("Skip some number of rows").
			Optional("rows", syntax.ShapeInt, "How many rows to skip").
			InputType(pipeline.TypeTable).
			YieldsType(pipeline.TypeTable).
			Filter(),

		signature.New("reverse").
			Desc("Reverse the rows of the table").
			InputType(pipeline.TypeTable).
			YieldsType(pipeline.TypeTable).
			Filter(),

		signature.New("lines").
			Desc("Split single string into rows of strings by lines").
			InputType(pipeline.TypeString).
			YieldsType(pipeline.TypeTable).
			Filter(),

		signature.New("size").
			Desc("Gather word count statistics on the text").
			InputType(pipeline.TypeString).
			YieldsType(pipeline.TypeRow).
			Filter(),

		signature.New("count").
			Desc("Show the total number of rows").
			InputType(pipeline.TypeTable).
			YieldsType(pipeline.TypeInteger).
			Filter(),

		signature.New("fetch").
			Desc("Load content from a URL into a cell").
			RequiredNamed("url", syntax.ShapeString, "The URL to fetch the contents from").
			Switch("raw", "Fetch contents as text rather than a table").
			YieldsType(pipeline.TypeAny),

		signature.New("date").
			Desc("Get the current date").
			Switch("utc", "Report the date in UTC").
			Switch("local", "Report the date in the local timezone").
			YieldsType(pipeline.TypeRow),

		signature.New("exit").
			Desc("Exit the current shell (or all shells)").
			Switch("now", "Exit out of all shells immediately"),
	}
}

// Register installs every builtin signature into r.
func Register(r *registry.Registry) error {
	for _, sig := range All() {
		if err := r.Register(sig); err != nil {
			return err
		}
	}
	return nil
}
