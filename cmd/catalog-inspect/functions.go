package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"

	"github.com/kestrelobs/kestrel/pkg/engine/catalog"
	"github.com/kestrelobs/kestrel/pkg/engine/registry"
)

// functionsCommand lists every registered function name with its calling
// convention.
type functionsCommand struct {
	file *string
}

func (cmd *functionsCommand) run(_ *kingpin.ParseContext) error {
	reg, err := loadRegistry(*cmd.file)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	bold.Printf("functions (%d):\n", len(reg.ListFunctionNames()))

	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	for _, name := range reg.ListFunctionNames() {
		kind, err := reg.GetExecKind(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "  %s\t%s\n", name, kind)
	}
	return tw.Flush()
}

// loadRegistry parses the descriptor at path and builds a registry from it.
// Construction conflicts surface as the DuplicateDefinition diagnostic.
func loadRegistry(path string) (*registry.Registry, error) {
	desc, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	return registry.NewRegistry(desc)
}
