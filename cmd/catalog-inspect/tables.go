package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
)

// tablesCommand prints every table-valued function with its executor
// placement and its output relation expanded into an Arrow schema.
type tablesCommand struct {
	file *string
}

func (cmd *tablesCommand) run(_ *kingpin.ParseContext) error {
	reg, err := loadRegistry(*cmd.file)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	for _, fn := range reg.ListTableFunctions() {
		bold.Printf("%s ", fn.Name)
		faint.Printf("(placement: %s)\n", fn.Placement)

		schema, err := fn.OutputSchema()
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		for _, field := range schema.Fields() {
			fmt.Fprintf(tw, "  %s\t%s\n", field.Name, field.Type)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
