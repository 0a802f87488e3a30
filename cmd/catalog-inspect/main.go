// Command catalog-inspect prints the contents of a function catalog
// descriptor: registered function names with their calling conventions, and
// the placement and output relation of every table-valued function.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
)

func main() {
	app := kingpin.New("catalog-inspect", "Inspect function catalog descriptors of the query engine.")

	functions := &functionsCommand{}
	functionsCmd := app.Command("functions", "List registered functions and their calling conventions.").Action(functions.run)
	functions.file = functionsCmd.Arg("file", "Catalog descriptor file to inspect.").Required().ExistingFile()

	tables := &tablesCommand{}
	tablesCmd := app.Command("tables", "Print table-valued functions with placement and output schema.").Action(tables.run)
	tables.file = tablesCmd.Arg("file", "Catalog descriptor file to inspect.").Required().ExistingFile()

	if _, err := app.Parse(os.Args[1:]); err != nil {
		exitWithErr(err)
	}
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
