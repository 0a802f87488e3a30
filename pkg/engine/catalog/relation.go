package catalog

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/kestrelobs/kestrel/pkg/engine/datatype"
)

// OutputSchema expands the declared output relation of the table function
// into an Arrow schema. Columns are nullable, matching how relations are
// carried between compiled-plan stages.
func (f *TableFunction) OutputSchema() (*arrow.Schema, error) {
	fields := make([]arrow.Field, 0, len(f.Relation))
	for _, col := range f.Relation {
		at, err := datatype.ToArrowType(col.Type)
		if err != nil {
			return nil, fmt.Errorf("table function %q: column %q: %w", f.Name, col.Name, err)
		}
		fields = append(fields, arrow.Field{Name: col.Name, Type: at, Nullable: true})
	}
	return arrow.NewSchema(fields, nil), nil
}
