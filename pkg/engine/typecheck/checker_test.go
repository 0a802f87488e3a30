package typecheck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelobs/kestrel/pkg/engine/catalog"
	"github.com/kestrelobs/kestrel/pkg/engine/datatype"
	"github.com/kestrelobs/kestrel/pkg/engine/registry"
	"github.com/kestrelobs/kestrel/pkg/engine/types"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	desc := &catalog.Descriptor{
		ScalarFuncs: []catalog.ScalarFunc{
			{
				Name:       "bytes_to_pod",
				ArgTypes:   []datatype.DataType{datatype.Int64},
				ReturnType: datatype.String,
			},
			{
				Name:       "add",
				ArgTypes:   []datatype.DataType{datatype.Int64, datatype.Int64},
				ReturnType: datatype.Int64,
			},
		},
		TableFuncs: []catalog.TableFunction{
			{
				Name:      "cluster_nodes",
				Placement: types.PlacementCoordinator,
				Relation: []catalog.Column{
					{Name: "node", Type: datatype.String},
					{Name: "cpu_usage", Type: datatype.Float64},
				},
			},
		},
		SemanticRules: []catalog.SemanticRule{
			{
				Name:       "bytes_to_pod",
				ArgTypes:   []datatype.SemanticType{datatype.SemanticBytes},
				OutputType: datatype.SemanticPodName,
			},
		},
	}

	reg, err := registry.NewRegistry(desc)
	require.NoError(t, err)
	return reg
}

func testChecker(t *testing.T) *Checker {
	t.Helper()

	desc := &catalog.Descriptor{
		ScalarFuncs: []catalog.ScalarFunc{
			{Name: "bytes_to_pod", ArgTypes: []datatype.DataType{datatype.Int64}, ReturnType: datatype.String},
			{Name: "add", ArgTypes: []datatype.DataType{datatype.Int64, datatype.Int64}, ReturnType: datatype.Int64},
		},
		SemanticRules: []catalog.SemanticRule{
			{Name: "bytes_to_pod", ArgTypes: []datatype.SemanticType{datatype.SemanticBytes}, OutputType: datatype.SemanticPodName},
			{Name: "add", ArgTypes: []datatype.SemanticType{datatype.SemanticBytes, datatype.SemanticBytes}, OutputType: datatype.SemanticBytes},
		},
	}
	reg, err := registry.NewRegistry(desc)
	require.NoError(t, err)

	return NewChecker(registry.NewResolver(reg, registry.NewSemanticRules(desc), registry.ResolverParams{}))
}

func TestChecker_TypeOf(t *testing.T) {
	checker := testChecker(t)

	t.Run("literal", func(t *testing.T) {
		vt, err := checker.TypeOf(&LiteralExpr{
			ValueType: datatype.NewValueType(datatype.Int64, datatype.SemanticUnspecified),
		})
		require.NoError(t, err)
		require.Equal(t, datatype.Int64, vt.Primitive)
	})

	t.Run("column carries declared type", func(t *testing.T) {
		vt, err := checker.TypeOf(&ColumnExpr{
			Column:    "rx_bytes",
			ValueType: datatype.NewValueType(datatype.Int64, datatype.SemanticBytes),
		})
		require.NoError(t, err)
		require.Equal(t, datatype.NewValueType(datatype.Int64, datatype.SemanticBytes), vt)
	})

	t.Run("call resolves through the registry", func(t *testing.T) {
		vt, err := checker.TypeOf(&CallExpr{
			Fn: "bytes_to_pod",
			Args: []Expression{
				&ColumnExpr{Column: "rx_bytes", ValueType: datatype.NewValueType(datatype.Int64, datatype.SemanticBytes)},
			},
		})
		require.NoError(t, err)
		require.Equal(t, datatype.NewValueType(datatype.String, datatype.SemanticPodName), vt)
	})

	t.Run("nested call propagates refined semantics", func(t *testing.T) {
		// add(rx_bytes, tx_bytes) keeps the bytes tag, which then drives the
		// outer bytes_to_pod rule.
		vt, err := checker.TypeOf(&CallExpr{
			Fn: "bytes_to_pod",
			Args: []Expression{
				&CallExpr{
					Fn: "add",
					Args: []Expression{
						&ColumnExpr{Column: "rx_bytes", ValueType: datatype.NewValueType(datatype.Int64, datatype.SemanticBytes)},
						&ColumnExpr{Column: "tx_bytes", ValueType: datatype.NewValueType(datatype.Int64, datatype.SemanticBytes)},
					},
				},
			},
		})
		require.NoError(t, err)
		require.Equal(t, datatype.NewValueType(datatype.String, datatype.SemanticPodName), vt)
	})

	t.Run("unknown function fails the check", func(t *testing.T) {
		_, err := checker.TypeOf(&CallExpr{Fn: "dne"})
		require.ErrorIs(t, err, registry.ErrNotFound)
	})

	t.Run("failing argument fails the enclosing call", func(t *testing.T) {
		_, err := checker.TypeOf(&CallExpr{
			Fn: "bytes_to_pod",
			Args: []Expression{
				&CallExpr{Fn: "dne"},
			},
		})
		require.ErrorIs(t, err, registry.ErrNotFound)
	})
}

func TestExpandTableFunction(t *testing.T) {
	reg := testRegistry(t)

	schema, err := ExpandTableFunction(reg, "cluster_nodes")
	require.NoError(t, err)
	require.Equal(t, 2, schema.NumFields())
	require.Equal(t, "node", schema.Field(0).Name)
	require.Equal(t, datatype.ArrowType.String, schema.Field(0).Type)
	require.Equal(t, "cpu_usage", schema.Field(1).Name)
	require.Equal(t, datatype.ArrowType.Float64, schema.Field(1).Type)

	_, err = ExpandTableFunction(reg, "dne")
	require.ErrorIs(t, err, registry.ErrNotFound)
}

func TestExpression_String(t *testing.T) {
	expr := &CallExpr{
		Fn: "add",
		Args: []Expression{
			&ColumnExpr{Column: "rx_bytes", ValueType: datatype.NewValueType(datatype.Int64, datatype.SemanticBytes)},
			&LiteralExpr{ValueType: datatype.NewValueType(datatype.Int64, datatype.SemanticUnspecified)},
		},
	}
	require.Equal(t, "add(rx_bytes<int64.bytes>, literal<int64.unspecified>)", expr.String())
	require.Equal(t, ExprTypeCall, expr.Type())
}
