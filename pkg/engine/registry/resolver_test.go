package registry

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/kestrelobs/kestrel/pkg/engine/datatype"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	desc := testDescriptor()
	reg, err := NewRegistry(desc)
	require.NoError(t, err)

	return NewResolver(reg, NewSemanticRules(desc), ResolverParams{})
}

func TestResolver_ResolveCallType(t *testing.T) {
	resolver := newTestResolver(t)

	t.Run("scalar with matching semantic rule", func(t *testing.T) {
		got, err := resolver.ResolveCallType("add", []datatype.ValueType{
			datatype.NewValueType(datatype.Float64, datatype.SemanticBytes),
			datatype.NewValueType(datatype.Float64, datatype.SemanticBytes),
		})
		require.NoError(t, err)
		require.Equal(t, datatype.NewValueType(datatype.Float64, datatype.SemanticBytes), got)
	})

	t.Run("aggregate with matching semantic rule", func(t *testing.T) {
		got, err := resolver.ResolveCallType("uda1", []datatype.ValueType{
			datatype.NewValueType(datatype.Int64, datatype.SemanticBytes),
		})
		require.NoError(t, err)
		require.Equal(t, datatype.NewValueType(datatype.Int64, datatype.SemanticBytes), got)
	})

	t.Run("no matching rule yields unspecified semantic", func(t *testing.T) {
		got, err := resolver.ResolveCallType("uda1", []datatype.ValueType{
			datatype.NewValueType(datatype.Int64, datatype.SemanticUPID),
		})
		require.NoError(t, err)
		require.Equal(t, datatype.NewValueType(datatype.Int64, datatype.SemanticUnspecified), got)
	})

	t.Run("no rules registered for name", func(t *testing.T) {
		got, err := resolver.ResolveCallType("scalar1", []datatype.ValueType{
			datatype.NewValueType(datatype.Bool, datatype.SemanticUPID),
			datatype.NewValueType(datatype.Int64, datatype.SemanticBytes),
		})
		require.NoError(t, err)
		require.Equal(t, datatype.SemanticUnspecified, got.Semantic)
	})

	t.Run("primitive failure is fatal regardless of semantics", func(t *testing.T) {
		_, err := resolver.ResolveCallType("add", []datatype.ValueType{
			datatype.NewValueType(datatype.Int64, datatype.SemanticBytes),
			datatype.NewValueType(datatype.Int64, datatype.SemanticBytes),
		})
		require.ErrorIs(t, err, ErrNoMatchingOverload)
	})

	t.Run("unregistered name", func(t *testing.T) {
		_, err := resolver.ResolveCallType("dne", nil)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResolver_ResolveCallTypeIdempotent(t *testing.T) {
	resolver := newTestResolver(t)

	args := []datatype.ValueType{
		datatype.NewValueType(datatype.Float64, datatype.SemanticBytes),
		datatype.NewValueType(datatype.Float64, datatype.SemanticBytes),
	}

	first, err := resolver.ResolveCallType("add", args)
	require.NoError(t, err)
	second, err := resolver.ResolveCallType("add", args)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.True(t, first.Equal(second))
}

func TestResolver_ConcurrentResolution(t *testing.T) {
	// The registry and rule index are immutable after construction, so
	// concurrent resolutions must not require any synchronization.
	resolver := newTestResolver(t)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				got, err := resolver.ResolveCallType("add", []datatype.ValueType{
					datatype.NewValueType(datatype.Float64, datatype.SemanticBytes),
					datatype.NewValueType(datatype.Float64, datatype.SemanticBytes),
				})
				require.NoError(t, err)
				require.Equal(t, datatype.SemanticBytes, got.Semantic)

				_, err = resolver.ResolveCallType("dne", nil)
				require.ErrorIs(t, err, ErrNotFound)
			}
		}()
	}
	wg.Wait()
}

func TestNewResolver_Defaults(t *testing.T) {
	reg, err := NewRegistry(testDescriptor())
	require.NoError(t, err)

	// Nil rules and empty params are valid; resolution then never refines
	// semantic tags.
	resolver := NewResolver(reg, nil, ResolverParams{Registerer: prometheus.NewRegistry()})

	got, err := resolver.ResolveCallType("add", []datatype.ValueType{
		datatype.NewValueType(datatype.Float64, datatype.SemanticBytes),
		datatype.NewValueType(datatype.Float64, datatype.SemanticBytes),
	})
	require.NoError(t, err)
	require.Equal(t, datatype.SemanticUnspecified, got.Semantic)
}
