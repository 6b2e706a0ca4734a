package construction

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/osmswap/internal/adapters/driven/osm"
	"github.com/custodia-labs/osmswap/internal/core/domain"
)

func rect(handle, name, construction, bc string, w, h float64) string {
	return fmt.Sprintf("OS:Surface, %s, %s, Floor, %s, , %s, , , , , 4, 0,0,0, 0,%g,0, %g,%g,0, %g,0,0;\n",
		handle, name, construction, bc, h, w, h, w)
}

// floors builds a reference model with n floors, each carrying its own
// construction, and an actual model with the same floors in reverse order
// carrying a placeholder construction.
func floors(t *testing.T, n int) (*osm.Document, *osm.Document) {
	t.Helper()

	var src, dst strings.Builder
	src.WriteString("OS:Material, {m}, Slab Concrete, MediumRough, 0.2;\n")
	dst.WriteString("OS:Construction, {ph}, Placeholder;\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&src, "OS:Construction, {c%d}, Ref Floor %d, , {m};\n", i, i)
		src.WriteString(rect(fmt.Sprintf("{s%d}", i), fmt.Sprintf("Ref_Floor_%d", i),
			fmt.Sprintf("{c%d}", i), "Outdoors", 10, float64(i+1)))
	}
	for i := n - 1; i >= 0; i-- {
		dst.WriteString(rect(fmt.Sprintf("{t%d}", i), fmt.Sprintf("Floor_%d", i),
			"{ph}", "Ground", 10, float64(i+1)+0.01))
	}

	source, err := osm.ParseString(src.String())
	require.NoError(t, err)
	target, err := osm.ParseString(dst.String())
	require.NoError(t, err)
	return source, target
}

func TestNew_Defaults(t *testing.T) {
	s := New()
	assert.Equal(t, domain.SwapConstruction, s.Name())
	assert.Equal(t, []string{"Floor"}, s.surfaceTypes)
	assert.Equal(t, DefaultAreaEpsilon, s.epsilon)
	assert.Equal(t, domain.MatchModeStrict, s.mode)

	s = New(WithAreaEpsilon(-1), WithMatchMode("bogus"), WithSurfaceTypes())
	assert.Equal(t, DefaultAreaEpsilon, s.epsilon)
	assert.Equal(t, domain.MatchModeStrict, s.mode)
	assert.Equal(t, []string{"Floor"}, s.surfaceTypes)
}

func TestSwap_TenFloors(t *testing.T) {
	source, target := floors(t, 10)

	report, err := New().Swap(context.Background(), source, target)
	require.NoError(t, err)
	assert.Equal(t, 10, report.Applied)

	for i := 0; i < 10; i++ {
		surface, ok := target.Object(fmt.Sprintf("{t%d}", i))
		require.True(t, ok)

		c, ok := surface.Ref(domain.FieldConstruction)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("Ref Floor %d", i), c.Name())

		bc, _ := surface.String(domain.FieldBoundaryCondition)
		assert.Equal(t, "Outdoors", bc)
	}

	// Source is never modified.
	s0, _ := source.Object("{s0}")
	c0, _ := s0.Ref(domain.FieldConstruction)
	assert.Equal(t, "{c0}", c0.Handle())
}

func TestSwap_RerunReusesConstructions(t *testing.T) {
	source, target := floors(t, 4)
	s := New()

	_, err := s.Swap(context.Background(), source, target)
	require.NoError(t, err)
	_, err = s.Swap(context.Background(), source, target)
	require.NoError(t, err)

	assert.Len(t, target.Objects(domain.TypeConstruction), 5, "placeholder plus one per floor")
	assert.Len(t, target.Objects("OS:Material"), 1)
}

func TestSwap_SharedConstructionCopiedOnceDespiteNameClash(t *testing.T) {
	var src, dst strings.Builder
	src.WriteString("OS:Material, {m}, Slab Concrete, MediumRough, 0.2;\n")
	src.WriteString("OS:Construction, {c}, Slab, , {m};\n")
	dst.WriteString("OS:Construction, {ph}, Slab;\n")
	for i := 0; i < 4; i++ {
		src.WriteString(rect(fmt.Sprintf("{s%d}", i), fmt.Sprintf("Ref_Floor_%d", i), "{c}", "Outdoors", 10, float64(i+1)))
		dst.WriteString(rect(fmt.Sprintf("{t%d}", i), fmt.Sprintf("Floor_%d", i), "{ph}", "Ground", 10, float64(i+1)))
	}
	source, err := osm.ParseString(src.String())
	require.NoError(t, err)
	target, err := osm.ParseString(dst.String())
	require.NoError(t, err)

	report, err := New().Swap(context.Background(), source, target)
	require.NoError(t, err)
	assert.Equal(t, 4, report.Applied)

	var handles []string
	for i := 0; i < 4; i++ {
		surface, ok := target.Object(fmt.Sprintf("{t%d}", i))
		require.True(t, ok)
		c, ok := surface.Ref(domain.FieldConstruction)
		require.True(t, ok)
		assert.Equal(t, "Slab 1", c.Name())
		handles = append(handles, c.Handle())
	}
	for _, h := range handles[1:] {
		assert.Equal(t, handles[0], h)
	}
	assert.Len(t, target.Objects(domain.TypeConstruction), 2, "placeholder plus one shared copy")
	assert.Len(t, target.Objects("OS:Material"), 1)
}

func TestSwap_ReferenceWithoutConstruction(t *testing.T) {
	source, err := osm.ParseString(rect("{s}", "Ref_Floor", "", "Ground", 10, 10))
	require.NoError(t, err)
	target, err := osm.ParseString(rect("{t}", "Floor", "", "Ground", 10, 10))
	require.NoError(t, err)

	_, err = New().Swap(context.Background(), source, target)
	var ie *domain.InitError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "Ref_Floor", ie.Object)
	assert.Equal(t, domain.FieldConstruction, ie.Attribute)
}

func TestSwap_AreaOutsideTolerance(t *testing.T) {
	source, err := osm.ParseString("OS:Construction, {c}, Slab;\n" + rect("{s}", "Ref_Floor", "{c}", "Ground", 10, 10))
	require.NoError(t, err)
	target, err := osm.ParseString(rect("{t}", "Floor", "", "Ground", 10, 12))
	require.NoError(t, err)

	_, err = New().Swap(context.Background(), source, target)
	assert.ErrorIs(t, err, domain.ErrMatchThreshold)

	_, err = New(WithAreaEpsilon(25)).Swap(context.Background(), source, target)
	assert.NoError(t, err)
}

func TestSwap_CountMismatch(t *testing.T) {
	source, target := floors(t, 3)
	extra, _ := target.Object("{t0}")
	require.NoError(t, extra.Remove())

	report, err := New().Swap(context.Background(), source, target)
	assert.ErrorIs(t, err, domain.ErrStructuralMismatch)
	assert.Zero(t, report.Applied)
}

func TestSwap_Cancelled(t *testing.T) {
	source, target := floors(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Swap(ctx, source, target)
	assert.ErrorIs(t, err, context.Canceled)
}
