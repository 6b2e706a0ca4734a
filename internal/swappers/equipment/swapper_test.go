package equipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/osmswap/internal/adapters/driven/osm"
	"github.com/custodia-labs/osmswap/internal/core/domain"
)

const reference = `
OS:ElectricEquipment:Definition, {ed1}, Elevator Lift Motor, EquipmentLevel, 20370;
OS:ElectricEquipment:Definition, {ed2}, Office Plug Loads, Watts/Area, , 10.76;
OS:Schedule:Constant, {sc}, Elevator Schedule, , 1;
OS:Space, {s1}, Core_ZN;
OS:Space, {s2}, Perimeter_ZN_1;
OS:ElectricEquipment, {e1}, Core_ZN ELEVATOR Lift Motor, {ed1}, {s1}, {sc};
OS:ElectricEquipment, {e2}, Core_ZN Plug Loads, {ed2}, {s1}, {sc};
OS:ElectricEquipment, {e3}, Perimeter Plug Loads, {ed2}, {s2}, {sc};
`

const actual = `
OS:Space, {t2}, Perimeter_ZN_1 Space;
OS:Space, {t1}, Core_ZN Space;
`

func parse(t *testing.T, s string) *osm.Document {
	t.Helper()
	doc, err := osm.ParseString(s)
	require.NoError(t, err)
	return doc
}

func TestSwap(t *testing.T) {
	source, target := parse(t, reference), parse(t, actual)

	report, err := New().Swap(context.Background(), source, target)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Applied)

	core, _ := target.Object("{t1}")
	eqs := core.Children(domain.TypeElectricEquip)
	require.Len(t, eqs, 1)
	assert.Equal(t, "Core_ZN ELEVATOR Lift Motor", eqs[0].Name())

	def, ok := eqs[0].Ref("Electric Equipment Definition Name")
	require.True(t, ok)
	assert.Equal(t, "Elevator Lift Motor", def.Name())

	perimeter, _ := target.Object("{t2}")
	assert.Empty(t, perimeter.Children(domain.TypeElectricEquip))
}

func TestSwap_Idempotent(t *testing.T) {
	source, target := parse(t, reference), parse(t, actual)
	s := New()

	_, err := s.Swap(context.Background(), source, target)
	require.NoError(t, err)
	report, err := s.Swap(context.Background(), source, target)
	require.NoError(t, err)

	assert.Zero(t, report.Applied)
	assert.Equal(t, []string{"Core_ZN ELEVATOR Lift Motor"}, report.Skipped)
	assert.Len(t, target.Objects(domain.TypeElectricEquip), 1)
}

func TestSwap_NotIdempotent(t *testing.T) {
	source, target := parse(t, reference), parse(t, actual)
	s := New(WithIdempotent(false))

	_, err := s.Swap(context.Background(), source, target)
	require.NoError(t, err)
	_, err = s.Swap(context.Background(), source, target)
	require.NoError(t, err)

	assert.Len(t, target.Objects(domain.TypeElectricEquip), 2)
}

func TestSwap_CustomToken(t *testing.T) {
	source, target := parse(t, reference), parse(t, actual)

	report, err := New(WithToken("PLUG")).Swap(context.Background(), source, target)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Applied)
}

func TestSwap_SpaceMismatch(t *testing.T) {
	source := parse(t, reference)
	target := parse(t, "OS:Space, {t1}, Core_ZN Space;\nOS:Space, {t2}, Attic;")

	_, err := New().Swap(context.Background(), source, target)
	assert.ErrorIs(t, err, domain.ErrStructuralMismatch)
}
