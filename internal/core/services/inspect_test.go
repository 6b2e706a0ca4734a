package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/osmswap/internal/adapters/driven/osm"
	"github.com/custodia-labs/osmswap/internal/core/domain"
)

const inspectModel = `
OS:Space,
  {s-1}, Perimeter_ZN_1;

OS:Lights:Definition,
  {ld-1}, Office Lights Def, Watts/Area, , 8.5;

OS:Lights,
  {l-1}, Office Lights, {ld-1}, {s-1}, , 1;
`

func writeInspectModel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.osm")
	require.NoError(t, os.WriteFile(path, []byte(inspectModel), 0644))
	return path
}

func TestInspectService_Describe_ByHandle(t *testing.T) {
	path := writeInspectModel(t)
	svc := NewInspectService(osm.NewStore())

	got, err := svc.Describe(context.Background(), path, "{l-1}", "")
	require.NoError(t, err)

	assert.Equal(t, "{l-1}", got.Object.Handle)
	assert.Equal(t, domain.TypeLights, got.Object.Type)
	assert.Equal(t, "Office Lights", got.Object.Name)
	assert.NotEmpty(t, got.Object.Fields)

	require.Len(t, got.Ancestors, 1)
	assert.Equal(t, "Perimeter_ZN_1", got.Ancestors[0].Name)
	assert.Equal(t, domain.TypeSpace, got.Ancestors[0].Type)
}

func TestInspectService_Describe_ByNameWithQuery(t *testing.T) {
	path := writeInspectModel(t)
	svc := NewInspectService(osm.NewStore())

	got, err := svc.Describe(context.Background(), path, "Office Lights", "SCHEDULE")
	require.NoError(t, err)

	require.Len(t, got.Object.Fields, 1)
	assert.Equal(t, domain.FieldSchedule, got.Object.Fields[0].Name)
	assert.Empty(t, got.Object.Fields[0].Value)
}

func TestInspectService_Describe_NoParent(t *testing.T) {
	path := writeInspectModel(t)

	got, err := NewInspectService(osm.NewStore()).Describe(context.Background(), path, "Perimeter_ZN_1", "")
	require.NoError(t, err)
	assert.Empty(t, got.Ancestors)
}

func TestInspectService_Describe_Errors(t *testing.T) {
	path := writeInspectModel(t)
	svc := NewInspectService(osm.NewStore())
	ctx := context.Background()

	_, err := svc.Describe(ctx, path, "Nothing Here", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Describe(ctx, path, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Describe(ctx, filepath.Join(t.TempDir(), "missing.osm"), "{l-1}", "")
	assert.ErrorIs(t, err, domain.ErrPathNotFound)

	_, err = NewInspectService(nil).Describe(ctx, path, "{l-1}", "")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestAncestors_StopsEarly(t *testing.T) {
	doc, err := osm.ParseString(inspectModel)
	require.NoError(t, err)
	lights, ok := doc.Object("{l-1}")
	require.True(t, ok)

	n := 0
	for range Ancestors(lights) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
