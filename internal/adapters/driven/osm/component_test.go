package osm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

func types(c *domain.Component) []string {
	out := make([]string, 0, len(c.Objects))
	for _, o := range c.Objects {
		out = append(out, o.Type)
	}
	return out
}

func TestCreateComponent_Construction(t *testing.T) {
	doc := mustParse(t, floorModel)
	c, _ := doc.Object("{c-1}")

	comp, err := doc.CreateComponent(c)
	require.NoError(t, err)

	assert.Equal(t, "{c-1}", comp.UUID)
	assert.NotEmpty(t, comp.VersionUUID)
	assert.ElementsMatch(t, []string{
		domain.TypeConstruction, "OS:Material", "OS:StandardsInformation:Construction",
	}, types(comp))

	primary, ok := comp.Primary()
	require.True(t, ok)
	assert.Equal(t, "Floor Construction", primary.Name())
	assert.Empty(t, primary.Fields[0], "handles are not carried")
}

func TestCreateComponent_BlanksOutsideReferences(t *testing.T) {
	doc := mustParse(t, lightsModel)
	lights, _ := doc.Object("{l-1}")

	comp, err := doc.CreateComponent(lights)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		domain.TypeLights, "OS:Lights:Definition", domain.TypeSchedule,
		"OS:ScheduleTypeLimits", "OS:Schedule:Day", "OS:Schedule:Rule",
	}, types(comp))

	primary, _ := comp.Primary()
	assert.Empty(t, primary.Fields[3], "space reference blanked")
	_, ok := primary.Refs[3]
	assert.False(t, ok)
}

func TestCreateComponent_DoesNotFollowProgramList(t *testing.T) {
	doc := mustParse(t, `
OS:EnergyManagementSystem:Program, {p-1}, Light_Prog, SET x = 1;
OS:EnergyManagementSystem:ProgramCallingManager, {pc-1}, Light_PCM, BeginTimestepBeforePredictor, {p-1};
`)
	pcm, _ := doc.Object("{pc-1}")

	comp, err := doc.CreateComponent(pcm)
	require.NoError(t, err)
	require.Len(t, comp.Objects, 1)
	assert.Empty(t, comp.Objects[0].Fields[3])
}

func TestCreateComponent_VersionIsStable(t *testing.T) {
	doc := mustParse(t, floorModel)
	c, _ := doc.Object("{c-1}")

	a, err := doc.CreateComponent(c)
	require.NoError(t, err)
	b, err := doc.CreateComponent(c)
	require.NoError(t, err)

	assert.Equal(t, a.VersionUUID, b.VersionUUID)
}

func TestInsertComponent_ReusesEquivalentResources(t *testing.T) {
	source := mustParse(t, floorModel)
	target := mustParse(t, "OS:Space, {t-1}, Core_ZN;")

	c, _ := source.Object("{c-1}")
	comp, err := source.CreateComponent(c)
	require.NoError(t, err)

	first, err := target.InsertComponent(comp)
	require.NoError(t, err)
	assert.Equal(t, "Floor Construction", first.Name())
	assert.NotEqual(t, "{c-1}", first.Handle())

	second, err := target.InsertComponent(comp)
	require.NoError(t, err)
	assert.Equal(t, first.Handle(), second.Handle())

	assert.Len(t, target.Objects(domain.TypeConstruction), 1)
	assert.Len(t, target.Objects("OS:Material"), 1)
	assert.Len(t, target.Objects("OS:StandardsInformation:Construction"), 1)
	assert.Len(t, target.Objects(domain.TypeComponentData), 1)

	layer := first.ListRefs("Layer")
	require.Len(t, layer, 1)
	assert.Equal(t, "Concrete", layer[0].Name())
}

func TestInsertComponent_ReusesRenamedCopy(t *testing.T) {
	source := mustParse(t, floorModel)
	target := mustParse(t, "OS:Construction, {x-1}, Floor Construction;")

	c, _ := source.Object("{c-1}")
	comp, err := source.CreateComponent(c)
	require.NoError(t, err)

	first, err := target.InsertComponent(comp)
	require.NoError(t, err)
	assert.Equal(t, "Floor Construction 1", first.Name())

	again, err := source.CreateComponent(c)
	require.NoError(t, err)
	second, err := target.InsertComponent(again)
	require.NoError(t, err)

	assert.Equal(t, first.Handle(), second.Handle())
	assert.Len(t, target.Objects(domain.TypeConstruction), 2, "placeholder plus one copy")
	assert.Len(t, target.Objects(domain.TypeComponentData), 1)
}

func TestInsertComponent_RenamedCopyRemovedIsInsertedAgain(t *testing.T) {
	source := mustParse(t, floorModel)
	target := mustParse(t, "OS:Construction, {x-1}, Floor Construction;")

	c, _ := source.Object("{c-1}")
	comp, err := source.CreateComponent(c)
	require.NoError(t, err)

	first, err := target.InsertComponent(comp)
	require.NoError(t, err)
	require.NoError(t, first.Remove())

	second, err := target.InsertComponent(comp)
	require.NoError(t, err)
	assert.NotEqual(t, first.Handle(), second.Handle())
	_, ok := target.Object(second.Handle())
	assert.True(t, ok)
}

func TestInsertComponent_UniquifiesConflictingNames(t *testing.T) {
	source := mustParse(t, lightsModel)
	target := mustParse(t, `
OS:ScheduleTypeLimits, {x-1}, Fractional, 0, 1, Continuous;
OS:Lights:Definition, {x-2}, Office Lights Def, Watts/Area, , 10.0;
`)

	lights, _ := source.Object("{l-1}")
	comp, err := source.CreateComponent(lights)
	require.NoError(t, err)

	inserted, err := target.InsertComponent(comp)
	require.NoError(t, err)

	assert.Len(t, target.Objects("OS:ScheduleTypeLimits"), 1, "identical limits reused")

	def, ok := inserted.Ref("Lights Definition Name")
	require.True(t, ok)
	assert.Equal(t, "Office Lights Def 1", def.Name())

	_, ok = inserted.Parent()
	assert.False(t, ok)

	origin, ok := target.Origin(inserted)
	require.True(t, ok)
	assert.Equal(t, "{l-1}", origin)
}

func TestInsertComponent_Invalid(t *testing.T) {
	target := NewDocument()

	_, err := target.InsertComponent(&domain.Component{})
	assert.ErrorIs(t, err, domain.ErrInsertionFailed)

	_, err = target.InsertComponent(&domain.Component{Objects: []domain.ComponentObject{{
		Type:   domain.TypeLights,
		Fields: []string{"", "Broken"},
		Refs:   map[int]int{1: 4},
	}}})
	assert.ErrorIs(t, err, domain.ErrInsertionFailed)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrigin_NotTransplanted(t *testing.T) {
	doc := mustParse(t, lightsModel)
	lights, _ := doc.Object("{l-1}")

	_, ok := doc.Origin(lights)
	assert.False(t, ok)
}
