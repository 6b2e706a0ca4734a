package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("key1", "original"))
	require.NoError(t, store.Set("key1", "updated"))

	val, ok := store.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_TypeAssertions(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("string", "value")
	_ = store.Set("int", 42)
	_ = store.Set("int64", int64(43))
	_ = store.Set("float", 0.5)
	_ = store.Set("bool", true)
	_ = store.Set("strings", []string{"Floor"})
	_ = store.Set("anys", []any{"Wall", 3, "Floor"})

	// GetString
	assert.Equal(t, "value", store.GetString("string"))
	assert.Equal(t, "", store.GetString("int"))
	assert.Equal(t, "", store.GetString("missing"))

	// GetFloat
	assert.Equal(t, 42.0, store.GetFloat("int"))
	assert.Equal(t, 43.0, store.GetFloat("int64"))
	assert.Equal(t, 0.5, store.GetFloat("float"))
	assert.Zero(t, store.GetFloat("string"))
	assert.Zero(t, store.GetFloat("missing"))

	// GetBool
	assert.True(t, store.GetBool("bool"))
	assert.False(t, store.GetBool("int"))
	assert.False(t, store.GetBool("missing"))

	// GetStringSlice
	assert.Equal(t, []string{"Floor"}, store.GetStringSlice("strings"))
	assert.Equal(t, []string{"Wall", "Floor"}, store.GetStringSlice("anys"))
	assert.Nil(t, store.GetStringSlice("string"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_Keys(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("standards.office.template", "90.1-2013")
	_ = store.Set("standards.lobby.space_type", "Lobby")
	_ = store.Set("lighting.schedule", "Always On")

	assert.Equal(t, []string{"standards.lobby.space_type", "standards.office.template"}, store.Keys("standards."))
	assert.Equal(t, []string{"lighting.schedule", "standards.lobby.space_type", "standards.office.template"}, store.Keys(""))
	assert.Empty(t, store.Keys("workflow."))
}

func TestConfigStore_SaveLoad_NoOp(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("key", "value")

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, "value", store.GetString("key"))
}

func TestConfigStore_MultipleInstances(t *testing.T) {
	store1 := NewConfigStore()
	store2 := NewConfigStore()

	_ = store1.Set("key1", "value1")
	_ = store2.Set("key2", "value2")

	_, ok := store1.Get("key2")
	assert.False(t, ok)
	_, ok = store2.Get("key1")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency_ReadWriteMix(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Set("construction.area_epsilon", float64(i))
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetFloat("construction.area_epsilon")
			_ = store.Keys("construction.")
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"construction.area_epsilon"}, store.Keys(""))
}

func TestNewConfigStoreFrom_Copies(t *testing.T) {
	seed := map[string]any{"sizing.epsilon": 0.01, "swappers.lighting": false}
	store := NewConfigStoreFrom(seed)

	seed["sizing.epsilon"] = 1.0

	assert.InDelta(t, 0.01, store.GetFloat("sizing.epsilon"), 1e-12)
	v, ok := store.Get("swappers.lighting")
	assert.True(t, ok)
	assert.Equal(t, false, v)
}
