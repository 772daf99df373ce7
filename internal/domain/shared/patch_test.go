package shared

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchPayload struct {
	Name     PatchField[string]  `json:"name"`
	IsActive PatchField[bool]    `json:"is_active"`
	Price    PatchField[float64] `json:"price"`
}

func TestPatchField_Omitted(t *testing.T) {
	var p patchPayload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	assert.False(t, p.Name.Set)
	_, ok := p.Name.Get()
	assert.False(t, ok)
}

func TestPatchField_ExplicitNull(t *testing.T) {
	var p patchPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name": null}`), &p))

	assert.True(t, p.Name.Set)
	assert.True(t, p.Name.IsNull())
	_, ok := p.Name.Get()
	assert.False(t, ok)
}

func TestPatchField_Value(t *testing.T) {
	var p patchPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Leafy","is_active":false,"price":12.5}`), &p))

	name, ok := p.Name.Get()
	require.True(t, ok)
	assert.Equal(t, "Leafy", name)

	// false is a provided value, not an unset field
	active, ok := p.IsActive.Get()
	require.True(t, ok)
	assert.False(t, active)

	price, ok := p.Price.Get()
	require.True(t, ok)
	assert.Equal(t, 12.5, price)
}

func TestPatchField_TypeMismatch(t *testing.T) {
	var p patchPayload
	err := json.Unmarshal([]byte(`{"price":"twelve"}`), &p)
	assert.Error(t, err)
}

func TestPatch_Constructor(t *testing.T) {
	f := Patch("x")
	v, ok := f.Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}
