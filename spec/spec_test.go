package spec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bgerrors "github.com/scriptkit/bridgegen/errors"
)

func validFunctions() []Function {
	return []Function{
		{Name: "store", Doc: "host.memory.store(key, value, options?) -> success"},
		{Name: "retrieve", Doc: "host.memory.retrieve(key) -> value"},
	}
}

func validGroups() []ConstantGroup {
	return []ConstantGroup{
		{Name: "Type", Values: []string{"SHORT_TERM", "LONG_TERM"}},
	}
}

func TestNew_Valid(t *testing.T) {
	d, err := New("memory", "Memory management and conversation history", validFunctions(), validGroups())
	require.NoError(t, err)

	assert.Equal(t, "memory", d.Name)
	assert.Equal(t, 2, d.FunctionCount())
	require.Len(t, d.Functions, 2)
	assert.Equal(t, "store", d.Functions[0].Name, "declared order must be preserved")
	assert.Equal(t, "retrieve", d.Functions[1].Name)
	require.Len(t, d.Constants, 1)
	assert.Equal(t, []string{"SHORT_TERM", "LONG_TERM"}, d.Constants[0].Values)
}

func TestNew_DuplicateFunction(t *testing.T) {
	fns := []Function{
		{Name: "store", Doc: "host.memory.store(key, value) -> success"},
		{Name: "store", Doc: "host.memory.store(key) -> success"},
	}
	_, err := New("memory", "dup", fns, nil)
	require.Error(t, err)

	var berr *bgerrors.Error
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, bgerrors.KindInvalidDomain, berr.Kind)
	assert.Equal(t, "memory", berr.Domain)
	assert.Contains(t, berr.Error(), `"store"`)
}

func TestNew_DuplicateGroup(t *testing.T) {
	groups := []ConstantGroup{
		{Name: "Type", Values: []string{"A"}},
		{Name: "Type", Values: []string{"B"}},
	}
	_, err := New("memory", "dup group", validFunctions(), groups)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Type"`)
}

func TestNew_DuplicateValue(t *testing.T) {
	groups := []ConstantGroup{
		{Name: "Scope", Values: []string{"GLOBAL", "GLOBAL"}},
	}
	_, err := New("memory", "dup value", validFunctions(), groups)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"GLOBAL"`)
}

func TestNew_ShapeViolations(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		desc   string
		fns    []Function
		groups []ConstantGroup
	}{
		{"empty name", "", "d", validFunctions(), nil},
		{"name not identifier-safe", "mem-ory", "d", validFunctions(), nil},
		{"uppercase domain", "Memory", "d", validFunctions(), nil},
		{"empty description", "memory", "", validFunctions(), nil},
		{"function name not token", "memory", "d", []Function{{Name: "Store!", Doc: "x"}}, nil},
		{"function missing doc", "memory", "d", []Function{{Name: "store"}}, nil},
		{"lowercase constant value", "memory", "d", validFunctions(), []ConstantGroup{{Name: "Type", Values: []string{"short_term"}}}},
		{"empty group values", "memory", "d", validFunctions(), []ConstantGroup{{Name: "Type"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.domain, tt.desc, tt.fns, tt.groups)
			require.Error(t, err)

			var berr *bgerrors.Error
			require.True(t, errors.As(err, &berr))
			assert.Equal(t, bgerrors.KindInvalidDomain, berr.Kind)
		})
	}
}

func TestValidate_NoFunctionsIsAllowed(t *testing.T) {
	d := Domain{Name: "empty", Description: "constants only", Constants: validGroups()}
	assert.NoError(t, d.Validate())
	assert.Equal(t, 0, d.FunctionCount())
}
