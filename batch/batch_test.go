package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bgerrors "github.com/scriptkit/bridgegen/errors"
	"github.com/scriptkit/bridgegen/spec"
)

func domain(t *testing.T, name string) spec.Domain {
	t.Helper()
	d, err := spec.New(name, "Fixture domain "+name,
		[]spec.Function{{Name: "ping", Doc: "host." + name + ".ping() -> pong"}}, nil)
	require.NoError(t, err)
	return d
}

func TestRun_WritesAllInOrder(t *testing.T) {
	out := t.TempDir()
	domains := []spec.Domain{domain(t, "alpha"), domain(t, "beta"), domain(t, "gamma")}

	report, err := Run(TargetsFor(domains, out), nil)
	require.NoError(t, err)
	require.Len(t, report, 3)

	for i, name := range []string{"alpha", "beta", "gamma"} {
		assert.Equal(t, name, report[i].Domain, "report order must follow caller order")
		assert.Equal(t, 1, report[i].Functions)

		data, err := os.ReadFile(report[i].Path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "package "+name+"bridge")
	}
}

func TestRun_Overwrites(t *testing.T) {
	out := t.TempDir()
	targets := TargetsFor([]spec.Domain{domain(t, "alpha")}, out)

	require.NoError(t, os.MkdirAll(filepath.Dir(targets[0].Path), 0o755))
	require.NoError(t, os.WriteFile(targets[0].Path, []byte("stale"), 0o644))

	_, err := Run(targets, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(targets[0].Path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestRun_FailFast(t *testing.T) {
	out := t.TempDir()
	bad := spec.Domain{
		Name:        "broken",
		Description: "dup functions",
		Functions: []spec.Function{
			{Name: "store", Doc: "a"},
			{Name: "store", Doc: "b"},
		},
	}
	domains := []spec.Domain{domain(t, "first"), bad, domain(t, "third")}
	targets := TargetsFor(domains, out)

	report, err := Run(targets, nil)
	require.Error(t, err)

	// First domain was written, the failing one and everything after were not.
	require.Len(t, report, 1)
	assert.Equal(t, "first", report[0].Domain)
	assert.FileExists(t, targets[0].Path)
	assert.NoFileExists(t, targets[1].Path)
	assert.NoFileExists(t, targets[2].Path)

	// The error names the offending domain.
	var berr *bgerrors.Error
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, "broken", berr.Domain)
	assert.Equal(t, bgerrors.KindInvalidDomain, berr.Kind)
}

func TestRun_WriteFailure(t *testing.T) {
	out := t.TempDir()
	d := domain(t, "alpha")

	// Occupy the per-domain directory path with a file so MkdirAll fails.
	blocked := filepath.Join(out, "alpha")
	require.NoError(t, os.WriteFile(blocked, []byte("in the way"), 0o644))

	report, err := Run(TargetsFor([]spec.Domain{d}, out), nil)
	require.Error(t, err)
	assert.Empty(t, report)

	var berr *bgerrors.Error
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, bgerrors.KindWriteFailure, berr.Kind)
	assert.Equal(t, "alpha", berr.Domain)
}

func TestTargetsFor(t *testing.T) {
	targets := TargetsFor([]spec.Domain{domain(t, "memory")}, "out")
	require.Len(t, targets, 1)
	assert.Equal(t, filepath.Join("out", "memory", "memory_bridge.go"), targets[0].Path)
}
