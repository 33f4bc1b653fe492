// Package batch drives generation across many domains: render each one,
// persist the output, and report what was written.
//
// The batch is fail-fast: the first domain that fails validation, rendering,
// or writing aborts the remaining iteration, so a failed run never leaves a
// mix of stale and fresh modules beyond the point of failure.
package batch

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	bgerrors "github.com/scriptkit/bridgegen/errors"
	"github.com/scriptkit/bridgegen/render"
	"github.com/scriptkit/bridgegen/spec"
)

// Target pairs one domain with its output location.
type Target struct {
	Domain spec.Domain
	Path   string
}

// Written reports one successfully persisted module.
type Written struct {
	Domain    string
	Path      string
	Functions int
}

// TargetsFor lays out one target per domain under outDir, preserving the
// caller-supplied order: outDir/<name>/<name>_bridge.go.
func TargetsFor(domains []spec.Domain, outDir string) []Target {
	targets := make([]Target, 0, len(domains))
	for _, d := range domains {
		targets = append(targets, Target{
			Domain: d,
			Path:   filepath.Join(outDir, d.Name, render.Filename(d.Name)),
		})
	}
	return targets
}

// Run renders and writes every target in order. Existing output is
// overwritten unconditionally. On the first failure the remaining targets
// are skipped and the returned error names the offending domain; the
// report covers only the domains written before the failure.
func Run(targets []Target, r *render.Renderer) ([]Written, error) {
	if r == nil {
		r = render.New()
	}

	report := make([]Written, 0, len(targets))
	for _, t := range targets {
		mod, err := r.Module(t.Domain)
		if err != nil {
			return report, err
		}

		if err := os.MkdirAll(filepath.Dir(t.Path), 0o755); err != nil {
			return report, bgerrors.WriteFailure(t.Domain.Name, t.Path, err)
		}
		if err := os.WriteFile(t.Path, mod.Text, 0o644); err != nil {
			return report, bgerrors.WriteFailure(t.Domain.Name, t.Path, err)
		}

		Logger().Debug("wrote bridge module",
			zap.String("domain", t.Domain.Name),
			zap.String("path", t.Path),
			zap.Int("functions", mod.FunctionCount))

		report = append(report, Written{
			Domain:    t.Domain.Name,
			Path:      t.Path,
			Functions: mod.FunctionCount,
		})
	}

	return report, nil
}
