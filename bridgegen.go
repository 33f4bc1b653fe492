package bridgegen

import (
	"github.com/scriptkit/bridgegen/batch"
	"github.com/scriptkit/bridgegen/render"
	"github.com/scriptkit/bridgegen/spec"
)

// Generate renders every domain in order and writes one bridge module per
// domain under outDir. It is the library entry point the CLI wraps: the
// batch is fail-fast and the returned report covers only what was written.
func Generate(domains []spec.Domain, outDir string, opts ...render.Option) ([]batch.Written, error) {
	return batch.Run(batch.TargetsFor(domains, outDir), render.New(opts...))
}
