package headr

import (
	"context"

	"github.com/aretw0/headr/pkg/domain"
	"github.com/aretw0/headr/pkg/runner"
)

// Version is the release of the headr library and command.
const Version = "0.1.0"

// Head runs cfg against the process's standard streams and the local
// filesystem unless options say otherwise. Per-source failures are written to
// the error stream and do not make it return an error.
func Head(ctx context.Context, cfg domain.Config, opts ...runner.Option) error {
	return runner.NewRunner(opts...).Run(ctx, cfg)
}
