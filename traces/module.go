package traces

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/rei/configs"
	"github.com/reusee/rei/logs"
	"github.com/reusee/rei/reivm"
)

type Module struct {
	dscope.Module
}

const DefaultLimit = 64

// Defaults are the capture parameters loaded from config files.
type Defaults struct {
	Limit             int  `json:"limit"`
	ExposeCrossOrigin bool `json:"expose_cross_origin"`
}

func (Module) Defaults(
	loader configs.Loader,
) Defaults {
	defaults := configs.First[Defaults](loader, "trace")
	if defaults.Limit <= 0 {
		defaults.Limit = DefaultLimit
	}
	return defaults
}

func (d Defaults) Options() Options {
	var opts Options
	if d.ExposeCrossOrigin {
		opts |= ExposeFramesAcrossOrigins
	}
	return opts
}

// Dump captures the full trace of a VM and logs it.
type Dump func(ctx context.Context, v *reivm.VM)

func (Module) Dump(
	logger logs.Logger,
	defaults Defaults,
) Dump {
	return func(ctx context.Context, v *reivm.VM) {
		trace := Capture(v, defaults.Limit, defaults.Options())
		logger.InfoContext(ctx, "stack trace",
			"depth", trace.Len(),
			"trace", trace.String(),
		)
	}
}
