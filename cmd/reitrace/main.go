package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/rei/cmds"
	"github.com/reusee/rei/debugs"
	"github.com/reusee/rei/logs"
	"github.com/reusee/rei/modes"
	"github.com/reusee/rei/reivm"
	"github.com/reusee/rei/syncs"
	"github.com/reusee/rei/traces"
	"github.com/reusee/rei/vars"
)

var (
	topOnly    = cmds.Switch("-top")
	bottomOnly = cmds.Switch("-bottom")
	expose     = cmds.Switch("-expose")
	doTap      = cmds.Switch("-tap")
	limitArg   = cmds.Var[int]("-limit")

	snapshots []string
)

func init() {
	cmds.Define("-snapshot", cmds.Func(func(path string) {
		snapshots = append(snapshots, path)
	}).
		Desc("add a machine snapshot file to inspect").
		Alias("-s"))
}

func main() {
	cmds.MustExecute(os.Args[1:])
	ctx := context.Background()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		defaults traces.Defaults,
		tap debugs.Tap,
	) {

		if len(snapshots) == 0 {
			cmds.PrintUsage()
			return
		}

		limit := vars.FirstNonZero(*limitArg, defaults.Limit)
		opts := defaults.Options()
		if *expose {
			opts |= traces.ExposeFramesAcrossOrigins
		}

		sem := syncs.NewSemaphore(4)
		var wg sync.WaitGroup
		var printLock sync.Mutex
		for _, path := range snapshots {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sem.Acquire()
				defer sem.Release()

				v, err := loadSnapshot(path)
				if err != nil {
					logger.ErrorContext(ctx, "load snapshot",
						"path", path,
						"error", err,
					)
					return
				}
				out := render(v, limit, opts)

				printLock.Lock()
				defer printLock.Unlock()
				fmt.Printf("%s:\n%s\n", path, out)
			}()
		}
		wg.Wait()

		if *doTap {
			v, err := loadSnapshot(snapshots[0])
			ce(err)
			tap(ctx, snapshots[0], v, nil)
		}

	})

}

func render(v *reivm.VM, limit int, opts traces.Options) string {
	switch {
	case *topOnly:
		return traces.CaptureTop(v, limit, opts).String()
	case *bottomOnly:
		return traces.CaptureBottom(v, limit, opts).String()
	default:
		return traces.Capture(v, limit, opts).String()
	}
}

func loadSnapshot(path string) (*reivm.VM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	v := new(reivm.VM)
	if err := v.Restore(f); err != nil {
		return nil, err
	}
	return v, nil
}

func ce(err error) {
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}
}
