package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rei/debugs"
	"github.com/reusee/rei/logs"
	"github.com/reusee/rei/reiconfigs"
	"github.com/reusee/rei/traces"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs reiconfigs.Module
	Traces  traces.Module
	Debugs  debugs.Module
}
