package bfrun

import (
	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/bftape/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}
