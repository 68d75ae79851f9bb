package main

import (
	"github.com/reusee/bftape/bfrun"
	"github.com/reusee/bftape/debugs"
	"github.com/reusee/bftape/reports"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Run     bfrun.Module
	Reports reports.Module
	Debugs  debugs.Module
}
