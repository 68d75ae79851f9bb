package reports

import (
	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
}
