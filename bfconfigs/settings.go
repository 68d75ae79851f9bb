package bfconfigs

import (
	"runtime"

	"github.com/reusee/bftape/bfvm"
	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/vars"
)

// Flags override config files, which override defaults.
var (
	cellPolicyFlag  = cmds.Var[*bfvm.CellPolicy]("-cell-policy", "checked or wrap")
	wrapFlag        = cmds.Switch("-wrap", "wrap cells modulo 256")
	maxStepsFlag    = cmds.Var[*int]("-max-steps", "halt after this many steps")
	verbosityFlag   = cmds.Var[*int]("-v", "verbosity, 0 to 3")
	placeholderFlag = cmds.Var[string]("-placeholder", "text for undisplayable output bytes")
	parallelFlag    = cmds.Var[int]("-parallel", "programs run at once")
	jumpTableFlag   = cmds.Switch("-jump-table", "precompute loop jumps")
)

func (Module) CellPolicy(
	loader configs.Loader,
) bfvm.CellPolicy {
	if *wrapFlag {
		return bfvm.CellWrap
	}
	if p := *cellPolicyFlag; p != nil {
		return *p
	}
	// the schema admits only valid names
	policy, err := bfvm.ParseCellPolicy(configs.First[string](loader, "cell_policy"))
	if err != nil {
		panic(err)
	}
	return policy
}

type MaxSteps int

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	if n := *maxStepsFlag; n != nil {
		return MaxSteps(max(0, *n))
	}
	return MaxSteps(max(0, configs.First[int](loader, "max_steps")))
}

type Verbosity int

const MaxVerbosity Verbosity = 3

func (Module) Verbosity(
	loader configs.Loader,
) Verbosity {
	v := Verbosity(configs.First[int](loader, "verbosity"))
	if n := *verbosityFlag; n != nil {
		v = Verbosity(*n)
	}
	return min(max(v, 0), MaxVerbosity)
}

type Placeholder string

func (Module) Placeholder(
	loader configs.Loader,
) Placeholder {
	return vars.FirstNonZero(
		Placeholder(*placeholderFlag),
		configs.First[Placeholder](loader, "placeholder"),
		Placeholder(bfvm.Placeholder),
	)
}

type Parallelism int

func (Module) Parallelism(
	loader configs.Loader,
) Parallelism {
	return Parallelism(vars.FirstNonZero(
		*parallelFlag,
		configs.First[int](loader, "parallelism"),
		runtime.NumCPU(),
	))
}

type JumpTable bool

func (Module) JumpTable(
	loader configs.Loader,
) JumpTable {
	return JumpTable(*jumpTableFlag || configs.First[bool](loader, "jump_table"))
}

// Configure applies the settings to a fresh VM.
type Configure func(vm *bfvm.VM)

func (Module) Configure(
	policy bfvm.CellPolicy,
	maxSteps MaxSteps,
	placeholder Placeholder,
	jumpTable JumpTable,
) Configure {
	return func(vm *bfvm.VM) {
		vm.CellPolicy = policy
		vm.MaxSteps = int(maxSteps)
		vm.Placeholder = string(placeholder)
		if jumpTable {
			vm.UseJumpTable()
		}
	}
}
