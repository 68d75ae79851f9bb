package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	// ModeDevelopment skips config files on disk so runs are reproducible.
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}
