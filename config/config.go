package config

// Flag-bound globals shared across commands.
var (
	Network string
	TickMs  uint64
	Verbose bool
	NoColor bool
)
