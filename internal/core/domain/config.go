package domain

// TaskDefaults holds the values used for fields of a generated task that are not
// taken from the command line.
type TaskDefaults struct {
	Args           []string
	ProblemMatcher []string
	IsDefault      bool
}

// PropertiesDefaults holds the fixed fields of a generated descriptor.
type PropertiesDefaults struct {
	IntelliSenseMode string
}

// Config is the resolved generator configuration.
type Config struct {
	Task       TaskDefaults
	Properties PropertiesDefaults
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Task: TaskDefaults{
			Args:           []string{"all"},
			ProblemMatcher: []string{"$gcc"},
			IsDefault:      true,
		},
		Properties: PropertiesDefaults{
			IntelliSenseMode: DefaultIntelliSenseMode,
		},
	}
}
