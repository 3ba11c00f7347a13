package config

// Configfile represents the structure of the .vscfg.yaml configuration file.
type Configfile struct {
	Task       *TaskDTO       `yaml:"task"`
	Properties *PropertiesDTO `yaml:"properties"`
}

// TaskDTO overrides the fixed fields of a generated build task.
type TaskDTO struct {
	Args           []string `yaml:"args"`
	ProblemMatcher []string `yaml:"problem_matcher"`
	Default        *bool    `yaml:"default"`
}

// PropertiesDTO overrides the fixed fields of a generated C/C++ configuration.
type PropertiesDTO struct {
	IntelliSenseMode string `yaml:"intellisense_mode"`
}
