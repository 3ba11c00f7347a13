package domain

const (
	// PropertiesVersion is the schema version of the C/C++ properties file.
	PropertiesVersion = 4

	// DefaultIntelliSenseMode is the only non-MSVC mode understood by the editor extension.
	DefaultIntelliSenseMode = "clang-x64"

	// LinuxConfigurationName is the configuration name; no other platform is supported.
	LinuxConfigurationName = "Linux"
)

// BrowseInfo configures the editor's tag parser.
type BrowseInfo struct {
	Path                          []string `json:"path"`
	LimitSymbolsToIncludedHeaders bool     `json:"limitSymbolsToIncludedHeaders"`
	DatabaseFilename              string   `json:"databaseFilename"`
}

// Descriptor is one code-intelligence configuration of the editor.
// Field order matches the emitted key order.
type Descriptor struct {
	Name             string     `json:"name"`
	IntelliSenseMode string     `json:"intelliSenseMode"`
	CompilerPath     string     `json:"compilerPath"`
	IncludePath      []string   `json:"includePath"`
	Defines          []string   `json:"defines"`
	CStandard        string     `json:"cStandard,omitempty"`
	CppStandard      string     `json:"cppStandard,omitempty"`
	Browse           BrowseInfo `json:"browse"`
}

// PropertiesDocument is the root of the C/C++ properties file.
type PropertiesDocument struct {
	Configurations []Descriptor `json:"configurations"`
	Version        int          `json:"version"`
}

// NewPropertiesDocument wraps a single descriptor into a document.
func NewPropertiesDocument(d Descriptor) PropertiesDocument {
	return PropertiesDocument{
		Configurations: []Descriptor{d},
		Version:        PropertiesVersion,
	}
}
