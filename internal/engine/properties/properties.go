// Package properties assembles the C/C++ code-intelligence descriptor from
// tokenized compiler flags.
package properties

import (
	"strings"

	"go.trai.ch/vscfg/internal/core/domain"
	"go.trai.ch/vscfg/internal/engine/flags"
)

// Input carries everything needed to assemble a descriptor.
type Input struct {
	CCompiler        string
	CXXCompiler      string
	Flags            flags.Set
	IntelliSenseMode string
}

// WorkspacePath anchors a relative include path at the workspace root.
// Absolute paths are returned unchanged. The path is not cleaned.
func WorkspacePath(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return domain.WorkspacePlaceholder + "/" + p
}

// Assemble builds the descriptor for in.
//
// Includes and defines are collected from the C and C++ flags together.
// The C standard comes from the C flags only and is normalized; the C++
// standard comes from the C++ flags only and is kept as written.
func Assemble(in Input) domain.Descriptor {
	combined := in.Flags.Combined()

	includes := flags.ExtractOption(combined, flags.IncludePrefix)
	for i, p := range includes {
		includes[i] = WorkspacePath(p)
	}

	mode := in.IntelliSenseMode
	if mode == "" {
		mode = domain.DefaultIntelliSenseMode
	}

	d := domain.Descriptor{
		Name:             domain.LinuxConfigurationName,
		IntelliSenseMode: mode,
		CompilerPath:     in.CXXCompiler,
		IncludePath:      includes,
		Defines:          flags.ExtractOption(combined, flags.DefinePrefix),
		Browse: domain.BrowseInfo{
			Path:                          append([]string{}, includes...),
			LimitSymbolsToIncludedHeaders: true,
			DatabaseFilename:              domain.BrowseDatabaseFilename,
		},
	}

	if std, ok := flags.ExtractStandard(in.Flags.C); ok {
		d.CStandard = domain.NormalizeCStandard(std)
	}
	if std, ok := flags.ExtractStandard(in.Flags.CXX); ok {
		d.CppStandard = std
	}

	return d
}
