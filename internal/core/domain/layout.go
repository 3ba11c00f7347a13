package domain

import "path/filepath"

const (
	// WorkspacePlaceholder is the editor variable substituted for the workspace root.
	WorkspacePlaceholder = "${workspaceFolder}"

	// VSCodeDirName is the name of the editor settings directory.
	VSCodeDirName = ".vscode"

	// TasksFileName is the conventional name of the build task file.
	TasksFileName = "tasks.json"

	// PropertiesFileName is the conventional name of the C/C++ properties file.
	PropertiesFileName = "c_cpp_properties.json"

	// ConfigFileName is the name of the optional generator configuration file.
	ConfigFileName = ".vscfg.yaml"

	// BrowseDatabaseFilename is the symbol database location written into browse info.
	BrowseDatabaseFilename = WorkspacePlaceholder + "/.vscode/browse.VC.db"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultTasksPath returns the conventional location of the tasks file.
// It joins .vscode and tasks.json.
func DefaultTasksPath() string {
	return filepath.Join(VSCodeDirName, TasksFileName)
}

// DefaultPropertiesPath returns the conventional location of the C/C++ properties file.
// It joins .vscode and c_cpp_properties.json.
func DefaultPropertiesPath() string {
	return filepath.Join(VSCodeDirName, PropertiesFileName)
}
