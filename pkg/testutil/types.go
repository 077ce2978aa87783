package testutil

// FileTree represents a nested file structure for declarative test setup.
// A string value is a file's contents; a FileTree value is a subdirectory.
type FileTree map[string]interface{}
