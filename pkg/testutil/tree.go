package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// CreateAferoTree materializes tree under basePath on fs.
func CreateAferoTree(t *testing.T, fs afero.Fs, basePath string, tree FileTree) {
	t.Helper()

	if err := fs.MkdirAll(basePath, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", basePath, err)
	}

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := afero.WriteFile(fs, fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case []byte:
			if err := afero.WriteFile(fs, fullPath, v, 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			CreateAferoTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// CreateTree materializes tree under basePath on the OS filesystem.
func CreateTree(t *testing.T, basePath string, tree FileTree) {
	t.Helper()
	CreateAferoTree(t, afero.NewOsFs(), basePath, tree)
}

// ReadAferoTree snapshots the directory at basePath into a FileTree.
// File contents are returned as strings.
func ReadAferoTree(t *testing.T, fs afero.Fs, basePath string) FileTree {
	t.Helper()

	entries, err := afero.ReadDir(fs, basePath)
	if err != nil {
		t.Fatalf("Failed to read directory %s: %v", basePath, err)
	}

	tree := FileTree{}
	for _, entry := range entries {
		fullPath := filepath.Join(basePath, entry.Name())
		if entry.IsDir() {
			tree[entry.Name()] = ReadAferoTree(t, fs, fullPath)
			continue
		}
		data, err := afero.ReadFile(fs, fullPath)
		if err != nil {
			t.Fatalf("Failed to read file %s: %v", fullPath, err)
		}
		tree[entry.Name()] = string(data)
	}
	return tree
}

// ReadTree snapshots a directory on the OS filesystem.
func ReadTree(t *testing.T, basePath string) FileTree {
	t.Helper()
	return ReadAferoTree(t, afero.NewOsFs(), basePath)
}

// WriteConfig writes a config file named name in a fresh temp directory
// and returns its path.
func WriteConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config %s: %v", path, err)
	}
	return path
}

// Chdir changes the working directory for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})
}
