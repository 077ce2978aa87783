// Package testutil provides helpers shared by ctp's tests.
//
// Template trees are described declaratively with FileTree and materialized
// either on an in-memory afero filesystem (fast, isolated copier tests) or on
// disk under t.TempDir() (tests that spawn processes or go through the CLI).
// ReadTree does the reverse so tests can assert on a whole output tree at once.
package testutil
