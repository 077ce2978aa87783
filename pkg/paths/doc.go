// Package paths resolves the filesystem locations ctp works with: the
// per-user configuration file, template directories named in it, and the
// output directory of a new project.
package paths
