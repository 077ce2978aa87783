// Package config loads the ctp configuration document and answers the two
// questions the scaffolding pipeline asks of it: where does the template for
// a language live, and which commands run before and after the copy.
//
// The document is kept as the generic tree produced by the parser rather
// than decoded into a struct, since users add arbitrary language keys. All
// lookups go through Document, which never panics on a missing or mistyped
// key:
//
//	[templates]
//	python = "~/templates/python"
//
//	[commands-before]
//	python = ["echo starting {{__NAME__}}"]
//
//	[commands-after]
//	python = ["git init", "python -m venv .venv"]
//
// A missing "templates" section or language entry is a hard error. Command
// lists are optional: a missing section, a missing language key or a list
// that is not made of strings all resolve to "no commands".
//
// Files ending in .yaml or .yml are parsed as YAML; everything else,
// including the traditional extension-less ~/.ctp, is parsed as TOML.
package config
