package scaffold

import (
	"github.com/arthur-debert/ctp/pkg/config"
	"github.com/arthur-debert/ctp/pkg/options"
)

// Plan describes what a run would do, with placeholders already substituted.
type Plan struct {
	Language string
	Template string
	Output   string
	Before   []string
	After    []string
}

// Plan resolves everything Run would use without touching the filesystem
// or starting processes.
func (s *Scaffolder) Plan(opts options.Options, doc *config.Document) (Plan, error) {
	plan := Plan{Language: opts.Language, Output: opts.OutputPath}
	vars := opts.Vars()

	template, err := resolveTemplate(doc, opts.Language)
	if err != nil {
		return plan, stageErr(StageResolveTemplate, err)
	}
	plan.Template = template

	for _, variant := range config.Variants() {
		commands, _, err := doc.Commands(opts.Language, variant)
		if err != nil {
			return plan, stageErr(StageResolveTemplate, err)
		}
		substituted := make([]string, 0, len(commands))
		for _, line := range commands {
			substituted = append(substituted, vars.Apply(line))
		}
		if variant == config.Before {
			plan.Before = substituted
		} else {
			plan.After = substituted
		}
	}

	return plan, nil
}
