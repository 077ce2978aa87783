package scaffold

import "fmt"

// Stage identifies a step of a scaffolding run.
type Stage int

const (
	StageResolveTemplate Stage = iota
	StageBeforeCommands
	StageCopyTree
	StageEnterOutput
	StageAfterCommands
)

var stageNames = map[Stage]string{
	StageResolveTemplate: "resolve template",
	StageBeforeCommands:  "before commands",
	StageCopyTree:        "copy template",
	StageEnterOutput:     "enter output directory",
	StageAfterCommands:   "after commands",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// StageError reports which stage of a run failed and why.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
