package tokens_test

import (
	"testing"

	"github.com/arthur-debert/ctp/pkg/tokens"
	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	vars := tokens.Vars{ProjectName: "foo", OutputPath: "/tmp/foo"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"both_tokens", "build {{__NAME__}} -> {{__OUT__}}", "build foo -> /tmp/foo"},
		{"reversed_order", "{{__OUT__}} <- {{__NAME__}}", "/tmp/foo <- foo"},
		{"repeated", "{{__NAME__}}{{__NAME__}}", "foofoo"},
		{"no_tokens", "plain text", "plain text"},
		{"partial_token_untouched", "{{__NAME__", "{{__NAME__"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vars.Apply(tt.input))
		})
	}
}

func TestApplyDoesNotRescanReplacements(t *testing.T) {
	vars := tokens.Vars{ProjectName: "{{__OUT__}}", OutputPath: "{{__NAME__}}"}

	got := vars.Apply("{{__NAME__}}|{{__OUT__}}")

	assert.Equal(t, "{{__OUT__}}|{{__NAME__}}", got)
}

func TestApplyIsSinglePass(t *testing.T) {
	vars := tokens.Vars{ProjectName: "demo", OutputPath: "/out/demo"}
	once := vars.Apply("# {{__NAME__}} in {{__OUT__}}")

	assert.Equal(t, once, vars.Apply(once))
}

func TestContains(t *testing.T) {
	assert.True(t, tokens.Contains("echo {{__NAME__}}"))
	assert.True(t, tokens.Contains("cd {{__OUT__}}"))
	assert.False(t, tokens.Contains("echo hi"))
}
