package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "etc-xdg"))
	t.Setenv(EnvConfig, "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return home
}

func TestExpandHome(t *testing.T) {
	home := setHome(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tilde_only", "~", home},
		{"tilde_slash", "~/templates/go", filepath.Join(home, "templates", "go")},
		{"other_user", "~bob/x", "~bob/x"},
		{"absolute", "/opt/tpl", "/opt/tpl"},
		{"relative", "tpl/py", "tpl/py"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Run("env_override", func(t *testing.T) {
		home := setHome(t)
		t.Setenv(EnvConfig, "~/custom.toml")
		assert.Equal(t, filepath.Join(home, "custom.toml"), DefaultConfigPath())
	})

	t.Run("xdg_config_file", func(t *testing.T) {
		home := setHome(t)
		dir := filepath.Join(home, ".config", "ctp")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[templates]\n"), 0644))

		assert.Equal(t, filepath.Join(dir, "config.toml"), DefaultConfigPath())
	})

	t.Run("falls_back_to_legacy_file", func(t *testing.T) {
		home := setHome(t)
		assert.Equal(t, filepath.Join(home, ".ctp"), DefaultConfigPath())
	})
}

func TestXDGConfigPath(t *testing.T) {
	home := setHome(t)
	assert.Equal(t, filepath.Join(home, ".config", "ctp", "config.toml"), XDGConfigPath())
}

func TestResolveOutput(t *testing.T) {
	home := setHome(t)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	t.Run("defaults_to_project_name", func(t *testing.T) {
		got, err := ResolveOutput("", "demo")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, "demo"), got)
	})

	t.Run("relative_output", func(t *testing.T) {
		got, err := ResolveOutput("./out/demo", "demo")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, "out", "demo"), got)
	})

	t.Run("home_output", func(t *testing.T) {
		got, err := ResolveOutput("~/src/demo", "demo")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "src", "demo"), got)
	})
}

func TestResolveTemplate(t *testing.T) {
	home := setHome(t)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := ResolveTemplate("./tpl/py")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "tpl", "py"), got)

	got, err = ResolveTemplate("~/templates/go")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "templates", "go"), got)
}
