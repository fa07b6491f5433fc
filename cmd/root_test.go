package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		cfgFile = ""
		visibleLines = 0
		writeConfig = false
		debugFlag = false
		logLevel = "debug"
		rootCmd.Flags().Lookup("visible-lines").Changed = false
	})
}

func TestLoadConfigDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	resetFlags(t)

	cfg, err := loadConfig(rootCmd, nil)
	require.NoError(t, err)
	require.Equal(t, 10, cfg.VisibleLines)
	require.Equal(t, filepath.Join(home, ".config", "editbox", "note.json"), cfg.NotePath)
}

func TestLoadConfigFlagsAndArgsOverrideFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"visible_lines": 7, "theme": "monokai"}`), 0644))
	cfgFile = path
	require.NoError(t, rootCmd.Flags().Set("visible-lines", "4"))

	cfg, err := loadConfig(rootCmd, []string{"todo.json"})
	require.NoError(t, err)
	require.Equal(t, 4, cfg.VisibleLines)
	require.Equal(t, "monokai", cfg.Theme)
	require.Equal(t, "todo.json", cfg.NotePath)
}

func TestLoadConfigInvalidVisibleLinesFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resetFlags(t)

	require.NoError(t, rootCmd.Flags().Set("visible-lines", "-2"))
	cfg, err := loadConfig(rootCmd, nil)
	require.NoError(t, err)
	require.Equal(t, 10, cfg.VisibleLines)
}

func TestLoadConfigBadFile(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	cfgFile = path

	_, err := loadConfig(rootCmd, nil)
	require.Error(t, err)
}

func TestRootAcceptsAtMostOneNote(t *testing.T) {
	require.NoError(t, rootCmd.Args(rootCmd, []string{"a.json"}))
	require.Error(t, rootCmd.Args(rootCmd, []string{"a.json", "b.json"}))
}

func TestWriteConfigSavesResolvedSettings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "conf", "settings.json")
	cfgFile = path
	writeConfig = true
	require.NoError(t, rootCmd.Flags().Set("visible-lines", "6"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	require.NoError(t, runEditor(rootCmd, []string{"todo.json"}))
	require.Contains(t, out.String(), "wrote "+path)

	writeConfig = false
	rootCmd.Flags().Lookup("visible-lines").Changed = false
	cfg, err := loadConfig(rootCmd, nil)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.VisibleLines)
	require.Equal(t, "todo.json", cfg.NotePath)
}

func TestBadLogLevelFailsBeforeEditing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	resetFlags(t)

	debugFlag = true
	logLevel = "loud"
	err := runEditor(rootCmd, nil)
	require.ErrorContains(t, err, "unknown log level")
}
