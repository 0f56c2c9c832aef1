package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexdb/internal/app"
)

// isolateEnv clears the variables the persistent flags write so each test
// starts from defaults and the flags do not leak between tests.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("LEXICON_BASE_DIR", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DATABASE_DSN", "")
}

// writeConfig writes an empty config file so CONFIG_PATH resolves.
func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0o644))
	return path
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"WordNetMappings30-noun.txt": "01855672 05 n 01 goose 0 000 | web-footed long-necked migratory aquatic birds &%Goose+\n",
		"noun.exc":                   "geese goose\n",
		"stopwords.txt":              "the\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"load", "serve", "export", "migrate", "version"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"config", "base-dir", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing --%s", flag)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, app.Version+"\n", out)

	out, err = execute(t, "version", "--json")
	require.NoError(t, err)
	var info app.BuildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, app.Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.NotEmpty(t, info.Platform)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lexdb "+app.Version)
}

func TestLoadCmd_JSON(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "load", "--config", writeConfig(t), "--base-dir", fixtureDir(t), "--json")
	require.NoError(t, err)

	var rep struct {
		RunID    string `json:"run_id"`
		Complete bool   `json:"complete"`
		Files    []struct {
			Key   string `json:"key"`
			Error string `json:"error"`
		} `json:"files"`
		Index struct {
			Synsets map[string]int `json:"synsets"`
		} `json:"index"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.NotEmpty(t, rep.RunID)
	assert.False(t, rep.Complete)
	assert.Len(t, rep.Files, 12)
	assert.Equal(t, 1, rep.Index.Synsets["noun"])
}

func TestLoadCmd_Table(t *testing.T) {
	isolateEnv(t)

	out, err := execute(t, "load", "--config", writeConfig(t), "--base-dir", fixtureDir(t))
	require.NoError(t, err)
	assert.Contains(t, out, "PHASE")
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "complete: false")
}

func TestLoadCmd_StrictFailsOnMissingFiles(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "load", "--config", writeConfig(t), "--base-dir", fixtureDir(t), "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finished with errors")
}

func TestLoadCmd_MissingBaseDir(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "load", "--config", writeConfig(t))
	require.Error(t, err)
}

func TestExportCmd_RequiresDatabase(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "export", "--config", writeConfig(t), "--base-dir", fixtureDir(t))
	require.Error(t, err)
}

func TestMigrateCmd_Args(t *testing.T) {
	isolateEnv(t)

	_, err := execute(t, "migrate", "sideways")
	require.Error(t, err)

	_, err = execute(t, "migrate", "status", "--config", writeConfig(t), "--base-dir", fixtureDir(t))
	require.Error(t, err, "status without a DSN must fail")
}
