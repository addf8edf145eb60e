package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlshim/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{"version", "render", "capabilities", "dialects", "verify", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	for _, flag := range []string{"config", "dialect", "env", "verbose", "output"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRootCmd_Version(t *testing.T) {
	out, err := runRoot(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlshim v"+Version)
}

func TestRootCmd_Completion(t *testing.T) {
	out, err := runRoot(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlshim")

	_, err = runRoot(t, "", "completion", "tcsh")
	require.Error(t, err)
}

func TestRootCmd_RenderWithConfigFile(t *testing.T) {
	dir := testutil.SetupTestProject(t, "dialect: ansi\noutput: text\n", map[string]string{
		"weekly.yaml": testutil.WeeklyDoc,
	})
	cfgFile := filepath.Join(dir, "sqlshim.yaml")
	doc := filepath.Join(dir, "queries", "weekly.yaml")

	out, err := runRoot(t, "", "render", "--config", cfgFile, doc)
	require.NoError(t, err)
	assert.NotContains(t, out, "STR_TO_DATE")
	assert.Contains(t, out, "-- weekly")

	// The flag beats the file.
	out, err = runRoot(t, "", "render", "--config", cfgFile, "--dialect", "oscar", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "STR_TO_DATE(DATE_FORMAT(created_at, '%x%v-1'), '%x%v-%w')")
}

func TestRootCmd_DialectFlagOverridesDocument(t *testing.T) {
	doc := "dialect: ansi\n" + testutil.WeeklyDoc

	out, err := runRoot(t, doc, "render", "-o", "text", "-d", "oscar")
	require.NoError(t, err)
	assert.Contains(t, out, "STR_TO_DATE(")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	_, err := runRoot(t, testutil.WeeklyDoc, "render", "--dialect", "nosuch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "nosuch")
}

func TestRootCmd_DialectsList(t *testing.T) {
	out, err := runRoot(t, "", "dialects", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "ansi\n")
	assert.Contains(t, out, "oscar")
	assert.Contains(t, out, "(default)")
}
