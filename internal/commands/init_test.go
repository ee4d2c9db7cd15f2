package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/statement"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "cashflow-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "cashflow")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/cashflow")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runCashflow(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	_, err := runCashflow(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	for _, d := range []string{"data", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runCashflow(t, "init", dir, "--name", "My Company")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "cashflow.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: My Company")
	assert.Contains(t, contents, "short_days: 30")
	assert.Contains(t, contents, "nsf_days: 90")
	assert.Contains(t, contents, "max_nsf_events: 5")
}

func TestInit_StatementHeaders(t *testing.T) {
	dir := t.TempDir()
	_, err := runCashflow(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	txns, err := os.ReadFile(filepath.Join(dir, "data", "transactions.csv"))
	require.NoError(t, err)
	assert.Equal(t, statement.TransactionsHeader+"\n", string(txns))

	balances, err := os.ReadFile(filepath.Join(dir, "data", "balances.csv"))
	require.NoError(t, err)
	assert.Equal(t, statement.BalancesHeader+"\n", string(balances))
}

func TestInit_Gitignore(t *testing.T) {
	dir := t.TempDir()
	_, err := runCashflow(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "logs/")
}

func TestInit_RequiresName(t *testing.T) {
	out, err := runCashflow(t, "init", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, out, "name")
}
