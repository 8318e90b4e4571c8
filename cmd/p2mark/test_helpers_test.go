package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"p2mark/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	stateDir   string
	configPath string
	contents   string
	clipDir    string
}

// setupCLITestEnv isolates HOME and the state directory and writes a config
// with a 1 MB clip size limit. The card is populated by the caller.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("P2MARK_STATE_DIR", "")
	t.Setenv("P2MARK_LOG_LEVEL", "")

	stateDir := filepath.Join(base, "state")
	configPath := filepath.Join(base, "p2mark.toml")
	content := "[paths]\nstate_dir = \"" + stateDir + "\"\n\n[scan]\nclip_size_limit_mb = 1\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	contents, clipDir := testsupport.NewContentsDir(t)
	return &cliTestEnv{
		baseDir:    base,
		stateDir:   stateDir,
		configPath: configPath,
		contents:   contents,
		clipDir:    clipDir,
	}
}

// populateCard writes the standard card: A has two markers, B none, C one,
// D is malformed and E is too large.
func (e *cliTestEnv) populateCard(t *testing.T) {
	t.Helper()
	testsupport.WriteText(t, e.clipDir, "A.XML", testsupport.ClipXML(
		testsupport.Memo("0", "Start"),
		testsupport.Memo("125", "-"),
	))
	testsupport.WriteText(t, e.clipDir, "B.XML", testsupport.ClipXMLWithoutMemoList())
	testsupport.WriteText(t, e.clipDir, "C.XML", testsupport.ClipXML(testsupport.Memo("50", "Interview")))
	testsupport.WriteText(t, e.clipDir, "D.XML", "<P2Main><ClipContent></P2Main>")
	testsupport.WriteSizedFile(t, filepath.Join(e.clipDir, "E.XML"), 1<<20)
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
