package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"p2mark/internal/p2tree"
)

func TestWriteModeReport(t *testing.T) {
	env := setupCLITestEnv(t)
	env.populateCard(t)

	out, errOut, err := runCLI(t, env.configPath, env.contents)
	if err != nil {
		t.Fatalf("run: %v (stderr %q)", err, errOut)
	}

	requireContains(t, out, "p2mark running in write mode.\n\n")
	requireContains(t, out, "E.XML is skipped because it is too large (more than 1 MB).\n")
	requireContains(t, out, "A.XML -> A.XMP: 2 markers written.\n")
	requireContains(t, out, "C.XML -> C.XMP: 1 marker written.\n")
	requireNotContains(t, out, "B.XML")
	requireContains(t, errOut, "D.XML -> <-------->: cannot load clip file")

	requireContains(t, out, "Clips in the shoot: 4\n")
	requireContains(t, out, "Clips with markers: 2\n")
	requireContains(t, out, "Total number of markers: 3\n")
	requireContains(t, out, "XML read errors: 1\n")
	requireNotContains(t, out, "XMP write errors")

	if strings.Index(out, "A.XML ->") > strings.Index(out, "C.XML ->") {
		t.Fatalf("clips not reported in name order:\n%s", out)
	}
	for _, name := range []string{"A.XMP", "C.XMP"} {
		if _, err := os.Stat(filepath.Join(env.clipDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestSecondWriteReportsConflicts(t *testing.T) {
	env := setupCLITestEnv(t)
	env.populateCard(t)

	if _, _, err := runCLI(t, env.configPath, env.contents); err != nil {
		t.Fatalf("first run: %v", err)
	}
	out, errOut, err := runCLI(t, env.configPath, env.contents)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	requireContains(t, errOut, "A.XML -> <-------->: XMP file already has markers.\n")
	requireContains(t, out, "XMP write errors: 2\n")
	requireNotContains(t, out, "markers written")
}

func TestListModeWithMarkers(t *testing.T) {
	env := setupCLITestEnv(t)
	env.populateCard(t)

	out, errOut, err := runCLI(t, env.configPath, "--list", "--markers", env.contents)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "p2mark running in list mode.")
	requireContains(t, out, "A.XML: has 2 markers.\n")
	requireContains(t, out, "C.XML: has 1 marker.\n")
	requireContains(t, out, "Start")
	requireContains(t, out, "Interview")
	requireContains(t, out, "125")
	requireContains(t, errOut, "D.XML: cannot load clip file")

	matches, _ := filepath.Glob(filepath.Join(env.clipDir, "*.XMP"))
	if len(matches) != 0 {
		t.Fatalf("list mode wrote sidecars: %v", matches)
	}
}

func TestMarkersFlagRequiresList(t *testing.T) {
	env := setupCLITestEnv(t)
	env.populateCard(t)

	_, _, err := runCLI(t, env.configPath, "--markers", env.contents)
	if err == nil || !strings.Contains(err.Error(), "--markers requires --list") {
		t.Fatalf("expected flag error, got %v", err)
	}
}

func TestNoMarkersSummary(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(filepath.Join(env.clipDir, "A.XML"), []byte("<P2Main/>"), 0o644); err != nil {
		t.Fatalf("write clip: %v", err)
	}

	out, _, err := runCLI(t, env.configPath, "-l", env.contents)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, out, "Clips in the shoot: 1\nNo markers were found.\n")
}

func TestNoClipsFound(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(filepath.Join(env.clipDir, "NOTES.TXT"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, errOut, err := runCLI(t, env.configPath, env.contents)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	requireContains(t, errOut, "No clips found.")
	requireNotContains(t, out, "Clips in the shoot")
}

func TestInvalidContentsPath(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env.configPath, filepath.Join(env.baseDir, "missing", "CONTENTS"))
	if p2tree.ProblemOf(err) != p2tree.ContentsMissing {
		t.Fatalf("expected missing CONTENTS error, got %v", err)
	}

	_, _, err = runCLI(t, env.configPath, env.clipDir)
	if p2tree.ProblemOf(err) != p2tree.NotContentsDir {
		t.Fatalf("expected wrong directory name error, got %v", err)
	}
}

func TestMissingArgument(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "missing CONTENTS_PATH") {
		t.Fatalf("expected missing argument error, got %v", err)
	}
}

func TestVersionFlag(t *testing.T) {
	out, _, err := runCLI(t, "", "--version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "p2mark version: "+version)
}

func TestHistoryAfterRun(t *testing.T) {
	env := setupCLITestEnv(t)
	env.populateCard(t)

	out, _, err := runCLI(t, env.configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No runs recorded yet.")

	if _, _, err := runCLI(t, env.configPath, env.contents); err != nil {
		t.Fatalf("run: %v", err)
	}
	out, _, err = runCLI(t, env.configPath, "history", "--limit", "10")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "A.XML")
	requireContains(t, out, "A.XMP")
	requireContains(t, out, "written")
	requireContains(t, out, "skipped")
	requireContains(t, out, "cannot load clip file")
	if _, err := os.Stat(filepath.Join(env.stateDir, "journal.db")); err != nil {
		t.Fatalf("journal not created in state dir: %v", err)
	}
}

func TestHistoryWithJournalDisabled(t *testing.T) {
	env := setupCLITestEnv(t)
	content := "[paths]\nstate_dir = \"" + env.stateDir + "\"\n\n[journal]\nenabled = false\n"
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, err := runCLI(t, env.configPath, "history")
	if err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Fatalf("expected disabled journal error, got %v", err)
	}
}
