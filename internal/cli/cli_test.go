package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evanfield/replaytag/internal/project"
)

// writeTestProject saves a small project to a temp file and returns
// its path.
func writeTestProject(t *testing.T) (string, *project.Project) {
	t.Helper()
	p := project.New()
	p.Name = "Test Match"
	p.Tag(p.Codes()[0].ID, 42)
	p.Mark("Quarter Start", 10)

	path := filepath.Join(t.TempDir(), "match.json")
	if err := project.Save(p, path); err != nil {
		t.Fatalf("save project: %v", err)
	}
	return path, p
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errBuf bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		exportFormat = "csv"
		exportOut = ""
	})
	err := rootCmd.Execute()
	return out.String(), errBuf.String(), err
}

// ============================================================
// export
// ============================================================

func TestExportCSV(t *testing.T) {
	path, p := writeTestProject(t)
	out := filepath.Join(t.TempDir(), "rows.csv")

	stdout, _, err := runCommand(t, "export", path, "--out", out)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(stdout, "2 event(s)") {
		t.Fatalf("expected event count in output, got %q", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), p.Codes()[0].Name) {
		t.Fatal("CSV should contain the code name")
	}
	if !strings.Contains(string(data), "Quarter Start") {
		t.Fatal("CSV should contain the marker title")
	}
}

func TestExportJSON(t *testing.T) {
	path, _ := writeTestProject(t)
	out := filepath.Join(t.TempDir(), "rows.json")

	_, _, err := runCommand(t, "export", path, "--format", "json", "--out", out)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "Test Match") {
		t.Fatal("JSON export should carry the project name")
	}
}

func TestExportDefaultPathNextToInput(t *testing.T) {
	path, _ := writeTestProject(t)

	_, _, err := runCommand(t, "export", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	want := strings.TrimSuffix(path, ".json") + ".csv"
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected export at %s: %v", want, err)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path, _ := writeTestProject(t)

	_, _, err := runCommand(t, "export", path, "--format", "xml")
	if err == nil {
		t.Fatal("unknown format should fail")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Fatalf("error should name the bad format, got %v", err)
	}
}

func TestExportMalformedProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCommand(t, "export", path)
	if err == nil {
		t.Fatal("malformed project should fail")
	}
	if !strings.Contains(err.Error(), "not a usable project file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ============================================================
// inspect
// ============================================================

func TestInspect(t *testing.T) {
	path, p := writeTestProject(t)

	stdout, _, err := runCommand(t, "inspect", path)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(stdout, "Test Match") {
		t.Fatal("inspect should print the project name")
	}
	if !strings.Contains(stdout, "Events: 2") {
		t.Fatalf("inspect should count events, got %q", stdout)
	}
	if !strings.Contains(stdout, p.Codes()[0].Name) {
		t.Fatal("inspect should list codes")
	}
}

func TestInspectReportsOrphans(t *testing.T) {
	p := project.New()
	c := p.Codes()[0]
	p.Tag(c.ID, 42)
	p.RemoveCode(c.ID)

	path := filepath.Join(t.TempDir(), "orphans.json")
	if err := project.Save(p, path); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, err := runCommand(t, "inspect", path)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(stderr, "1 event(s)") {
		t.Fatalf("expected orphan warning on stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, project.UnknownCodeName) {
		t.Fatal("rebound event should show under the placeholder code")
	}
}

func TestInspectMissingFile(t *testing.T) {
	_, _, err := runCommand(t, "inspect", filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("missing file should fail")
	}
}

// ============================================================
// openProject
// ============================================================

func TestOpenProjectEmptyPathStartsFresh(t *testing.T) {
	var warn bytes.Buffer
	p, path, err := openProject("", nil, &warn)
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Fatal("fresh project should have no path")
	}
	if p.Name != project.DefaultProjectName {
		t.Fatalf("expected default name, got %q", p.Name)
	}
	if len(p.Codes()) == 0 {
		t.Fatal("fresh project should carry seed codes")
	}
}

func TestOpenProjectKeepsAllEvents(t *testing.T) {
	path, saved := writeTestProject(t)

	var warn bytes.Buffer
	p, gotPath, err := openProject(path, nil, &warn)
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != path {
		t.Fatalf("expected path %q, got %q", path, gotPath)
	}
	if p.Events.Len() != saved.Events.Len() {
		t.Fatalf("expected %d events, got %d", saved.Events.Len(), p.Events.Len())
	}
}
