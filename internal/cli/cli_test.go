package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestParamsPrintsSnapshot(t *testing.T) {
	out, _, err := execute(t, "params", "--throttle=5")
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	if !strings.Contains(out, "[Ripples]") {
		t.Fatalf("missing group header:\n%s", out)
	}
	found := false
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) == 2 && f[0] == "ripple.throttle" && f[1] == "5" {
			found = true
		}
	}
	if !found {
		t.Fatalf("flag override not reflected:\n%s", out)
	}
}

func TestParamsYAMLUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ocean.yaml")
	if err := os.WriteFile(path, []byte("ring:\n  spawn_rate: 0.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := execute(t, "params", "--yaml", "--config", path)
	if err != nil {
		t.Fatalf("params --yaml: %v", err)
	}
	if !strings.Contains(out, "spawn_rate: 0.25") {
		t.Fatalf("config file value missing from YAML:\n%s", out)
	}
}

func TestSimulateWritesOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	_, logs, err := execute(t, "simulate", "--frames=120", "--seed=7", "--output-dir", dir, "--log-format=json")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for _, name := range []string{"stats.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("%s not written: %v", name, err)
		}
	}
	if !strings.Contains(logs, `"msg":"simulation finished"`) {
		t.Fatalf("expected JSON summary log, got:\n%s", logs)
	}
}

func TestSnapshotWritesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.svg")
	if _, _, err := execute(t, "snapshot", "--frames=30", "--seed=3", "--width=320", "--height=240", "-o", path); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading snapshot: %v", err)
	}
	if !strings.Contains(string(data), "<svg") || !strings.Contains(string(data), `width="320"`) {
		t.Fatalf("unexpected snapshot:\n%.300s", data)
	}
}

func TestInvalidFlagsRejected(t *testing.T) {
	if _, _, err := execute(t, "params", "--log-format=xml"); err == nil {
		t.Fatal("unknown log format accepted")
	}
	if _, _, err := execute(t, "params", "--log-level=loud"); err == nil {
		t.Fatal("unknown log level accepted")
	}
	if _, _, err := execute(t, "simulate", "--path=zigzag", "--frames=1"); err == nil {
		t.Fatal("unknown pointer path accepted")
	}
	if _, _, err := execute(t, "params", "--ring-rate=3"); err == nil {
		t.Fatal("out of range ring rate accepted")
	}
}

func TestRunNeedsWindowBuild(t *testing.T) {
	_, _, err := execute(t, "run")
	if err == nil || !strings.Contains(err.Error(), "ebiten") {
		t.Fatalf("expected build tag error, got %v", err)
	}
}
