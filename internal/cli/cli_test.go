package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/me/takt/internal/config"
	"github.com/me/takt/internal/logging"
	"github.com/me/takt/internal/server"
	"github.com/me/takt/internal/store"
)

const classicText = "2 2\n0 3 1 2\n0 2 1 4\n"

// startTestServer starts a server with an in-memory SQLite store and returns the URL.
func startTestServer(t *testing.T) string {
	t.Helper()
	st, err := store.NewSQLiteStore(":memory:", logging.Discard())
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	srv := server.New(config.DefaultServerConfig(), st, logging.Discard())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts.URL
}

func writeInstance(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shop.txt")
	if err := os.WriteFile(path, []byte(classicText), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCLI executes the root command and returns captured stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()

	var errBuf bytes.Buffer
	root.SetOut(&errBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := root.Execute()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

func TestSolveCommand(t *testing.T) {
	path := writeInstance(t)

	output, err := runCLI(t, "solve", path, "--heuristic", "lpt")
	if err != nil {
		t.Fatalf("solve error: %v\noutput: %s", err, output)
	}
	if want := "9\n0 3 \n3 5 \n"; output != want {
		t.Errorf("solve output = %q, want %q", output, want)
	}
}

func TestSolveCommandChart(t *testing.T) {
	path := writeInstance(t)

	output, err := runCLI(t, "solve", path, "--chart", "--color", "never")
	if err != nil {
		t.Fatalf("solve error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "0: |0|0|0|1|1|") {
		t.Errorf("expected machine row in output, got: %s", output)
	}
	if !strings.Contains(output, "9\n0 3 \n3 5 \n") {
		t.Errorf("expected summary after chart, got: %s", output)
	}
}

func TestSolveCommandScripted(t *testing.T) {
	path := writeInstance(t)

	output, err := runCLI(t, "solve", path, "--heuristic", "js:a.duration > b.duration")
	if err != nil {
		t.Fatalf("solve error: %v\noutput: %s", err, output)
	}
	if !strings.HasPrefix(output, "9\n") {
		t.Errorf("expected makespan 9, got: %s", output)
	}
}

func TestSolveCommandJSON(t *testing.T) {
	path := writeInstance(t)

	output, err := runCLI(t, "solve", path, "-o", "json")
	if err != nil {
		t.Fatalf("solve error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, `"makespan": 9`) {
		t.Errorf("expected JSON makespan, got: %s", output)
	}
}

func TestSubmitAndListCommands(t *testing.T) {
	url := startTestServer(t)
	path := writeInstance(t)

	output, err := runCLI(t, "--server", url, "submit", path, "--name", "shop")
	if err != nil {
		t.Fatalf("submit error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "run_") || !strings.Contains(output, "makespan=9") {
		t.Errorf("unexpected submit output: %s", output)
	}

	output, err = runCLI(t, "--server", url, "list")
	if err != nil {
		t.Fatalf("list error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "shop") {
		t.Errorf("list does not show the submitted run: %s", output)
	}
}

func TestShowCommand(t *testing.T) {
	url := startTestServer(t)
	path := writeInstance(t)

	output, err := runCLI(t, "--server", url, "submit", path)
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	id := strings.Fields(output)[0]

	output, err = runCLI(t, "--server", url, "show", id, "--chart")
	if err != nil {
		t.Fatalf("show error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "0: |0|0|0|1|1|") {
		t.Errorf("show --chart missing chart: %s", output)
	}
	if !strings.Contains(output, "9\n0 3 \n3 5 \n") {
		t.Errorf("show missing summary: %s", output)
	}
}

func TestDeleteCommand(t *testing.T) {
	url := startTestServer(t)
	path := writeInstance(t)

	output, err := runCLI(t, "--server", url, "submit", path)
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	id := strings.Fields(output)[0]

	if _, err := runCLI(t, "--server", url, "delete", id); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, err := runCLI(t, "--server", url, "show", id); err == nil {
		t.Error("show of a deleted run should fail")
	}
}

func TestGenCommand(t *testing.T) {
	output, err := runCLI(t, "gen", "--jobs", "3", "--machines", "2", "--seed", "7")
	if err != nil {
		t.Fatalf("gen error: %v\noutput: %s", err, output)
	}
	if !strings.HasPrefix(output, "3 2\n") {
		t.Errorf("gen header = %q", output)
	}

	again, err := runCLI(t, "gen", "--jobs", "3", "--machines", "2", "--seed", "7")
	if err != nil {
		t.Fatal(err)
	}
	if again != output {
		t.Error("gen with a fixed seed is not reproducible")
	}
}

func TestDefaultServerEnv(t *testing.T) {
	t.Setenv("TAKT_SERVER", "http://example.test:9999")
	if got := defaultServer(); got != "http://example.test:9999" {
		t.Errorf("defaultServer() = %q", got)
	}
}
