package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dhamidi/kobol/cobol"
	"github.com/dhamidi/kobol/cobol/tokenizer"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.cbl"), "")
	write(t, filepath.Join(dir, "sub", "B.CPY"), "")
	write(t, filepath.Join(dir, "sub", "notes.txt"), "")
	extra := filepath.Join(dir, "direct.txt")
	write(t, extra, "")

	files, err := Collect([]string{dir, extra}, []string{".CBL", ".CPY"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.cbl"),
		extra,
		filepath.Join(dir, "sub", "B.CPY"),
	}
	if strings.Join(files, "\n") != strings.Join(want, "\n") {
		t.Errorf("got %q\nwant %q", files, want)
	}

	if _, err := Collect([]string{filepath.Join(dir, "missing")}, nil); err == nil {
		t.Error("expected an error for a missing path")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.cob")
	bad := filepath.Join(dir, "bad.cob")
	missing := filepath.Join(dir, "missing.cob")
	write(t, good, "MOVE A TO B.\n")
	write(t, bad, "MOVE A ~ B.\n")

	run := New(2, cobol.WithFormat(tokenizer.Free)).Run(context.Background(), []string{good, bad, missing})
	if _, err := uuid.Parse(run.ID); err != nil {
		t.Errorf("run ID %q is not a uuid: %v", run.ID, err)
	}
	if len(run.Results) != 3 {
		t.Fatalf("got %d results", len(run.Results))
	}

	wantStatus := []Status{StatusCompleted, StatusFailed, StatusFailed}
	for i, res := range run.Results {
		if res.Status != wantStatus[i] {
			t.Errorf("%s: status %s, want %s (err %v)", res.Path, res.Status, wantStatus[i], res.Err)
		}
		if res.EndedAt.Before(res.StartedAt) {
			t.Errorf("%s: ended before it started", res.Path)
		}
	}
	if run.Results[0].Tree == nil {
		t.Error("no tree for the good file")
	}
	if len(run.Failed()) != 2 {
		t.Errorf("Failed() has %d results, want 2", len(run.Failed()))
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	run := New(1).Run(ctx, []string{"x.cbl"})
	if run.Results[0].Status != StatusCanceled {
		t.Errorf("status = %s, want canceled", run.Results[0].Status)
	}
}
