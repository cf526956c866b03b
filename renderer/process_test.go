package renderer

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/snakeskin/figrender/grid"
)

// Write an executable shell script into dir.
func writeStub(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

// Stub tools mimicking mitsuba and mtsutil: the renderer touches its -o
// argument and the tone-mapper writes a png next to its input. Both append
// a line to a call log. The renderer exits with 3 for outputs matching
// failPattern.
func writeStubTools(t *testing.T, failPattern string) (builder CommandBuilder, callLog string) {
	t.Helper()
	dir := t.TempDir()
	callLog = filepath.Join(dir, "calls.log")

	failCase := ""
	if failPattern != "" {
		failCase = "case \"$3\" in *" + failPattern + "*) echo \"render $3 failed\" >> " + callLog + "; exit 3;; esac\n"
	}
	render := writeStub(t, dir, "render.sh", failCase+
		"touch \"$3\"\n"+
		"echo \"render $3\" >> "+callLog+"\n")
	tonemap := writeStub(t, dir, "tonemap.sh",
		"echo \"tonemap $2\" >> "+callLog+"\n"+
			"[ -f \"$2\" ] || exit 1\n"+
			"touch \"${2%.exr}.png\"\n")

	return CommandBuilder{
		RenderCmd:  []string{render},
		ToneMapCmd: []string{tonemap, "tonemap"},
	}, callLog
}

func listOutputs(t *testing.T, dir, ext string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, len(matches))
	for idx, m := range matches {
		names[idx] = filepath.Base(m)
	}
	sort.Strings(names)
	return names
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestProcessRunnerExitCodes(t *testing.T) {
	dir := t.TempDir()
	ok := writeStub(t, dir, "ok.sh", "echo hello\n")
	fail := writeStub(t, dir, "fail.sh", "exit 7\n")

	var stdout bytes.Buffer
	runner := &ProcessRunner{Stdout: &stdout, Stderr: io.Discard}

	code, err := runner.Execute(context.Background(), Command{Path: ok})
	if err != nil || code != 0 {
		t.Fatalf("expected success; got code %d err %v", code, err)
	}
	if strings.TrimSpace(stdout.String()) != "hello" {
		t.Fatalf("expected child output to be forwarded; got %q", stdout.String())
	}

	code, err = runner.Execute(context.Background(), Command{Path: fail})
	if err != nil || code != 7 {
		t.Fatalf("expected exit code 7 without error; got code %d err %v", code, err)
	}

	code, err = runner.Execute(context.Background(), Command{Path: filepath.Join(dir, "missing")})
	if err == nil || code != -1 {
		t.Fatalf("expected start error; got code %d err %v", code, err)
	}
}

func TestProcessRunnerCancelled(t *testing.T) {
	dir := t.TempDir()
	slow := writeStub(t, dir, "slow.sh", "exec sleep 30\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &ProcessRunner{Stdout: io.Discard, Stderr: io.Discard}
	code, err := runner.Execute(ctx, Command{Path: slow})
	if err != context.Canceled || code != -1 {
		t.Fatalf("expected context.Canceled; got code %d err %v", code, err)
	}
}

func TestAblationEndToEnd(t *testing.T) {
	builder, callLog := writeStubTools(t, "")
	outDir := filepath.Join(t.TempDir(), "fig6", "renders")

	r, err := New(DefaultOptions(outDir), builder, &ProcessRunner{Stdout: io.Discard, Stderr: io.Discard})
	if err != nil {
		t.Fatal(err)
	}

	summary, err := r.Render(context.Background(), grid.Ablation("scenes/fig6"))
	if err != nil {
		t.Fatal(err)
	}

	var expNames []string
	for _, shape := range grid.AblationShapes {
		for _, material := range grid.AblationMaterials {
			expNames = append(expNames, "fig6_"+material+"_"+shape+".exr")
		}
	}
	sort.Strings(expNames)

	names := listOutputs(t, outDir, ".exr")
	if strings.Join(names, ",") != strings.Join(expNames, ",") {
		t.Fatalf("expected outputs %v; got %v", expNames, names)
	}
	if pngs := listOutputs(t, outDir, ".png"); len(pngs) != 12 {
		t.Fatalf("expected 12 tone-mapped images; got %d", len(pngs))
	}

	// Steps strictly alternate render, tone-map for the same file
	lines := readLines(t, callLog)
	if len(lines) != 24 {
		t.Fatalf("expected 24 calls; got %d", len(lines))
	}
	for idx := 0; idx < len(lines); idx += 2 {
		renderOut := strings.TrimPrefix(lines[idx], "render ")
		if lines[idx+1] != "tonemap "+renderOut {
			t.Fatalf("[call %d] expected tone-map of %s; got %q", idx+1, renderOut, lines[idx+1])
		}
	}

	if summary.Count(Success) != 12 {
		t.Fatalf("expected 12 successful jobs; got %d", summary.Count(Success))
	}
}

func TestEndToEndFailureIgnored(t *testing.T) {
	builder, callLog := writeStubTools(t, "fig6_thin_film_bump_sphere")
	outDir := filepath.Join(t.TempDir(), "renders")

	r, err := New(DefaultOptions(outDir), builder, &ProcessRunner{Stdout: io.Discard, Stderr: io.Discard})
	if err != nil {
		t.Fatal(err)
	}

	summary, err := r.Render(context.Background(), grid.Ablation("scenes/fig6"))
	if err != nil {
		t.Fatalf("expected failure to be ignored; got %v", err)
	}

	if names := listOutputs(t, outDir, ".exr"); len(names) != 11 {
		t.Fatalf("expected 11 raw outputs; got %d", len(names))
	}
	if lines := readLines(t, callLog); len(lines) != 24 {
		t.Fatalf("expected all 24 steps to be attempted; got %d", len(lines))
	}

	failed := summary.Jobs[2]
	if failed.Status != RenderFailed || failed.RenderExit != 3 || failed.ToneMapExit != 1 {
		t.Fatalf("unexpected failed job %+v", failed)
	}
	if summary.Count(Success) != 11 {
		t.Fatalf("expected remaining jobs to succeed; got %d", summary.Count(Success))
	}
}

func TestEndToEndAbort(t *testing.T) {
	builder, callLog := writeStubTools(t, "eta2_2.0_thickness_300")
	outDir := filepath.Join(t.TempDir(), "renders")

	opts := DefaultOptions(outDir)
	opts.OnFailure = AbortOnFailure
	r, err := New(opts, builder, &ProcessRunner{Stdout: io.Discard, Stderr: io.Discard})
	if err != nil {
		t.Fatal(err)
	}

	_, err = r.Render(context.Background(), grid.AppearanceRange("fig5.xml"))
	if err == nil {
		t.Fatal("expected abort error")
	}
	if names := listOutputs(t, outDir, ".exr"); len(names) != 3 {
		t.Fatalf("expected 3 outputs before abort; got %v", names)
	}
	if lines := readLines(t, callLog); len(lines) != 7 {
		t.Fatalf("expected 7 calls; got %v", lines)
	}
}

func TestDryRunner(t *testing.T) {
	exec := DryRunner{}
	outDir := filepath.Join(t.TempDir(), "renders")

	r, err := New(DefaultOptions(outDir), NewCommandBuilder(), exec)
	if err != nil {
		t.Fatal(err)
	}
	summary, err := r.Render(context.Background(), grid.AppearanceRange("fig5.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if summary.Count(Success) != 6 {
		t.Fatalf("expected 6 jobs; got %d", summary.Count(Success))
	}
	if _, err := os.Stat(outDir); err != nil {
		t.Fatalf("expected output folder to be created; got %v", err)
	}
	if names := listOutputs(t, outDir, ""); len(names) != 0 {
		t.Fatalf("expected no files in dry run; got %v", names)
	}
}
