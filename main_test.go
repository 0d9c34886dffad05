package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matt-g-everett/ledview/matrix"
	"github.com/matt-g-everett/ledview/registry"
)

func testApp(t *testing.T) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	icon := matrix.NewAnimation("icon", make([]matrix.Frame, 1))
	spin := matrix.NewAnimation("spin", make([]matrix.Frame, 3))
	for i := range spin.Frames {
		spin.Frames[i].FrameNumber = uint8(i)
		spin.Frames[i].Brightness[i] = 255
	}

	r, err := registry.New(icon, spin)
	if err != nil {
		t.Fatalf("registry.New failed: %v", err)
	}
	var stdout, stderr bytes.Buffer
	return newApp(r, &stdout, &stderr), &stdout, &stderr
}

func TestRunSingleFrame(t *testing.T) {
	a, stdout, stderr := testApp(t)
	if code := a.run([]string{"icon"}); code != 0 {
		t.Fatalf("Exit code %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	if !strings.HasPrefix(out, "Testing icon Animation Frames Display\n========================================\n") {
		t.Errorf("Unexpected banner:\n%s", out)
	}
	if strings.Count(out, "=== icon Frame 0 (11x18 LED Matrix) ===") != 1 || strings.Contains(out, "Frame 1") {
		t.Errorf("Expected one frame block:\n%s", out)
	}
	if stderr.Len() != 0 {
		t.Errorf("Unexpected diagnostics: %s", stderr.String())
	}
}

func TestRunOrdering(t *testing.T) {
	a, stdout, _ := testApp(t)
	if code := a.run([]string{"spin"}); code != 0 {
		t.Fatalf("Exit code %d", code)
	}

	out := stdout.String()
	p0 := strings.Index(out, "Frame 0")
	p1 := strings.Index(out, "Frame 1")
	p2 := strings.Index(out, "Frame 2")
	if p0 < 0 || !(p0 < p1 && p1 < p2) {
		t.Errorf("Frames out of order: %d %d %d", p0, p1, p2)
	}
}

func TestRunLabelOverride(t *testing.T) {
	a, stdout, _ := testApp(t)
	if code := a.run([]string{"spin", "Spinner"}); code != 0 {
		t.Fatalf("Exit code %d", code)
	}

	out := stdout.String()
	if !strings.HasPrefix(out, "Testing Spinner Animation Frames Display\n") {
		t.Errorf("Label not used in banner:\n%s", out)
	}
	if strings.Count(out, "=== End of Spinner Frame") != 3 {
		t.Error("Label not used for every frame, or data not taken from spin")
	}
	if strings.Contains(out, "spin Frame") {
		t.Error("Registry name leaked into labels")
	}
}

func TestRunUnknownName(t *testing.T) {
	a, stdout, stderr := testApp(t)
	if code := a.run([]string{"xyz"}); code != 1 {
		t.Errorf("Exit code %d, want 1", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("Wrote to stdout on failure: %q", stdout.String())
	}

	diag := stderr.String()
	if !strings.Contains(diag, "Error: Unknown struct name 'xyz'") {
		t.Errorf("Missing error line: %s", diag)
	}
	for _, name := range []string{"icon", "spin"} {
		if !strings.Contains(diag, name) {
			t.Errorf("Usage does not list %s: %s", name, diag)
		}
	}
}

func TestRunBadArguments(t *testing.T) {
	for _, args := range [][]string{nil, {}, {"icon", "label", "extra"}} {
		a, stdout, stderr := testApp(t)
		if code := a.run(args); code != 1 {
			t.Errorf("%v: exit code %d, want 1", args, code)
		}
		if stdout.Len() != 0 {
			t.Errorf("%v: wrote to stdout", args)
		}
		if !strings.Contains(stderr.String(), "Available animations:") {
			t.Errorf("%v: usage not printed: %s", args, stderr.String())
		}
	}
}

func TestSelectAndRenderKinds(t *testing.T) {
	a, _, _ := testApp(t)
	tests := []struct {
		args []string
		kind matrix.Kind
	}{
		{[]string{}, matrix.BadArguments},
		{[]string{"a", "b", "c"}, matrix.BadArguments},
		{[]string{"nope"}, matrix.UnknownAnimation},
		{[]string{"icon"}, ""},
		{[]string{"icon", "x"}, ""},
	}

	for _, tt := range tests {
		err := a.selectAndRender(tt.args)
		if matrix.KindOf(err) != tt.kind {
			t.Errorf("%v: error %v, want kind %q", tt.args, err, tt.kind)
		}
		if tt.kind == "" && err != nil {
			t.Errorf("%v: unexpected error %v", tt.args, err)
		}
	}
}

func TestRunEmbeddedCatalog(t *testing.T) {
	r, err := registry.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for _, name := range r.Names() {
		var stdout, stderr bytes.Buffer
		if code := newApp(r, &stdout, &stderr).run([]string{name}); code != 0 {
			t.Errorf("%s: exit code %d: %s", name, code, stderr.String())
		}
		animation, _ := r.Lookup(name)
		if n := strings.Count(stdout.String(), "=== End of "+name+" Frame "); n != animation.Len() {
			t.Errorf("%s: %d frame blocks, want %d", name, n, animation.Len())
		}
	}
}
