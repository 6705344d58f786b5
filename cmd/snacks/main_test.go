package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFindCmd(t *testing.T) {
	out, _, err := runCmd(t, "This is a {text} with some {special} {words}!", "find")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if want := "{text}\n{special}\n{words}\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestFindCmdPositions(t *testing.T) {
	out, _, err := runCmd(t, "a {b}\n{c}", "find", "--positions")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if want := "1:3\t{b}\n2:1\t{c}\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestFindCmdFirstNotFound(t *testing.T) {
	_, _, err := runCmd(t, "nothing here", "find", "--first")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("err = %q, want it to mention not found", err)
	}
}

func TestFindCmdGrammar(t *testing.T) {
	dir := t.TempDir()
	grammar := filepath.Join(dir, "version.ebnf")
	if err := os.WriteFile(grammar, []byte(`Version = "v" digit { digit | "." } .
digit = "0" … "9" .
`), 0o644); err != nil {
		t.Fatal(err)
	}
	input := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(input, []byte("upgrade from v1.2 to v1.10 via vnext"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCmd(t, "", "find", "--marker", "v", "--grammar", grammar, "--production", "Version", input)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if want := "v1.2\nv1.10\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestFindCmdProductionWithoutGrammar(t *testing.T) {
	if _, _, err := runCmd(t, "", "find", "--production", "Version"); err == nil {
		t.Error("expected error")
	}
}

func TestTagsCmd(t *testing.T) {
	out, _, err := runCmd(t, "An example #sentence with #cool tags!", "tags")
	if err != nil {
		t.Fatalf("tags: %v", err)
	}
	if want := "sentence\ncool\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestLinksCmd(t *testing.T) {
	out, _, err := runCmd(t, "docs at https://go.dev/doc and\nhttp://example.org.", "links", "-p")
	if err != nil {
		t.Fatalf("links: %v", err)
	}
	if want := "1:9\thttps://go.dev/doc\n2:1\thttp://example.org.\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestListCmd(t *testing.T) {
	out, _, err := runCmd(t, "all, comma, separated-elements\nfoo;bar baz\n", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if want := "all, comma, separated\t-elements\nfoo;bar baz\t\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestListCmdRequire(t *testing.T) {
	out, errOut, err := runCmd(t, "a,b\n-x\n", "list", "--require", "-s", ",")
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "a,b\t\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if want := "<stdin>:2: parse separated list empty at 1:1"; !strings.HasPrefix(errOut, want) {
		t.Errorf("stderr = %q, want prefix %q", errOut, want)
	}
}

func TestEbnfCheckCmd(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ebnf")
	if err := os.WriteFile(good, []byte(`Word = letter { letter } .
letter = "a" … "z" .
`), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.ebnf")
	if err := os.WriteFile(bad, []byte(`Word = "a"`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCmd(t, "", "ebnf", "check", "--start", "Word", good)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.HasSuffix(out, ": 2 productions\n") {
		t.Errorf("output = %q", out)
	}

	if _, _, err := runCmd(t, "", "ebnf", "check", bad); err == nil {
		t.Error("expected error for bad grammar")
	}
}

func TestMarkLines(t *testing.T) {
	src := "one {a} two\nno match\n{b} and {c\nd}"
	locs := []location{{4, 7}, {21, 24}, {29, 34}}

	var buf bytes.Buffer
	markLines(&buf, src, locs, func(w io.Writer, s string) {
		io.WriteString(w, "["+s+"]")
	})

	want := "   1: one [{a}] two\n   3: [{b}] and [{c]\n   4: [d}]\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
