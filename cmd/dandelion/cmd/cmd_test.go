package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
	"github.com/hellerve/dandelion/pkg/core/version"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the command tree with a config file that turns colors off
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	cfg := writeTestFile(t, "dandelion.toml", "[output]\ncolor = false\n")
	root, _ := newRootCmd()

	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", cfg}, args...))

	err := root.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestApply(t *testing.T) {
	data := writeTestFile(t, "data.json", `{"b": 0, "a": 1, "c": "x"}`)
	extra := writeTestFile(t, "extra.yaml", "c: y\nz: 26\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "no ops keeps order",
			args: []string{"apply", data, "--format", "yaml"},
			want: "b: 0\na: 1\nc: x\n",
		},
		{
			name: "filter then setdefault",
			args: []string{"apply", data, "--op", "filter", "--op", "setdefault=d:4", "-f", "yaml"},
			want: "a: 1\nc: x\nd: 4\n",
		},
		{
			name: "merge keeps positions",
			args: []string{"apply", data, "--op", "merge=" + extra, "-f", "yaml"},
			want: "b: 0\na: 1\nc: \"y\"\nz: 26\n",
		},
		{
			name: "reset replaces contents",
			args: []string{"apply", data, "--op", "reset=" + extra, "--op", "delete=c", "-f", "json"},
			want: "{\n  \"z\": 26\n}\n",
		},
		{
			name: "clear then set",
			args: []string{"apply", data, "--op", "clear", "--op", "set=k:v", "-f", "toml"},
			want: "k = \"v\"\n",
		},
		{
			name: "keep",
			args: []string{"apply", data, "--op", "keep=c,b", "-f", "yaml"},
			want: "b: 0\nc: x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "", tt.args...)
			if res.err != nil {
				t.Fatalf("apply error = %v\nstderr: %s", res.err, res.stderr)
			}
			if diff := cmp.Diff(tt.want, res.stdout); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyStdinAndInvert(t *testing.T) {
	res := run(t, `{"x": "one", "y": "two"}`, "apply", "-", "--op", "invert")
	if res.err != nil {
		t.Fatalf("apply error = %v", res.err)
	}
	want := "{\n  \"one\": \"x\",\n  \"two\": \"y\"\n}\n"
	if diff := cmp.Diff(want, res.stdout); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.yaml")
	res := run(t, "a: 1\n", "apply", "-", "--input-format", "yaml", "-o", out)
	if res.err != nil {
		t.Fatalf("apply error = %v", res.err)
	}
	if res.stdout != "" {
		t.Errorf("stdout = %q, want nothing", res.stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "a: 1\n" {
		t.Errorf("output file = %q", data)
	}
}

func TestApplyErrors(t *testing.T) {
	data := writeTestFile(t, "data.json", `{"a": [1, 2]}`)

	tests := []struct {
		name string
		args []string
		code dlerror.Code
	}{
		{"missing file", []string{"apply", filepath.Join(t.TempDir(), "nope.json")}, dlerror.CodeNotFound},
		{"unknown op", []string{"apply", data, "--op", "explode"}, dlerror.CodeInvalidOperation},
		{"missing merge file", []string{"apply", data, "--op", "merge=/does/not/exist.json"}, dlerror.CodeNotFound},
		{"unhashable invert", []string{"apply", data, "--op", "invert"}, dlerror.CodeUnhashableValue},
		{"bad format", []string{"apply", data, "--format", "xml"}, dlerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "", tt.args...)
			if !dlerror.HasCode(res.err, tt.code) {
				t.Errorf("error = %v, want code %s", res.err, tt.code)
			}
		})
	}
}

func TestApplyBadInput(t *testing.T) {
	res := run(t, "[1, 2]", "apply", "-")
	if !dlerror.HasCode(res.err, dlerror.CodeInvalidFormat) {
		t.Errorf("error = %v, want code %s", res.err, dlerror.CodeInvalidFormat)
	}
}

func TestReduce(t *testing.T) {
	data := writeTestFile(t, "data.yaml", "a: 3\nb: 10\nc: 1.5\nd: 10\n")

	tests := []struct {
		mode string
		want string
	}{
		{"sum", "24.5\n"},
		{"max", "b: 10\n"},
		{"min", "c: 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			res := run(t, "", "reduce", data, "--mode", tt.mode)
			if res.err != nil {
				t.Fatalf("reduce error = %v", res.err)
			}
			if res.stdout != tt.want {
				t.Errorf("reduce --mode %s = %q, want %q", tt.mode, res.stdout, tt.want)
			}
		})
	}
}

func TestReduceErrors(t *testing.T) {
	empty := writeTestFile(t, "empty.json", `{}`)
	mixed := writeTestFile(t, "mixed.json", `{"a": 1, "b": "two"}`)

	if res := run(t, "", "reduce", empty, "--mode", "sum"); res.err != nil || res.stdout != "0\n" {
		t.Errorf("sum of empty = %q, %v", res.stdout, res.err)
	}
	if res := run(t, "", "reduce", empty, "--mode", "max"); !dlerror.HasCode(res.err, dlerror.CodeEmptyReduce) {
		t.Errorf("max of empty error = %v, want %s", res.err, dlerror.CodeEmptyReduce)
	}
	if res := run(t, "", "reduce", mixed); !dlerror.HasCode(res.err, dlerror.CodeTypeMismatch) {
		t.Errorf("reduce of strings error = %v, want %s", res.err, dlerror.CodeTypeMismatch)
	}
	if res := run(t, "", "reduce", empty, "--mode", "avg"); !dlerror.HasCode(res.err, dlerror.CodeInvalidInput) {
		t.Errorf("unknown mode error = %v, want %s", res.err, dlerror.CodeInvalidInput)
	}
}

func TestShow(t *testing.T) {
	data := writeTestFile(t, "data.json", `{"zeta": 1, "alpha": {"x": true}, "mid": null}`)
	res := run(t, "", "show", data)
	if res.err != nil {
		t.Fatalf("show error = %v", res.err)
	}

	zeta := strings.Index(res.stdout, "zeta")
	alpha := strings.Index(res.stdout, "alpha")
	mid := strings.Index(res.stdout, "mid")
	if zeta < 0 || !(zeta < alpha && alpha < mid) {
		t.Errorf("rows not in key order:\n%s", res.stdout)
	}
	for _, want := range []string{"KEY", `{"x":true}`, "null", "3 entries"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("output does not contain %q:\n%s", want, res.stdout)
		}
	}
}

func TestConfigCommand(t *testing.T) {
	res := run(t, "", "config", "--format", "yaml")
	if res.err != nil {
		t.Fatalf("config error = %v", res.err)
	}
	for _, want := range []string{"output:", "color: false", "log:", "level: warn"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("config output does not contain %q:\n%s", want, res.stdout)
		}
	}
	if !strings.Contains(res.stderr, "# loaded from") {
		t.Errorf("stderr = %q, want the config path", res.stderr)
	}
}

func TestInvalidConfig(t *testing.T) {
	cfg := writeTestFile(t, "bad.toml", "[log]\nlevel = \"loud\"\n")
	root, _ := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", cfg, "config"})

	if err := root.Execute(); !dlerror.HasCode(err, dlerror.CodeInvalidConfig) {
		t.Errorf("Execute() error = %v, want %s", err, dlerror.CodeInvalidConfig)
	}
}

func TestEnvOverridesConfig(t *testing.T) {
	t.Setenv("DANDELION_OUTPUT_FORMAT", "yaml")
	data := writeTestFile(t, "data.json", `{"k": "v"}`)

	res := run(t, "", "apply", data)
	if res.err != nil {
		t.Fatalf("apply error = %v", res.err)
	}
	if res.stdout != "k: v\n" {
		t.Errorf("output = %q, want YAML from the environment override", res.stdout)
	}
}

func TestVerboseLogsOperations(t *testing.T) {
	data := writeTestFile(t, "data.json", `{"a": 1}`)
	res := run(t, "", "-v", "apply", data, "--op", "clear")
	if res.err != nil {
		t.Fatalf("apply error = %v", res.err)
	}
	for _, want := range []string{"applied operation", "op=clear", "apply completed", "cid="} {
		if !strings.Contains(res.stderr, want) {
			t.Errorf("stderr does not contain %q:\n%s", want, res.stderr)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	res := run(t, "", "version")
	if res.err != nil {
		t.Fatalf("version error = %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "dandelion v"+version.Platform) {
		t.Errorf("version output = %q", res.stdout)
	}
}
