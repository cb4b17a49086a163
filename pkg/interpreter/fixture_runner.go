package interpreter

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"rill/interpreter-go/pkg/driver"
	"rill/interpreter-go/pkg/runtime"
)

// fixture describes one replayable program scenario under testdata/fixtures.
type fixture struct {
	Description string                  `yaml:"description"`
	Program     string                  `yaml:"program"`
	Stream      *fixtureValue           `yaml:"stream"`
	Storage     map[string]fixtureValue `yaml:"storage"`
	Stdin       string                  `yaml:"stdin"`
	Expect      fixtureExpect           `yaml:"expect"`
}

type fixtureExpect struct {
	Result     *fixtureValue           `yaml:"result"`
	Failure    bool                    `yaml:"failure"`
	Fault      string                  `yaml:"fault"`
	ParseError bool                    `yaml:"parse_error"`
	Stdout     []string                `yaml:"stdout"`
	Storage    map[string]fixtureValue `yaml:"storage"`
}

type fixtureValue struct {
	Kind string `yaml:"kind"`
	Int  int64  `yaml:"int"`
	Text string `yaml:"text"`
}

func (v fixtureValue) runtimeValue(t *testing.T) runtime.Value {
	t.Helper()
	switch v.Kind {
	case "integer":
		return runtime.IntegerValue{Val: v.Int}
	case "text":
		return runtime.TextValue{Val: v.Text}
	case "empty", "":
		return runtime.EmptyValue{}
	default:
		t.Fatalf("fixture value kind %q not recognized", v.Kind)
		return nil
	}
}

// runFixture replays one fixture file against a fresh interpreter.
func runFixture(t *testing.T, path string) {
	t.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	program, err := driver.LoadSource(fx.Program)
	if fx.Expect.ParseError {
		if err == nil {
			t.Fatalf("expected parse failure")
		}
		return
	}
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	storage := make(map[string]runtime.Value, len(fx.Storage))
	for key, val := range fx.Storage {
		storage[key] = val.runtimeValue(t)
	}
	interp := NewWithStorage(storage)
	var stdout bytes.Buffer
	interp.SetInput(strings.NewReader(fx.Stdin))
	interp.SetOutput(&stdout)

	stream := runtime.Value(runtime.EmptyValue{})
	if fx.Stream != nil {
		stream = fx.Stream.runtimeValue(t)
	}

	result, err := interp.Evaluate(nil, program, stream)
	switch {
	case fx.Expect.Fault != "":
		if !IsFault(err) {
			t.Fatalf("expected fault, got result %v err %v", result, err)
		}
		if !strings.Contains(err.Error(), fx.Expect.Fault) {
			t.Fatalf("expected fault containing %q, got %q", fx.Expect.Fault, err.Error())
		}
	case fx.Expect.Failure:
		if !Failed(err) {
			t.Fatalf("expected soft failure, got result %v err %v", result, err)
		}
	default:
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		want := runtime.Value(runtime.EmptyValue{})
		if fx.Expect.Result != nil {
			want = fx.Expect.Result.runtimeValue(t)
		}
		if !runtime.Equal(result, want) {
			t.Fatalf("result = %v, want %v", result, want)
		}
	}

	if len(fx.Expect.Stdout) > 0 {
		got := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
		if len(got) != len(fx.Expect.Stdout) {
			t.Fatalf("stdout = %q, want %q", got, fx.Expect.Stdout)
		}
		for i, line := range fx.Expect.Stdout {
			if got[i] != line {
				t.Fatalf("stdout[%d] = %q, want %q", i, got[i], line)
			}
		}
	}

	if fx.Expect.Storage != nil {
		if len(interp.Storage()) != len(fx.Expect.Storage) {
			t.Fatalf("storage has %d entries, want %d", len(interp.Storage()), len(fx.Expect.Storage))
		}
		for key, val := range fx.Expect.Storage {
			got, ok := interp.Storage()[key]
			if !ok {
				t.Fatalf("storage missing key %q", key)
			}
			if !runtime.Equal(got, val.runtimeValue(t)) {
				t.Fatalf("storage[%q] = %v, want %v", key, got, val.runtimeValue(t))
			}
		}
	}
}
