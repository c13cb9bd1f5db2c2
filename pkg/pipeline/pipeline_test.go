package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/amoor/pkg/cache"
	"github.com/matzehuels/amoor/pkg/errors"
)

const frameTOML = `anchors = [
  [1, 301, 50.0, 225.0, 55.0, 0, 10.0, 5.0],
  [2, 304, 50.0, 45.0, 55.0, 0, 10.0, 5.0],
]

[frame]
rows = 1
cols = 1
length_long = 20.0
length_across = 20.0
depth = 5.0
course = 90.0
`

func quietRunner(c cache.Cache) *Runner {
	return NewRunner(c, nil, log.NewWithOptions(io.Discard, log.Options{}))
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"valid path", Options{ConfigPath: "frame.toml"}, ""},
		{"valid data", Options{Config: []byte("x"), ConfigFormat: "yaml"}, ""},
		{"no config", Options{}, errors.ErrCodeInvalidInput},
		{"both configs", Options{ConfigPath: "a.toml", Config: []byte("x"), ConfigFormat: "toml"}, errors.ErrCodeInvalidInput},
		{"data without format", Options{Config: []byte("x")}, errors.ErrCodeInvalidFormat},
		{"both templates", Options{ConfigPath: "a.toml", TemplatePath: "t.xml", Template: []byte("<a/>")}, errors.ErrCodeInvalidInput},
		{"negative indent", Options{ConfigPath: "a.toml", Indent: -1}, errors.ErrCodeInvalidInput},
		{"wide indent", Options{ConfigPath: "a.toml", Indent: MaxIndent + 1}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() = %v", err)
				}
				if tt.opts.Seed != DefaultSeed {
					t.Errorf("Seed = %d, want default %d", tt.opts.Seed, DefaultSeed)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	path := writeConfig(t, "frame.toml", frameTOML)
	r := quietRunner(nil)

	res, err := r.Execute(context.Background(), Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.RunID == "" {
		t.Error("RunID should be set")
	}
	if res.CacheHit {
		t.Error("null cache should never hit")
	}
	if got := res.Model.NodeCount(); got != 4+2*3 {
		t.Errorf("nodes = %d, want 10", got)
	}
	if res.Stats.AnchorNodes != 6 || res.Stats.FixedNodes != 2 {
		t.Errorf("stats = %+v", res.Stats)
	}
	doc := string(res.Document)
	if strings.Count(doc, "<node ") != res.Model.NodeCount() {
		t.Errorf("document has %d nodes, want %d", strings.Count(doc, "<node "), res.Model.NodeCount())
	}
	if strings.Count(doc, "<truss ") != res.Model.EdgeCount() {
		t.Errorf("document has %d trusses, want %d", strings.Count(doc, "<truss "), res.Model.EdgeCount())
	}
	if !strings.Contains(doc, "<loadconditions/>") {
		t.Error("default template middle section should be untouched")
	}
}

func TestExecuteDeterministic(t *testing.T) {
	path := writeConfig(t, "frame.toml", frameTOML)
	r := quietRunner(nil)
	ctx := context.Background()

	a, err := r.Execute(ctx, Options{ConfigPath: path})
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Execute(ctx, Options{Config: []byte(frameTOML), ConfigFormat: "toml"})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Document, b.Document) {
		t.Error("file and in-memory config should produce identical documents")
	}
	if a.RunID == b.RunID {
		t.Error("run ids should differ")
	}
}

func TestExecuteCache(t *testing.T) {
	path := writeConfig(t, "frame.toml", frameTOML)
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := quietRunner(fc)
	ctx := context.Background()

	first, err := r.Execute(ctx, Options{ConfigPath: path})
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit {
		t.Error("first run should miss")
	}

	second, err := r.Execute(ctx, Options{ConfigPath: path})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("second run should hit")
	}
	if !bytes.Equal(first.Document, second.Document) {
		t.Error("cached document differs")
	}
	if second.Model == nil {
		t.Error("cache hit should still carry the model")
	}

	refreshed, err := r.Execute(ctx, Options{ConfigPath: path, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheHit {
		t.Error("refresh should skip the cache lookup")
	}

	other, err := r.Execute(ctx, Options{ConfigPath: path, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	if other.CacheHit {
		t.Error("a different seed should miss")
	}
}

func TestExecuteTemplate(t *testing.T) {
	cfg := writeConfig(t, "frame.yaml", "frame: {rows: 1, cols: 1, length_long: 20, length_across: 20, depth: 5, course: 90}\nanchors:\n  - [1, 301, 50, 45, 55, 0, 10, 5]\n")
	r := quietRunner(nil)
	ctx := context.Background()

	tpl := writeConfig(t, "template.xml", `<model><nodes/><env current="0.5"/><components/></model>`)
	res, err := r.Execute(ctx, Options{ConfigPath: cfg, TemplatePath: tpl})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(string(res.Document), `<env current="0.5"/>`) {
		t.Error("custom template section lost")
	}

	_, err = r.Execute(ctx, Options{ConfigPath: cfg, Template: []byte(`<model><nodes/></model>`)})
	if !errors.Is(err, errors.ErrCodeInvalidTemplate) {
		t.Errorf("bad template error = %v, want %s", err, errors.ErrCodeInvalidTemplate)
	}

	_, err = r.Execute(ctx, Options{ConfigPath: cfg, TemplatePath: filepath.Join(t.TempDir(), "none.xml")})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing template error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestExecuteErrors(t *testing.T) {
	r := quietRunner(nil)
	ctx := context.Background()

	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"missing corner", strings.Replace(frameTOML, "304", "399", 1), errors.ErrCodeMissingKey},
		{"duplicate anchor", strings.Replace(frameTOML, "[2, 304", "[1, 304", 1), errors.ErrCodeInvalidAnchor},
		{"bad cell", strings.Replace(frameTOML, "225.0", `"sw"`, 1), errors.ErrCodeInvalidAnchor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Execute(ctx, Options{Config: []byte(tt.body), ConfigFormat: "toml"})
			if !errors.Is(err, tt.code) {
				t.Fatalf("Execute error = %v, want %s", err, tt.code)
			}
			if res != nil {
				t.Error("failed run should return no result")
			}
		})
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := quietRunner(nil).Execute(ctx, Options{Config: []byte(frameTOML), ConfigFormat: "toml"})
	if err != context.Canceled {
		t.Errorf("Execute error = %v, want context.Canceled", err)
	}
}

func TestModel(t *testing.T) {
	m, err := quietRunner(nil).Model(context.Background(), Options{Config: []byte(frameTOML), ConfigFormat: "toml"})
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	if _, ok := m.AnchorLine(2); !ok {
		t.Error("anchor line 2 missing")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.xml")

	if err := WriteFile(path, []byte("<model/>")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != "<model/>" {
		t.Fatalf("read back %q, %v", got, err)
	}

	if err := WriteFile(path, []byte("<model v=\"2\"/>")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %d entries", len(entries))
	}

	err = WriteFile(filepath.Join(dir, "missing", "model.xml"), nil)
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("WriteFile into missing dir = %v, want %s", err, errors.ErrCodeInvalidPath)
	}
}
