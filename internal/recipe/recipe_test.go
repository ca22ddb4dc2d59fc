package recipe

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addActionYAML = `
name: add-action
vars:
  app: web
  action: "Books::Index"
steps:
  - op: write
    path: "{{ .root }}/apps/{{ .app }}/actions/{{ .action | underscore }}.rb"
    content: "class {{ .action | demodulize }}\nend\n"
  - op: insert_after
    path: "{{ .root }}/apps/{{ .app }}/config/routes.rb"
    target: "routes do"
    line: "  get '/books', to: '{{ .action | underscore | rsub \"/\" \"#\" }}'"
`

const addActionTOML = `
name = "add-action"

[vars]
app = "web"
action = "Books::Index"

[[steps]]
op = "write"
path = "{{ .root }}/apps/{{ .app }}/actions/{{ .action | underscore }}.rb"
content = "class {{ .action | demodulize }}\nend\n"

[[steps]]
op = "insert_after"
path = "{{ .root }}/apps/{{ .app }}/config/routes.rb"
target = "routes do"
line = "  get '/books', to: '{{ .action | underscore | rsub \"/\" \"#\" }}'"
`

const routes = "Hanami::Router.new do\n  routes do\n  end\nend\n"

func setupProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "apps", "web", "config")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "routes.rb"), []byte(routes), 0644))
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		format  string
		content string
	}{
		{"yaml", addActionYAML},
		{"toml", addActionTOML},
	} {
		t.Run(tt.format, func(t *testing.T) {
			rec, err := Parse(tt.content, tt.format)
			require.NoError(t, err)

			assert.Equal(t, "add-action", rec.Name)
			assert.Equal(t, "web", rec.Vars["app"])
			require.Len(t, rec.Steps, 2)
			assert.Equal(t, OpWrite, rec.Steps[0].Op)
			assert.Equal(t, OpInsertAfter, rec.Steps[1].Op)
			assert.Equal(t, "routes do", rec.Steps[1].Target)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  string
		code    tkerror.Code
	}{
		{"no steps", "name: empty\n", "yaml", tkerror.CodeValidationFailed},
		{"unknown op", "steps:\n  - op: explode\n    path: a\n", "yaml", tkerror.CodeUnknownOperation},
		{"missing target", "steps:\n  - op: remove_line\n    path: a\n", "yaml", tkerror.CodeValidationFailed},
		{"missing from", "steps:\n  - op: copy\n    path: a\n", "yaml", tkerror.CodeValidationFailed},
		{"missing path", "steps:\n  - op: touch\n", "yaml", tkerror.CodeValidationFailed},
		{"bad format", "", "json", tkerror.CodeInvalidInput},
		{"bad syntax", "steps: [", "yaml", tkerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.content, tt.format)
			require.Error(t, err)
			assert.True(t, tkerror.HasCode(err, tt.code), "got %v (%s)", err, tkerror.GetCode(err))
		})
	}
}

func TestOpsNormalized(t *testing.T) {
	rec, err := Parse("steps:\n  - op: ' Touch '\n    path: a\n", "yaml")
	require.NoError(t, err)
	assert.Equal(t, OpTouch, rec.Steps[0].Op)
	assert.Len(t, Ops(), 18)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scaffold.yml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - op: touch\n    path: a\n"), 0644))

	rec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "scaffold", rec.Name, "name defaults to the file name")
	assert.Equal(t, path, rec.SourceFile)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.True(t, tkerror.HasCode(err, tkerror.CodeFileNotFound))
}

func TestApply(t *testing.T) {
	for _, tt := range []struct {
		format  string
		content string
	}{
		{"yaml", addActionYAML},
		{"toml", addActionTOML},
	} {
		t.Run(tt.format, func(t *testing.T) {
			root := setupProject(t)
			rec, err := Parse(tt.content, tt.format)
			require.NoError(t, err)

			result, err := NewRunner().Apply(context.Background(), rec, map[string]string{"root": root})
			require.NoError(t, err)

			assert.NotEmpty(t, result.RunID)
			assert.Len(t, result.Actions, 2)
			assert.Equal(t, "class Index\nend\n",
				readFile(t, filepath.Join(root, "apps/web/actions/books/index.rb")))
			assert.Equal(t,
				"Hanami::Router.new do\n  routes do\n  get '/books', to: 'books#index'\n  end\nend\n",
				readFile(t, filepath.Join(root, "apps/web/config/routes.rb")))
		})
	}
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	root := setupProject(t)
	rec, err := Parse(`
steps:
  - op: append
    path: "{{ .root }}/apps/web/config/routes.rb"
    line: "# first"
  - op: insert_before
    path: "{{ .root }}/apps/web/config/routes.rb"
    target: "resources :missing"
    line: "never"
  - op: touch
    path: "{{ .root }}/after.txt"
`, "yaml")
	require.NoError(t, err)

	result, err := NewRunner().Apply(context.Background(), rec, map[string]string{"root": root})
	require.Error(t, err)

	assert.True(t, tkerror.HasCode(err, tkerror.CodeTargetNotFound))
	var tkErr *tkerror.Error
	require.ErrorAs(t, err, &tkErr)
	index, ok := tkErr.Detail("index")
	require.True(t, ok)
	assert.Equal(t, 1, index)
	runID, ok := tkErr.Detail("run_id")
	require.True(t, ok)
	assert.Equal(t, result.RunID, runID)

	assert.Len(t, result.Actions, 1)
	assert.Equal(t, routes+"# first\n", readFile(t, filepath.Join(root, "apps/web/config/routes.rb")))
	assert.NoFileExists(t, filepath.Join(root, "after.txt"))
}

func TestApplyTemplateErrorTouchesNothing(t *testing.T) {
	root := setupProject(t)
	rec, err := Parse(`
steps:
  - op: touch
    path: "{{ .root }}/first.txt"
  - op: touch
    path: "{{ .root }}/{{ .undefined }}.txt"
`, "yaml")
	require.NoError(t, err)

	_, err = NewRunner().Apply(context.Background(), rec, map[string]string{"root": root})
	require.Error(t, err)
	assert.True(t, tkerror.HasCode(err, tkerror.CodeInvalidInput))
	assert.NoFileExists(t, filepath.Join(root, "first.txt"))
}

func TestApplyDryRun(t *testing.T) {
	root := setupProject(t)
	rec, err := Parse(addActionYAML, "yaml")
	require.NoError(t, err)

	result, err := NewRunner(WithDryRun(true)).Apply(context.Background(), rec, map[string]string{"root": root})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	require.Len(t, result.Actions, 2)
	assert.Equal(t, filepath.Join(root, "apps/web/actions/books/index.rb"), filepath.Clean(result.Actions[0].Path))
	assert.NoFileExists(t, filepath.Join(root, "apps/web/actions/books/index.rb"))
	assert.Equal(t, routes, readFile(t, filepath.Join(root, "apps/web/config/routes.rb")))
}

func TestApplyCancelled(t *testing.T) {
	root := setupProject(t)
	rec, err := Parse("steps:\n  - op: touch\n    path: \"{{ .root }}/a.txt\"\n", "yaml")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewRunner().Apply(ctx, rec, map[string]string{"root": root})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(root, "a.txt"))
}

func TestApplyRegexpTargetAndBlocks(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "app.rb")
	require.NoError(t, os.WriteFile(path, []byte("class App\n  configure do\n    root 'x'\n  end\n\n  def call\n  end\nend\n"), 0644))

	rec, err := Parse(`
steps:
  - op: remove_block
    path: "{{ .path }}"
    target: configure
  - op: replace_first
    path: "{{ .path }}"
    target: '^\s+def \w+$'
    regexp: true
    line: "  def run"
`, "yaml")
	require.NoError(t, err)

	_, err = NewRunner().Apply(context.Background(), rec, map[string]string{"path": path})
	require.NoError(t, err)
	assert.Equal(t, "class App\n\n  def run\n  end\nend\n", readFile(t, path))
}

func TestApplyUsesInflectorAndLogs(t *testing.T) {
	root := t.TempDir()
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatLogfmt, Output: &buf})
	in := stringx.NewInflector(stringx.WithIrregular("cactus", "cacti"))

	rec, err := Parse(`
name: plural
steps:
  - op: write
    path: "{{ .root }}/{{ .model | pluralize }}.txt"
    content: "{{ .model | transform \"upcase\" }}"
`, "yaml")
	require.NoError(t, err)

	result, err := NewRunner(WithInflector(in), WithLogger(logger)).
		Apply(context.Background(), rec, map[string]string{"root": root, "model": "cactus"})
	require.NoError(t, err)

	assert.Equal(t, "CACTUS", readFile(t, filepath.Join(root, "cacti.txt")))
	out := buf.String()
	assert.Contains(t, out, "logger=recipe")
	assert.Contains(t, out, "run_id="+result.RunID)
	assert.Contains(t, out, "recipe applied")
}

func TestFuncMap(t *testing.T) {
	rnd := newRenderer(stringx.Default(), map[string]interface{}{"name": "Hanami::Utils::String", "words": "Lotus::(Utils|App)"})

	tests := []struct {
		text     string
		expected string
	}{
		{"{{ .name | underscore }}", "hanami/utils/string"},
		{"{{ .name | demodulize }}", "String"},
		{"{{ .name | namespace }}", "Hanami"},
		{"{{ .name | demodulize | pluralize }}", "Strings"},
		{"{{ \"hanami_view\" | classify }}", "HanamiView"},
		{"{{ \"APIDoc\" | dasherize }}", "api-doc"},
		{"{{ \"hanami' utils\" | titleize }}", "Hanami' Utils"},
		{"{{ \"OneTwoThree\" | capitalize }}", "One two three"},
		{"{{ \"people\" | singularize }}", "person"},
		{"{{ .name | transform \"underscore\" \"classify\" }}", "Hanami::Utils::String"},
		{"{{ range tokens .words }}{{ . }};{{ end }}", "Lotus::Utils;Lotus::App;"},
		{"plain text", "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			out, err := rnd.render("test", tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	_, err := rnd.render("test", "{{ .name | transform \"explode\" }}")
	require.Error(t, err)
	assert.True(t, tkerror.HasCode(err, tkerror.CodeUnknownOperation))

	_, err = rnd.render("test", "{{ .name ")
	require.Error(t, err)
	assert.True(t, tkerror.HasCode(err, tkerror.CodeInvalidInput))
}

func TestActionString(t *testing.T) {
	a := Action{Index: 2, Step: Step{Op: OpInsertAfter, Path: "routes.rb", Target: "^routes", Regexp: true, Line: "get"}}
	assert.Equal(t, `2 insert_after routes.rb pattern="^routes" line="get"`, a.String())
}
