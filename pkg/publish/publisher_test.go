package publish

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/browserwasp/zipdeploy/pkg/archive"
	"github.com/browserwasp/zipdeploy/pkg/config"
)

// 🎭 fakeClient records hosting calls and plays back canned remote state
type fakeClient struct {
	exists     bool
	createErr  error
	shas       map[string]string // remote path -> version token
	failPaths  map[string]bool   // paths whose writes fail
	createCall int
	shaCalls   []string
	pushes     []pushCall
}

type pushCall struct {
	path    string
	message string
	sha     string
}

func (f *fakeClient) RepositoryExists(ctx context.Context) bool { return f.exists }

func (f *fakeClient) CreateRepository(ctx context.Context) (string, error) {
	f.createCall++
	if f.createErr != nil {
		return "", f.createErr
	}
	return "https://github.com/browserwasp/browserclaw", nil
}

func (f *fakeClient) GetFileSHA(ctx context.Context, path string) string {
	f.shaCalls = append(f.shaCalls, path)
	return f.shas[path]
}

func (f *fakeClient) PushFile(ctx context.Context, path string, content []byte, message, sha string) error {
	f.pushes = append(f.pushes, pushCall{path: path, message: message, sha: sha})
	if f.failPaths[path] {
		return errors.Errorf("status 500 pushing %s", path)
	}
	return nil
}

func (f *fakeClient) RepoURL() string { return "https://github.com/browserwasp/browserclaw" }

// 🎭 fakeReporter records reported progress
type fakeReporter struct {
	steps   []string
	results []string
	summary *Summary
}

func (f *fakeReporter) Step(description string) { f.steps = append(f.steps, description) }

func (f *fakeReporter) FileResult(index, total int, path string, err error) {
	f.results = append(f.results, path)
}

func (f *fakeReporter) Summary(succeeded, total int, failed []string, repoURL string) {
	f.summary = &Summary{Total: total, Succeeded: succeeded, Failed: failed}
}

func validConfig() *config.Config {
	return &config.Config{
		Token:  "ghp_realtoken",
		Owner:  "browserwasp",
		Repo:   "browserclaw",
		Branch: "main",
	}
}

// writeFiles materializes rel -> content on disk and returns archive files
func writeFiles(t *testing.T, entries map[string]string) []archive.File {
	t.Helper()

	root := t.TempDir()
	var files []archive.File
	for rel, content := range entries {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0644))
		files = append(files, archive.File{AbsPath: abs, RelPath: rel})
	}
	return files
}

func newTestPublisher(t *testing.T, client *fakeClient, reporter *fakeReporter) *Publisher {
	t.Helper()

	pub, err := New(Options{Config: validConfig(), Client: client, Reporter: reporter})
	require.NoError(t, err)
	pub.sleep = func(time.Duration) {}
	return pub
}

func TestPublish_FreshRepository(t *testing.T) {
	root := t.TempDir()
	readme := filepath.Join(root, "README.md")
	app := filepath.Join(root, "app.js")
	require.NoError(t, os.WriteFile(readme, []byte("# hi"), 0644))
	require.NoError(t, os.WriteFile(app, []byte("console.log(1)"), 0644))

	files := []archive.File{
		{AbsPath: readme, RelPath: "README.md"},
		{AbsPath: app, RelPath: "src/app.js"},
	}

	client := &fakeClient{exists: false}
	reporter := &fakeReporter{}
	pub := newTestPublisher(t, client, reporter)

	sum, err := pub.Publish(context.Background(), files)
	require.NoError(t, err, "publish should not error")

	assert.Equal(t, 1, client.createCall, "one creation call expected")
	require.Len(t, client.pushes, 2)
	assert.Equal(t, "README.md", client.pushes[0].path)
	assert.Equal(t, "src/app.js", client.pushes[1].path)
	assert.Equal(t, "Initial commit", client.pushes[0].message)
	assert.Equal(t, "feat: add src/app.js", client.pushes[1].message)
	assert.Empty(t, client.pushes[0].sha, "fresh files carry no version token")

	assert.Equal(t, 2, sum.Succeeded)
	assert.Equal(t, 2, sum.Total)
	assert.Empty(t, sum.Failed)
	require.NotNil(t, reporter.summary, "summary should be reported")
	assert.Equal(t, 2, reporter.summary.Succeeded, "summary should read 2/2")
}

func TestPublish_SecondRunUpdates(t *testing.T) {
	entries := writeFiles(t, map[string]string{
		"README.md":  "# hi",
		"src/app.js": "console.log(1)",
	})

	client := &fakeClient{
		exists: true,
		shas: map[string]string{
			"README.md":  "sha-readme",
			"src/app.js": "sha-app",
		},
	}
	reporter := &fakeReporter{}
	pub := newTestPublisher(t, client, reporter)

	_, err := pub.Publish(context.Background(), entries)
	require.NoError(t, err)

	assert.Equal(t, 0, client.createCall, "existing repository must not be re-created")
	assert.Len(t, client.shaCalls, 2, "each file gets a version lookup")
	for _, push := range client.pushes {
		assert.Equal(t, client.shas[push.path], push.sha, "update must carry the remote token for %s", push.path)
	}
}

func TestPublish_PartialFailureContinues(t *testing.T) {
	entries := writeFiles(t, map[string]string{
		"README.md":  "# hi",
		"src/app.js": "console.log(1)",
		"src/b.js":   "console.log(2)",
	})

	client := &fakeClient{exists: true, failPaths: map[string]bool{"src/app.js": true}}
	reporter := &fakeReporter{}
	pub := newTestPublisher(t, client, reporter)

	sum, err := pub.Publish(context.Background(), entries)
	require.NoError(t, err, "per-file failures do not fail the run")

	assert.Len(t, client.pushes, 3, "run must visit every file")
	assert.Equal(t, 2, sum.Succeeded)
	assert.Equal(t, []string{"src/app.js"}, sum.Failed, "exactly the failed path is listed")
}

func TestPublish_RepositoryCreationFailureAborts(t *testing.T) {
	entries := writeFiles(t, map[string]string{"README.md": "# hi"})

	client := &fakeClient{exists: false, createErr: errors.New("status 422")}
	pub := newTestPublisher(t, client, &fakeReporter{})

	_, err := pub.Publish(context.Background(), entries)
	require.Error(t, err, "creation failure is fatal")
	assert.Empty(t, client.pushes, "no files are pushed without a repository")
}

func TestPublish_PlaceholderConfigAborts(t *testing.T) {
	client := &fakeClient{}
	pub, err := New(Options{Config: config.Default(), Client: client, Reporter: &fakeReporter{}})
	require.NoError(t, err)

	_, err = pub.Publish(context.Background(), nil)
	require.Error(t, err, "placeholder config is fatal")
	assert.True(t, errors.Is(err, config.ErrPlaceholder))
	assert.Equal(t, 0, client.createCall, "no network calls with invalid config")
}

func TestPublish_PausesEveryTenFiles(t *testing.T) {
	entries := map[string]string{}
	for i := 0; i < 25; i++ {
		entries[filepath.Join("src", string(rune('a'+i))+".js")] = "x"
	}
	files := writeFiles(t, entries)

	client := &fakeClient{exists: true}
	pub := newTestPublisher(t, client, &fakeReporter{})

	var pauses int
	pub.sleep = func(d time.Duration) {
		pauses++
		assert.Equal(t, pauseFor, d)
	}

	_, err := pub.Publish(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, 2, pauses, "25 files pause after the 10th and 20th")
}

func TestOrder(t *testing.T) {
	enumerated := []archive.File{
		{RelPath: "src/z.js"},
		{RelPath: "docs/index.html"},
		{RelPath: "vite.config.ts"},
		{RelPath: "src/a.js"},
		{RelPath: "package.json"},
		{RelPath: "sub/README.md"},
		{RelPath: "README.md"},
	}

	got := relOrder(Order(enumerated))

	assert.Equal(t, []string{
		// priority names first, in the fixed order; same-name matches keep
		// enumeration order
		"sub/README.md",
		"README.md",
		"package.json",
		"docs/index.html",
		"vite.config.ts",
		// everything else keeps enumeration order
		"src/z.js",
		"src/a.js",
	}, got)
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	enumerated := []archive.File{
		{RelPath: "src/a.js"},
		{RelPath: "README.md"},
	}
	_ = Order(enumerated)
	assert.Equal(t, "src/a.js", enumerated[0].RelPath, "input order is preserved")
}

func relOrder(files []archive.File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.RelPath)
	}
	return out
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "missing config", opts: Options{Client: &fakeClient{}, Reporter: &fakeReporter{}}},
		{name: "missing client", opts: Options{Config: validConfig(), Reporter: &fakeReporter{}}},
		{name: "missing reporter", opts: Options{Config: validConfig(), Client: &fakeClient{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			require.Error(t, err)
		})
	}
}
