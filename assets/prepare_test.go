package assets

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0777))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestPrepare(t *testing.T) {
	repo := t.TempDir()
	public := filepath.Join(t.TempDir(), "public")
	old := time.Now().Add(-time.Hour)
	now := time.Now()

	writeFile(t, filepath.Join(repo, "print_screens", "github.png"), "png", now)
	writeFile(t, filepath.Join(repo, "notes.md"), "# notes", old)
	writeFile(t, filepath.Join(public, "notes", "presenter_notes.md"), "# notes", now)

	manifest := []Entry{
		{Src: "print_screens/github.png", Dst: "prints/github.png"},
		{Src: "notes.md", Dst: "notes/presenter_notes.md"},
		{Src: "missing.md", Dst: "prompts/missing.md"},
	}
	p := &Preparer{RepoRoot: repo, PublicDir: public}
	report, err := p.Prepare(context.Background(), manifest)
	require.NoError(t, err)
	require.Len(t, report.Results, 3)

	assert.Equal(t, StatusCopied, report.Results[0].Status)
	assert.EqualValues(t, 3, report.Results[0].Size)
	assert.Equal(t, StatusUpToDate, report.Results[1].Status)
	assert.Equal(t, StatusMissing, report.Results[2].Status)

	data, err := os.ReadFile(filepath.Join(public, "prints", "github.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
	assert.NoFileExists(t, filepath.Join(public, "prompts", "missing.md"))

	// Second run finds everything current.
	report, err = p.Prepare(context.Background(), manifest)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Count(StatusCopied))
	assert.Equal(t, 2, report.Count(StatusUpToDate))
	assert.Equal(t, 1, report.Count(StatusMissing))
}

func TestPrepareCopiesNewerSource(t *testing.T) {
	repo := t.TempDir()
	public := t.TempDir()
	writeFile(t, filepath.Join(repo, "a.md"), "new", time.Now())
	writeFile(t, filepath.Join(public, "prompts", "a.md"), "old", time.Now().Add(-time.Hour))

	p := &Preparer{RepoRoot: repo, PublicDir: public}
	report, err := p.Prepare(context.Background(), []Entry{{Src: "a.md", Dst: "prompts/a.md"}})
	require.NoError(t, err)
	assert.Equal(t, StatusCopied, report.Results[0].Status)

	data, err := os.ReadFile(filepath.Join(public, "prompts", "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestPrepareRejectsConcurrentRun(t *testing.T) {
	public := t.TempDir()
	held := flock.New(filepath.Join(public, lockFile))
	locked, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer held.Unlock()

	p := &Preparer{RepoRoot: t.TempDir(), PublicDir: public}
	_, err = p.Prepare(context.Background(), DefaultManifest())
	assert.ErrorIs(t, err, ErrLocked)
}

func TestDefaultManifest(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range DefaultManifest() {
		assert.False(t, seen[e.Dst], "duplicate destination %s", e.Dst)
		seen[e.Dst] = true
	}
	for _, dst := range []string{
		"prints/github.png",
		"media/30s.mp4",
		"media/part4.mp4",
		"prompts/004_prompts_multiplas_ias_research.md",
		"prompts/veo3_video_roteiro.md",
		"notes/presenter_notes.md",
		"docs/NASA-Space-Apps-2025-AI-Solution-for-Exoplanet-Discovery.pdf",
	} {
		assert.True(t, seen[dst], dst)
	}
}

func TestWriteTable(t *testing.T) {
	r := Report{Results: []Result{
		{Entry: Entry{Dst: "prints/github.png"}, Status: StatusCopied, Size: 2048},
		{Entry: Entry{Dst: "media/30s.mp4"}, Status: StatusMissing},
	}}
	buf := &bytes.Buffer{}
	r.WriteTable(buf)
	out := buf.String()
	assert.Contains(t, out, "prints/github.png")
	assert.Contains(t, out, "2.0 kB")
	assert.Contains(t, out, "1 copied, 0 up-to-date, 1 missing, 0 failed")
}
