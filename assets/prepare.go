package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrLocked is returned when another prepare run holds the public directory.
var ErrLocked = errors.New("public directory is being prepared by another process")

const (
	lockFile    = ".prepare.lock"
	copyWorkers = 4
)

type Status string

const (
	StatusCopied   Status = "copied"
	StatusUpToDate Status = "up-to-date"
	StatusMissing  Status = "missing"
	StatusFailed   Status = "failed"
)

type Result struct {
	Entry  Entry
	Status Status
	Size   int64
	Err    error
}

type Report struct {
	Results []Result
}

func (r Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Preparer copies manifest entries from RepoRoot into PublicDir.
type Preparer struct {
	RepoRoot  string
	PublicDir string
	Log       logrus.FieldLogger
}

// Prepare copies every entry whose destination is absent or older than the
// source. Missing sources and failed copies are recorded, not returned.
func (p *Preparer) Prepare(ctx context.Context, manifest []Entry) (Report, error) {
	log := p.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	if err := os.MkdirAll(p.PublicDir, 0777); err != nil {
		return Report{}, err
	}
	lock := flock.New(filepath.Join(p.PublicDir, lockFile))
	locked, err := lock.TryLock()
	if err != nil {
		return Report{}, fmt.Errorf("locking public dir: %w", err)
	}
	if !locked {
		return Report{}, ErrLocked
	}
	defer lock.Unlock()

	results := make([]Result, len(manifest))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(copyWorkers)
	for i, e := range manifest {
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := p.prepare(e)
			entryLog := log.WithField("path", e.Dst)
			switch res.Status {
			case StatusCopied:
				entryLog.Info("copied")
			case StatusMissing:
				entryLog.WithField("src", e.Src).Debug("source missing")
			case StatusFailed:
				entryLog.WithError(res.Err).Warn("copy failed")
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return Report{Results: results}, nil
}

func (p *Preparer) prepare(e Entry) Result {
	res := Result{Entry: e}
	src := filepath.Join(p.RepoRoot, filepath.FromSlash(e.Src))
	dst := filepath.Join(p.PublicDir, filepath.FromSlash(e.Dst))

	srcInfo, err := os.Stat(src)
	if err != nil || !srcInfo.Mode().IsRegular() {
		res.Status = StatusMissing
		return res
	}
	res.Size = srcInfo.Size()

	if dstInfo, err := os.Stat(dst); err == nil && !srcInfo.ModTime().After(dstInfo.ModTime()) {
		res.Status = StatusUpToDate
		return res
	}

	if err := copyFile(src, dst); err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}
	res.Status = StatusCopied
	return res
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0777); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp := dst + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dst)
}
