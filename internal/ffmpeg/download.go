package ffmpeg

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/murfai/murf-setup/internal/errors"
)

// ProgressFunc receives download progress. pct is -1 when the total size is
// unknown or zero; otherwise it is a non-decreasing percentage that reaches
// 100 when the download completes.
type ProgressFunc func(pct int, received, total int64)

// progressWriter counts received bytes and reports percentage milestones.
type progressWriter struct {
	total    int64
	received int64
	lastPct  int
	report   ProgressFunc
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.received += int64(len(p))

	if w.report == nil {
		return len(p), nil
	}

	if w.total <= 0 {
		// No usable total: report byte counts, never a percentage.
		w.report(-1, w.received, w.total)
		return len(p), nil
	}

	pct := int(w.received * 100 / w.total)
	if pct > 100 {
		pct = 100
	}
	if pct > w.lastPct {
		w.lastPct = pct
		w.report(pct, w.received, w.total)
	}
	return len(p), nil
}

// download fetches url into a temporary file and returns its path.
// The caller owns the file and is responsible for removing it.
func download(ctx context.Context, client *http.Client, url string, progress ProgressFunc) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "building download request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "downloading archive")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf("download failed with status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp("", "murf-setup-ffmpeg-*.zip")
	if err != nil {
		return "", errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()

	pw := &progressWriter{
		total:  resp.ContentLength,
		report: progress,
	}

	if _, err := io.Copy(io.MultiWriter(tmp, pw), resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", errors.Wrap(err, "saving archive")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrap(err, "closing archive")
	}

	return tmpName, nil
}
