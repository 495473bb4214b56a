package alertlog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry is one line of the run log.
type Entry struct {
	Time       string  `json:"time"`
	Symbol     string  `json:"symbol"`
	RecentDate string  `json:"recent_date,omitempty"`
	PriorDate  string  `json:"prior_date,omitempty"`
	Percent    float64 `json:"percent"`
	Threshold  float64 `json:"threshold"`
	Alerted    bool    `json:"alerted"`
	Articles   int     `json:"articles,omitempty"`
	SID        string  `json:"sid,omitempty"`
	Status     string  `json:"status,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// Log appends run entries to one JSONL file per local day under dir.
type Log struct {
	mu  sync.Mutex
	dir string
	loc *time.Location
	now func() time.Time
}

func New(dir string, loc *time.Location) *Log {
	if dir == "" {
		dir = "logs"
	}
	if loc == nil {
		loc = time.Local
	}
	return &Log{dir: dir, loc: loc, now: time.Now}
}

func (l *Log) Dir() string { return l.dir }

func (l *Log) dailyFilepath(t time.Time) string {
	return filepath.Join(l.dir, t.Format("2006-01-02")+".txt")
}

// Append stamps e with the current local time and writes it as one line.
func (l *Log) Append(e Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now().In(l.loc)
	e.Time = now.Format("2006-01-02 15:04:05")
	p := l.dailyFilepath(now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// CompressOlder gzips day files last modified more than retentionDays ago
// and removes the originals. retentionDays <= 0 disables it.
func (l *Log) CompressOlder(retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().AddDate(0, 0, -retentionDays)
	compressed := 0
	err := filepath.WalkDir(l.dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && p == l.dir {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || filepath.Ext(p) != ".txt" {
			return nil
		}
		info, err := d.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			return nil
		}

		gz := p + ".gz"
		// already compressed by an earlier run
		if _, err := os.Stat(gz); err == nil {
			_ = os.Remove(p)
			return nil
		}
		if err := gzipFile(p, gz); err != nil {
			return nil
		}
		_ = os.Remove(p)
		compressed++
		return nil
	})
	return compressed, err
}

func gzipFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	gw := gzip.NewWriter(out)
	if _, err := io.Copy(gw, in); err != nil {
		_ = gw.Close()
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := gw.Close(); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}
