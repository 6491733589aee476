package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const dayLayout = "2006-01-02"

// DailyFile writes to <dir>/<prefix>_<YYYY-MM-DD>.log, switching files when
// the date changes. The file is opened on first write.
type DailyFile struct {
	dir    string
	prefix string
	now    func() time.Time

	mu  sync.Mutex
	day string
	f   *os.File
}

func NewDailyFile(dir, prefix string) *DailyFile {
	return &DailyFile{dir: dir, prefix: prefix, now: time.Now}
}

func (d *DailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	day := d.now().Format(dayLayout)
	if d.f == nil || day != d.day {
		if err := d.rotate(day); err != nil {
			return 0, err
		}
	}
	return d.f.Write(p)
}

func (d *DailyFile) rotate(day string) error {
	if d.f != nil {
		_ = d.f.Close()
		d.f = nil
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("log dir %s: %w", d.dir, err)
	}
	f, err := os.OpenFile(d.pathFor(day), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	d.f = f
	d.day = day
	return nil
}

func (d *DailyFile) pathFor(day string) string {
	return filepath.Join(d.dir, fmt.Sprintf("%s_%s.log", d.prefix, day))
}

// Path returns the file the next write goes to.
func (d *DailyFile) Path() string {
	return d.pathFor(d.now().Format(dayLayout))
}

func (d *DailyFile) Sync() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.f == nil {
		return nil
	}
	return d.f.Sync()
}

func (d *DailyFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.f == nil {
		return nil
	}
	err := d.f.Sync()
	if cerr := d.f.Close(); err == nil {
		err = cerr
	}
	d.f = nil
	return err
}
