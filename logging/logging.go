// Package logging keeps the per-entity diagnostic streams: one success and one
// error log per entity, each written to a date-stamped file.
package logging

import (
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Pair holds the two streams of an entity.
type Pair struct {
	Success *logrus.Logger
	Error   *logrus.Logger
}

// Set is the process-wide registry of pairs. Create it once and Close it on
// shutdown.
type Set struct {
	dir     string
	discard bool

	mu    sync.Mutex
	pairs map[string]*Pair
	files []*DailyFile
}

// Open prepares a set writing under dir. Pairs for entities are created up
// front; any other entity is created on first use.
func Open(dir string, entities ...string) *Set {
	s := &Set{dir: dir, pairs: make(map[string]*Pair)}
	for _, e := range entities {
		s.For(e)
	}
	return s
}

// Discard returns a set whose loggers write nowhere.
func Discard() *Set {
	return &Set{discard: true, pairs: make(map[string]*Pair)}
}

func (s *Set) For(entity string) *Pair {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.pairs[entity]; ok {
		return p
	}
	p := &Pair{
		Success: s.newLogger("success_" + entity),
		Error:   s.newLogger("error_" + entity),
	}
	s.pairs[entity] = p
	return p
}

func (s *Set) newLogger(prefix string) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if s.discard {
		l.SetOutput(io.Discard)
		return l
	}
	f := NewDailyFile(s.dir, prefix)
	s.files = append(s.files, f)
	l.SetOutput(f)
	return l
}

// Sync flushes every open file.
func (s *Set) Sync() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	for _, f := range s.files {
		errs = append(errs, f.Sync())
	}
	return errors.Join(errs...)
}

func (s *Set) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	for _, f := range s.files {
		errs = append(errs, f.Close())
	}
	return errors.Join(errs...)
}
