package profile

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Store holds the profile currently being served.
type Store struct {
	mu      sync.RWMutex
	current Profile
	path    string
}

// NewStore returns a Store serving the defaults, or the file at path when
// path is set.
func NewStore(path string) (*Store, error) {
	s := &Store{current: Default(), path: path}
	if path == "" {
		return s, nil
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the current profile.
func (s *Store) Get() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Reload re-reads the profile file. On error the current profile is kept.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	p, err := Load(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.current = p
	s.mu.Unlock()
	return nil
}

// Watch reloads the profile whenever its file changes, until ctx is done.
// Bursts of events within debounce are coalesced into one reload.
func (s *Store) Watch(ctx context.Context, debounce time.Duration, log zerolog.Logger) error {
	if s.path == "" {
		return errors.New("no profile file to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer watcher.Close()

	// Editors often replace the file, so watch the directory.
	abs, err := filepath.Abs(s.path)
	if err != nil {
		return errors.Wrapf(err, "resolving %q", s.path)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "watching %q", filepath.Dir(abs))
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	reload := func() {
		if err := s.Reload(); err != nil {
			log.Error().Err(err).Str("path", s.path).Msg("profile reload failed")
			return
		}
		log.Info().Str("path", s.path).Msg("profile reloaded")
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, reload)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(werr).Msg("watcher error")
		}
	}
}
