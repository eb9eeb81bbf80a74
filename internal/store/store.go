// Package store resolves streak names to files and performs the
// read-modify-write cycle. Appending a tick is a true filesystem append;
// every other mutation rewrites through a temp file and an atomic rename.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/hashstructure/v2"

	"github.com/julianstephens/streak/internal/constants"
	sterrors "github.com/julianstephens/streak/internal/errors"
	"github.com/julianstephens/streak/internal/format"
	"github.com/julianstephens/streak/internal/logger"
	"github.com/julianstephens/streak/internal/models"
)

// Store manages the streak files under one directory. The directory is
// injected by the caller (CLI, TUI, tests) rather than read from a global.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a store over the given streaks directory
func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

// Dir returns the streaks directory this store operates on
func (s *Store) Dir() string {
	return s.dir
}

// Init creates the streaks directory if it does not exist
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create streaks directory: %w", err)
	}
	return nil
}

// fileLock returns the mutex serializing mutations for one streak file.
// Hosts serving concurrent requests get per-streak write safety from this;
// the single-user CLI path never contends.
func (s *Store) fileLock(path string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[path]
	if !ok {
		l = &sync.Mutex{}
		s.locks[path] = l
	}
	return l
}

// FileName derives the backing file name for a streak name
func FileName(name string) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	return constants.StreakFilePrefix + slug + constants.StreakFileSuffix
}

// nameFromPath derives the default display name from a streak file path
func nameFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, constants.StreakFileSuffix)
	base = strings.TrimPrefix(base, constants.StreakFilePrefix)
	return base
}

// Create makes a new streak file with an explicit front matter block.
// Fails if a file for the name already exists.
func (s *Store) Create(meta models.Metadata) (*models.Streak, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, FileName(meta.Name))
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("streak file already exists: %s", path)
	}

	meta.HadExplicitBlock = true
	raw, err := format.Serialize(meta, nil)
	if err != nil {
		return nil, err
	}
	if err := s.writeFile(path, []byte(raw)); err != nil {
		return nil, err
	}
	logger.Info("Created streak", "name", meta.Name, "path", path)
	return &models.Streak{Meta: meta, Path: path}, nil
}

// ListFiles returns the paths of all streak files in the directory
func (s *Store) ListFiles() ([]string, error) {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read streaks directory: %w", err)
	}
	var paths []string
	for _, d := range dirents {
		name := d.Name()
		if !d.IsDir() && strings.HasPrefix(name, constants.StreakFilePrefix) &&
			strings.HasSuffix(name, constants.StreakFileSuffix) {
			paths = append(paths, filepath.Join(s.dir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// List loads every streak in the directory. Files that fail to parse are
// skipped with a warning so one corrupt file does not hide the rest.
func (s *Store) List() ([]*models.Streak, error) {
	paths, err := s.ListFiles()
	if err != nil {
		return nil, err
	}
	var streaks []*models.Streak
	for _, p := range paths {
		st, err := s.LoadFile(p)
		if err != nil {
			logger.Warn("Skipping unreadable streak file", "path", p, "error", err)
			continue
		}
		streaks = append(streaks, st)
	}
	return streaks, nil
}

// Resolve finds the backing file for a case-insensitive name fragment.
// Zero matches is a NotFoundError, more than one an AmbiguousError.
func (s *Store) Resolve(name string) (string, error) {
	paths, err := s.ListFiles()
	if err != nil {
		return "", err
	}
	needle := strings.ToLower(name)
	var matches []string
	for _, p := range paths {
		if strings.Contains(strings.ToLower(filepath.Base(p)), needle) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return "", &sterrors.NotFoundError{Identifier: name}
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = filepath.Base(m)
		}
		return "", &sterrors.AmbiguousError{Identifier: name, Matches: names}
	}
}

// Load resolves an identifier to a streak. An identifier containing a path
// separator or naming an existing file is used as a path; anything else is
// fuzzy-matched against the directory.
func (s *Store) Load(identifier string) (*models.Streak, error) {
	if strings.ContainsRune(identifier, os.PathSeparator) {
		return s.LoadFile(identifier)
	}
	if _, err := os.Stat(filepath.Join(s.dir, identifier)); err == nil {
		return s.LoadFile(filepath.Join(s.dir, identifier))
	}
	path, err := s.Resolve(identifier)
	if err != nil {
		return nil, err
	}
	return s.LoadFile(path)
}

// LoadFile reads and parses one streak file
func (s *Store) LoadFile(path string) (*models.Streak, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &sterrors.NotFoundError{Identifier: path}
		}
		return nil, fmt.Errorf("failed to read streak file: %w", err)
	}
	meta, entries, err := format.Parse(nameFromPath(path), string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &models.Streak{Meta: meta, Entries: entries, Path: path}, nil
}

// AppendTick records a new entry via a true filesystem append; previously
// written bytes are never touched. Rejects an entry whose exact timestamp
// is already recorded.
func (s *Store) AppendTick(st *models.Streak, entry models.Entry) error {
	if entry.Quantity != nil && *entry.Quantity < 0 {
		return sterrors.NewValidationError("quantity", "must not be negative")
	}
	if st.FindEntry(entry.Date) >= 0 {
		return sterrors.NewValidationError("date", "entry for %s already recorded", entry.DateString())
	}

	lock := s.fileLock(st.Path)
	lock.Lock()
	defer lock.Unlock()

	line := format.EntryLine(entry) + "\n"
	if missing, err := missingTrailingNewline(st.Path); err != nil {
		return err
	} else if missing {
		line = "\n" + line
	}

	err := s.withRetry(func() error {
		f, err := os.OpenFile(st.Path, os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := f.WriteString(line); err != nil {
			return err
		}
		return f.Sync()
	})
	if err != nil {
		return fmt.Errorf("failed to append tick: %w", err)
	}

	st.Entries = append(st.Entries, entry)
	logger.Debug("Appended tick", "streak", st.Meta.Name, "date", entry.DateString())
	return nil
}

// EntryPatch describes the fields an edit replaces. Nil fields are left
// unchanged; an empty-string comment clears it.
type EntryPatch struct {
	Quantity *float64
	Comment  *string
}

// EditEntry rewrites the file with the entry at the given instant replaced.
// This is the sanctioned exception to append-only, scoped to one entry.
func (s *Store) EditEntry(st *models.Streak, date time.Time, patch EntryPatch) error {
	idx, err := s.findOne(st, date)
	if err != nil {
		return err
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return sterrors.NewValidationError("quantity", "must not be negative")
	}
	if patch.Quantity != nil {
		st.Entries[idx].Quantity = patch.Quantity
	}
	if patch.Comment != nil {
		st.Entries[idx].Comment = *patch.Comment
	}
	return s.rewrite(st)
}

// DeleteEntry rewrites the file with the entry at the given instant removed
func (s *Store) DeleteEntry(st *models.Streak, date time.Time) error {
	idx, err := s.findOne(st, date)
	if err != nil {
		return err
	}
	st.Entries = append(st.Entries[:idx], st.Entries[idx+1:]...)
	return s.rewrite(st)
}

// findOne locates the entry for an instant. A midnight timestamp also
// matches a lone entry on that calendar day, so day-granularity callers can
// address hourly entries; two entries on the day is ambiguous.
func (s *Store) findOne(st *models.Streak, date time.Time) (int, error) {
	if idx := st.FindEntry(date); idx >= 0 {
		return idx, nil
	}
	day := date.Format(constants.DateFormat)
	matches := st.EntriesOnDay(day)
	switch len(matches) {
	case 0:
		return 0, &sterrors.NotFoundError{Identifier: fmt.Sprintf("%s entry %s", st.Meta.Name, day)}
	case 1:
		return matches[0], nil
	default:
		lines := make([]string, len(matches))
		for i, m := range matches {
			lines[i] = st.Entries[m].DateString()
		}
		return 0, &sterrors.AmbiguousError{Identifier: day, Matches: lines}
	}
}

// UpdateMetadata validates and applies a replacement header, rewriting the
// file only when the header actually changed.
func (s *Store) UpdateMetadata(st *models.Streak, meta models.Metadata) error {
	meta.HadExplicitBlock = true
	if err := meta.Validate(); err != nil {
		return err
	}

	oldHash, err := hashstructure.Hash(st.Meta, hashstructure.FormatV2, nil)
	if err != nil {
		return err
	}
	newHash, err := hashstructure.Hash(meta, hashstructure.FormatV2, nil)
	if err != nil {
		return err
	}
	if oldHash == newHash {
		logger.Debug("Metadata unchanged, skipping rewrite", "streak", st.Meta.Name)
		return nil
	}

	st.Meta = meta
	return s.rewrite(st)
}

// Remove deletes the streak's backing file entirely
func (s *Store) Remove(st *models.Streak) error {
	lock := s.fileLock(st.Path)
	lock.Lock()
	defer lock.Unlock()
	if err := os.Remove(st.Path); err != nil {
		if os.IsNotExist(err) {
			return &sterrors.NotFoundError{Identifier: st.Path}
		}
		return fmt.Errorf("failed to remove streak file: %w", err)
	}
	logger.Info("Removed streak", "name", st.Meta.Name, "path", st.Path)
	return nil
}

// rewrite serializes the full streak and replaces the file atomically
func (s *Store) rewrite(st *models.Streak) error {
	raw, err := format.Serialize(st.Meta, st.Entries)
	if err != nil {
		return err
	}
	lock := s.fileLock(st.Path)
	lock.Lock()
	defer lock.Unlock()
	return s.writeFile(st.Path, []byte(raw))
}

// writeFile writes content to a temp file in the same directory, fsyncs and
// renames it over the target so readers never observe a partial file.
func (s *Store) writeFile(path string, content []byte) error {
	return s.withRetry(func() error {
		tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.New().String()[:8])
		f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err != nil {
			return err
		}
		if _, err := f.Write(content); err != nil {
			f.Close()
			os.Remove(tmp)
			return err
		}
		if err := f.Sync(); err != nil {
			f.Close()
			os.Remove(tmp)
			return err
		}
		if err := f.Close(); err != nil {
			os.Remove(tmp)
			return err
		}
		if err := os.Rename(tmp, path); err != nil {
			os.Remove(tmp)
			return err
		}
		return nil
	})
}

// withRetry retries a transient filesystem failure once after a short
// delay. Format and validation errors are never retried.
func (s *Store) withRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt <= constants.WriteMaxRetries; attempt++ {
		if attempt > 0 {
			logger.Warn("Retrying write after transient error", "error", err)
			time.Sleep(constants.WriteRetryDelay)
		}
		err = fn()
		if err == nil || !sterrors.Retryable(err) {
			return err
		}
	}
	return err
}

// missingTrailingNewline reports whether the file's last byte is not a
// newline, which happens after an interrupted append. The next append
// repairs it by starting with a newline of its own.
func missingTrailingNewline(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, &sterrors.NotFoundError{Identifier: path}
		}
		return false, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	buf := make([]byte, 1)
	if _, err := f.ReadAt(buf, info.Size()-1); err != nil {
		return false, err
	}
	return buf[0] != '\n', nil
}
