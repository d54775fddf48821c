package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/example/medshare/internal/models"
)

// ErrNotFound is returned when no record matches the given key.
var ErrNotFound = errors.New("record not found")

// Table is a CSV-backed collection of rows. Every mutation loads the whole
// file, applies the change in memory and rewrites the file. The mutex is held
// across the full load-mutate-rewrite cycle, so concurrent requests within
// this process cannot lose updates; nothing coordinates across processes.
type Table[T any] struct {
	path string
	mu   sync.Mutex
}

func newTable[T any](path string) (*Table[T], error) {
	t := &Table[T]{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := t.writeAll([]T{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return t, nil
}

// All returns every row in the table.
func (t *Table[T]) All() ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.readAll()
}

// Append adds a single row without rewriting existing ones.
func (t *Table[T]) Append(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := os.OpenFile(t.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	rows := []T{row}
	return gocsv.MarshalWithoutHeaders(&rows, f)
}

// Update loads all rows, applies fn and rewrites the whole table with the
// returned slice. fn runs under the table lock and must not call back into
// the table.
func (t *Table[T]) Update(fn func(rows []T) ([]T, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows, err := t.readAll()
	if err != nil {
		return err
	}
	updated, err := fn(rows)
	if err != nil {
		return err
	}
	return t.writeAll(updated)
}

func (t *Table[T]) readAll() ([]T, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []T
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, err
	}
	return rows, nil
}

func (t *Table[T]) writeAll(rows []T) error {
	f, err := os.Create(t.path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&rows, f)
}

// Store bundles the flat-file tables backing the API. Files are created with
// their header row on first open.
type Store struct {
	Users       *Table[models.User]
	Pharmacists *Table[models.Pharmacist]
	Listings    *Table[models.Listing]
	Feedback    *Table[models.Feedback]
	Newsletter  *Table[models.NewsletterSubscription]
}

// Open prepares the data directory and all tables.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	users, err := newTable[models.User](filepath.Join(dataDir, "users.csv"))
	if err != nil {
		return nil, err
	}
	pharmacists, err := newTable[models.Pharmacist](filepath.Join(dataDir, "pharmacists.csv"))
	if err != nil {
		return nil, err
	}
	listings, err := newTable[models.Listing](filepath.Join(dataDir, "listings.csv"))
	if err != nil {
		return nil, err
	}
	feedback, err := newTable[models.Feedback](filepath.Join(dataDir, "feedback.csv"))
	if err != nil {
		return nil, err
	}
	newsletter, err := newTable[models.NewsletterSubscription](filepath.Join(dataDir, "newsletter.csv"))
	if err != nil {
		return nil, err
	}

	return &Store{
		Users:       users,
		Pharmacists: pharmacists,
		Listings:    listings,
		Feedback:    feedback,
		Newsletter:  newsletter,
	}, nil
}
