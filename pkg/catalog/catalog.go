// Package catalog persists and queries a collection of saved mate-in-1 puzzles.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/seekerror/logw"
)

// Puzzle is a single catalog entry: an SFEN position plus author-facing metadata.
type Puzzle struct {
	ID          string    `json:"id"`
	SFEN        string    `json:"sfen"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store is a JSON-file-backed puzzle collection. Not safe for concurrent use by multiple
// processes; within a process, callers should serialize access themselves.
type Store struct {
	path string
}

// NewStore returns a Store backed by a single JSON file under dir, creating dir if necessary.
// The file itself is not created until the first Save.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("catalog: create storage dir %v: %w", dir, err)
	}
	return &Store{path: filepath.Join(dir, "user_puzzles.json")}, nil
}

// All returns every puzzle in the store in save order. A missing file is an empty catalog, not
// an error. A present but corrupt file is also treated as an empty catalog -- matching the
// distilled storage's tolerance for a damaged puzzle file -- but is logged at Warningf so the
// operator notices.
func (s *Store) All(ctx context.Context) ([]Puzzle, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: read %v: %w", s.path, err)
	}

	var puzzles []Puzzle
	if err := json.Unmarshal(data, &puzzles); err != nil {
		logw.Warningf(ctx, "catalog: %v is not valid JSON, treating as empty: %v", s.path, err)
		return nil, nil
	}
	return puzzles, nil
}

// Save assigns a new ID and creation timestamp to sfen/name/description/author/tags, appends it
// to the catalog, and persists the result atomically (write to a temp file, then rename).
func (s *Store) Save(ctx context.Context, sfen, name, description, author string, tags []string) (Puzzle, error) {
	puzzles, err := s.All(ctx)
	if err != nil {
		return Puzzle{}, err
	}

	if name == "" {
		name = fmt.Sprintf("Puzzle %v", time.Now().Format("20060102_150405"))
	}
	p := Puzzle{
		ID:          uuid.NewString(),
		SFEN:        sfen,
		Name:        name,
		Description: description,
		Author:      author,
		Tags:        tags,
		CreatedAt:   time.Now().UTC(),
	}

	puzzles = append(puzzles, p)
	if err := s.write(puzzles); err != nil {
		return Puzzle{}, err
	}

	logw.Infof(ctx, "catalog: saved puzzle %v (%v)", p.ID, p.Name)
	return p, nil
}

// Get returns the puzzle with the given ID.
func (s *Store) Get(ctx context.Context, id string) (Puzzle, bool, error) {
	puzzles, err := s.All(ctx)
	if err != nil {
		return Puzzle{}, false, err
	}
	for _, p := range puzzles {
		if p.ID == id {
			return p, true, nil
		}
	}
	return Puzzle{}, false, nil
}

// Delete removes the puzzle with the given ID, returning whether it was found.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	puzzles, err := s.All(ctx)
	if err != nil {
		return false, err
	}

	for i, p := range puzzles {
		if p.ID == id {
			puzzles = append(puzzles[:i], puzzles[i+1:]...)
			if err := s.write(puzzles); err != nil {
				return false, err
			}
			logw.Infof(ctx, "catalog: deleted puzzle %v", id)
			return true, nil
		}
	}
	return false, nil
}

// Count returns the number of puzzles currently in the catalog.
func (s *Store) Count(ctx context.Context) (int, error) {
	puzzles, err := s.All(ctx)
	if err != nil {
		return 0, err
	}
	return len(puzzles), nil
}

// Search returns puzzles matching query (case-insensitive substring over name, description and
// author) and/or tags (matches if the puzzle carries any of the given tags). When both are
// supplied a puzzle must satisfy both; within tags, any one match suffices. With neither, every
// puzzle is returned.
func (s *Store) Search(ctx context.Context, query string, tags []string) ([]Puzzle, error) {
	puzzles, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" && len(tags) == 0 {
		return puzzles, nil
	}

	queryLower := strings.ToLower(query)
	var out []Puzzle
	for _, p := range puzzles {
		if query != "" && !matchesQuery(p, queryLower) {
			continue
		}
		if len(tags) > 0 && !matchesAnyTag(p, tags) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func matchesQuery(p Puzzle, queryLower string) bool {
	return strings.Contains(strings.ToLower(p.Name), queryLower) ||
		strings.Contains(strings.ToLower(p.Description), queryLower) ||
		strings.Contains(strings.ToLower(p.Author), queryLower)
}

func matchesAnyTag(p Puzzle, tags []string) bool {
	for _, want := range tags {
		for _, have := range p.Tags {
			if want == have {
				return true
			}
		}
	}
	return false
}

func (s *Store) write(puzzles []Puzzle) error {
	data, err := json.MarshalIndent(puzzles, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog: marshal: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("catalog: write %v: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("catalog: rename %v to %v: %w", tmp, s.path, err)
	}
	return nil
}
