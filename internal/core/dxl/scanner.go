package dxl

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/inspecthq/ferrite/internal/config"
)

// ErrDirectoryNotFound is the one fatal scan precondition: the root path is
// missing or not a directory. Everything else is per-file and non-fatal.
var ErrDirectoryNotFound = errors.New("directory not found")

type FileFailure struct {
	File string
	Err  error
}

// Result aggregates one scan run. Files maps file name to its extracted
// items; files that yielded zero items are not recorded.
type Result struct {
	Files    map[string]map[string]string
	Failures []FileFailure
	Scanned  int
}

// ItemCount is the total number of items across all recorded files.
func (r *Result) ItemCount() int {
	total := 0
	for _, items := range r.Files {
		total += len(items)
	}
	return total
}

// UniqueValues flattens all extracted text values into a deduplicated,
// lexicographically sorted list.
func (r *Result) UniqueValues() []string {
	seen := make(map[string]struct{})
	for _, items := range r.Files {
		for _, text := range items {
			seen[text] = struct{}{}
		}
	}
	values := make([]string, 0, len(seen))
	for text := range seen {
		values = append(values, text)
	}
	sort.Strings(values)
	return values
}

type Scanner struct {
	Extension string
	Workers   int
}

func NewScanner(cfg config.ScannerConfig) *Scanner {
	return &Scanner{
		Extension: cfg.Extension,
		Workers:   cfg.Workers,
	}
}

// Scan walks root recursively, extracts prefix items from every matching
// file, and records each file's result independently. A file that cannot be
// read or extracted is logged, recorded as a failure, and skipped.
func (s *Scanner) Scan(root, prefix string) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("folder '%s': %w", root, ErrDirectoryNotFound)
	}

	var paths []string
	result := &Result{Files: make(map[string]map[string]string)}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Failures = append(result.Failures, FileFailure{File: path, Err: err})
			log.Printf("Error walking %s: %v", path, err)
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != s.Extension {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		log.Printf("No %s files found in %s", s.Extension, root)
		return result, nil
	}

	workers := s.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				name := filepath.Base(path)
				data, err := os.ReadFile(path)
				if err != nil {
					log.Printf("Error processing %s: %v", name, err)
					mu.Lock()
					result.Failures = append(result.Failures, FileFailure{File: name, Err: err})
					mu.Unlock()
					continue
				}
				items := ExtractItems(string(data), prefix)
				log.Printf("Processed %s - found %d %s items", name, len(items), prefix)
				mu.Lock()
				result.Scanned++
				if len(items) > 0 {
					result.Files[name] = items
				}
				mu.Unlock()
			}
		}()
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	return result, nil
}
