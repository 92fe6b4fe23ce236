// Package inbox reads bulk SMS exports dropped into <root>/import/ and
// splits them into individual message bodies.
package inbox

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Reader splits one export file into message bodies.
type Reader interface {
	Read(r io.Reader) ([]string, error)
	// Format is the file extension the reader handles, without the dot.
	Format() string
}

// Registry maps file extensions to readers.
type Registry struct {
	readers map[string]Reader
}

// FileInfo describes an importable file in the inbox.
type FileInfo struct {
	Name   string
	Path   string
	Size   int64
	Format string
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rd Reader) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate inbox format: " + key)
	}
	r.readers[key] = rd
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with the plain-text and CSV readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&TextReader{})
	r.Register(&CSVReader{})
	return r
}

const (
	importDir    = "import"
	processedDir = "import/processed"
)

// Dir returns the inbox directory under root.
func Dir(root string) string {
	return filepath.Join(root, importDir)
}

// Scan returns the files in <root>/import/ that some reader in reg handles,
// in directory order.
func (r *Registry) Scan(root string) ([]FileInfo, error) {
	entries, err := os.ReadDir(Dir(root))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		format := strings.TrimPrefix(filepath.Ext(e.Name()), ".")
		if r.Get(format) == nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name:   e.Name(),
			Path:   filepath.Join(Dir(root), e.Name()),
			Size:   info.Size(),
			Format: strings.ToLower(format),
		})
	}
	return files, nil
}

// ReadFile opens fi and splits it with the matching reader.
func (r *Registry) ReadFile(fi FileInfo) ([]string, error) {
	rd := r.Get(fi.Format)
	if rd == nil {
		return nil, fmt.Errorf("no reader for %s files", fi.Format)
	}

	f, err := os.Open(fi.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", fi.Name, err)
	}
	defer f.Close()

	msgs, err := rd.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fi.Name, err)
	}
	return msgs, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(root, fileName string) error {
	dstDir := filepath.Join(root, processedDir)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	src := filepath.Join(Dir(root), fileName)
	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
