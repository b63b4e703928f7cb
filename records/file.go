package records

import (
	"os"

	"github.com/hjson/hjson-go/v4"

	"github.com/skybreak-gg/skybreak/serror"
)

// File is a Store backed by an hjson file. Mutations stay in memory until
// Flush writes them out, so hosts can flush off the tick path.
type File struct {
	path  string
	times map[string]float64
	dirty bool
}

// OpenFile loads the store at path. A missing file yields an empty store.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, times: map[string]float64{}}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, serror.New("unable to read records file %s: %v", path, err)
	}
	if err := hjson.Unmarshal(raw, &f.times); err != nil {
		return nil, serror.New("unable to decode records file %s: %v", path, err)
	}
	return f, nil
}

func (f *File) Get(levelID string) (float64, bool) {
	t, ok := f.times[levelID]
	return t, ok
}

func (f *File) Set(levelID string, seconds float64) {
	f.times[levelID] = seconds
	f.dirty = true
}

// Flush writes pending changes to disk. A clean store is a no-op.
func (f *File) Flush() error {
	if !f.dirty {
		return nil
	}
	raw, err := hjson.Marshal(f.times)
	if err != nil {
		return serror.New("unable to encode records: %v", err)
	}
	if err := os.WriteFile(f.path, raw, 0644); err != nil {
		return serror.New("unable to write records file %s: %v", f.path, err)
	}
	f.dirty = false
	return nil
}
