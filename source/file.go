package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/apportion/types"
)

var errNoElection = fmt.Errorf("%w: source holds no election", types.ErrDegenerateInput)

// File implements a vote source reading a normalized election dataset.
//
// The dataset is YAML; JSON files are accepted as well because JSON is a
// subset of YAML. Field names follow the json/yaml tags of types.Election.
// The file is read on every LoadElection call.
type File struct {
	path string
}

var _ types.VoteSource = (*File)(nil)

// NewFile creates a vote source reading the dataset at path.
//
// Example:
//
//	src := source.NewFile("testdata/btw2017.yaml")
//	election, err := src.LoadElection(ctx)
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the dataset path.
func (f *File) Path() string {
	return f.path
}

// LoadElection reads and decodes the dataset.
//
// Returns:
//   - *types.Election: Decoded election
//   - error: File or decode error wrapped with the path
func (f *File) LoadElection(ctx context.Context) (*types.Election, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer fh.Close()

	e, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", f.path, err)
	}

	return e, nil
}

// Decode reads one election from r. Unknown fields are rejected.
//
// Parameters:
//   - r: YAML or JSON document
//
// Returns:
//   - *types.Election: Decoded election
//   - error: ErrInvalidInput (wrapped) for malformed or empty documents
func Decode(r io.Reader) (*types.Election, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var e types.Election
	if err := dec.Decode(&e); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty dataset", types.ErrInvalidInput)
		}

		return nil, fmt.Errorf("%w: %w", types.ErrInvalidInput, err)
	}

	return &e, nil
}

// Encode writes e as YAML to w.
func Encode(w io.Writer, e *types.Election) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e); err != nil {
		return err
	}

	return enc.Close()
}
