package transcript

import (
	"errors"
	"fmt"
	"sort"
)

// Error kinds surfaced by registry construction and lookup. Callers match
// them with errors.Is; every one aborts the run.
var (
	ErrMalformedRow        = errors.New("malformed transcript row")
	ErrInvalidStart        = errors.New("invalid start position")
	ErrInvalidStrand       = errors.New("invalid orientation")
	ErrDuplicateTranscript = errors.New("duplicate transcript")
	ErrUnknownTranscript   = errors.New("unknown transcript")
)

// Registry holds the set of known transcripts keyed by name. It is built
// once before queries are processed and is read-only afterwards, so it is
// safe to share across concurrent lookups without locking.
type Registry struct {
	transcripts map[string]*Transcript
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		transcripts: make(map[string]*Transcript),
	}
}

// Add adds a transcript to the registry. A repeated name is an error.
func (r *Registry) Add(t *Transcript) error {
	if _, ok := r.transcripts[t.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTranscript, t.Name)
	}
	r.transcripts[t.Name] = t
	return nil
}

// Get returns the transcript with the given name.
func (r *Registry) Get(name string) (*Transcript, error) {
	t, ok := r.transcripts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTranscript, name)
	}
	return t, nil
}

// Len returns the number of registered transcripts.
func (r *Registry) Len() int {
	return len(r.transcripts)
}

// Names returns a sorted list of registered transcript names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.transcripts))
	for name := range r.transcripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
