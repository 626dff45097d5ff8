// Package translate orchestrates coordinate translation of query streams.
package translate

import (
	"go.uber.org/zap"

	"github.com/inodb/txmap/internal/align"
	"github.com/inodb/txmap/internal/query"
	"github.com/inodb/txmap/internal/transcript"
)

// QuerySource yields query rows one at a time. Next returns nil, nil when
// the stream is exhausted.
type QuerySource interface {
	Next() (*query.Query, error)
}

// ResultWriter consumes translated positions.
type ResultWriter interface {
	Write(q *query.Query, res *Result) error
	Flush() error
}

// Result is the translated position for a single query.
type Result struct {
	Chrom    string
	Position int64
}

// Translator resolves query positions against a transcript registry. The
// direction is fixed per run; the registry must be fully loaded before use.
type Translator struct {
	registry  *transcript.Registry
	direction align.Direction
	logger    *zap.Logger
}

// NewTranslator creates a translator for the given registry and direction.
func NewTranslator(r *transcript.Registry, dir align.Direction) *Translator {
	return &Translator{
		registry:  r,
		direction: dir,
		logger:    zap.NewNop(),
	}
}

// SetLogger sets the logger for per-query debug output.
func (t *Translator) SetLogger(l *zap.Logger) {
	t.logger = l
}

// Translate resolves a single query. An unregistered transcript name is an
// error; any in-range or out-of-range position resolves (positions past the
// alignment clamp to its end).
func (t *Translator) Translate(q *query.Query) (*Result, error) {
	tr, err := t.registry.Get(q.Name)
	if err != nil {
		return nil, err
	}

	pos := align.ResolvePosition(tr.Segments(), tr.Start, q.Pos, t.direction)

	t.logger.Debug("translated position",
		zap.String("transcript", q.Name),
		zap.String("chrom", tr.Chrom),
		zap.Int64("from", q.Pos),
		zap.Int64("to", pos),
		zap.Stringer("direction", t.direction))

	return &Result{Chrom: tr.Chrom, Position: pos}, nil
}

// TranslateAll translates every query from src and writes each result in
// input order. The first malformed row, unknown transcript, or write
// failure aborts the run.
func (t *Translator) TranslateAll(src QuerySource, w ResultWriter) error {
	count := 0
	for {
		q, err := src.Next()
		if err != nil {
			return err
		}
		if q == nil {
			break
		}

		res, err := t.Translate(q)
		if err != nil {
			return err
		}
		if err := w.Write(q, res); err != nil {
			return err
		}
		count++
	}

	t.logger.Info("translation complete", zap.Int("queries", count))
	return w.Flush()
}
