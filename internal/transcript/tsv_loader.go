package transcript

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/inodb/txmap/internal/align"
)

// Expected field counts for transcript rows.
const (
	fieldsWithoutStrand = 4 // name, chrom, start, cigar
	fieldsWithStrand    = 5 // adds forward/reverse orientation
)

// TSVLoader loads transcripts from a tab-separated file. Rows carry 4
// fields (orientation defaults to forward) or 5 fields (explicit
// orientation). The first invalid row aborts the load.
type TSVLoader struct {
	path   string
	strict bool
}

// NewTSVLoader creates a new TSV loader.
func NewTSVLoader(path string) *TSVLoader {
	return &TSVLoader{path: path}
}

// SetStrict configures whether alignment strings must be fully covered by
// length+opcode pairs. By default unrecognized substrings are dropped.
func (l *TSVLoader) SetStrict(strict bool) {
	l.strict = strict
}

// Load reads all transcript rows into the registry.
func (l *TSVLoader) Load(r *Registry) error {
	f, err := os.Open(l.path)
	if err != nil {
		return fmt.Errorf("open transcripts file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	// Handle gzipped files
	if strings.HasSuffix(l.path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return l.load(reader, r)
}

// load parses transcript rows from reader and populates the registry.
func (l *TSVLoader) load(reader io.Reader, r *Registry) error {
	scanner := bufio.NewScanner(reader)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")

		// A blank line splits to a single empty column and fails the
		// field-count check like any other malformed row.
		t, err := l.parseRow(strings.Split(line, "\t"))
		if err != nil {
			return fmt.Errorf("transcripts line %d: %w", lineNumber, err)
		}
		if err := r.Add(t); err != nil {
			return fmt.Errorf("transcripts line %d: %w", lineNumber, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read transcripts: %w", err)
	}
	return nil
}

// parseRow validates one row and builds its transcript.
func (l *TSVLoader) parseRow(fields []string) (*Transcript, error) {
	if len(fields) != fieldsWithoutStrand && len(fields) != fieldsWithStrand {
		return nil, fmt.Errorf("%w: expected %d or %d columns, received %d",
			ErrMalformedRow, fieldsWithoutStrand, fieldsWithStrand, len(fields))
	}

	name, chrom, startField, cigar := fields[0], fields[1], fields[2], fields[3]

	start, err := strconv.ParseInt(startField, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q must be an integer", ErrInvalidStart, startField)
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: %q must be non-negative", ErrInvalidStart, startField)
	}

	strand := StrandForward
	if len(fields) == fieldsWithStrand {
		switch fields[4] {
		case "forward":
			strand = StrandForward
		case "reverse":
			strand = StrandReverse
		default:
			return nil, fmt.Errorf("%w: %q must be forward or reverse", ErrInvalidStrand, fields[4])
		}
	}

	if l.strict {
		if _, err := align.ParseStrict(cigar); err != nil {
			return nil, err
		}
	}

	return New(name, chrom, start, cigar, strand), nil
}
