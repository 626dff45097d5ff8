// Package query provides parsing of coordinate-translation query rows.
package query

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Error kinds surfaced while reading query rows.
var (
	ErrMalformedRow    = errors.New("malformed query row")
	ErrInvalidPosition = errors.New("invalid requested position")
)

// queryFields is the exact number of tab-separated columns in a query row.
const queryFields = 2

// Query is one requested position on a named transcript. Fields echoes the
// original input columns so output rows can repeat them verbatim.
type Query struct {
	Name   string
	Pos    int64
	Fields []string
}

// Parser reads query rows from a tab-separated file.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
}

// NewParser creates a new query parser for the given file.
// Supports both plain and gzipped input, and '-' for stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open queries file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read queries file: %w", err)
	}

	// Seek back to beginning
	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek queries file: %w", err)
	}

	// Check for gzip magic number (0x1f, 0x8b)
	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g., stdin).
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{
		reader: bufio.NewReader(r),
	}
}

// Next reads the next query row.
// Returns nil, nil when there are no more rows.
func (p *Parser) Next() (*Query, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read query line: %w", err)
	}
	if line == "" && err == io.EOF {
		return nil, nil
	}
	p.lineNumber++

	line = strings.TrimRight(line, "\r\n")
	return p.parseLine(line)
}

// parseLine parses a single query row.
func (p *Parser) parseLine(line string) (*Query, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != queryFields {
		return nil, fmt.Errorf("queries line %d: %w: expected %d columns, received %d",
			p.lineNumber, ErrMalformedRow, queryFields, len(fields))
	}

	pos, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("queries line %d: %w: %q must be an integer",
			p.lineNumber, ErrInvalidPosition, fields[1])
	}
	if pos < 0 {
		return nil, fmt.Errorf("queries line %d: %w: %q must be non-negative",
			p.lineNumber, ErrInvalidPosition, fields[1])
	}

	return &Query{
		Name:   fields[0],
		Pos:    pos,
		Fields: fields,
	}, nil
}

// Close closes the underlying file handles.
func (p *Parser) Close() error {
	var err error
	if p.gzipReader != nil {
		err = p.gzipReader.Close()
	}
	if p.file != nil {
		if cerr := p.file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
