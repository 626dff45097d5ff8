// Package align implements CIGAR-driven coordinate mapping between a
// transcript's local coordinate space and the genomic coordinate space
// of the chromosome it aligns to.
package align

import (
	"fmt"
	"regexp"
	"strconv"
)

// Op is a single CIGAR operation code.
type Op byte

// Supported CIGAR operations. Clipping and padding operators are not part
// of the transcript alignment encoding and are rejected by strict parsing.
const (
	OpMatch     Op = 'M'
	OpMismatch  Op = 'X'
	OpDeletion  Op = 'D'
	OpInsertion Op = 'I'
	OpGap       Op = 'N'
)

// String returns the single-letter CIGAR code for the operation.
func (op Op) String() string {
	return string(byte(op))
}

// ConsumesGenomic returns true if the operation advances the genomic position.
func (op Op) ConsumesGenomic() bool {
	switch op {
	case OpMatch, OpMismatch, OpDeletion, OpGap:
		return true
	}
	return false
}

// ConsumesTranscript returns true if the operation advances the transcript position.
func (op Op) ConsumesTranscript() bool {
	switch op {
	case OpMatch, OpMismatch, OpInsertion:
		return true
	}
	return false
}

// Segment is one run-length unit of an alignment string, e.g. "8M" or "7D".
type Segment struct {
	Length int64
	Op     Op
}

// String returns the segment in CIGAR notation.
func (s Segment) String() string {
	return fmt.Sprintf("%d%s", s.Length, s.Op)
}

// reCigar matches one length+opcode pair of the alignment encoding.
var reCigar = regexp.MustCompile(`(\d+)([MXDIN])`)

// Parse extracts all (length, operation) pairs from an alignment string in
// left-to-right order. Substrings that do not match a pair are dropped
// without error; use ParseStrict to reject them instead.
func Parse(cigar string) []Segment {
	matches := reCigar.FindAllStringSubmatch(cigar, -1)
	segments := make([]Segment, 0, len(matches))
	for _, m := range matches {
		// The pattern only admits decimal digits, so this cannot fail.
		length, _ := strconv.ParseInt(m[1], 10, 64)
		segments = append(segments, Segment{Length: length, Op: Op(m[2][0])})
	}
	return segments
}

// ParseStrict parses an alignment string, requiring the entire input to be
// covered by length+opcode pairs. A non-empty input with leftover characters
// or an empty input returns an error.
func ParseStrict(cigar string) ([]Segment, error) {
	if cigar == "" {
		return nil, fmt.Errorf("empty alignment string")
	}
	locs := reCigar.FindAllStringIndex(cigar, -1)
	end := 0
	for _, loc := range locs {
		if loc[0] != end {
			return nil, fmt.Errorf("malformed alignment string %q: unexpected character at offset %d", cigar, end)
		}
		end = loc[1]
	}
	if end != len(cigar) {
		return nil, fmt.Errorf("malformed alignment string %q: unexpected character at offset %d", cigar, end)
	}
	return Parse(cigar), nil
}

// Reverse returns a new slice with the segments in reverse order. The input
// is not modified.
func Reverse(segments []Segment) []Segment {
	reversed := make([]Segment, len(segments))
	for i, s := range segments {
		reversed[len(segments)-1-i] = s
	}
	return reversed
}
