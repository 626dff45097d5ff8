// Package transcript provides the transcript registry backing coordinate
// translation.
package transcript

import (
	"github.com/inodb/txmap/internal/align"
)

// Strand values.
const (
	StrandForward int8 = 1
	StrandReverse int8 = -1
)

// Transcript describes how one transcript aligns to its chromosome.
type Transcript struct {
	Name   string // Unique transcript name (registry key)
	Chrom  string // Chromosome the transcript aligns to
	Start  int64  // Genomic start of the alignment (0-based)
	CIGAR  string // Raw alignment string as authored
	Strand int8   // +1 or -1

	segments []align.Segment // strand-oriented, fixed at construction
}

// New builds a transcript, parsing the alignment string once and fixing the
// strand-oriented segment order. Reverse strand reverses segment traversal
// order only; Start is not adjusted.
func New(name, chrom string, start int64, cigar string, strand int8) *Transcript {
	segments := align.Parse(cigar)
	if strand == StrandReverse {
		segments = align.Reverse(segments)
	}
	return &Transcript{
		Name:     name,
		Chrom:    chrom,
		Start:    start,
		CIGAR:    cigar,
		Strand:   strand,
		segments: segments,
	}
}

// Segments returns the strand-oriented alignment segments. The returned
// slice is shared and must not be modified.
func (t *Transcript) Segments() []align.Segment {
	return t.segments
}

// IsForwardStrand returns true if the transcript is on the forward strand.
func (t *Transcript) IsForwardStrand() bool {
	return t.Strand == StrandForward
}

// IsReverseStrand returns true if the transcript is on the reverse strand.
func (t *Transcript) IsReverseStrand() bool {
	return t.Strand == StrandReverse
}
