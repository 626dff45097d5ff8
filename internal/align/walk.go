package align

// Direction selects which coordinate space a requested position belongs to.
type Direction int

const (
	// TranscriptToGenomic resolves a transcript-space position to genomic space.
	TranscriptToGenomic Direction = iota
	// GenomicToTranscript resolves a genomic-space position to transcript space.
	GenomicToTranscript
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	if d == GenomicToTranscript {
		return "genomic-to-transcript"
	}
	return "transcript-to-genomic"
}

// ResolvePosition walks the segments, accumulating positions in both
// coordinate spaces, and returns the position in the target space once the
// requested position in the source space is reached.
//
// Segments must already be oriented for the transcript's strand (see
// transcript.Transcript.Segments). The walk stops before the first segment
// whose start lies at or past the requested position; Match/Mismatch
// segments are consumed only up to the requested position, while
// Deletion/Gap and Insertion segments always advance their space by the
// full segment length. A genomic target inside a deleted or gapped region
// therefore resolves to the transcript position at the region's left edge.
// A requested position past the end of all segments clamps to the fully
// accumulated position.
func ResolvePosition(segments []Segment, genomicStart, pos int64, dir Direction) int64 {
	genomicPos := genomicStart
	var transcriptPos int64

	for _, seg := range segments {
		current := transcriptPos
		if dir == GenomicToTranscript {
			current = genomicPos
		}
		if current >= pos {
			break
		}

		switch seg.Op {
		case OpMatch, OpMismatch:
			// Both spaces advance together, clamped so the source
			// space never passes the requested position.
			advance := min(seg.Length, pos-current)
			genomicPos += advance
			transcriptPos += advance
		case OpDeletion, OpGap:
			genomicPos += seg.Length
		case OpInsertion:
			transcriptPos += seg.Length
		}
	}

	if dir == GenomicToTranscript {
		return transcriptPos
	}
	return genomicPos
}
