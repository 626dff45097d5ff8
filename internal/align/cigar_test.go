package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		cigar string
		want  []Segment
	}{
		{
			name:  "single match block",
			cigar: "10M",
			want:  []Segment{{10, OpMatch}},
		},
		{
			name:  "mixed operations",
			cigar: "8M7D6M2I2M11D7M",
			want: []Segment{
				{8, OpMatch}, {7, OpDeletion}, {6, OpMatch},
				{2, OpInsertion}, {2, OpMatch}, {11, OpDeletion}, {7, OpMatch},
			},
		},
		{
			name:  "mismatch and gap operations",
			cigar: "5M2X3N4M",
			want:  []Segment{{5, OpMatch}, {2, OpMismatch}, {3, OpGap}, {4, OpMatch}},
		},
		{
			name:  "multi-digit lengths",
			cigar: "120M3000N80M",
			want:  []Segment{{120, OpMatch}, {3000, OpGap}, {80, OpMatch}},
		},
		{
			name:  "unrecognized operator is dropped",
			cigar: "4M3S2M",
			want:  []Segment{{4, OpMatch}, {2, OpMatch}},
		},
		{
			name:  "stray characters are dropped",
			cigar: "4M;2D x1I",
			want:  []Segment{{4, OpMatch}, {2, OpDeletion}, {1, OpInsertion}},
		},
		{
			name:  "opcode without length is dropped",
			cigar: "M4D",
			want:  []Segment{{4, OpDeletion}},
		},
		{
			name:  "empty string",
			cigar: "",
			want:  []Segment{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.cigar))
		})
	}
}

func TestParseStrict(t *testing.T) {
	segs, err := ParseStrict("8M7D6M2I2M11D7M")
	require.NoError(t, err)
	assert.Len(t, segs, 7)

	tests := []struct {
		name  string
		cigar string
	}{
		{"empty string", ""},
		{"unsupported operator", "4M3S2M"},
		{"leading junk", "x4M"},
		{"trailing junk", "4M2D!"},
		{"bare opcode", "M"},
		{"length without opcode", "4M12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStrict(tt.cigar)
			assert.Error(t, err)
		})
	}
}

func TestSegmentString(t *testing.T) {
	assert.Equal(t, "8M", Segment{8, OpMatch}.String())
	assert.Equal(t, "11D", Segment{11, OpDeletion}.String())
	assert.Equal(t, "3000N", Segment{3000, OpGap}.String())
}

func TestReverse(t *testing.T) {
	segs := Parse("4M2D6M")
	reversed := Reverse(segs)

	assert.Equal(t, []Segment{{6, OpMatch}, {2, OpDeletion}, {4, OpMatch}}, reversed)
	// Input must be untouched.
	assert.Equal(t, []Segment{{4, OpMatch}, {2, OpDeletion}, {6, OpMatch}}, segs)
}

func TestOpConsumes(t *testing.T) {
	tests := []struct {
		op         Op
		genomic    bool
		transcript bool
	}{
		{OpMatch, true, true},
		{OpMismatch, true, true},
		{OpDeletion, true, false},
		{OpGap, true, false},
		{OpInsertion, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.genomic, tt.op.ConsumesGenomic())
			assert.Equal(t, tt.transcript, tt.op.ConsumesTranscript())
		})
	}
}
