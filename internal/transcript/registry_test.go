package transcript

import (
	"testing"

	"github.com/inodb/txmap/internal/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAddGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(New("TR1", "CHR1", 3, "8M7D6M2I2M11D7M", StrandForward)))
	require.NoError(t, r.Add(New("TR2", "CHR2", 10, "20M", StrandForward)))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"TR1", "TR2"}, r.Names())

	tr, err := r.Get("TR1")
	require.NoError(t, err)
	assert.Equal(t, "CHR1", tr.Chrom)
	assert.Equal(t, int64(3), tr.Start)
}

func TestRegistryDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(New("TR1", "CHR1", 0, "10M", StrandForward)))

	err := r.Add(New("TR1", "CHR2", 5, "5M", StrandForward))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateTranscript)
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("MISSING")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTranscript)
	// Unknown-transcript must stay distinct from the load-time kinds.
	assert.NotErrorIs(t, err, ErrDuplicateTranscript)
}

func TestTranscriptSegmentsOrientation(t *testing.T) {
	fwd := New("F", "CHR1", 0, "4M2D6M", StrandForward)
	rev := New("R", "CHR1", 0, "4M2D6M", StrandReverse)

	assert.Equal(t, []align.Segment{
		{Length: 4, Op: align.OpMatch},
		{Length: 2, Op: align.OpDeletion},
		{Length: 6, Op: align.OpMatch},
	}, fwd.Segments())
	assert.Equal(t, []align.Segment{
		{Length: 6, Op: align.OpMatch},
		{Length: 2, Op: align.OpDeletion},
		{Length: 4, Op: align.OpMatch},
	}, rev.Segments())

	// Start is never adjusted for strand; only traversal order changes.
	assert.Equal(t, fwd.Start, rev.Start)
	assert.True(t, fwd.IsForwardStrand())
	assert.True(t, rev.IsReverseStrand())
}

func TestTranscriptSegmentsStable(t *testing.T) {
	tr := New("TR1", "CHR1", 3, "8M7D6M", StrandReverse)

	first := tr.Segments()
	second := tr.Segments()
	assert.Equal(t, first, second)
}
