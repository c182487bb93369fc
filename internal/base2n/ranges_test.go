package base2n

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_ParseRangesSorted(t *testing.T) {
	rs, err := ParseRanges("afAF09", true)
	require.NoError(t, err)

	require.Equal(t, []CodepointRange{{'0', '9'}, {'A', 'F'}, {'a', 'f'}}, rs.Ranges)
	require.Equal(t, []int{6, 6, 10}, rs.Sizes)
	require.Equal(t, 22, rs.Size)
	require.Equal(t, '0', rs.FirstCodepoint)
	require.Equal(t, 'f', rs.LastCodepoint)
	require.Equal(t, int('f'-'0'+1), rs.RangeSpan)
	require.True(t, rs.Sorted)
}

func Test_ParseRangesUnsorted(t *testing.T) {
	rs, err := ParseRanges("af09", false)
	require.NoError(t, err)

	require.Equal(t, []CodepointRange{{'a', 'f'}, {'0', '9'}}, rs.Ranges)
	require.Equal(t, '0', rs.FirstCodepoint)
	require.Equal(t, 'f', rs.LastCodepoint)
	require.False(t, rs.Sorted)
}

func Test_ParseRangesCountsCodepoints(t *testing.T) {
	// Two characters outside of the BMP make one pair, not two
	rs, err := ParseRanges("\U0001F600\U0001F61F", true)
	require.NoError(t, err)
	require.Len(t, rs.Ranges, 1)
	require.Equal(t, 32, rs.Size)
}

func Test_ParseRangesInvalidCharset(t *testing.T) {
	for _, charset := range []string{"", "0", "09a", "\xff\xfe"} {
		_, err := ParseRanges(charset, true)
		require.ErrorIs(t, err, ErrInvalidCharset, "charset %q", charset)
	}
}

func Test_ParseRangesOverlapping(t *testing.T) {
	_, err := ParseRanges("095a", true)
	require.ErrorIs(t, err, ErrOverlappingRanges)

	var e *Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, []CodepointRange{{'0', '9'}, {'5', 'a'}}, e.Ranges)
	require.Contains(t, err.Error(), "OverlappingRanges")
}

func Test_ParseRangesOverlapReportsFirstPair(t *testing.T) {
	_, err := ParseRanges("azAZbcBC", true)
	var e *Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, OverlappingRanges, e.Kind)
	require.Equal(t, []CodepointRange{{'a', 'z'}, {'b', 'c'}}, e.Ranges)
}

func Test_ParseRangesNonAscending(t *testing.T) {
	_, err := ParseRanges("90", true)
	require.ErrorIs(t, err, ErrNonAscendingRange)

	var e *Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, []CodepointRange{{'9', '0'}}, e.Ranges)
}

func Test_ParseRangesDegenerate(t *testing.T) {
	_, err := ParseRanges("00", true)
	require.ErrorIs(t, err, ErrDegenerateAlphabet)
}

func Test_NewRangeSetRejectsSurrogates(t *testing.T) {
	_, err := NewRangeSet([]CodepointRange{{0xD000, 0xE000}}, true)
	require.ErrorIs(t, err, ErrInvalidCharset)

	_, err = NewRangeSet([]CodepointRange{{0x10FFF0, 0x11000F}}, true)
	require.ErrorIs(t, err, ErrInvalidCharset)

	_, err = NewRangeSet(nil, true)
	require.ErrorIs(t, err, ErrInvalidCharset)
}

func Test_NewRangeSetCopiesInput(t *testing.T) {
	in := []CodepointRange{{'a', 'f'}, {'0', '9'}}
	rs, err := NewRangeSet(in, true)
	require.NoError(t, err)
	require.Equal(t, CodepointRange{'a', 'f'}, in[0])
	require.Equal(t, CodepointRange{'0', '9'}, rs.Ranges[0])
}

func Test_CodepointRangeOverlaps(t *testing.T) {
	require.True(t, CodepointRange{'0', '9'}.Overlaps(CodepointRange{'9', 'a'}))
	require.True(t, CodepointRange{'0', '9'}.Overlaps(CodepointRange{'3', '4'}))
	require.False(t, CodepointRange{'0', '9'}.Overlaps(CodepointRange{'a', 'z'}))
	require.Equal(t, "U+0030-U+0039", CodepointRange{'0', '9'}.String())
}
