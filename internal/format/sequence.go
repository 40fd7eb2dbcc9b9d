package format

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// SequenceTruncationLimit is the element count from which a coefficient
	// sequence is truncated in standard output to avoid cluttering the
	// terminal.
	SequenceTruncationLimit = 32

	// SequenceDisplayEdges is the number of coefficients shown at each end
	// of a truncated sequence.
	SequenceDisplayEdges = 8
)

// FormatSequence renders a coefficient sequence as "[c0 c1 ... cN]".
// Sequences longer than SequenceTruncationLimit are shown as head ... tail
// with the total element count appended.
func FormatSequence(s []int64) string {
	if len(s) <= SequenceTruncationLimit {
		return formatAll(s)
	}

	var b strings.Builder
	b.WriteByte('[')
	writeCoefficients(&b, s[:SequenceDisplayEdges])
	b.WriteString(" ... ")
	writeCoefficients(&b, s[len(s)-SequenceDisplayEdges:])
	b.WriteByte(']')
	fmt.Fprintf(&b, " (%d coefficients, truncated)", len(s))
	return b.String()
}

func formatAll(s []int64) string {
	var b strings.Builder
	b.WriteByte('[')
	writeCoefficients(&b, s)
	b.WriteByte(']')
	return b.String()
}

func writeCoefficients(b *strings.Builder, s []int64) {
	for i, c := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(c, 10))
	}
}

// ParseSequence parses a comma-separated list of signed 64-bit integers,
// e.g. "1,2,-3,4". Surrounding whitespace around each coefficient is
// ignored. An empty string yields an empty sequence.
func ParseSequence(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	seq := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", strings.TrimSpace(p), err)
		}
		seq = append(seq, v)
	}
	return seq, nil
}
