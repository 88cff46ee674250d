package dictation

// SegmentKind classifies a span of the word-level diff.
type SegmentKind string

// Possible segment kinds
const (
	// SegmentUnchanged marks words present in both target and attempt, in order.
	SegmentUnchanged SegmentKind = "unchanged"
	// SegmentRemoved marks target words absent or misplaced in the attempt.
	SegmentRemoved SegmentKind = "removed"
	// SegmentAdded marks extra words typed by the user.
	SegmentAdded SegmentKind = "added"
)

// Segment is one run of consecutive words sharing a diff classification.
type Segment struct {
	Kind  SegmentKind `json:"kind"`
	Words []string    `json:"words"`
}

// DiffWords aligns two token sequences using a longest-common-subsequence
// table and returns the alignment as ordered segments. For a mismatched
// region the removed target words are emitted before the added attempt
// words.
func DiffWords(target, attempt []string) []Segment {
	n, m := len(target), len(attempt)

	// lcs[i][j] is the LCS length of target[i:] and attempt[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if target[i] == attempt[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var segments []Segment
	appendWord := func(kind SegmentKind, word string) {
		if len(segments) > 0 && segments[len(segments)-1].Kind == kind {
			last := &segments[len(segments)-1]
			last.Words = append(last.Words, word)
			return
		}
		segments = append(segments, Segment{Kind: kind, Words: []string{word}})
	}

	i, j := 0, 0
	for i < n && j < m {
		switch {
		case target[i] == attempt[j]:
			appendWord(SegmentUnchanged, target[i])
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			appendWord(SegmentRemoved, target[i])
			i++
		default:
			appendWord(SegmentAdded, attempt[j])
			j++
		}
	}
	for ; i < n; i++ {
		appendWord(SegmentRemoved, target[i])
	}
	for ; j < m; j++ {
		appendWord(SegmentAdded, attempt[j])
	}

	return segments
}
