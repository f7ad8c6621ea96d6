package filter

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/timescale/intrinsic-names/internal/intrinsics/table"
)

// DefaultPrefix selects the AVX2 intrinsics.
const DefaultPrefix = "llvm.x86.avx2"

// ByPrefix returns the names in seq that start with prefix, in their
// original order. The comparison is byte-exact and case-sensitive. The
// returned sequence is lazy and may be ranged over any number of times.
func ByPrefix(seq iter.Seq[string], prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range seq {
			if strings.HasPrefix(name, prefix) {
				if !yield(name) {
					return
				}
			}
		}
	}
}

// Matches filters every name in t, the sentinel included. A nil t yields
// nothing.
func Matches(t *table.Table, prefix string) iter.Seq[string] {
	return ByPrefix(t.Names(), prefix)
}

// Print writes each name in seq on its own line and returns the number of
// lines written.
func Print(w io.Writer, seq iter.Seq[string]) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for name := range seq {
		if _, err := bw.WriteString(name); err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}
