// core/record/record.go
package record

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
)

// Entry is one ranked sequence from the upstream count/dedup stage.
// Header is the raw identifier ("rank[(dup)]-reads-rpm"); the rank token may
// carry a parenthesized uniqueness suffix and is never parsed into a number.
type Entry struct {
	Header string
	Reads  int
	RPM    float64
	Seq    []byte
}

// headerRe matches the ranked-abundance identifier grammar. Groups capture
// the reads and rpm fields; the rank token stays opaque.
var headerRe = regexp.MustCompile(`^\d+(?:\(\d+\))?-(\d+)-(\d+(?:\.\d+)?)$`)

// Parse scans FASTA-style ranked records from r and returns the entries that
// match the grammar and carry reads strictly greater than filter. Records
// that do not match are skipped without error. Input order is preserved; the
// upstream stage already sorted by descending reads and Parse never re-sorts.
func Parse(r io.Reader, filter float64) ([]Entry, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 4<<20)

	var (
		out     []Entry
		cur     Entry
		open    bool // header seen and valid, sequence may follow
		tainted bool
	)
	flush := func() {
		if open && !tainted && len(cur.Seq) > 0 && float64(cur.Reads) > filter {
			out = append(out, cur)
		}
		cur, open, tainted = Entry{}, false, false
	}

	for sc.Scan() {
		line := sc.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			m := headerRe.FindStringSubmatch(line[1:])
			if m == nil {
				continue
			}
			reads, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			rpm, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			cur = Entry{Header: line[1:], Reads: reads, RPM: rpm}
			open = true
			continue
		}
		if !open || tainted {
			continue
		}
		if !isAlpha(line) {
			// non-letter sequence data invalidates the whole record
			cur.Seq = nil
			tainted = true
			continue
		}
		cur.Seq = append(cur.Seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return out, nil
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
