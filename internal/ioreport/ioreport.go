// Package ioreport computes corpus statistics of a lexicon with several
// workers and renders them as text or JSON.
package ioreport

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlex/pkg/lexicon"
	"golang.org/x/sync/errgroup"
)

// Build splits entries between jobs workers, tallies every part and
// merges the parts in order.
func Build(
	ctx context.Context,
	l *lexicon.Lexicon,
	jobs int,
	progress bool,
) (*lexicon.Report, error) {
	start := time.Now()
	ee := l.Snapshot()
	jobs = max(1, min(jobs, len(ee)))
	size := (len(ee) + jobs - 1) / jobs

	var bar *pb.ProgressBar
	if progress {
		bar = pb.Full.Start(len(ee))
		bar.Set("prefix", "Counting: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	tallies := make([]*lexicon.Tally, jobs)
	g, gCtx := errgroup.WithContext(ctx)
	for i := range jobs {
		t := l.NewTally()
		tallies[i] = t
		part := ee[min(i*size, len(ee)):min((i+1)*size, len(ee))]

		g.Go(func() error {
			for j, e := range part {
				if j%1024 == 0 {
					if err := gCtx.Err(); err != nil {
						return err
					}
				}
				t.Add(e)
				if bar != nil {
					bar.Increment()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, ReportError(err)
	}

	res := tallies[0]
	for _, t := range tallies[1:] {
		res.Merge(t)
	}

	slog.Info("Built lexicon statistics",
		"entries", len(ee),
		"jobs", jobs,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return l.ReportOf(res), nil
}

// JSON renders the report as indented JSON.
func JSON(r *lexicon.Report) ([]byte, error) {
	enc := gnfmt.GNjson{Pretty: true}
	return enc.Encode(r)
}

// Text writes a human readable summary. Only the top most frequent
// bigrams, trigrams and phoneme pairs are shown.
func Text(w io.Writer, r *lexicon.Report, top int) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Entries: %s\n", humanize.Comma(int64(r.EntryCount)))
	if len(r.TypeCounts) > 0 {
		sb.WriteString("\nWord types:\n")
		for _, v := range r.TypeCounts {
			name := v.Name
			if name == "" {
				name = fmt.Sprintf("type %d", v.TypeID)
			}
			fmt.Fprintf(&sb, "  %-16s %s\n", name, humanize.Comma(int64(v.Count)))
		}
	}

	sb.WriteString("\nCharacters (all / initial / final):\n")
	for _, c := range r.Alphabet {
		fmt.Fprintf(&sb, "  %-4s %8s %8s %8s\n", c,
			humanize.Comma(int64(r.Chars[c])),
			humanize.Comma(int64(r.Starts[c])),
			humanize.Comma(int64(r.Ends[c])),
		)
	}

	writeTop(&sb, "Bigrams", r.Bigrams, top)
	writeTop(&sb, "Trigrams", r.Trigrams, top)

	if len(r.Phonemes) > 0 {
		sb.WriteString("\nPhonemes:\n")
		for _, p := range r.Phonemes {
			fmt.Fprintf(&sb, "  %-4s %8s\n", p,
				humanize.Comma(int64(r.PhonemeCounts[p])))
		}
		writeTop(&sb, "Phoneme pairs", r.PhonemePairs, top)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

type count struct {
	key string
	n   int
}

func writeTop(sb *strings.Builder, title string, m map[string]int, top int) {
	if len(m) == 0 || top <= 0 {
		return
	}
	cc := make([]count, 0, len(m))
	for k, v := range m {
		cc = append(cc, count{key: k, n: v})
	}
	slices.SortFunc(cc, func(a, b count) int {
		if c := cmp.Compare(b.n, a.n); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})
	if len(cc) > top {
		cc = cc[:top]
	}

	fmt.Fprintf(sb, "\n%s:\n", title)
	for _, c := range cc {
		fmt.Fprintf(sb, "  %-8s %8s\n", c.key, humanize.Comma(int64(c.n)))
	}
}
