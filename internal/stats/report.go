// Package stats contains entropy estimates and reporting.
package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/glyphpass/internal/model"
	"github.com/verte-zerg/glyphpass/internal/pool"
	"github.com/verte-zerg/glyphpass/internal/samples"
)

// PoolSize names a pool size for entropy tables.
type PoolSize struct {
	Name string
	Size int
}

// RenderPools prints pool sizes and the per-script character counts.
func RenderPools(w io.Writer, standard, extended pool.Pool, s samples.Samples) error {
	if _, err := fmt.Fprintf(w, "Standard pool size: %d characters\n", standard.Len()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Extended pool size: %d characters\n", extended.Len()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nLanguages available: %d\n", len(s)); err != nil {
		return err
	}
	return RenderScripts(w, s)
}

// RenderScripts prints one row per registered script.
func RenderScripts(w io.Writer, s samples.Samples) error {
	if len(s) == 0 {
		_, err := fmt.Fprintln(w, "No scripts registered.")
		return err
	}
	headers := []string{"Script", "Name", "ISO 15924", "Sample", "Characters"}
	rows := make([][]string, 0, len(s))
	for _, name := range s.Names() {
		code := ""
		if sc, ok := samples.ScriptCode(name); ok {
			code = sc.String()
			if iso := samples.ISOName(name); iso != "" {
				code += " (" + iso + ")"
			}
		}
		rows = append(rows, []string{
			name,
			samples.DisplayName(name),
			code,
			sampleOf(s[name], 5),
			strconv.Itoa(s[name].Len()),
		})
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{4: true}))
}

// RenderBlocks prints the Unicode blocks of the extended pool with the number
// of eligible code points each contributes.
func RenderBlocks(w io.Writer, blocks []pool.Block) error {
	headers := []string{"Block", "Range", "Eligible"}
	rows := make([][]string, 0, len(blocks))
	total := 0
	for _, b := range blocks {
		n := pool.FromRanges(b).Len()
		total += n
		rows = append(rows, []string{
			b.Name,
			fmt.Sprintf("U+%04X-U+%04X", b.Lo, b.Hi-1),
			strconv.Itoa(n),
		})
	}
	rows = append(rows, []string{"Total", "", strconv.Itoa(total)})
	return writeLines(w, formatTable(headers, rows, map[int]bool{2: true}))
}

// RenderEntropy prints the entropy in bits of each length over each pool.
func RenderEntropy(w io.Writer, lengths []int, pools []PoolSize) error {
	if len(lengths) == 0 || len(pools) == 0 {
		return nil
	}
	headers := make([]string, 0, len(pools)+1)
	headers = append(headers, "Length")
	rightAlign := map[int]bool{0: true}
	for i, p := range pools {
		headers = append(headers, fmt.Sprintf("%s (%d)", p.Name, p.Size))
		rightAlign[i+1] = true
	}
	rows := make([][]string, 0, len(lengths))
	for _, length := range lengths {
		row := []string{strconv.Itoa(length)}
		for _, p := range pools {
			bits, err := Bits(length, p.Size)
			if err != nil {
				return err
			}
			row = append(row, fmt.Sprintf("%.2f", bits))
		}
		rows = append(rows, row)
	}
	return writeLines(w, formatTable(headers, rows, rightAlign))
}

// RenderRuns prints recorded runs, oldest first.
func RenderRuns(w io.Writer, runs []model.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	headers := []string{"When", "Variant", "Length", "Pool", "Bits", "Digits", "Scripts"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			string(r.Variant),
			strconv.Itoa(r.Length),
			strconv.Itoa(r.PoolSize),
			fmt.Sprintf("%.2f", r.EntropyBits),
			strconv.Itoa(r.Digits),
			strconv.Itoa(r.Scripts),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true}
	return writeLines(w, formatTable(headers, rows, rightAlign))
}

// RenderRunSummary prints per-variant aggregates of recorded runs.
func RenderRunSummary(w io.Writer, aggs []model.VariantAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	headers := []string{"Variant", "Runs", "Avg Length", "Avg Bits", "Max Bits"}
	rows := make([][]string, 0, len(aggs))
	for _, a := range aggs {
		rows = append(rows, []string{
			string(a.Variant),
			strconv.Itoa(a.Runs),
			fmt.Sprintf("%.1f", a.AvgLength),
			fmt.Sprintf("%.2f", a.AvgEntropy),
			fmt.Sprintf("%.2f", a.MaxEntropy),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	if err := writeLines(w, formatTable(headers, rows, rightAlign)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func sampleOf(p pool.Pool, n int) string {
	if len(p) < n {
		n = len(p)
	}
	return string(p[:n])
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
