// Command dmybench runs the recursive layer against the reference
// Dijkstra oracle over a range of synthetic random graph sizes and emits a
// benchmark table comparing wall-clock cost, as a standalone, scriptable
// CSV report.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/pathcore/dmysssp/dmysssp"
	"github.com/pathcore/dmysssp/genbench"
	"github.com/pathcore/dmysssp/pathutil"
)

func main() {
	var (
		sizesFlag = flag.String("sizes", "100,500,1000,5000", "comma-separated vertex counts")
		density   = flag.Float64("density", 5.0, "average out-degree (edge count = density*size)")
		maxWeight = flag.Float64("max-weight", 10.0, "maximum random edge weight")
		repeats   = flag.Int("repeats", 15, "timed repetitions per size")
		seed      = flag.Uint64("seed", 42, "random graph generator seed")
		out       = flag.String("out", "", "output CSV path (default: stdout)")
	)
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dmybench:", err)
		os.Exit(1)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, "dmybench:", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := run(w, sizes, *density, *maxWeight, *repeats, *seed); err != nil {
		fmt.Fprintln(os.Stderr, "dmybench:", err)
		os.Exit(1)
	}
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				n, err := strconv.Atoi(s[start:i])
				if err != nil {
					return nil, fmt.Errorf("invalid size %q: %w", s[start:i], err)
				}
				sizes = append(sizes, n)
			}
			start = i + 1
		}
	}
	return sizes, nil
}

// run writes the "#"-prefixed header comment followed by one CSV row per
// size: Size,Edges,DMY_ms,DMY_CI_ms,Dijkstra_ms,Dijkstra_CI_ms,Speedup.
func run(w *os.File, sizes []int, density, maxWeight float64, repeats int, seed uint64) error {
	fmt.Fprintln(w, "# dmybench: recursive-layer vs reference-Dijkstra wall-clock comparison")
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"Size", "Edges", "DMY_ms", "DMY_CI_ms", "Dijkstra_ms", "Dijkstra_CI_ms", "Speedup"}); err != nil {
		return err
	}

	for _, n := range sizes {
		m := int(float64(n) * density)
		g, err := genbench.RandomGraph(n, m, maxWeight, seed)
		if err != nil {
			return fmt.Errorf("size %d: %w", n, err)
		}

		dmyMeanMs, dmyCIMs, err := timeRepeated(repeats, func() error {
			_, err := dmysssp.SSSP(g, 0)
			return err
		})
		if err != nil {
			return fmt.Errorf("size %d: %w", n, err)
		}

		dijkstraMeanMs, dijkstraCIMs, err := timeRepeated(repeats, func() error {
			pathutil.ReferenceDijkstra(g, 0)
			return nil
		})
		if err != nil {
			return fmt.Errorf("size %d: %w", n, err)
		}

		speedup := dijkstraMeanMs / dmyMeanMs
		row := []string{
			strconv.Itoa(n),
			strconv.Itoa(g.NumEdges()),
			formatMs(dmyMeanMs),
			formatMs(dmyCIMs),
			formatMs(dijkstraMeanMs),
			formatMs(dijkstraCIMs),
			strconv.FormatFloat(speedup, 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
		cw.Flush()
	}
	return nil
}

func formatMs(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// timeRepeated times fn repeats times and returns the mean and a 95%
// confidence half-width over the sampled wall-clock durations (in
// milliseconds), using gonum/stat for the mean and standard deviation. If
// fn returns an error on any repetition, timeRepeated stops and surfaces it
// instead of timing a failed run.
func timeRepeated(repeats int, fn func() error) (meanMs, ciMs float64, err error) {
	if repeats < 1 {
		return 0, 0, fmt.Errorf("repeats must be >= 1")
	}
	samples := make([]float64, repeats)
	for i := 0; i < repeats; i++ {
		start := time.Now()
		if err := fn(); err != nil {
			return 0, 0, err
		}
		samples[i] = float64(time.Since(start).Microseconds()) / 1000.0
	}

	mean, std := stat.MeanStdDev(samples, nil)
	if repeats == 1 {
		return mean, 0, nil
	}
	// 95% CI half-width via normal approximation: 1.96 * std / sqrt(n).
	ci := 1.96 * std / math.Sqrt(float64(repeats))
	return mean, ci, nil
}
