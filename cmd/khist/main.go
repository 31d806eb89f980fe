package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/exp/mmap"

	"github.com/dreamware/khist/internal/config"
	"github.com/dreamware/khist/internal/counts"
	"github.com/dreamware/khist/internal/hist"
)

var (
	configFile string
	outputFlag string
	threads    int
	low        uint64
	high       uint64
	inc        uint64
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Computes a k-mer multiplicity histogram from a\n")
		fmt.Fprintf(flag.CommandLine.Output(), "pre-built count table dump.\n")
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <count-table-dump>\n", os.Args[0])
		flag.PrintDefaults()
	}
	def := config.Default()
	flag.StringVar(&configFile, "config", "", "optional YAML file with run defaults")
	flag.StringVar(&outputFlag, "o", def.Output, "path prefix for files generated by this program")
	flag.IntVar(&threads, "threads", def.Threads, "the number of threads to use")
	flag.Uint64Var(&low, "low", def.Low, "low count value of histogram")
	flag.Uint64Var(&high, "high", def.High, "high count value of histogram")
	flag.Uint64Var(&inc, "inc", def.Inc, "increment for each bin")
}

func checkFlags() error {
	if flag.NArg() != 1 {
		return errors.New("incorrect number of arguments")
	}
	return nil
}

// loadConfig overlays the optional config file with any flags the user
// set explicitly, flags winning.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = outputFlag
		case "threads":
			cfg.Threads = threads
		case "low":
			cfg.Low = low
		case "high":
			cfg.High = high
		case "inc":
			cfg.Inc = inc
		}
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dumpPath := flag.Arg(0)
	r, err := mmap.Open(dumpPath)
	if err != nil {
		return fmt.Errorf("opening count table: %w", err)
	}
	defer r.Close()

	log.Printf("loading count table from %s", dumpPath)
	table, err := counts.Load(r)
	if err != nil {
		return err
	}
	log.Printf("loaded %d distinct k-mers", table.Size())

	log.Printf("scanning with %d threads", cfg.Threads)
	h, err := hist.Compute(table, cfg.Low, cfg.High, cfg.Inc, cfg.Threads)
	if err != nil {
		return err
	}

	outPath := cfg.Output + ".hist"
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	if err := writeHist(out, dumpPath, h); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	log.Printf("histogram written to %s", outPath)

	s := hist.Summarize(h)
	log.Printf("distinct k-mers: %d, total k-mers: %d, mean multiplicity: %.2f (sd %.2f), peak at %d",
		s.Distinct, s.Total, s.Mean, s.StdDev, s.Peak)
	return nil
}

// writeHist renders the histogram rows with a small comment header,
// one "binValue count" pair per line in bucket order.
func writeHist(f *os.File, source string, h *hist.Histogram) error {
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# Title:K-mer spectra for: %s\n", source)
	fmt.Fprintf(w, "# XLabel:K-mer multiplicity\n")
	fmt.Fprintf(w, "# YLabel:Number of distinct K-mers\n")
	for _, bin := range h.Bins() {
		fmt.Fprintf(w, "%d %d\n", bin.Value, bin.Count)
	}
	return w.Flush()
}

func main() {
	flag.Parse()
	if err := checkFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}
