package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Nziza-Prince/Modular-Binomials-CryptoHack-Solution/internal/report"
	"github.com/Nziza-Prince/Modular-Binomials-CryptoHack-Solution/pkg/modbinomial"
)

const defaultChallengeFile = "data.txt"

func main() {
	var (
		quiet    = flag.Bool("quiet", false, "Suppress progress output")
		logLevel = flag.String("log-level", "INFO", "Progress log level (DEBUG, INFO, WARN, ERROR)")
		logFile  = flag.String("log-file", "", "Also write progress to this rotating log file")
	)
	flag.Parse()

	file := flag.Arg(0)
	if file == "" {
		file = defaultChallengeFile
	}

	var reporter modbinomial.Reporter = modbinomial.NopReporter{}
	if !*quiet {
		cfg := report.DefaultConfig()
		cfg.Level = *logLevel
		cfg.FileName = *logFile

		r, err := report.New(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid log settings: %v\n", err)
			os.Exit(1)
		}
		defer r.Sync()
		reporter = r
	}

	client := modbinomial.NewClient().WithReporter(reporter)

	fmt.Printf("Reading values from file: %s\n", file)

	factors, err := client.SolveFile(file)
	if errors.Is(err, modbinomial.ErrNoFactorsFound) {
		fmt.Println("Could not find the factors with the given approach.")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n[+] Found factors using the %s strategy:\n", factors.Strategy)
	fmt.Printf("    p = %s\n", factors.P)
	fmt.Printf("    q = %s\n", factors.Q)
	if factors.C1Match && factors.C2Match {
		fmt.Println("    ✓ Both ciphertexts verified against the recovered pair")
	} else {
		fmt.Printf("    Ciphertext check: c1 match=%t, c2 match=%t (assignment may be swapped)\n",
			factors.C1Match, factors.C2Match)
	}

	fmt.Printf("\nAnswer: p = %s, q = %s\n", factors.P, factors.Q)
}
