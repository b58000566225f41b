package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/legisignal/internal/config"
	"github.com/fyrsmithlabs/legisignal/internal/features"
	"github.com/fyrsmithlabs/legisignal/internal/scoring"
	"github.com/fyrsmithlabs/legisignal/internal/signal"
)

var scoreImportanceOnly bool

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Score signal records from a JSONL file or stdin",
	Long: `Score reads one JSON signal record per line and prints one scoring
result per line.

Examples:
  # Score records from a file
  legisignal score signals.jsonl

  # Score from stdin
  cat signals.jsonl | legisignal score -

  # Importance dimension only, with factor breakdown
  legisignal score --importance signals.jsonl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreImportanceOnly, "importance", false, "score the importance dimension only")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	scorer, err := scoring.NewScorer(cfg.Scoring, features.NewExtractor(cfg.Features))
	if err != nil {
		return err
	}

	in, closeFn, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeFn()

	enc := json.NewEncoder(cmd.OutOrStdout())
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var sig signal.Signal
		if err := json.Unmarshal(raw, &sig); err != nil {
			return fmt.Errorf("line %d: invalid signal record: %w", line, err)
		}
		var out any
		if scoreImportanceOnly {
			out = scorer.ScoreImportance(sig)
		} else {
			out = scorer.Score(sig)
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// openInput returns the reader for the optional file argument, defaulting to
// stdin for "-" or no argument.
func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}
