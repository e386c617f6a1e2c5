package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/stringkit/sso"
	"github.com/spf13/cobra"
)

var (
	applyTrace   bool
	applyReserve int
	applyShrink  int
	applyLimit   int
)

func init() {
	cmd := newApplyCmd()
	cmd.Flags().BoolVar(&applyTrace, "trace", false, "Print state after every operation")
	cmd.Flags().IntVar(&applyReserve, "reserve", 0, "Reserve this many bytes before applying")
	cmd.Flags().IntVar(&applyShrink, "shrink-ratio", 4, "Shrink hysteresis ratio (0 disables shrinking)")
	cmd.Flags().IntVar(&applyLimit, "max-capacity", 0, "Heap capacity limit in bytes (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <op>...",
		Short: "Apply editing operations and show the result",
		Long: `The apply command runs a sequence of editing operations against a fresh
string container and prints the final content plus storage diagnostics.

Operations:
  append:TEXT        append TEXT
  insert:I:TEXT      insert TEXT at index I
  erase:I:N          erase N bytes starting at index I
  resize:N[:FILL]    resize to N bytes, filling with FILL (default space)
  reserve:N          pin the capacity floor for N bytes

Example:
  stringctl apply append:foo insert:0:bar erase:1:2
  stringctl apply --trace resize:20:xy erase:0:10
  stringctl apply --max-capacity 64 resize:100`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args)
		},
	}
	return cmd
}

// StringState is the reportable snapshot of a container.
type StringState struct {
	Content  string `json:"content"`
	Length   int    `json:"length"`
	Mode     string `json:"mode"`
	Capacity int    `json:"capacity"`
	Exponent uint8  `json:"exponent"`
}

func snapshot(s *sso.String) StringState {
	return StringState{
		Content:  s.String(),
		Length:   s.Len(),
		Mode:     s.Mode().String(),
		Capacity: s.Cap(),
		Exponent: sso.ExponentFor(s.Cap()),
	}
}

func runApply(ops []string) error {
	cfg := sso.DefaultConfig
	cfg.ShrinkRatio = applyShrink
	cfg.MaxCapacity = applyLimit

	s := sso.NewWithConfig(cfg)
	if applyReserve > 0 {
		if err := s.Reserve(applyReserve); err != nil {
			return fmt.Errorf("reserve %d: %w", applyReserve, err)
		}
	}

	for i, op := range ops {
		if err := applyOp(s, op); err != nil {
			return fmt.Errorf("op %d (%q): %w", i+1, op, err)
		}
		if applyTrace {
			st := snapshot(s)
			printInfo("%-24s -> %q len=%d mode=%s cap=%d\n", op, st.Content, st.Length, st.Mode, st.Capacity)
		}
	}

	st := snapshot(s)
	if jsonOut {
		return printJSON(st)
	}
	printInfo("content:  %q\n", st.Content)
	printInfo("length:   %d\n", st.Length)
	printInfo("mode:     %s\n", st.Mode)
	printInfo("capacity: %d (exponent %d)\n", st.Capacity, st.Exponent)
	return nil
}

func applyOp(s *sso.String, op string) error {
	verb, rest, _ := strings.Cut(op, ":")
	switch verb {
	case "append":
		return s.AppendString(rest)

	case "insert":
		at, text, ok := strings.Cut(rest, ":")
		if !ok {
			return fmt.Errorf("insert needs I:TEXT")
		}
		i, err := strconv.Atoi(at)
		if err != nil {
			return fmt.Errorf("bad index %q: %w", at, err)
		}
		return s.InsertString(i, text)

	case "erase":
		at, count, ok := strings.Cut(rest, ":")
		if !ok {
			return fmt.Errorf("erase needs I:N")
		}
		i, err := strconv.Atoi(at)
		if err != nil {
			return fmt.Errorf("bad index %q: %w", at, err)
		}
		n, err := strconv.Atoi(count)
		if err != nil {
			return fmt.Errorf("bad count %q: %w", count, err)
		}
		return s.Erase(i, n)

	case "resize":
		size, fill, _ := strings.Cut(rest, ":")
		n, err := strconv.Atoi(size)
		if err != nil {
			return fmt.Errorf("bad size %q: %w", size, err)
		}
		return s.Resize(n, []byte(fill))

	case "reserve":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return fmt.Errorf("bad size %q: %w", rest, err)
		}
		return s.Reserve(n)

	default:
		return fmt.Errorf("unknown operation %q", verb)
	}
}
