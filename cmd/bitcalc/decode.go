package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danmuck/bitcalc/internal/pipeline"
	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	var (
		asExpr bool
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "decode [bitcode...]",
		Short: "Repair and evaluate bitcodes given as arguments or one per line on stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				inputs = lines
			}

			runner := pipeline.NewRunner("cli", a.logger, a.cfg.SequenceOptions()...)
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)

			var errs []error
			for _, raw := range inputs {
				in := pipeline.Input{Bitcode: raw}
				if asExpr {
					in = pipeline.Input{Expression: raw}
				}
				report, err := runner.Decode(in)
				if err != nil {
					errs = append(errs, fmt.Errorf("%q: %w", raw, err))
					continue
				}
				if asJSON {
					if err := enc.Encode(report); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintln(out, formatReport(report))
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().BoolVar(&asExpr, "expr", false, "Treat inputs as infix expressions instead of bitcodes.")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Write one JSON report per input.")
	return cmd
}

// formatReport renders "<bitcode> => <expression> = <result>".
func formatReport(r pipeline.Report) string {
	expr := r.Expression
	if expr == "" {
		expr = "(empty)"
	}
	line := fmt.Sprintf("%s => %s", r.Original, expr)
	if r.Result != nil {
		line += " = " + strconv.FormatFloat(*r.Result, 'g', -1, 64)
	} else if r.Error != "" {
		line += " (" + r.Error + ")"
	}
	return line
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
