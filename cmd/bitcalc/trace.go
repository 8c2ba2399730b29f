package main

import (
	"fmt"
	"strconv"

	"github.com/danmuck/bitcalc/internal/pipeline"
	"github.com/danmuck/bitcalc/internal/sequence"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newTraceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <bitcode>",
		Short: "Show which blocks repair kept or deleted, and why.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := pipeline.NewRunner("cli", a.logger, a.cfg.SequenceOptions()...)
			report, err := runner.Decode(pipeline.Input{Bitcode: args[0]})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Block", "Bits", "Value", "Token", "Status"})
			table.SetAutoFormatHeaders(false)
			table.AppendBulk(traceRows(report))
			table.Render()

			if report.Warning != "" {
				fmt.Fprintf(out, "warning: %s\n", report.Warning)
			}
			fmt.Fprintln(out, formatReport(report))
			return nil
		},
	}
}

// traceRows lists every whole block of the original bitcode with its fate.
func traceRows(r pipeline.Report) [][]string {
	deleted := make(map[int]string, len(r.Deletions))
	for _, d := range r.Deletions {
		deleted[d.Index] = d.Reason
	}

	count := len(r.Original) / sequence.BlockWidth
	rows := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		bits := r.Original[i*sequence.BlockWidth : (i+1)*sequence.BlockWidth]
		v, err := strconv.ParseUint(bits, 2, 8)
		if err != nil {
			continue
		}
		tok := sequence.NewToken(uint8(v))
		status := "kept"
		if reason, ok := deleted[i]; ok {
			status = "deleted: " + reason
		}
		rows = append(rows, []string{strconv.Itoa(i), bits, strconv.FormatUint(v, 10), tok.String(), status})
	}
	return rows
}
