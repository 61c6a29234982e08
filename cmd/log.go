package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/lockbox/internal/audit"
	"github.com/PolarWolf314/lockbox/internal/ui"
	"github.com/PolarWolf314/lockbox/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	logLimit   int
	logJSON    bool
	logOneline bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "show only the most recent n entries")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output entries as a JSON array")
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "compact one-line-per-entry format")
	RootCmd.AddCommand(logCmd)
}

func resetLogCommandState() {
	logLimit = 0
	logJSON = false
	logOneline = false
}

var logCmd = &cobra.Command{
	Use:   "log [service] [account]",
	Short: "Show the history of changes to the store",
	Long: `Shows the audit log of add and delete operations, oldest first.
Passwords are never written to the log.

Examples:
  lockbox log
  lockbox log email
  lockbox log email bob -n 5`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := workflows.LogOptions{Settings: settings, Limit: logLimit}
		if len(args) > 0 {
			opts.Service = args[0]
		}
		if len(args) > 1 {
			opts.Account = args[1]
		}
		Logger.Infof("Reading audit log for service=%q account=%q", opts.Service, opts.Account)
		out := cmd.OutOrStdout()

		result, err := workflows.Log(context.Background(), opts)
		if err != nil {
			return err
		}
		Logger.Debugf("Read %d entries from %s", len(result.Entries), result.Path)

		if logJSON {
			entries := result.Entries
			if entries == nil {
				entries = []audit.Entry{}
			}
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding entries: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if len(result.Entries) == 0 {
			fmt.Fprintln(out, ui.Info.Sprint("→")+" No audit log entries found")
			return nil
		}

		for _, e := range result.Entries {
			fmt.Fprintln(out, formatEntry(e))
		}
		return nil
	},
}

func formatEntry(e audit.Entry) string {
	ts := e.Timestamp
	if len(ts) >= 19 {
		ts = ts[:10] + " " + ts[11:19]
	}

	detail := ""
	switch {
	case e.Overwrote:
		detail = " (replaced)"
	case e.ServiceRemoved:
		detail = " (service removed)"
	}

	target := e.Service + " / " + e.Account
	if e.Service == "" {
		target = "whole store"
	}

	if logOneline {
		if e.Service != "" {
			target = e.Service + "/" + e.Account
		}
		return fmt.Sprintf("%s %s %s %s%s", ts[:min(len(ts), 10)], e.User, e.Operation, target, detail)
	}
	return fmt.Sprintf("%s  %-10s %-7s %s%s", ui.Muted.Sprint(ts), e.User, e.Operation, target, detail)
}
