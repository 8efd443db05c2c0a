package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/keepinventory/asset-inventory/pkg/client"
	"github.com/spf13/cobra"
)

const (
	defaultURL string = "http://localhost:8080"
	urlEnv     string = "KEEPINV_URL"
	tokenEnv   string = "KEEPINV_TOKEN"
)

type options struct {
	url   string
	token string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "keepinv",
		Short:        "keepinv - command line access to the asset inventory",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.url, "url", envOrDefault(urlEnv, defaultURL), "inventory api url")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv(tokenEnv), "session token, see the signin command")

	root.AddCommand(newSignInCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newClearLogCmd(opts))
	root.AddCommand(newStatsCmd(opts))

	return root
}

func newSignInCmd(opts *options) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and print a session token",
		Long: `Sign in with email and password and print the session token.

Export it as ` + tokenEnv + ` to use it with the other commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("KEEPINV_PASSWORD")
			}

			c, err := client.New(cmd.Context(), opts.url, "")
			if err != nil {
				return err
			}
			defer c.Close(cmd.Context())

			session, err := c.SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), session.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password, read from KEEPINV_PASSWORD if empty")
	cmd.MarkFlagRequired("email")

	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var encoding, output string

	cmd := &cobra.Command{
		Use:       "export inventory|activity",
		Short:     "Download a CSV report",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"inventory", "activity"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.New(cmd.Context(), opts.url, opts.token)
			if err != nil {
				return err
			}
			defer c.Close(cmd.Context())

			var report client.Report
			if args[0] == "inventory" {
				report, err = c.ExportInventory(cmd.Context(), encoding)
			} else {
				report, err = c.ExportActivity(cmd.Context(), encoding)
			}
			if err != nil {
				return err
			}

			filename := report.Filename
			if filename == "" {
				filename = args[0] + ".csv"
			}

			path := filepath.Join(output, filepath.Base(filename))
			if err = os.WriteFile(path, report.Body, 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "", "report encoding, utf-8 (default) or latin1")
	cmd.Flags().StringVarP(&output, "output", "o", ".", "directory to write the report to")

	return cmd
}

func newClearLogCmd(opts *options) *cobra.Command {
	var confirmation string

	cmd := &cobra.Command{
		Use:   "clear-log",
		Short: "Delete every entry in the activity log",
		Long: `Delete every entry in the activity log.

The confirmation phrase must be given exactly, e.g.

  keepinv clear-log --confirm "LIMPAR LOG GERAL"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.New(cmd.Context(), opts.url, opts.token)
			if err != nil {
				return err
			}
			defer c.Close(cmd.Context())

			result, err := c.ClearLog(cmd.Context(), confirmation)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", result.Title, result.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&confirmation, "confirm", "", "confirmation phrase")
	cmd.MarkFlagRequired("confirm")

	return cmd
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show inventory counters and breakdowns",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.New(cmd.Context(), opts.url, opts.token)
			if err != nil {
				return err
			}
			defer c.Close(cmd.Context())

			d, err := c.Dashboard(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Patrimônios\t%d\n", d.Counts.Assets)
			fmt.Fprintf(w, "Em uso\t%d\n", d.Counts.InUse)
			fmt.Fprintf(w, "Perdidos\t%d\n", d.Counts.Lost)
			fmt.Fprintf(w, "Blocos\t%d\n", d.Counts.Blocks)
			fmt.Fprintf(w, "Setores\t%d\n", d.Counts.Sectors)
			fmt.Fprintf(w, "Salas\t%d\n", d.Counts.Rooms)
			fmt.Fprintf(w, "Localizações\t%d\n", d.Counts.Locations)

			if len(d.StatusBreakdown) > 0 {
				fmt.Fprintln(w, "\nPor status")
				for _, e := range d.StatusBreakdown {
					fmt.Fprintf(w, "  %s\t%d\n", e.Name, e.Value)
				}
			}

			if len(d.SectorBreakdown) > 0 {
				fmt.Fprintln(w, "\nPor setor")
				for _, e := range d.SectorBreakdown {
					fmt.Fprintf(w, "  %s\t%d\n", e.Name, e.Value)
				}
			}

			return w.Flush()
		},
	}
}

func envOrDefault(name, defaultValue string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultValue
}
