package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/eco-diary/internal/adapters/terminal"
	"github.com/comitanigiacomo/eco-diary/internal/client"
	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

const appVersion = "0.1.0"

func newRootCmd() *cobra.Command {
	var server string

	root := &cobra.Command{
		Use:           "diary",
		Short:         "Eco diary in the terminal: calendar, habit statistics and printable pages",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultServer := os.Getenv("DIARY_SERVER")
	if defaultServer == "" {
		defaultServer = client.DefaultServer
	}
	root.PersistentFlags().StringVar(&server, "server", defaultServer, "Diary API base URL (env DIARY_SERVER)")

	api := func() *client.Client { return client.New(server) }

	root.AddCommand(
		newCalendarCmd(api),
		newStatsCmd(api),
		newTodayCmd(api),
		newToggleCmd(api),
		newBookletCmd(api),
		newPrintCmd(api),
	)

	return root
}

func newCalendarCmd(api func() *client.Client) *cobra.Command {
	var date, selected string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month with filled days marked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := api().Calendar(cmd.Context(), date, selected)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), terminal.RenderMonth(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any day of the month to show (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&selected, "selected", "", "Day to highlight (YYYY-MM-DD, default today)")
	return cmd
}

func newStatsCmd(api func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how often each eco habit was checked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := api().Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), terminal.RenderStats(summary))
			return nil
		},
	}
}

func newTodayCmd(api func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the quote, fact and tip of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := api().Today(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), terminal.RenderContent(content))
			return nil
		},
	}
}

func newToggleCmd(api func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <date> <habit>",
		Short: "Check or uncheck a habit for a day",
		Long:  "Check or uncheck a habit for a day. Habits: sort, bottle, water, plastic, bike, light, food, bags.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := api()
			entry, err := c.Toggle(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			catalog, err := c.Habits(cmd.Context())
			if err != nil {
				catalog = domain.DefaultCatalog()
			}
			fmt.Fprint(cmd.OutOrStdout(), terminal.RenderEntry(entry, catalog))
			return nil
		},
	}
}

func newBookletCmd(api func() *client.Client) *cobra.Command {
	var start, output string
	var days int

	cmd := &cobra.Command{
		Use:   "booklet",
		Short: "Download a printable booklet of daily pages as PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 || days > domain.MaxBookletDays {
				return domain.ErrInvalidBookletLength
			}
			if output == "" {
				output = "eco-diary-booklet.pdf"
			}
			return writeFile(cmd, output, func(w io.Writer) error {
				return api().BookletPDF(cmd.Context(), w, start, days)
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First day (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", domain.DefaultBookletDays, "Number of daily pages (1-366)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default eco-diary-booklet.pdf)")
	return cmd
}

func newPrintCmd(api func() *client.Client) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "print <date>",
		Short: "Download the printable page of one day as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = fmt.Sprintf("eco-diary-%s.pdf", args[0])
			}
			return writeFile(cmd, output, func(w io.Writer) error {
				return api().DayPDF(cmd.Context(), w, args[0])
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default eco-diary-<date>.pdf)")
	return cmd
}

// writeFile removes the partial file when the download fails.
func writeFile(cmd *cobra.Command, path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := fill(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	return nil
}
