package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"radar/internal/model"
	"radar/internal/repository/memory"
	"radar/internal/seed"
	"radar/internal/service"
)

type rootOptions struct {
	seedFile string
	output   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "radar",
		Short:        "Inspect RADAR review records",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.seedFile, "seed-file", "", "YAML fixture file replacing the built-in records")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "One of 'yaml' or 'json'; a table when empty")

	cmd.AddCommand(
		newDocumentsCmd(opts),
		newActivitiesCmd(opts),
		newRoutesCmd(opts),
	)
	return cmd
}

func (o *rootOptions) service() (service.DashboardService, error) {
	data, err := seed.Load(o.seedFile)
	if err != nil {
		return nil, err
	}
	store, err := memory.New(data)
	if err != nil {
		return nil, err
	}
	return service.NewDashboardService(store, store, store, nil), nil
}

func newDocumentsCmd(opts *rootOptions) *cobra.Command {
	var q service.DocumentQuery
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Search the document library",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			res, err := svc.Documents(context.Background(), q)
			if err != nil {
				return err
			}

			tw := newTable()
			tw.AppendHeader(table.Row{"ID", "TITLE", "TYPE", "VERSION", "STATUS", "SUBMITTED BY", "DATE", "SIZE"})
			for _, d := range res.Items {
				tw.AppendRow(table.Row{d.ID, d.Title, d.Type, "v" + d.Version, d.Badge.Label, d.SubmittedBy, d.SubmittedDate, d.Size})
			}
			tw.AppendFooter(table.Row{"", fmt.Sprintf("%d documents", res.Total)})
			return render(cmd.OutOrStdout(), opts.output, tw, res)
		},
	}
	cmd.Flags().StringVarP(&q.Term, "search", "q", "", "Case-insensitive text matched against title, type and submitter")
	cmd.Flags().StringVar(&q.Status, "status", "all", "all, pending, in-review, approved, rejected or urgent")
	return cmd
}

func newActivitiesCmd(opts *rootOptions) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "Print the activity feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			items, err := svc.Activities(context.Background(), kind)
			if err != nil {
				return err
			}

			tw := newTable()
			tw.AppendHeader(table.Row{"ID", "TYPE", "TITLE", "USER", "WHEN", "STATUS"})
			for _, it := range items {
				status := ""
				if it.Badge != nil {
					status = it.Badge.Label
				}
				tw.AppendRow(table.Row{it.ID, it.Kind, it.Title, it.User.Name, it.Timestamp, status})
			}
			return render(cmd.OutOrStdout(), opts.output, tw, items)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "review, approval, submission or comment")
	return cmd
}

func newRoutesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the sidebar routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			nav, err := svc.Navigation(context.Background())
			if err != nil {
				return err
			}

			tw := newTable()
			tw.AppendHeader(table.Row{"GROUP", "TITLE", "URL", "ICON"})
			for _, g := range model.NavGroups() {
				for _, it := range nav {
					if it.Group == g {
						tw.AppendRow(table.Row{g.Label(), it.Title, it.URL, it.Icon})
					}
				}
			}
			return render(cmd.OutOrStdout(), opts.output, tw, nav)
		},
	}
}

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateFooter = false
	tw.Style().Options.SeparateHeader = false
	tw.Style().Options.SeparateRows = false
	return tw
}

func render(w io.Writer, output string, tw table.Writer, v any) error {
	switch output {
	case "":
		_, err := fmt.Fprintln(w, tw.Render())
		return err
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		_, err = fmt.Fprint(w, string(b))
		return err
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}
