package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"lifeplan-engine/internal/cache"
	"lifeplan-engine/internal/cli"
	"lifeplan-engine/internal/scenario"
	"lifeplan-engine/internal/service"
)

var projectCmd = &cobra.Command{
	Use:   "project <scenario.toml>",
	Short: "Project a scenario and print the yearly rollup",
	Args:  cobra.ExactArgs(1),
	RunE:  runProject,
}

func init() {
	projectCmd.Flags().StringVar(&flagNow, "now", "", "Projection start date (YYYY-MM-DD), defaults to today")
	projectCmd.Flags().BoolVar(&flagInsights, "insights", true, "Print insights below the table")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	s, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	svc := service.NewProjectionService(cache.NewMemory(0), nil)
	req := s.Request(flagNow)
	resp, err := svc.Project(context.Background(), &req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprint(os.Stderr, cli.RenderMessages(verr.Messages))
		}
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	out := cmd.OutOrStdout()
	title := s.Name
	if title == "" {
		title = args[0]
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle(fmt.Sprintf("LIFE PLAN  %s  (v%d)", title, s.Version)))
	fmt.Fprintln(out)
	if len(resp.Messages) > 0 {
		fmt.Fprintln(out, cli.RenderMessages(resp.Messages))
	}
	fmt.Fprint(out, cli.YearlyTable(resp.Projection).Render())
	if flagInsights && len(resp.Insights) > 0 {
		fmt.Fprintln(out)
		fmt.Fprint(out, cli.RenderInsights(resp.Insights))
	}
	return nil
}
