// ABOUTME: CLI commands for training plans.
// ABOUTME: Create, drop, list and show plans, and append weeks by hand or from CSV.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/runlog/internal/models"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage training plans",
	Long: `Manage training plans. A plan is a named list of program weeks,
each holding planned distances in km for Monday through Sunday.

Plan names use letters, digits and underscores; dashes and spaces
become underscores.

EXAMPLES:

  runlog plan create half_marathon
  runlog plan add-week half_marathon 0 5 0 6 0 0 12
  runlog plan import half_marathon plan.csv
  runlog plan show half_marathon
  runlog plan list
  runlog plan drop half_marathon`,
}

var planCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an empty training plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.Store().CreatePlan(args[0]); err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Created plan %s\n", args[0])
		return nil
	},
}

var planDropCmd = &cobra.Command{
	Use:     "drop <name>",
	Aliases: []string{"rm", "delete"},
	Short:   "Delete a training plan and all its weeks",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.Store().DropPlan(args[0]); err != nil {
			return fmt.Errorf("failed to drop plan: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Dropped plan %s\n", args[0])
		return nil
	},
}

var planAddWeekCmd = &cobra.Command{
	Use:   "add-week <name> <mon> <tue> <wed> <thu> <fri> <sat> <sun>",
	Short: "Append a week of planned daily distances",
	Args:  cobra.ExactArgs(8),
	RunE: func(cmd *cobra.Command, args []string) error {
		var days [7]float64
		for i, s := range args[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return fmt.Errorf("invalid %s distance: %s", models.PlanDays[i], s)
			}
			days[i] = v
		}

		week, err := svc.Store().AddPlanWeek(args[0], days)
		if err != nil {
			return fmt.Errorf("failed to add week: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Added week %d to %s\n", week, args[0])
		return nil
	},
}

var planImportCmd = &cobra.Command{
	Use:   "import <name> <file>",
	Short: "Create a plan from a CSV of weekly distances",
	Long: `Create a plan from a CSV file. The header names the weekday columns
(Mon..Sun or full names); each following row is one program week.
The file is checked in full before the plan is created.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		defer f.Close()

		weeks, err := svc.ImportPlanCSV(args[0], f)
		if err != nil {
			return fmt.Errorf("failed to import plan: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Created plan %s with %d weeks\n", args[0], weeks)
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List training plans",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plans, err := svc.Store().ListPlans()
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(plans) == 0 {
			fmt.Fprintln(out, "No plans found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range plans {
			fmt.Fprintf(out, "%s %s\n",
				padRight(p.Name, 24),
				faint.Sprintf("%d weeks, created %s", p.Weeks, p.CreatedAt.Format("2006-01-02")))
		}
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show every week of a training plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weeks, err := svc.Store().GetPlanWeeks(args[0])
		if err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(weeks) == 0 {
			fmt.Fprintf(out, "Plan %s has no weeks.\n", args[0])
			return nil
		}

		header := []string{padRight("WEEK", 4)}
		for _, d := range models.PlanDays {
			header = append(header, padLeft(strings.ToUpper(d), 5))
		}
		header = append(header, padLeft("TOTAL", 6))
		color.New(color.Faint).Fprintln(out, strings.Join(header, " "))

		for _, w := range weeks {
			cells := []string{padRight(strconv.Itoa(w.Week), 4)}
			for _, v := range w.Days {
				cells = append(cells, padLeft(fmt.Sprintf("%.1f", v), 5))
			}
			cells = append(cells, padLeft(fmt.Sprintf("%.1f", w.Total()), 6))
			fmt.Fprintln(out, strings.Join(cells, " "))
		}
		return nil
	},
}

func init() {
	planCmd.AddCommand(planCreateCmd, planDropCmd, planAddWeekCmd, planImportCmd, planListCmd, planShowCmd)
	rootCmd.AddCommand(planCmd)
}
