// ABOUTME: MCP tool implementations for the run log.
// ABOUTME: Provides run logging, queries, weekly summaries and training plans.
package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/harperreed/runlog/internal/models"
	"github.com/harperreed/runlog/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_run
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_run",
		Description: "Record a run; a run already logged on the same date is replaced",
	}, s.handleLogRun)

	// get_run
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_run",
		Description: "Get the run logged on a date",
	}, s.handleGetRun)

	// list_runs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_runs",
		Description: "List logged runs, newest first by default",
	}, s.handleListRuns)

	// delete_run
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_run",
		Description: "Delete the run logged on a date",
	}, s.handleDeleteRun)

	// query_runs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "query_runs",
		Description: "Find runs within optional inclusive bounds on date, duration, distance, pace and speed",
	}, s.handleQueryRuns)

	// weekly_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_summary",
		Description: "Weekly distance, session count and mean speed over a lookback window of months",
	}, s.handleWeeklySummary)

	// import_csv
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "import_csv",
		Description: "Import runs from CSV text with Date, Duration, Distance and Location columns",
	}, s.handleImportCSV)

	// create_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_plan",
		Description: "Create an empty training plan",
	}, s.handleCreatePlan)

	// add_plan_week
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_plan_week",
		Description: "Append a program week of planned daily distances to a training plan",
	}, s.handleAddPlanWeek)

	// list_plans
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_plans",
		Description: "List training plans",
	}, s.handleListPlans)

	// get_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_plan",
		Description: "Get every program week of a training plan with weekly totals",
	}, s.handleGetPlan)

	// drop_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "drop_plan",
		Description: "Delete a training plan and all its weeks",
	}, s.handleDropPlan)
}

// Tool input/output types

type logRunInput struct {
	Date     string  `json:"date,omitempty" jsonschema:"Run date as YYYY-MM-DD, defaults to today"`
	Duration string  `json:"duration" jsonschema:"Elapsed time as HH:MM:SS or 1h30m00s"`
	Distance float64 `json:"distance_km" jsonschema:"Distance in kilometres, greater than zero"`
	Location string  `json:"location" jsonschema:"Where the run took place; a UK postcode enables the weather lookup"`
}

type runOutput struct {
	Run     *models.Run `json:"run"`
	Action  string      `json:"action,omitempty"`
	Weather any         `json:"weather,omitempty"`
	Message string      `json:"message"`
}

type dateInput struct {
	Date string `json:"date" jsonschema:"Run date as YYYY-MM-DD"`
}

type listRunsInput struct {
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 20, 0 or less for all)"`
	Order string `json:"order,omitempty" jsonschema:"asc or desc (default desc)"`
}

type runsOutput struct {
	Count int           `json:"count"`
	Runs  []*models.Run `json:"runs"`
}

type queryRunsInput struct {
	DateFrom    string   `json:"date_from,omitempty" jsonschema:"Earliest date, YYYY-MM-DD"`
	DateTo      string   `json:"date_to,omitempty" jsonschema:"Latest date, YYYY-MM-DD"`
	DurationMin string   `json:"duration_min,omitempty" jsonschema:"Shortest duration, HH:MM:SS"`
	DurationMax string   `json:"duration_max,omitempty" jsonschema:"Longest duration, HH:MM:SS"`
	DistanceMin *float64 `json:"distance_min,omitempty" jsonschema:"Shortest distance in km"`
	DistanceMax *float64 `json:"distance_max,omitempty" jsonschema:"Longest distance in km"`
	PaceMin     string   `json:"pace_min,omitempty" jsonschema:"Fastest pace, M:SS per km"`
	PaceMax     string   `json:"pace_max,omitempty" jsonschema:"Slowest pace, M:SS per km"`
	SpeedMin    *float64 `json:"speed_min,omitempty" jsonschema:"Lowest speed in km/h"`
	SpeedMax    *float64 `json:"speed_max,omitempty" jsonschema:"Highest speed in km/h"`
}

type weeklySummaryInput struct {
	LookbackMonths *int `json:"lookback_months,omitempty" jsonschema:"Months to look back from today (default from config)"`
}

type importCSVInput struct {
	CSV string `json:"csv" jsonschema:"CSV text with a header row"`
}

type planNameInput struct {
	Name string `json:"name" jsonschema:"Plan name: letters, digits and underscores"`
}

type addPlanWeekInput struct {
	Name string    `json:"name" jsonschema:"Plan name"`
	Days []float64 `json:"days" jsonschema:"Seven planned distances in km, Monday to Sunday"`
}

type planOutput struct {
	Name    string            `json:"name"`
	Weeks   []models.PlanWeek `json:"weeks"`
	Totals  []float64         `json:"weekly_totals_km"`
	Message string            `json:"message,omitempty"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogRun(ctx context.Context, req *mcp.CallToolRequest, input logRunInput) (*mcp.CallToolResult, any, error) {
	date := input.Date
	if strings.TrimSpace(date) == "" {
		date = s.tracker.Today().String()
	}

	res, err := s.tracker.Submit(ctx, models.RunInput{
		Date:     date,
		Duration: input.Duration,
		Distance: strconv.FormatFloat(input.Distance, 'f', -1, 64),
		Location: input.Location,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to log run: %w", err)
	}

	msg := fmt.Sprintf("%s run on %s: %.2f km in %s (%s /km, %.1f km/h)",
		capitalize(res.Action.String()), res.Run.Date, res.Run.Distance,
		res.Run.DurationString(), res.Run.Pace, res.Run.Speed)

	out := runOutput{
		Run:     res.Run,
		Action:  res.Action.String(),
		Message: msg,
	}
	if res.Weather != nil {
		out.Weather = res.Weather
	}
	return nil, out, nil
}

func (s *Server) handleGetRun(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	run, err := s.tracker.Get(date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get run: %w", err)
	}

	return nil, runOutput{
		Run:     run,
		Message: fmt.Sprintf("Run on %s: %.2f km in %s", run.Date, run.Distance, run.DurationString()),
	}, nil
}

func (s *Server) handleListRuns(ctx context.Context, req *mcp.CallToolRequest, input listRunsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit == 0 {
		input.Limit = 20
	}

	var runs []*models.Run
	var err error
	switch strings.ToLower(input.Order) {
	case "", "desc":
		runs, err = s.tracker.Recent(input.Limit)
	case "asc":
		runs, err = s.tracker.Store().ListRuns(models.Ascending)
		if err == nil && input.Limit > 0 && len(runs) > input.Limit {
			runs = runs[:input.Limit]
		}
	default:
		return nil, nil, fmt.Errorf("%w: order %q (use asc or desc)", models.ErrInvalidInput, input.Order)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		return nil, simpleOutput{Message: "No runs found."}, nil
	}
	return nil, runsOutput{Count: len(runs), Runs: runs}, nil
}

func (s *Server) handleDeleteRun(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := models.ParseDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	deleted, err := s.tracker.Delete(date)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete run: %w", err)
	}
	if !deleted {
		return nil, simpleOutput{Message: fmt.Sprintf("No run logged on %s.", date)}, nil
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted run: %s", date),
	}, nil
}

func (s *Server) handleQueryRuns(ctx context.Context, req *mcp.CallToolRequest, input queryRunsInput) (*mcp.CallToolResult, any, error) {
	runs, err := s.tracker.Query(tracker.BoundsInput{
		DateFrom:    input.DateFrom,
		DateTo:      input.DateTo,
		DurationMin: input.DurationMin,
		DurationMax: input.DurationMax,
		DistanceMin: floatString(input.DistanceMin),
		DistanceMax: floatString(input.DistanceMax),
		PaceMin:     input.PaceMin,
		PaceMax:     input.PaceMax,
		SpeedMin:    floatString(input.SpeedMin),
		SpeedMax:    floatString(input.SpeedMax),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query runs: %w", err)
	}

	if len(runs) == 0 {
		return nil, simpleOutput{Message: "No runs match."}, nil
	}
	return nil, runsOutput{Count: len(runs), Runs: runs}, nil
}

func (s *Server) handleWeeklySummary(ctx context.Context, req *mcp.CallToolRequest, input weeklySummaryInput) (*mcp.CallToolResult, any, error) {
	lookback := -1
	if input.LookbackMonths != nil {
		lookback = *input.LookbackMonths
		if lookback < 0 {
			return nil, nil, fmt.Errorf("%w: lookback_months must not be negative", models.ErrInvalidInput)
		}
	}

	summary, err := s.tracker.WeeklySummary(lookback)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to summarise weeks: %w", err)
	}
	return nil, summary, nil
}

func (s *Server) handleImportCSV(ctx context.Context, req *mcp.CallToolRequest, input importCSVInput) (*mcp.CallToolResult, simpleOutput, error) {
	res, err := s.tracker.ImportCSV(strings.NewReader(input.CSV))
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to import csv: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Imported %d runs (%d new, %d replaced)", res.Inserted+res.Updated, res.Inserted, res.Updated),
	}, nil
}

func (s *Server) handleCreatePlan(ctx context.Context, req *mcp.CallToolRequest, input planNameInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.tracker.Store().CreatePlan(input.Name); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create plan: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Created plan: %s", input.Name),
	}, nil
}

func (s *Server) handleAddPlanWeek(ctx context.Context, req *mcp.CallToolRequest, input addPlanWeekInput) (*mcp.CallToolResult, simpleOutput, error) {
	if len(input.Days) != len(models.PlanDays) {
		return nil, simpleOutput{}, fmt.Errorf("%w: need %d daily distances, got %d", models.ErrInvalidInput, len(models.PlanDays), len(input.Days))
	}

	var days [7]float64
	copy(days[:], input.Days)

	week, err := s.tracker.Store().AddPlanWeek(input.Name, days)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add plan week: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Added week %d to %s: %.1f km planned", week, input.Name, models.PlanWeek{Days: days}.Total()),
	}, nil
}

func (s *Server) handleListPlans(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	plans, err := s.tracker.Store().ListPlans()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list plans: %w", err)
	}

	if len(plans) == 0 {
		return nil, simpleOutput{Message: "No plans found."}, nil
	}
	return nil, map[string]any{"plans": plans}, nil
}

func (s *Server) handleGetPlan(ctx context.Context, req *mcp.CallToolRequest, input planNameInput) (*mcp.CallToolResult, any, error) {
	weeks, err := s.tracker.Store().GetPlanWeeks(input.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get plan: %w", err)
	}

	out := planOutput{Name: input.Name, Weeks: weeks, Totals: make([]float64, 0, len(weeks))}
	for _, w := range weeks {
		out.Totals = append(out.Totals, w.Total())
	}
	if len(weeks) == 0 {
		out.Message = "Plan has no weeks yet."
	}
	return nil, out, nil
}

func (s *Server) handleDropPlan(ctx context.Context, req *mcp.CallToolRequest, input planNameInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.tracker.Store().DropPlan(input.Name); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to drop plan: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Dropped plan: %s", input.Name),
	}, nil
}

func floatString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
