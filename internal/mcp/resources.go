// ABOUTME: MCP resource implementations for the run log.
// ABOUTME: Provides runlog://recent, runlog://weekly, runlog://plans and runlog://session resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/runlog/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	recentURI  = "runlog://recent"
	weeklyURI  = "runlog://weekly"
	plansURI   = "runlog://plans"
	sessionURI = "runlog://session"
)

func (s *Server) registerResources() {
	// runlog://recent - Last 10 runs
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "Recent Runs",
		Description: "Last 10 logged runs, newest first",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// runlog://weekly - Weekly aggregates over the configured lookback
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         weeklyURI,
		Name:        "Weekly Summary",
		Description: "Distance, sessions and mean speed per week over the default lookback window",
		MIMEType:    "application/json",
	}, s.handleWeeklyResource)

	// runlog://plans - Training plans with weekly totals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         plansURI,
		Name:        "Training Plans",
		Description: "Every training plan with its planned weekly totals",
		MIMEType:    "application/json",
	}, s.handlePlansResource)

	// runlog://session - What this server has changed since it started
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         sessionURI,
		Name:        "Session Changes",
		Description: "Dates inserted, updated and deleted since the server started",
		MIMEType:    "application/json",
	}, s.handleSessionResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	runs, err := s.tracker.Recent(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	if runs == nil {
		runs = []*models.Run{}
	}

	return jsonResource(recentURI, map[string]interface{}{
		"runs":  runs,
		"count": len(runs),
	})
}

func (s *Server) handleWeeklyResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := s.tracker.WeeklySummary(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to summarise weeks: %w", err)
	}
	return jsonResource(weeklyURI, summary)
}

func (s *Server) handlePlansResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	plans, err := s.tracker.Store().ListPlans()
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	result := make([]map[string]interface{}, 0, len(plans))
	for _, p := range plans {
		weeks, err := s.tracker.Store().GetPlanWeeks(p.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to read plan %s: %w", p.Name, err)
		}
		totals := make([]float64, 0, len(weeks))
		for _, w := range weeks {
			totals = append(totals, w.Total())
		}
		result = append(result, map[string]interface{}{
			"name":             p.Name,
			"weeks":            p.Weeks,
			"created_at":       p.CreatedAt.Format(time.RFC3339),
			"weekly_totals_km": totals,
		})
	}

	return jsonResource(plansURI, map[string]interface{}{"plans": result})
}

func (s *Server) handleSessionResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	session := s.tracker.Session()
	return jsonResource(sessionURI, map[string]interface{}{
		"inserted": datesOrEmpty(session.Inserted),
		"updated":  datesOrEmpty(session.Updated),
		"deleted":  datesOrEmpty(session.Deleted),
		"counts": map[string]int{
			"inserted": len(session.Inserted),
			"updated":  len(session.Updated),
			"deleted":  len(session.Deleted),
		},
	})
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func datesOrEmpty(dates []models.Date) []models.Date {
	if dates == nil {
		return []models.Date{}
	}
	return dates
}
