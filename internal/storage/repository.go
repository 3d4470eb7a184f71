// ABOUTME: Repository interface for run and plan storage.
// ABOUTME: Defines the contract the tracker, MCP server and CLI depend on.
package storage

import (
	"github.com/harperreed/runlog/internal/models"
)

//go:generate mockgen -source=$GOFILE -destination=../tracker/repository_mock_test.go -package=tracker

// Repository defines the storage interface for run data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Run operations
	UpsertRun(r *models.Run) (models.WriteAction, error)
	UpsertRuns(runs []*models.Run) ([]models.WriteAction, error)
	GetRun(date models.Date) (*models.Run, error)
	DeleteRun(date models.Date) (bool, error)
	ListRuns(order models.SortOrder) ([]*models.Run, error)
	QueryRuns(bounds models.RunBounds) ([]*models.Run, error)

	// Plan operations
	CreatePlan(name string) error
	CreatePlanWithWeeks(name string, weeks [][7]float64) error
	DropPlan(name string) error
	AddPlanWeek(name string, days [7]float64) (int, error)
	ListPlans() ([]models.Plan, error)
	GetPlanWeeks(name string) ([]models.PlanWeek, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
