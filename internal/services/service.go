package services

import (
	"context"

	"github.com/jogossc/boletins-backend/internal/models"
)

// VerificationService defines the interface for bet verification operations
type VerificationService interface {
	// Run verifies every recorded bet of one game against the draw
	// archives and merges the results into the history ledger
	Run(ctx context.Context, gameID string) (*models.RunSummary, error)

	// RunAll runs the verification for every supported game
	RunAll(ctx context.Context) ([]*models.RunSummary, error)

	// LookupCode answers whether a prize code ever won, across all
	// archived draws, regardless of any slip's claimed date
	LookupCode(ctx context.Context, code string) (*models.Draw, string, error)
}

// NotificationService defines the interface for result notifications
type NotificationService interface {
	// Generate raises a notification for every recent result not yet
	// notified, returning how many were added
	Generate(ctx context.Context) (int, error)
}

// StatisticsService defines the interface for aggregate statistics
type StatisticsService interface {
	// Generate rebuilds the monthly and annual per-game statistics from
	// the recorded bets and draw archives
	Generate(ctx context.Context) (*models.Statistics, error)
}

// UploadService defines the interface for slip image ingestion
type UploadService interface {
	// Process extracts bets from every new image in the uploads folder
	Process(ctx context.Context) (*UploadReport, error)
}

// UploadReport tallies one pass over the uploads folder.
type UploadReport struct {
	Images     int `json:"images"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
	BetsAdded  int `json:"bets_added"`
	Duplicates int `json:"duplicates"`
	Rejected   int `json:"rejected"`
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}
