package services

import (
	"context"

	"budgetly/internal/analytics"
	"budgetly/internal/repository"
)

// dashboardService assembles the dashboard from the ledger and catalog.
type dashboardService struct {
	transactions repository.TransactionRepository
	categories   repository.CategoryRepository
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(transactions repository.TransactionRepository, categories repository.CategoryRepository) DashboardServicer {
	return &dashboardService{transactions: transactions, categories: categories}
}

// GetSummary loads the user's whole ledger, since the recent list ignores
// the range, and lets the engine apply rng to the totals.
func (s *dashboardService) GetSummary(ctx context.Context, userID string, rng analytics.DateRange) (*analytics.DashboardSummary, error) {
	transactions, err := s.transactions.List(ctx, userID, repository.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return analytics.ComputeSummary(userID, transactions, categories, rng)
}
