// Package report serves the admin read-only aggregates.
package report

import (
	"standsreg/internal/models"
	"standsreg/internal/repositories"
)

// PaymentSummary is the rollup across all recorded payments.
type PaymentSummary struct {
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

type Service interface {
	// ApplicationsByStatus counts applications per status. Statuses with no
	// applications report zero rather than being absent.
	ApplicationsByStatus() (map[models.ApplicationStatus]int64, error)

	// PaymentsSummary totals all payments; zero-valued when none exist.
	PaymentsSummary() (*PaymentSummary, error)
}

type service struct {
	apps repositories.ApplicationRepository
}

func NewService(apps repositories.ApplicationRepository) Service {
	return &service{apps: apps}
}

func (s *service) ApplicationsByStatus() (map[models.ApplicationStatus]int64, error) {
	counts, err := s.apps.CountByStatus()
	if err != nil {
		return nil, err
	}
	for _, status := range []models.ApplicationStatus{models.StatusPending, models.StatusApproved, models.StatusRejected} {
		if _, ok := counts[status]; !ok {
			counts[status] = 0
		}
	}
	return counts, nil
}

func (s *service) PaymentsSummary() (*PaymentSummary, error) {
	total, count, err := s.apps.PaymentSummary()
	if err != nil {
		return nil, err
	}
	return &PaymentSummary{Total: total, Count: count}, nil
}
