package services

import (
	"time"

	"github.com/necropharaoh/qr-menu-system/repository"
)

type AnalyticsService struct {
	Repo *repository.AnalyticsRepository
}

func NewAnalyticsService(repo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{Repo: repo}
}

func (s *AnalyticsService) DailySales(date string) (*repository.DailySales, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return s.Repo.DailySales(date)
}

func (s *AnalyticsService) WeeklySales() ([]repository.DailySales, error) {
	return s.Repo.WeeklySales()
}

func (s *AnalyticsService) PopularItems(limit int) ([]repository.PopularItem, error) {
	return s.Repo.PopularItems(limit)
}

func (s *AnalyticsService) CategorySales() ([]repository.CategorySales, error) {
	return s.Repo.CategorySales()
}

func (s *AnalyticsService) TablePerformance() ([]repository.TablePerformance, error) {
	return s.Repo.TablePerformance()
}

func (s *AnalyticsService) OrderStatusStats() ([]repository.OrderStatusStat, error) {
	return s.Repo.OrderStatusStats()
}
