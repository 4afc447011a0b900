package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smimonitor/noticias/pkg/domain"
	"github.com/smimonitor/noticias/pkg/repository"
)

// fixedNow is "today" for every service under test
var fixedNow = time.Date(2025, time.January, 31, 12, 0, 0, 0, time.UTC)

func setupRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(),
		repository.Config{DSN: filepath.Join(t.TempDir(), "service.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func day(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseStorage(s)
	require.NoError(t, err)
	return d
}

func addNews(t *testing.T, repos *repository.Repositories, item domain.NewsItem) domain.NewsItem {
	t.Helper()
	if item.Portal == "" {
		item.Portal = "Folha"
	}
	require.NoError(t, repos.News.Create(context.Background(), &item))
	return item
}

func addWeek(t *testing.T, svc *WeekService, start, end, category, subcategory string) domain.StrategicWeek {
	t.Helper()
	w, err := svc.Create(context.Background(), domain.WeekInput{StartDate: day(t, start), EndDate: day(t, end),
		Cycle: 20, Category: category, Subcategory: subcategory})
	require.NoError(t, err)
	return w
}

func intPtr(v int) *int { return &v }
