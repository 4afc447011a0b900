package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smimonitor/noticias/pkg/domain"
)

func TestDashboardService(t *testing.T) {
	repos := setupRepos(t)
	svc := NewDashboardService(repos, 30)
	svc.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	add := func(d, portal string, s domain.Sentiment, score int, r domain.Relevance) {
		addNews(t, repos, domain.NewsItem{Date: day(t, d), Portal: portal, Title: "n", Sentiment: s,
			DerivedScore: score, BaseScore: max(score, -score), Relevance: r})
	}
	add("10/01/2025", "Folha", domain.SentimentPositive, 30, domain.RelevanceUnset)
	add("10/01/2025", "Gazeta", domain.SentimentNegative, -20, domain.RelevanceUseful)
	add("12/01/2025", "Folha", domain.SentimentNeutral, 0, domain.RelevanceTrash)
	add("15/12/2024", "Folha", domain.SentimentPositive, 99, domain.RelevanceUnset) // outside default window

	t.Run("default window counts every relevance", func(t *testing.T) {
		s, err := svc.Summary(ctx, DashboardRequest{Filter: domain.NewsFilter{Relevance: domain.RelevanceAll}})
		require.NoError(t, err)
		assert.Equal(t, 3, s.Total)
		assert.Equal(t, 1, s.Positive)
		assert.Equal(t, 1, s.Negative)
		assert.Equal(t, 1, s.Neutral)
		assert.Equal(t, 10, s.Score)
		require.Len(t, s.Days, 2)
		assert.Equal(t, "2025-01-10", s.Days[0].Date)
	})

	t.Run("relevance filter", func(t *testing.T) {
		s, err := svc.Summary(ctx, DashboardRequest{Filter: domain.NewsFilter{Relevance: domain.RelevanceLixo}})
		require.NoError(t, err)
		assert.Equal(t, 1, s.Total)
	})

	t.Run("only end date looks back a window", func(t *testing.T) {
		s, err := svc.Summary(ctx, DashboardRequest{To: day(t, "31/12/2024"),
			Filter: domain.NewsFilter{Relevance: domain.RelevanceAll}})
		require.NoError(t, err)
		assert.Equal(t, 1, s.Total)
		assert.Equal(t, 99, s.Score)
	})

	t.Run("last window overrides dates", func(t *testing.T) {
		s, err := svc.Summary(ctx, DashboardRequest{To: day(t, "31/12/2024"), LastWindow: true,
			Filter: domain.NewsFilter{Relevance: domain.RelevanceAll}})
		require.NoError(t, err)
		assert.Equal(t, 3, s.Total)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := svc.Summary(ctx, DashboardRequest{From: day(t, "10/01/2025"), To: day(t, "01/01/2025")})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("overview", func(t *testing.T) {
		ov, err := svc.Overview(ctx, DashboardRequest{Filter: domain.NewsFilter{Relevance: domain.RelevanceAll}})
		require.NoError(t, err)
		assert.Equal(t, 3, ov.Total)
		assert.Equal(t, "2025-01-01", ov.PeriodStart)
		assert.Equal(t, "2025-01-31", ov.PeriodEnd)
		require.Len(t, ov.Ranking.Top, 2)
		assert.Equal(t, "Folha", ov.Ranking.Top[0].Portal)
		assert.Equal(t, "Gazeta", ov.Ranking.Bottom[0].Portal)
		require.Len(t, ov.PositivePortals, 1)
		assert.Equal(t, 50, ov.PositivePortals[0].Mix.PositivePct)
		require.Len(t, ov.NegativePortals, 1)
		assert.Equal(t, "Gazeta", ov.NegativePortals[0].Portal)
	})

	t.Run("ranking and top portals", func(t *testing.T) {
		r, err := svc.Ranking(ctx, DashboardRequest{Filter: domain.NewsFilter{Relevance: domain.RelevanceAll}})
		require.NoError(t, err)
		assert.Len(t, r.Top, 2)

		top, err := svc.TopPortals(ctx, DashboardRequest{Filter: domain.NewsFilter{Relevance: domain.RelevanceAll}},
			domain.SentimentNegative)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, -20, top[0].Score)
	})
}
