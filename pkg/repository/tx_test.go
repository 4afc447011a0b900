package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smimonitor/noticias/pkg/domain"
)

func createWeek(t *testing.T, repos *Repositories, start, end, category string) int64 {
	t.Helper()
	var id int64
	err := repos.InTransaction(context.Background(), func(tx *Tx) error {
		var err error
		id, err = tx.CreateWeek(context.Background(), domain.WeekInput{
			StartDate: date(t, start), EndDate: date(t, end), Cycle: 20, Category: category, Subcategory: category + " sub",
		})
		return err
	})
	require.NoError(t, err)
	return id
}

func TestTx_ApplyNewsPatch(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	item := createNewsItem(t, repos, domain.NewsItem{Date: date(t, "07/01/2025"), Portal: "P", Title: "t",
		Theme: strPtr("Social"), Sentiment: domain.SentimentPositive, Category: strPtr("x")})

	patch := domain.NewsPatch{
		Relevance: domain.Some(domain.RelevanceSupport),
		Theme:     domain.Some("Educação"),
		Sentiment: domain.Null[domain.Sentiment](),
		Strategic: domain.Some(true),
		Category:  domain.Null[string](),
	}
	err := repos.InTransaction(ctx, func(tx *Tx) error {
		return tx.ApplyNewsPatch(ctx, item.ID, patch)
	})
	require.NoError(t, err)

	got, err := repos.News.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RelevanceSupport, got.Relevance)
	assert.Equal(t, "Educação", *got.Theme)
	assert.Equal(t, domain.SentimentNone, got.Sentiment)
	assert.True(t, got.Strategic)
	assert.Nil(t, got.Category)
	assert.Equal(t, "t", got.Title)

	// search column follows the theme
	items, err := repos.News.List(ctx, domain.NewsFilter{Relevance: domain.RelevanceAll, Theme: "EDUCAÇÃO"}, nil, 10)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	err = repos.InTransaction(ctx, func(tx *Tx) error {
		return tx.ApplyNewsPatch(ctx, 999, patch)
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTx_FindCoveringWeek(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	createWeek(t, repos, "01/01/2025", "10/01/2025", "Saúde")

	find := func(d string) *domain.StrategicWeek {
		var w *domain.StrategicWeek
		err := repos.InTransaction(ctx, func(tx *Tx) error {
			var err error
			w, err = tx.FindCoveringWeek(ctx, date(t, d))
			return err
		})
		require.NoError(t, err)
		return w
	}

	for _, d := range []string{"01/01/2025", "07/01/2025", "10/01/2025"} {
		w := find(d)
		require.NotNil(t, w, d)
		assert.Equal(t, "Saúde", w.Category)
	}
	assert.Nil(t, find("11/01/2025"))
	assert.Nil(t, find("31/12/2024"))

	t.Run("corrupt store picks latest update", func(t *testing.T) {
		older := createWeek(t, repos, "01/03/2025", "10/03/2025", "Gestão")
		newer := createWeek(t, repos, "05/03/2025", "15/03/2025", "Educação")
		_, err := repos.DB.Exec("UPDATE semanas_estrategicas SET updated_at = '2030-01-01 00:00:00' WHERE id = ?", older)
		require.NoError(t, err)
		_, err = repos.DB.Exec("UPDATE semanas_estrategicas SET updated_at = '2029-01-01 00:00:00' WHERE id = ?", newer)
		require.NoError(t, err)
		assert.Equal(t, older, find("07/03/2025").ID)

		// same timestamp, highest id wins
		_, err = repos.DB.Exec("UPDATE semanas_estrategicas SET updated_at = '2030-01-01 00:00:00' WHERE id = ?", newer)
		require.NoError(t, err)
		assert.Equal(t, newer, find("07/03/2025").ID)
	})
}

func TestTx_WeekWritesAndResync(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	inside := createNewsItem(t, repos, domain.NewsItem{Date: date(t, "12/01/2025"), Portal: "P", Title: "in"})
	outside := createNewsItem(t, repos, domain.NewsItem{Date: date(t, "02/01/2025"), Portal: "P", Title: "out",
		Category: strPtr("Gestão"), Subcategory: strPtr("old")})

	id := createWeek(t, repos, "01/01/2025", "07/01/2025", "Gestão")
	in := domain.WeekInput{StartDate: date(t, "10/01/2025"), EndDate: date(t, "16/01/2025"), Cycle: 21,
		Category: "Saúde", Subcategory: "Vacinação"}

	var touched int64
	err := repos.InTransaction(ctx, func(tx *Tx) error {
		if err := tx.UpdateWeek(ctx, id, in); err != nil {
			return err
		}
		var err error
		touched, err = tx.ResyncWeekItems(ctx, in.Interval(), in.Category, in.Subcategory)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), touched)

	w, err := repos.Weeks.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 21, w.Cycle)
	assert.Equal(t, "10/01/2025", w.StartDate.String())

	got, err := repos.News.Get(ctx, inside.ID)
	require.NoError(t, err)
	assert.Equal(t, "Saúde", *got.Category)
	assert.Equal(t, "Vacinação", *got.Subcategory)

	// forward only, the item left behind keeps its old labels
	got, err = repos.News.Get(ctx, outside.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gestão", *got.Category)
	assert.Equal(t, "old", *got.Subcategory)

	err = repos.InTransaction(ctx, func(tx *Tx) error { return tx.UpdateWeek(ctx, 999, in) })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWeekRepository_List(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	second := createWeek(t, repos, "08/01/2025", "14/01/2025", "Saúde")
	first := createWeek(t, repos, "01/01/2025", "07/01/2025", "Gestão")

	weeks, err := repos.Weeks.List(ctx, domain.Date{})
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, first, weeks[0].ID)
	assert.Equal(t, second, weeks[1].ID)

	weeks, err = repos.Weeks.List(ctx, date(t, "09/01/2025"))
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	assert.Equal(t, second, weeks[0].ID)

	weeks, err = repos.Weeks.List(ctx, date(t, "09/02/2025"))
	require.NoError(t, err)
	assert.Empty(t, weeks)

	_, err = repos.Weeks.Get(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
