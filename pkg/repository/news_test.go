package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smimonitor/noticias/pkg/cursor"
	"github.com/smimonitor/noticias/pkg/domain"
)

func createNewsItem(t *testing.T, repos *Repositories, item domain.NewsItem) domain.NewsItem {
	t.Helper()
	require.NoError(t, repos.News.Create(context.Background(), &item))
	return item
}

func TestNewsRepository_CreateGet(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	item := createNewsItem(t, repos, domain.NewsItem{
		Date: date(t, "07/01/2025"), Portal: "Diário do Povo", Title: "Hospital inaugurado", Link: "https://x/1",
		Body: strPtr("corpo"), BaseScore: 30, DerivedScore: 30, Theme: strPtr("Saúde"),
		Sentiment: domain.SentimentPositive, Relevance: domain.RelevanceUseful, Reach: strPtr("Regional"),
	})
	assert.Positive(t, item.ID)

	got, err := repos.News.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "07/01/2025", got.Date.String())
	assert.Equal(t, "Diário do Povo", got.Portal)
	assert.Equal(t, domain.SentimentPositive, got.Sentiment)
	assert.Equal(t, domain.RelevanceUseful, got.Relevance)
	assert.Equal(t, "Saúde", *got.Theme)
	assert.Equal(t, "corpo", *got.Body)
	assert.Nil(t, got.Category)
	assert.False(t, got.Strategic)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = repos.News.Get(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewsRepository_Filters(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	neg := domain.SentimentNegative
	none := domain.SentimentNone
	yes := true

	createNewsItem(t, repos, domain.NewsItem{Date: date(t, "05/01/2025"), Portal: "Folha", Title: "Saúde PÚBLICA em alta",
		Theme: strPtr("Saúde"), Sentiment: domain.SentimentPositive})
	createNewsItem(t, repos, domain.NewsItem{Date: date(t, "06/01/2025"), Portal: "folha", Title: "Estrada nova",
		Relevance: domain.RelevanceUseful, Strategic: true, Sentiment: domain.SentimentNegative})
	createNewsItem(t, repos, domain.NewsItem{Date: date(t, "07/01/2025"), Portal: "Gazeta", Title: "Lixo total",
		Relevance: domain.RelevanceTrash})
	createNewsItem(t, repos, domain.NewsItem{Date: date(t, "08/01/2025"), Portal: "Gazeta", Title: "Apoio 100%",
		Relevance: domain.RelevanceSupport})
	createNewsItem(t, repos, domain.NewsItem{Date: date(t, "20/02/2025"), Portal: "Gazeta", Title: "fora do período"})

	january := domain.Interval{Start: date(t, "01/01/2025"), End: date(t, "31/01/2025")}

	tbl := []struct {
		name   string
		filter domain.NewsFilter
		titles []string
	}{
		{"default relevance hides trash and support", domain.NewsFilter{Period: january},
			[]string{"Estrada nova", "Saúde PÚBLICA em alta"}},
		{"all relevance", domain.NewsFilter{Period: january, Relevance: domain.RelevanceAll},
			[]string{"Apoio 100%", "Lixo total", "Estrada nova", "Saúde PÚBLICA em alta"}},
		{"only unset", domain.NewsFilter{Period: january, Relevance: domain.RelevanceNull},
			[]string{"Saúde PÚBLICA em alta"}},
		{"only trash", domain.NewsFilter{Period: january, Relevance: domain.RelevanceLixo}, []string{"Lixo total"}},
		{"only support", domain.NewsFilter{Period: january, Relevance: domain.RelevanceSuporte}, []string{"Apoio 100%"}},
		{"only useful", domain.NewsFilter{Period: january, Relevance: domain.RelevanceUtil}, []string{"Estrada nova"}},
		{"portal ignores case", domain.NewsFilter{Period: january, Portal: "FOLHA"},
			[]string{"Estrada nova", "Saúde PÚBLICA em alta"}},
		{"title substring ignores case of accented letters", domain.NewsFilter{Period: january, Title: "saúde pública"},
			[]string{"Saúde PÚBLICA em alta"}},
		{"title percent is literal", domain.NewsFilter{Period: january, Relevance: domain.RelevanceAll, Title: "100%"},
			[]string{"Apoio 100%"}},
		{"theme exact", domain.NewsFilter{Period: january, Theme: "saúde"}, []string{"Saúde PÚBLICA em alta"}},
		{"strategic", domain.NewsFilter{Period: january, Strategic: &yes}, []string{"Estrada nova"}},
		{"sentiment", domain.NewsFilter{Period: january, Sentiment: &neg}, []string{"Estrada nova"}},
		{"no sentiment", domain.NewsFilter{Period: january, Relevance: domain.RelevanceAll, Sentiment: &none},
			[]string{"Apoio 100%", "Lixo total"}},
		{"open period", domain.NewsFilter{Relevance: domain.RelevanceAll, Portal: "gazeta"},
			[]string{"fora do período", "Apoio 100%", "Lixo total"}},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			items, err := repos.News.List(ctx, tt.filter, nil, 100)
			require.NoError(t, err)
			titles := make([]string, 0, len(items))
			for _, it := range items {
				titles = append(titles, it.Title)
			}
			assert.Equal(t, tt.titles, titles)

			count, err := repos.News.Count(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, len(tt.titles), count)
		})
	}
}

func TestNewsRepository_CursorPages(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	// several items share a day so the id tie-break is exercised
	days := []string{"03/01/2025", "01/01/2025", "03/01/2025", "02/01/2025", "03/01/2025", "01/01/2025", "02/01/2025"}
	for i, d := range days {
		createNewsItem(t, repos, domain.NewsItem{Date: date(t, d), Portal: "P", Title: string(rune('a' + i))})
	}
	f := domain.NewsFilter{Relevance: domain.RelevanceAll}

	all, err := repos.News.List(ctx, f, nil, 100)
	require.NoError(t, err)
	require.Len(t, all, len(days))
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		assert.True(t, cur.Date.Before(prev.Date) || (cur.Date.Equal(prev.Date) && cur.ID < prev.ID))
	}

	var paged []domain.NewsItem
	var after *cursor.Cursor
	for {
		page, err := repos.News.List(ctx, f, after, 3)
		require.NoError(t, err)
		paged = append(paged, page...)
		next := cursor.Next(page, 3)
		if next == nil {
			break
		}
		c, err := cursor.Decode(*next)
		require.NoError(t, err)
		after = &c
	}
	assert.Equal(t, all, paged)
}

func TestNewsRepository_FindAndStrategicDates(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	createNewsItem(t, repos, domain.NewsItem{Date: date(t, "10/01/2025"), Portal: "P", Title: "a", Strategic: true})
	createNewsItem(t, repos, domain.NewsItem{Date: date(t, "02/02/2025"), Portal: "P", Title: "b", Strategic: true})
	createNewsItem(t, repos, domain.NewsItem{Date: date(t, "02/02/2025"), Portal: "P", Title: "c", Strategic: true})
	createNewsItem(t, repos, domain.NewsItem{Date: date(t, "03/02/2025"), Portal: "P", Title: "d"})

	items, err := repos.News.Find(ctx, domain.NewsFilter{})
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "a", items[0].Title)
	assert.Equal(t, "d", items[3].Title)

	dates, err := repos.News.StrategicDates(ctx)
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, "02/02/2025", dates[0].String())
	assert.Equal(t, "10/01/2025", dates[1].String())
}
