package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveScore(t *testing.T) {
	tbl := []struct {
		base int
		s    Sentiment
		want int
	}{
		{100, SentimentPositive, 100},
		{100, SentimentNegative, -100},
		{100, SentimentNeutral, 0},
		{100, SentimentNone, 0},
		{-100, SentimentNegative, -100},
		{-100, SentimentPositive, 100},
		{0, SentimentNegative, 0},
	}
	for _, tt := range tbl {
		assert.Equal(t, tt.want, DeriveScore(tt.base, tt.s), "%d %q", tt.base, tt.s)
	}
	for base := -50; base <= 50; base++ {
		assert.LessOrEqual(t, DeriveScore(base, SentimentNegative), 0)
	}
}

func TestRelevance_JSON(t *testing.T) {
	tbl := []struct {
		in   string
		want Relevance
	}{
		{`"Util"`, RelevanceUseful},
		{`"útil"`, RelevanceUseful},
		{`"LIXO"`, RelevanceTrash},
		{`"suporte"`, RelevanceSupport},
		{`null`, RelevanceUnset},
		{`""`, RelevanceUnset},
		{`true`, RelevanceUseful},
		{`false`, RelevanceTrash},
	}
	for _, tt := range tbl {
		var r Relevance
		require.NoError(t, json.Unmarshal([]byte(tt.in), &r), tt.in)
		assert.Equal(t, tt.want, r, tt.in)
	}

	var r Relevance
	assert.ErrorIs(t, json.Unmarshal([]byte(`"maybe"`), &r), ErrInvalidArgument)

	out, err := json.Marshal(struct{ A, B Relevance }{RelevanceSupport, RelevanceUnset})
	require.NoError(t, err)
	assert.JSONEq(t, `{"A":"Suporte","B":null}`, string(out))
}

func TestSentiment_JSON(t *testing.T) {
	var s Sentiment
	require.NoError(t, json.Unmarshal([]byte(`"negativa"`), &s))
	assert.Equal(t, SentimentNegative, s)
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Equal(t, SentimentNone, s)
	assert.ErrorIs(t, json.Unmarshal([]byte(`"boa"`), &s), ErrInvalidArgument)

	out, err := json.Marshal(NewsItem{ID: 1, Sentiment: SentimentNeutral, Date: NewDate(2025, time.May, 2)})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"avaliacao":"Neutra"`)
	assert.Contains(t, string(out), `"data":"02/05/2025"`)
	assert.Contains(t, string(out), `"relevancia":null`)
	assert.NotContains(t, string(out), "created_at")
}

func TestDecodeNewsPatch(t *testing.T) {
	t.Run("absent, null and values", func(t *testing.T) {
		p, err := DecodeNewsPatch([]byte(`{"avaliacao":null,"estrategica":true,"tema":"Saúde","id":99,"pontos_new":5}`))
		require.NoError(t, err)
		assert.True(t, p.Sentiment.Set)
		assert.False(t, p.Sentiment.Valid)
		assert.Equal(t, Some(true), p.Strategic)
		assert.Equal(t, "Saúde", p.Theme.V)
		assert.False(t, p.Relevance.Set)
		assert.False(t, p.ExplicitCategory())
		assert.NoError(t, p.Validate())
	})

	t.Run("only unknown keys", func(t *testing.T) {
		p, err := DecodeNewsPatch([]byte(`{"pontos_new":5,"titulo":"x"}`))
		require.NoError(t, err)
		assert.True(t, p.Empty())
		assert.ErrorIs(t, p.Validate(), ErrInvalidArgument)
	})

	t.Run("bad enum", func(t *testing.T) {
		_, err := DecodeNewsPatch([]byte(`{"relevancia":"talvez"}`))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("bad theme", func(t *testing.T) {
		p, err := DecodeNewsPatch([]byte(`{"tema":"Esportes"}`))
		require.NoError(t, err)
		assert.ErrorIs(t, p.Validate(), ErrInvalidArgument)
	})

	t.Run("null strategic", func(t *testing.T) {
		p, err := DecodeNewsPatch([]byte(`{"estrategica":null}`))
		require.NoError(t, err)
		assert.ErrorIs(t, p.Validate(), ErrInvalidArgument)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := DecodeNewsPatch([]byte(`{"tema":`))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("explicit null category", func(t *testing.T) {
		p, err := DecodeNewsPatch([]byte(`{"estrategica":true,"categoria":null}`))
		require.NoError(t, err)
		assert.True(t, p.ExplicitCategory())
		assert.Nil(t, p.Category.Ptr())
	})
}

func TestParseRelevanceFilter(t *testing.T) {
	for in, want := range map[string]RelevanceFilter{
		"": RelevanceDefault, "TODAS": RelevanceAll, "Útil": RelevanceUtil, "util": RelevanceUtil,
		"nula": RelevanceNull, "Lixo": RelevanceLixo, "suporte": RelevanceSuporte,
	} {
		got, err := ParseRelevanceFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseRelevanceFilter("true")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2025, time.March, 31, 15, 0, 0, 0, time.UTC)
	d := func(s string) Date {
		v, err := ParseStorage(s)
		require.NoError(t, err)
		return v
	}

	iv, err := ResolvePeriod(Date{}, Date{}, 30, now)
	require.NoError(t, err)
	assert.Equal(t, "01/03/2025", iv.Start.String())
	assert.Equal(t, "31/03/2025", iv.End.String())

	iv, err = ResolvePeriod(d("10/03/2025"), Date{}, 30, now)
	require.NoError(t, err)
	assert.Equal(t, "10/03/2025", iv.Start.String())
	assert.Equal(t, "31/03/2025", iv.End.String())

	iv, err = ResolvePeriod(Date{}, d("15/02/2025"), 30, now)
	require.NoError(t, err)
	assert.Equal(t, "16/01/2025", iv.Start.String())
	assert.Equal(t, "15/02/2025", iv.End.String())

	_, err = ResolvePeriod(d("20/03/2025"), d("10/03/2025"), 30, now)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestWeekInput_Validate(t *testing.T) {
	iv := mustInterval(t, "01/01/2025", "07/01/2025")
	ok := WeekInput{StartDate: iv.Start, EndDate: iv.End, Cycle: 20, Category: "Saúde", Subcategory: "Vacinação"}
	assert.NoError(t, ok.Validate())

	low := ok
	low.Cycle = 19
	assert.ErrorIs(t, low.Validate(), ErrInvalidArgument)

	cat := ok
	cat.Category = "Esportes"
	assert.ErrorIs(t, cat.Validate(), ErrInvalidArgument)

	inv := ok
	inv.StartDate, inv.EndDate = iv.End, iv.Start
	assert.ErrorIs(t, inv.Validate(), ErrInvalidRange)
}

func TestPortal_Validate(t *testing.T) {
	p := Portal{Name: "  Folha  ", BaseScore: 10, Reach: ReachNational, Priority: PriorityHigh}
	require.NoError(t, p.Validate())
	assert.Equal(t, "Folha", p.Name)

	bad := Portal{Name: "x", BaseScore: 1, Reach: "Global", Priority: PriorityLow}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidArgument)

	neg := Portal{Name: "x", BaseScore: -1, Reach: ReachLocal, Priority: PriorityLow}
	assert.ErrorIs(t, neg.Validate(), ErrInvalidArgument)
}

func TestNewsInput_Validate(t *testing.T) {
	in := NewsInput{Date: NewDate(2025, time.January, 7), Title: "t", Body: "b", Link: "https://x",
		Portal: "Folha", Theme: "Saúde", Sentiment: SentimentPositive, Strategic: "Sim"}
	require.NoError(t, in.Validate())
	strategic, err := in.IsStrategic()
	require.NoError(t, err)
	assert.True(t, strategic)

	bad := in
	bad.Strategic = "talvez"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidArgument)

	noDate := in
	noDate.Date = Date{}
	assert.ErrorIs(t, noDate.Validate(), ErrInvalidArgument)
}
