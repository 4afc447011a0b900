// Package metrics aggregates filtered news items into dashboard figures.
// All functions are pure and work on items already restricted by date range and filters.
package metrics

import (
	"math"
	"sort"
	"strings"

	"github.com/smimonitor/noticias/pkg/domain"
)

// RankSize is the number of portals reported by rankings
const RankSize = 5

// Summary holds totals and the per-day series of a filtered set
type Summary struct {
	Total    int        `json:"totalNoticias"`
	Positive int        `json:"totalNoticiasPositivas"`
	Negative int        `json:"totalNoticiasNegativas"`
	Neutral  int        `json:"totalNoticiasNeutras"`
	Unrated  int        `json:"totalSemAvaliacao"`
	Score    int        `json:"pontuacaoTotal"`
	Days     []DayStats `json:"serie"`
}

// DayStats aggregates the items of one calendar day
type DayStats struct {
	Date     string `json:"data"` // YYYY-MM-DD
	Count    int    `json:"quantidade"`
	Score    int    `json:"pontuacao"`
	Positive int    `json:"positivas"`
	Negative int    `json:"negativas"`
	Neutral  int    `json:"neutras"`
	day      int64
}

// PortalScore is a portal with its summed derived score
type PortalScore struct {
	Portal string `json:"portal"`
	Score  int    `json:"pontuacao"`
	Count  int    `json:"quantidade"`
}

// Ranking lists the best and worst portals by summed derived score
type Ranking struct {
	Top    []PortalScore `json:"top"`
	Bottom []PortalScore `json:"bottom"`
}

// SentimentMix is the sentiment breakdown of all items of a portal
type SentimentMix struct {
	Total       int `json:"total"`
	Positive    int `json:"positivas"`
	Negative    int `json:"negativas"`
	Neutral     int `json:"neutras"`
	Unrated     int `json:"semAvaliacao"`
	PositivePct int `json:"percentualPositivas"`
	NegativePct int `json:"percentualNegativas"`
	NeutralPct  int `json:"percentualNeutras"`
}

// PortalSentiment is a ranked portal with its full sentiment mix
type PortalSentiment struct {
	PortalScore
	Mix SentimentMix `json:"sentimentos"`
}

// Summarize counts items by sentiment, sums derived scores and builds the ascending per-day series
func Summarize(items []domain.NewsItem) Summary {
	res := Summary{Total: len(items), Days: []DayStats{}}
	byDay := map[int64]*DayStats{}
	for _, it := range items {
		res.Score += it.DerivedScore
		ds, ok := byDay[it.Date.Days()]
		if !ok {
			ds = &DayStats{Date: it.Date.ISO(), day: it.Date.Days()}
			byDay[ds.day] = ds
		}
		ds.Count++
		ds.Score += it.DerivedScore
		switch it.Sentiment {
		case domain.SentimentPositive:
			res.Positive++
			ds.Positive++
		case domain.SentimentNegative:
			res.Negative++
			ds.Negative++
		case domain.SentimentNeutral:
			res.Neutral++
			ds.Neutral++
		default:
			res.Unrated++
		}
	}
	for _, ds := range byDay {
		res.Days = append(res.Days, *ds)
	}
	sort.Slice(res.Days, func(i, j int) bool { return res.Days[i].day < res.Days[j].day })
	return res
}

// RankPortals returns the n portals with the highest summed derived score (descending)
// and the n with the lowest (ascending). Ties go to the alphabetically first portal.
func RankPortals(items []domain.NewsItem, n int) Ranking {
	scores := portalScores(items)

	top := make([]PortalScore, len(scores))
	copy(top, scores)
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Score != top[j].Score {
			return top[i].Score > top[j].Score
		}
		return top[i].Portal < top[j].Portal
	})

	bottom := make([]PortalScore, len(scores))
	copy(bottom, scores)
	sort.SliceStable(bottom, func(i, j int) bool {
		if bottom[i].Score != bottom[j].Score {
			return bottom[i].Score < bottom[j].Score
		}
		return bottom[i].Portal < bottom[j].Portal
	})

	return Ranking{Top: head(top, n), Bottom: head(bottom, n)}
}

// TopBySentiment ranks portals using only their items with sentiment s, then attaches the
// sentiment mix over all their items. Positive ranks the highest sum first, Negative the most
// negative sum first.
func TopBySentiment(items []domain.NewsItem, s domain.Sentiment, n int) []PortalSentiment {
	var filtered []domain.NewsItem
	for _, it := range items {
		if it.Sentiment == s {
			filtered = append(filtered, it)
		}
	}
	scores := portalScores(filtered)
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			if s == domain.SentimentNegative {
				return scores[i].Score < scores[j].Score
			}
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Portal < scores[j].Portal
	})
	scores = head(scores, n)

	mixes := portalMixes(items)
	res := make([]PortalSentiment, 0, len(scores))
	for _, ps := range scores {
		res = append(res, PortalSentiment{PortalScore: ps, Mix: mixes[ps.Portal]})
	}
	return res
}

// Percent returns round(count/total*100), 0 for an empty total
func Percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// portalScores sums derived scores per trimmed portal name, skipping empty names.
// The result is ordered by portal name.
func portalScores(items []domain.NewsItem) []PortalScore {
	byPortal := map[string]*PortalScore{}
	for _, it := range items {
		name := strings.TrimSpace(it.Portal)
		if name == "" {
			continue
		}
		ps, ok := byPortal[name]
		if !ok {
			ps = &PortalScore{Portal: name}
			byPortal[name] = ps
		}
		ps.Score += it.DerivedScore
		ps.Count++
	}
	res := make([]PortalScore, 0, len(byPortal))
	for _, ps := range byPortal {
		res = append(res, *ps)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Portal < res[j].Portal })
	return res
}

func portalMixes(items []domain.NewsItem) map[string]SentimentMix {
	res := map[string]SentimentMix{}
	for _, it := range items {
		name := strings.TrimSpace(it.Portal)
		if name == "" {
			continue
		}
		m := res[name]
		m.Total++
		switch it.Sentiment {
		case domain.SentimentPositive:
			m.Positive++
		case domain.SentimentNegative:
			m.Negative++
		case domain.SentimentNeutral:
			m.Neutral++
		default:
			m.Unrated++
		}
		res[name] = m
	}
	for name, m := range res {
		m.PositivePct = Percent(m.Positive, m.Total)
		m.NegativePct = Percent(m.Negative, m.Total)
		m.NeutralPct = Percent(m.Neutral, m.Total)
		res[name] = m
	}
	return res
}

func head[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
