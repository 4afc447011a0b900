package metrics

// DayCount is the number of items of a day
type DayCount struct {
	Date  string `json:"data"`
	Count int    `json:"quantidade"`
}

// DayScore is the summed derived score of a day
type DayScore struct {
	Date  string `json:"data"`
	Score int    `json:"pontuacao"`
}

// DaySentiment is the sentiment breakdown of a day
type DaySentiment struct {
	Date     string `json:"data"`
	Positive int    `json:"positivas"`
	Negative int    `json:"negativas"`
	Neutral  int    `json:"neutras"`
}

// Counts projects the per-day series to item counts
func (s Summary) Counts() []DayCount {
	res := make([]DayCount, len(s.Days))
	for i, d := range s.Days {
		res[i] = DayCount{Date: d.Date, Count: d.Count}
	}
	return res
}

// Scores projects the per-day series to score sums
func (s Summary) Scores() []DayScore {
	res := make([]DayScore, len(s.Days))
	for i, d := range s.Days {
		res[i] = DayScore{Date: d.Date, Score: d.Score}
	}
	return res
}

// Sentiments projects the per-day series to sentiment counts
func (s Summary) Sentiments() []DaySentiment {
	res := make([]DaySentiment, len(s.Days))
	for i, d := range s.Days {
		res[i] = DaySentiment{Date: d.Date, Positive: d.Positive, Negative: d.Negative, Neutral: d.Neutral}
	}
	return res
}
