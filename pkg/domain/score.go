package domain

// DeriveScore returns the signed score of an item from its base magnitude and sentiment.
// Positive keeps the magnitude, Negative negates it, Neutral and no sentiment give zero.
func DeriveScore(base int, s Sentiment) int {
	if base < 0 {
		base = -base
	}
	switch s {
	case SentimentPositive:
		return base
	case SentimentNegative:
		return -base
	default:
		return 0
	}
}
