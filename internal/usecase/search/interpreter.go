package search

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/shopsearch/internal/domain/search/constraints"
)

// qualitativeRatingFloor is the only rating floor a query can express.
const qualitativeRatingFloor = 4.0

// minKeywordLength is the shortest token kept as a keyword, exclusive.
const minKeywordLength = 2

var (
	pricePattern  = regexp.MustCompile(`(?:under|less than|below|max|maximum)\s*\$?(\d+)`)
	ratingPattern = regexp.MustCompile(`(?:good|high|excellent)\s*(?:reviews?|rating)`)
)

// productTypes is the canonical type vocabulary, in reporting order.
var productTypes = []string{
	"shoes", "laptops", "electronics", "accessories", "clothing",
	"headphones", "gaming", "fitness", "kitchen",
}

var stopWords = map[string]struct{}{
	"show": {}, "me": {}, "with": {}, "and": {}, "the": {}, "for": {},
	"under": {}, "over": {}, "good": {}, "bad": {}, "high": {}, "low": {},
}

// Interpret parses a raw query into structured constraints. It never fails:
// a query without recognizable structure yields keywords only.
func Interpret(query string) constraints.Constraints {
	lower := strings.ToLower(query)
	return constraints.New(
		lower,
		parseMaxPrice(lower),
		parseMinRating(lower),
		parseRequestedTypes(lower),
		parseKeywords(lower),
	)
}

// parseMaxPrice returns the first price ceiling phrase. No floor is supported.
func parseMaxPrice(lower string) *float64 {
	m := pricePattern.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseMinRating(lower string) *float64 {
	if !ratingPattern.MatchString(lower) {
		return nil
	}
	v := qualitativeRatingFloor
	return &v
}

func parseRequestedTypes(lower string) []string {
	var types []string
	for _, t := range productTypes {
		if strings.Contains(lower, t) {
			types = append(types, t)
		}
	}
	return types
}

// parseKeywords keeps duplicates and query order; no stemming.
func parseKeywords(lower string) []string {
	var keywords []string
	for _, tok := range strings.Fields(lower) {
		if utf8.RuneCountInString(tok) <= minKeywordLength {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		keywords = append(keywords, tok)
	}
	return keywords
}
