package constraints

// Constraints is the structured form of a free-text search query.
// Absent price and rating limits are explicit: a zero limit is still a limit.
type Constraints struct {
	query          string
	maxPrice       *float64
	minRating      *float64
	requestedTypes []string
	keywords       []string
}

// New creates a constraint set. query is the lower-cased raw query used for category matching.
func New(query string, maxPrice, minRating *float64, requestedTypes, keywords []string) Constraints {
	return Constraints{
		query:          query,
		maxPrice:       maxPrice,
		minRating:      minRating,
		requestedTypes: requestedTypes,
		keywords:       keywords,
	}
}

// Query returns the lower-cased query the constraints were derived from.
func (c Constraints) Query() string { return c.query }

// MaxPrice returns the price ceiling and whether one was requested.
func (c Constraints) MaxPrice() (float64, bool) {
	if c.maxPrice == nil {
		return 0, false
	}
	return *c.maxPrice, true
}

// MinRating returns the rating floor and whether one was requested.
func (c Constraints) MinRating() (float64, bool) {
	if c.minRating == nil {
		return 0, false
	}
	return *c.minRating, true
}

// RequestedTypes returns the canonical product types found in the query.
func (c Constraints) RequestedTypes() []string { return c.requestedTypes }

// Keywords returns the free-text tokens left after stop-word removal.
func (c Constraints) Keywords() []string { return c.keywords }

// HasHardConstraints reports whether any exclusionary constraint is present.
func (c Constraints) HasHardConstraints() bool {
	return c.maxPrice != nil || c.minRating != nil || len(c.requestedTypes) > 0
}
