package health

import "context"

// CatalogPinger checks that the catalog source can be read.
type CatalogPinger interface {
	Ping(ctx context.Context) error
}
