package assets

import "context"

// Asset is the result of a successful upload: a publicly reachable URL
// plus the identifier the store accepts for later deletion.
type Asset struct {
	URL string
	ID  string
}

// Store defines the interface for the remote image store.
// The deletable ID must come from the store's own response, never from
// parsing the URL (URL shapes change; response fields don't).
type Store interface {
	// Upload sends the file at localPath to the store and returns the
	// stored asset's URL and deletable identifier.
	Upload(ctx context.Context, localPath string) (*Asset, error)

	// Delete removes the asset with the given identifier from the store.
	Delete(ctx context.Context, assetID string) error
}
