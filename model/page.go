package model

// Page is one fetched batch of a resource pull. NextCursor is nil on the
// final page; GeneratedAt is the server marker the checkpoint advances to
// once the whole pull is stored.
type Page struct {
	Results     Resource
	NextCursor  *string
	TotalCount  int
	GeneratedAt string
}

// SyncProgress is emitted once per page after the page has been durably
// stored. Observation only; sync correctness never depends on it.
type SyncProgress struct {
	ResourceType ResourceType `json:"resource_type"`
	Loaded       int          `json:"loaded"`
	Total        int          `json:"total"`
	IsLastPage   bool         `json:"is_last_page"`
}
