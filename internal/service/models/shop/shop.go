package shop

// Shop represents a partner shop referenced by order items.
type Shop struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// QueryShopsModel represents filter parameters for querying shops.
type QueryShopsModel struct {
	Ids    []int64 `json:"ids,omitempty"`
	Limit  int     `json:"limit,omitempty"`
	Offset int     `json:"offset,omitempty"`
}
