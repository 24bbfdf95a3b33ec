package model

// Page is a zero-indexed, offset-based slice of search results.
type Page struct {
	Items  []Transaction `json:"items"`
	Number int           `json:"page"`
	Size   int           `json:"size"`
	Total  uint64        `json:"total"`
}

// TotalPages returns how many pages of Size cover Total.
func (p Page) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	size := uint64(p.Size)
	return int((p.Total + size - 1) / size)
}
