package domain

// PageRequest selects one page of an activity history. Pages are numbered
// from 1 and records are ordered newest first.
type PageRequest struct {
	Page     int
	PageSize int
}

// Limit is the number of records to fetch.
func (p PageRequest) Limit() int {
	return max(p.PageSize, 0)
}

// Offset is the number of newer records skipped before this page.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

// PageCount reports how many pages of this size hold total records.
func (p PageRequest) PageCount(total int) int {
	if p.PageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}
