package domain

const (
	// DefaultPageSize is used when the caller does not specify a limit.
	DefaultPageSize = 10
	// MaxPageSize is the hard cap on any single result slice.
	MaxPageSize = 100
)

// Order represents the scan direction over the ordering key.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ListParams holds pagination parameters for list queries.
// Zero values are replaced with defaults by Normalize.
type ListParams struct {
	Limit  int   // Items per slice
	Offset int   // 0-based skip count
	Order  Order // Scan direction (default: desc, newest first)
}

// PageParams converts 1-based page addressing into ListParams.
// pageIndex < 1 is treated as 1.
func PageParams(pageIndex, pageSize int, order Order) ListParams {
	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return ListParams{
		Limit:  pageSize,
		Offset: pageSize * (pageIndex - 1),
		Order:  order,
	}
}

// DefaultListParams returns list params with sensible defaults.
func DefaultListParams() ListParams {
	return ListParams{
		Limit: DefaultPageSize,
		Order: OrderDesc,
	}
}

// Normalize clamps parameters into acceptable bounds. This is bound
// correction, not validation: callers never see an error for a weird
// limit, they get the clamped value.
func (p *ListParams) Normalize() {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Order != OrderAsc {
		p.Order = OrderDesc
	}
}

// ClampLimit applies the default/max bounds to a bare limit value.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}

	return limit
}
