package domain

import (
	"testing"
)

func TestListParams_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListParams
		want ListParams
	}{
		{
			name: "zero values get defaults",
			in:   ListParams{},
			want: ListParams{Limit: 10, Offset: 0, Order: OrderDesc},
		},
		{
			name: "limit above cap is clamped to 100",
			in:   ListParams{Limit: 500, Offset: 20, Order: OrderDesc},
			want: ListParams{Limit: 100, Offset: 20, Order: OrderDesc},
		},
		{
			name: "negative limit gets default",
			in:   ListParams{Limit: -5},
			want: ListParams{Limit: 10, Offset: 0, Order: OrderDesc},
		},
		{
			name: "negative offset is clamped to zero",
			in:   ListParams{Limit: 10, Offset: -3},
			want: ListParams{Limit: 10, Offset: 0, Order: OrderDesc},
		},
		{
			name: "ascending order is preserved",
			in:   ListParams{Limit: 10, Order: OrderAsc},
			want: ListParams{Limit: 10, Offset: 0, Order: OrderAsc},
		},
		{
			name: "unknown order falls back to descending",
			in:   ListParams{Limit: 10, Order: "sideways"},
			want: ListParams{Limit: 10, Offset: 0, Order: OrderDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Normalize()
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		name       string
		pageIndex  int
		pageSize   int
		wantLimit  int
		wantOffset int
	}{
		{"first page", 1, 10, 10, 0},
		{"second page", 2, 10, 10, 10},
		{"page below one treated as one", 0, 10, 10, 0},
		{"zero page size gets default", 3, 0, 10, 20},
		{"custom page size", 4, 25, 25, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PageParams(tt.pageIndex, tt.pageSize, OrderDesc)
			if p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Errorf("PageParams(%d, %d) = limit %d offset %d, want limit %d offset %d",
					tt.pageIndex, tt.pageSize, p.Limit, p.Offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestClampLimit(t *testing.T) {
	if got := ClampLimit(0); got != DefaultPageSize {
		t.Errorf("ClampLimit(0) = %d, want %d", got, DefaultPageSize)
	}
	if got := ClampLimit(-1); got != DefaultPageSize {
		t.Errorf("ClampLimit(-1) = %d, want %d", got, DefaultPageSize)
	}
	if got := ClampLimit(101); got != MaxPageSize {
		t.Errorf("ClampLimit(101) = %d, want %d", got, MaxPageSize)
	}
	if got := ClampLimit(33); got != 33 {
		t.Errorf("ClampLimit(33) = %d, want 33", got)
	}
}
