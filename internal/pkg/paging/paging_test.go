package paging

import (
	"reflect"
	"testing"
)

func TestTotalPages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{"empty list is one page", 0, 10, 1},
		{"exact multiple", 30, 10, 3},
		{"partial last page", 25, 10, 3},
		{"single item", 1, 10, 1},
		{"zero page size falls back", 25, 0, 3},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
				t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	if got := Clamp(0, 3); got != 1 {
		t.Fatalf("Clamp(0, 3) = %d, want 1", got)
	}
	if got := Clamp(5, 3); got != 3 {
		t.Fatalf("Clamp(5, 3) = %d, want 3", got)
	}
	if got := Clamp(2, 3); got != 2 {
		t.Fatalf("Clamp(2, 3) = %d, want 2", got)
	}
}

func TestWindow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		page       int
		totalPages int
		want       []int
	}{
		{"25 items page 2", 2, 3, []int{1, 2, 3}},
		{"early page in long list", 2, 10, []int{1, 2, 3, 4, 5}},
		{"middle page shifts window", 6, 10, []int{4, 5, 6, 7, 8}},
		{"last page trims overflow", 10, 10, []int{8, 9, 10}},
		{"single page", 1, 1, []int{1}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Window(tc.page, tc.totalPages); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Window(%d, %d) = %v, want %v", tc.page, tc.totalPages, got, tc.want)
			}
		})
	}
}

func TestMetaFor(t *testing.T) {
	t.Parallel()

	meta := MetaFor(2, 10, 25)
	if meta.Page != 2 || meta.TotalPages != 3 || meta.Total != 25 {
		t.Fatalf("unexpected meta: %+v", meta)
	}
	if meta.From != 11 || meta.To != 20 {
		t.Fatalf("unexpected showing range: %d..%d", meta.From, meta.To)
	}
	if !reflect.DeepEqual(meta.Buttons, []int{1, 2, 3}) {
		t.Fatalf("unexpected buttons: %v", meta.Buttons)
	}

	meta = MetaFor(9, 10, 25)
	if meta.Page != 3 {
		t.Fatalf("out-of-range page should clamp to last, got %d", meta.Page)
	}
}

func TestShowingRange(t *testing.T) {
	t.Parallel()

	from, to := ShowingRange(2, 10, 25)
	if from != 11 || to != 20 {
		t.Fatalf("ShowingRange(2, 10, 25) = %d..%d, want 11..20", from, to)
	}
	from, to = ShowingRange(3, 10, 25)
	if from != 21 || to != 25 {
		t.Fatalf("ShowingRange(3, 10, 25) = %d..%d, want 21..25", from, to)
	}
	from, to = ShowingRange(1, 10, 0)
	if from != 0 || to != 0 {
		t.Fatalf("ShowingRange(1, 10, 0) = %d..%d, want 0..0", from, to)
	}
}
