package utils

import "testing"

func TestCreatePaginationMeta(t *testing.T) {
	tests := []struct {
		name         string
		page, limit  int
		total        int64
		wantPages    int
		wantNext     bool
		wantPrevious bool
	}{
		{"empty", 1, 20, 0, 1, false, false},
		{"exact fit", 1, 10, 20, 2, true, false},
		{"partial last page", 3, 10, 25, 3, false, true},
		{"zero limit", 1, 0, 5, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CreatePaginationMeta(tt.page, tt.limit, tt.total)
			if m.TotalPages != tt.wantPages || m.HasNext != tt.wantNext || m.HasPrevious != tt.wantPrevious {
				t.Fatalf("CreatePaginationMeta(%d, %d, %d) = %+v", tt.page, tt.limit, tt.total, m)
			}
		})
	}
}
