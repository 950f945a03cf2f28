package series

import "testing"

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		cols    [][]float64
		wantErr bool
	}{
		{"single column", [][]float64{{1, 2, 3}}, false},
		{"two equal columns", [][]float64{{1, 2}, {3, 4}}, false},
		{"no columns", nil, true},
		{"empty column", [][]float64{{}}, true},
		{"ragged columns", [][]float64{{1, 2, 3}, {1, 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cols...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Columns() != len(tt.cols) {
				t.Errorf("Columns = %d, want %d", s.Columns(), len(tt.cols))
			}
			if s.Len() != len(tt.cols[0]) {
				t.Errorf("Len = %d, want %d", s.Len(), len(tt.cols[0]))
			}
		})
	}
}

func TestNewDefaultNames(t *testing.T) {
	s, err := New([]float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"c0", "c1", "c2"}
	got := s.ColumnNames()
	if len(got) != len(want) {
		t.Fatalf("ColumnNames length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ColumnNames[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewNamedValidation(t *testing.T) {
	if _, err := NewNamed([]string{"a"}, [][]float64{{1}, {2}}); err == nil {
		t.Error("name/column count mismatch: expected error")
	}
	if _, err := NewNamed([]string{"a", ""}, [][]float64{{1}, {2}}); err == nil {
		t.Error("empty name: expected error")
	}
}

func TestAtAndColumn(t *testing.T) {
	s, err := New([]float64{1, 2, 3}, []float64{4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}

	if got := s.At(1, 2); got != 6 {
		t.Errorf("At(1, 2) = %g, want 6", got)
	}

	col := s.Column(0)
	if len(col) != 3 || col[0] != 1 {
		t.Errorf("Column(0) = %v, want [1 2 3]", col)
	}
}
