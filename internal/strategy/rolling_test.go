package strategy

import (
	"math"
	"testing"
)

func TestComputeAscendingSeries(t *testing.T) {
	comp, err := NewRollingMean(3)
	if err != nil {
		t.Fatalf("NewRollingMean returned error: %v", err)
	}

	records, rows := comp.Compute([]float64{1, 2, 3, 4, 5})
	if rows != 3 {
		t.Fatalf("expected 3 rows processed, got %d", rows)
	}
	wantMeans := []float64{2, 3, 4}
	wantIndices := []int{2, 3, 4}
	for i, rec := range records {
		if rec.Index != wantIndices[i] {
			t.Fatalf("record %d: expected index %d, got %d", i, wantIndices[i], rec.Index)
		}
		if rec.RollingMean != wantMeans[i] {
			t.Fatalf("record %d: expected mean %.2f, got %.6f", i, wantMeans[i], rec.RollingMean)
		}
		if rec.Signal != 1 {
			t.Fatalf("record %d: expected up signal, got %d", i, rec.Signal)
		}
	}
}

func TestComputeDescendingSeries(t *testing.T) {
	comp, err := NewRollingMean(2)
	if err != nil {
		t.Fatalf("NewRollingMean returned error: %v", err)
	}

	records, rows := comp.Compute([]float64{5, 4, 3, 2, 1})
	if rows != 4 {
		t.Fatalf("expected 4 rows processed, got %d", rows)
	}
	wantMeans := []float64{4.5, 3.5, 2.5, 1.5}
	for i, rec := range records {
		if rec.RollingMean != wantMeans[i] {
			t.Fatalf("record %d: expected mean %.2f, got %.6f", i, wantMeans[i], rec.RollingMean)
		}
		if rec.Signal != 0 {
			t.Fatalf("record %d: expected down signal, got %d", i, rec.Signal)
		}
	}
}

func TestComputeTieIsNotASignal(t *testing.T) {
	comp, _ := NewRollingMean(1)
	records, _ := comp.Compute([]float64{2, 2, 2})
	for i, rec := range records {
		if rec.Signal != 0 {
			t.Fatalf("record %d: close equal to mean must not signal, got %d", i, rec.Signal)
		}
	}
}

func TestComputeWindowBoundaries(t *testing.T) {
	comp, _ := NewRollingMean(5)

	records, rows := comp.Compute([]float64{1, 2, 3, 4, 5})
	if rows != 1 || len(records) != 1 {
		t.Fatalf("window == len expected exactly one record, got %d", rows)
	}
	if records[0].RollingMean != 3 {
		t.Fatalf("expected mean 3, got %.6f", records[0].RollingMean)
	}

	records, rows = comp.Compute([]float64{1, 2, 3})
	if rows != 0 || len(records) != 0 {
		t.Fatalf("window > len expected zero records, got %d", rows)
	}
}

func TestComputeRowCountProperty(t *testing.T) {
	closes := []float64{10, 11, 9, 12, 8, 13, 7, 14}
	for window := 1; window <= len(closes)+2; window++ {
		comp, _ := NewRollingMean(window)
		_, rows := comp.Compute(closes)
		want := len(closes) - window + 1
		if want < 0 {
			want = 0
		}
		if rows != want {
			t.Fatalf("window %d: expected %d rows processed, got %d", window, want, rows)
		}
	}
}

func TestComputeMatchesNaiveReference(t *testing.T) {
	closes := []float64{100.5, 99.25, 101.75, 98.5, 102.125, 97.875, 103.0, 100.0, 96.5, 104.25}
	for _, window := range []int{1, 2, 3, 4, 7, 10} {
		comp, _ := NewRollingMean(window)
		records, _ := comp.Compute(closes)
		for _, rec := range records {
			var sum float64
			for j := rec.Index - window + 1; j <= rec.Index; j++ {
				sum += closes[j]
			}
			naive := sum / float64(window)
			if math.Abs(rec.RollingMean-naive) > 1e-9 {
				t.Fatalf("window %d index %d: running-sum mean %.12f diverges from naive %.12f", window, rec.Index, rec.RollingMean, naive)
			}
			wantSignal := 0
			if rec.Close > naive {
				wantSignal = 1
			}
			if rec.Signal != wantSignal {
				t.Fatalf("window %d index %d: expected signal %d, got %d", window, rec.Index, wantSignal, rec.Signal)
			}
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	closes := []float64{3.14, 2.71, 1.41, 1.73, 2.23, 0.57}
	comp, _ := NewRollingMean(3)

	first, firstRows := comp.Compute(closes)
	second, secondRows := comp.Compute(closes)
	if firstRows != secondRows || len(first) != len(second) {
		t.Fatalf("repeated runs disagree on row counts: %d vs %d", firstRows, secondRows)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("record %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestNewRollingMeanRejectsBadWindow(t *testing.T) {
	if _, err := NewRollingMean(0); err == nil {
		t.Fatalf("expected error for window 0")
	}
	if _, err := NewRollingMean(-3); err == nil {
		t.Fatalf("expected error for negative window")
	}
}
