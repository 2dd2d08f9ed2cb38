package align

import (
	"testing"
)

func benchSequences(n int) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = float64(i) + 0.25
	}
	return x, y
}

func benchmarkJoin(b *testing.B, kind Kind) {
	b.Helper()
	b.ReportAllocs()

	x, y := benchSequences(10_000)
	tol := Abs(0.5)

	var sink *Table
	b.ResetTimer()
	for b.Loop() {
		t, err := Join(x, y, tol, kind)
		if err != nil {
			b.Fatal(err)
		}
		sink = t
	}
	_ = sink
}

func BenchmarkJoin_Left(b *testing.B)         { benchmarkJoin(b, KindLeft) }
func BenchmarkJoin_Inner(b *testing.B)        { benchmarkJoin(b, KindInner) }
func BenchmarkJoin_Outer(b *testing.B)        { benchmarkJoin(b, KindOuter) }
func BenchmarkJoin_OuterForward(b *testing.B) { benchmarkJoin(b, KindOuterForward) }

func BenchmarkClosest(b *testing.B) {
	b.ReportAllocs()

	x, y := benchSequences(10_000)
	tol := Abs(0.5)

	var sink []Index
	b.ResetTimer()
	for b.Loop() {
		out, err := Closest(x, y, tol, DuplicatesClosest)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}
