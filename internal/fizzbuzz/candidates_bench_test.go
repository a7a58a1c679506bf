package fizzbuzz

import "testing"

var sink string

func benchmarkClassifier(b *testing.B, fn Classifier) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = fn(uint64(i))
	}
}

func BenchmarkBrute(b *testing.B)         { benchmarkClassifier(b, Brute) }
func BenchmarkAccumulate(b *testing.B)    { benchmarkClassifier(b, Accumulate) }
func BenchmarkCompositional(b *testing.B) { benchmarkClassifier(b, Compositional) }
func BenchmarkSwitch(b *testing.B)        { benchmarkClassifier(b, Switch) }
func BenchmarkCycle(b *testing.B)         { benchmarkClassifier(b, Cycle) }
func BenchmarkBytes(b *testing.B)         { benchmarkClassifier(b, Bytes) }
