package mos_test

import (
	"testing"

	"github.com/scalatrix/scalatrix/mos"
)

// BenchmarkNew times a full diatonic derivation including the base
// scale walk.
func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := mos.New(5, 2, 1, 1.0, 0.585); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerateScale times periodic replication of five equaves.
func BenchmarkGenerateScale(b *testing.B) {
	m, err := mos.New(5, 2, 1, 1.0, 0.585)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := m.GenerateScale(440, 36, 14); err != nil {
			b.Fatal(err)
		}
	}
}
