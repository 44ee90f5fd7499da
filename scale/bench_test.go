package scale_test

import (
	"testing"

	"github.com/scalatrix/scalatrix/scale"
)

// BenchmarkFromAffine measures the strip search plus a 64-node walk.
func BenchmarkFromAffine(b *testing.B) {
	tr := diatonicTransform()
	opts := scale.DefaultOptions()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := scale.FromAffine(tr, 440, 64, 32, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkStripSteps isolates the step-pair search.
func BenchmarkStripSteps(b *testing.B) {
	tr := diatonicTransform()
	opts := scale.DefaultOptions()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := scale.StripSteps(tr, opts); err != nil {
			b.Fatal(err)
		}
	}
}
