package builder_test

import (
	"testing"

	"github.com/katalvlaran/cloth2d/builder"
)

// BenchmarkBuild measures a full 100×100 build: points, three constructors,
// ordering and registration.
// Complexity: O(P + S·log S).
func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Build(100, 100, builder.WithPinPolicy(builder.PinTopRow)); err != nil {
			b.Fatalf("Build: %v", err)
		}
	}
}
