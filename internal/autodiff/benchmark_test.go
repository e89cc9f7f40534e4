package autodiff_test

import (
	"fmt"
	"testing"

	"github.com/gradlet-ml/gradlet/internal/autodiff"
)

func BenchmarkOps(b *testing.B) {
	g := autodiff.NewGraph()
	x := g.NewValue(1.5)
	y := g.NewValue(-2.5)
	mark := g.Mark()

	b.Run("Add", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = x.Add(y)
			g.Reset(mark)
		}
	})

	b.Run("Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = x.Mul(y)
			g.Reset(mark)
		}
	})

	b.Run("Pow", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = x.Pow(2)
			g.Reset(mark)
		}
	})

	b.Run("ReLU", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = x.ReLU()
			g.Reset(mark)
		}
	})
}

func BenchmarkBuildExpression(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Chain-%d", size), func(b *testing.B) {
			g := autodiff.NewGraph()
			x := g.NewValue(1.0)
			mark := g.Mark()

			for i := 0; i < b.N; i++ {
				v := x
				for j := 0; j < size; j++ {
					v = v.MulF(1.0001).AddF(0.001)
				}
				g.Reset(mark)
			}
		})
	}
}

func BenchmarkBackward(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		g := autodiff.NewGraph()
		v := g.NewValue(1.0)
		for j := 0; j < size; j++ {
			v = v.MulF(1.0001).AddF(0.001)
		}

		b.Run(fmt.Sprintf("Chain-%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v.Backward()
			}
		})
	}
}
