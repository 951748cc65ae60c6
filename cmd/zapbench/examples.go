package main

import (
	"math/rand"
	"strconv"

	"github.com/zapbench/zap/internal/engine"
	"github.com/zapbench/zap/pkg/optbarrier"
)

// exampleGroups registers the fibonacci/sorting/memory benchmark groups
// from original_source/examples/example_advanced.c, translated to the
// data-driven Group.Add/AddParam API (spec.md §9's "variadic
// registration macros" note: the C source uses zap_bench_with_input in a
// loop over parameter arrays, which is exactly what AddParam replaces).
func exampleGroups() []*engine.Group {
	return []*engine.Group{
		fibonacciGroup(),
		sortingGroup(),
		memoryGroup(),
	}
}

func fibonacci(n int) int {
	if n <= 1 {
		return n
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

func fibonacciGroup() *engine.Group {
	g := engine.NewGroup("fibonacci").
		WithTags("fast", "cpu").
		WithWarmup(500_000_000).
		WithMeasurement(2_000_000_000).
		WithSampleCount(50)

	for _, n := range []int{5, 10, 15, 20, 25, 30} {
		n := n
		g.AddParam("fib", n, func(b *engine.B) {
			for b.Next() {
				for i := 0; i < b.N(); i++ {
					optbarrier.BlackBox(fibonacci(n))
				}
			}
		})
	}
	return g
}

func bubbleSort(data []int) {
	for i := 0; i < len(data)-1; i++ {
		for j := 0; j < len(data)-i-1; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
			}
		}
	}
}

func sortingGroup() *engine.Group {
	g := engine.NewGroup("sorting").
		WithTags("slow", "cpu").
		WithWarmup(200_000_000).
		WithMeasurement(1_000_000_000)

	for _, n := range []int{10, 50, 100, 200} {
		n := n
		src := make([]int, n)
		for i := range src {
			src[i] = rand.Intn(1000)
		}
		work := make([]int, n)

		g.AddParam("bubble_sort", n, func(b *engine.B) {
			for b.Next() {
				for i := 0; i < b.N(); i++ {
					copy(work, src)
					bubbleSort(work)
					optbarrier.BlackBox(work)
				}
			}
		})
	}
	return g
}

func memoryGroup() *engine.Group {
	g := engine.NewGroup("memory").WithTags("fast", "alloc")

	for _, size := range []int{64, 256, 1024, 4096, 16384, 65536} {
		size := size
		g.AddParam("alloc", sizeLabel(size), func(b *engine.B) {
			b.SetBytes(int64(size))
			for b.Next() {
				for i := 0; i < b.N(); i++ {
					buf := make([]byte, size)
					optbarrier.BlackBox(buf)
				}
			}
		})
	}
	return g
}

func sizeLabel(size int) string {
	if size >= 1024 {
		return strconv.Itoa(size/1024) + "KB"
	}
	return strconv.Itoa(size) + "B"
}
