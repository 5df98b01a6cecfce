package dynfmt

import (
	"io"
	"testing"
)

// =============================================================================
// PARSING BENCHMARKS
// =============================================================================

func BenchmarkParse_Simple(b *testing.B) {
	engine := MustNew()
	source := "Hello {name}!"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Parse(source)
	}
}

func BenchmarkParse_Specifiers(b *testing.B) {
	engine := MustNew()
	source := "{id:>8} | {name:*^20.12} | {score:+010.3} | {mask:#034b} | {:w$.p$e}"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Parse(source)
	}
}

func BenchmarkParse_Cached(b *testing.B) {
	engine := MustNew(WithParseCache(DefaultCacheConfig()))
	source := "{id:>8} | {name:*^20.12} | {score:+010.3}"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Parse(source)
	}
}

// =============================================================================
// RENDER BENCHMARKS
// =============================================================================

func BenchmarkRender_Positional(b *testing.B) {
	tmpl := MustParse("{} + {} = {}")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Format(1, 2, 3)
	}
}

func BenchmarkRender_Numeric(b *testing.B) {
	tmpl := MustParse("{:#010x} {:o} {:b} {:e} {:.3}")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Format(0xdeadbeef, 511, 42, 1234.5678, 3.14159)
	}
}

func BenchmarkRender_FillAlign(b *testing.B) {
	tmpl := MustParse("[{:-^24}] [{:>12}] [{:<12}]")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Format("centered", "right", "left")
	}
}

func BenchmarkRender_Named(b *testing.B) {
	tmpl := MustParse("{user} logged in from {addr} after {tries} attempts")
	args := map[string]any{"user": "alice", "addr": "10.0.0.1", "tries": 3}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.FormatNamed(args)
	}
}

func BenchmarkRender_Writer(b *testing.B) {
	tmpl := MustParse("{id:>8}|{name:<16}|{score:>8.2}\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		binder := tmpl.Bind().Named("id", i).Named("name", "row").Named("score", 99.5)
		_, _ = binder.RenderTo(io.Discard)
	}
}

// =============================================================================
// CONCURRENCY BENCHMARKS
// =============================================================================

func BenchmarkRender_Concurrent(b *testing.B) {
	tmpl := MustParse("{name:>10} {count:#06x}")

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = tmpl.FormatNamed(map[string]any{"name": "worker", "count": 42})
		}
	})
}

func BenchmarkParse_CachedConcurrent(b *testing.B) {
	engine := MustNew(WithParseCache(DefaultCacheConfig()))
	sources := []string{"{}", "{:>4}", "{x:?}", "{:#x}"}

	for _, source := range sources {
		_, _ = engine.Parse(source)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = engine.Parse(sources[i%len(sources)])
			i++
		}
	})
}
