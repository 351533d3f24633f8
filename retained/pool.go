package retained

import "sync"

// Reflow runs on every size query of a dirty flow, so the per-pass scratch
// slices (line membership and main-axis positions) are pooled instead of
// allocated each time.

var indexSlicePool = sync.Pool{
	New: func() interface{} {
		s := make([]int, 0, 16)
		return &s
	},
}

func acquireIndexSlice(n int) []int {
	sp := indexSlicePool.Get().(*[]int)
	s := *sp
	if cap(s) < n {
		s = make([]int, n)
	}
	return s[:n]
}

func releaseIndexSlice(s []int) {
	s = s[:0]
	indexSlicePool.Put(&s)
}

var f32SlicePool = sync.Pool{
	New: func() interface{} {
		s := make([]float32, 0, 16)
		return &s
	},
}

func acquireF32Slice(n int) []float32 {
	sp := f32SlicePool.Get().(*[]float32)
	s := *sp
	if cap(s) < n {
		s = make([]float32, n)
	} else {
		s = s[:n]
		for i := range s {
			s[i] = 0
		}
	}
	return s[:n]
}

func releaseF32Slice(s []float32) {
	s = s[:0]
	f32SlicePool.Put(&s)
}
