package boundedqueue

import "testing"

func BenchmarkEnqueue_Overflow(b *testing.B) {
    r := NewRing[int](1024)
    b.ReportAllocs()
    b.ResetTimer()
    for i := 0; i < b.N; i++ {
        r.Enqueue(i)
    }
}

func BenchmarkEnqueueDequeue(b *testing.B) {
    r := NewRing[int](1024)
    b.ReportAllocs()
    b.ResetTimer()
    for i := 0; i < b.N; i++ {
        r.Enqueue(i)
        if i%2 == 1 { // keep size bounded
            r.Dequeue()
        }
    }
}

func BenchmarkToSlice(b *testing.B) {
    r := NewRing[int](1024)
    for i := 0; i < 1500; i++ {
        r.Enqueue(i)
    }
    b.ReportAllocs()
    b.ResetTimer()
    for i := 0; i < b.N; i++ {
        _ = r.ToSlice()
    }
}
