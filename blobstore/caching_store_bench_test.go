package blobstore

import (
	"context"
	"testing"
)

func benchmarkCachingStoreGet(b *testing.B, capacity int64) {
	ctx := context.Background()
	store := NewCachingStore(NewMemoryStore(), capacity)

	data := make([]byte, 64*1024)
	for i := range data {
		data[i] = byte(i)
	}
	if err := store.Put(ctx, "peaks.bin", data); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var sink int
	for b.Loop() {
		got, err := store.Get(ctx, "peaks.bin")
		if err != nil {
			b.Fatal(err)
		}
		sink += len(got)
	}
	_ = sink
}

func BenchmarkCachingStore_Get_Hit(b *testing.B) {
	benchmarkCachingStoreGet(b, 1<<20)
}

func BenchmarkCachingStore_Get_Miss(b *testing.B) {
	// Budget below the blob size, so every read goes to the inner store.
	benchmarkCachingStoreGet(b, 1024)
}
