// Package groupz provides type-safe, composable grouping primitives that
// turn chronologically-ordered, timestamped event streams into discrete,
// timestamped groups suitable for downstream batch processing.
//
// The core abstraction is the Grouper interface: a synchronous state machine
// that accepts data incrementally via Put and hands back completed groups
// via TryNext. Groupers never block and never spawn goroutines; callers
// drive them in stream order and drain completed output whenever convenient.
//
// Basic usage:
//
//	// Group readings into 10-second windows aligned to the epoch
//	fw, err := groupz.NewFixedWindow[Reading](epoch, 10*time.Second)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for r := range readings {
//		fw.Put(r, r.Start, r.End)
//		for g, ok := fw.TryNext(); ok; g, ok = fw.TryNext() {
//			extractFeatures(g.Items, g.Start, g.End)
//		}
//	}
//
// The package provides groupers for common stream-alignment patterns:
//   - Fixed-count blocks and element-level sliding blocks
//   - Fixed-duration windows aligned to a configured origin
//   - Run-length counting over a validity predicate
//   - Sliding histories with one-step look-ahead
//   - Neighborhood membership checks over contiguous runs
//   - Multi-topic synchronization by proportional time overlap
package groupz

import "time"

// Grouper is the core interface for single-stream grouping components.
// It converts one ordered stream of timestamped data into a FIFO queue of
// completed groups. Groupers should:
//   - Accept data in non-decreasing interval order (not verified beyond
//     cheap sanity checks)
//   - Never block in Put or TryNext
//   - Emit completed groups strictly in the order they close
//
// Grouper state is not safe for concurrent use; callers serialize access.
type Grouper[T, G any] interface {
	// Put ingests one datum valid over [start, end]. It may complete zero
	// or more groups internally.
	Put(datum T, start, end time.Time)

	// TryNext pops the oldest completed group, or reports false when no
	// group is ready yet. Repeated calls drain all completed groups.
	TryNext() (G, bool)

	// Name returns a descriptive name for the grouper, useful for debugging.
	Name() string
}

// Synchronizer is the multi-stream counterpart of Grouper: data arrive
// independently per named topic and emerge as jointly-aligned bundles with
// one slot per topic. The same ordering and threading rules apply; Put
// calls across topics into one instance must be externally serialized.
type Synchronizer[T any] interface {
	// Put ingests one datum for topic, valid over [start, end].
	Put(topic string, datum T, start, end time.Time)

	// TryNext pops the oldest complete bundle, or reports false when the
	// oldest open bundle is still waiting on at least one topic.
	TryNext() (Bundle[T], bool)

	// Name returns a descriptive name for the synchronizer.
	Name() string
}

// ChunkBuffer is the storage a SlidingBlock accumulates elements in before
// slicing them into fixed-size blocks. SequentialBuffer is the standard
// implementation; environments with packed numeric storage can supply their
// own.
type ChunkBuffer[T any] interface {
	// Put appends a run of elements.
	Put(items []T)

	// Chunks reports how many complete chunks are currently buffered.
	Chunks() int

	// TryNext removes and returns the oldest full chunk, or reports false
	// when less than one chunk is buffered.
	TryNext() ([]T, bool)

	// Drain returns and clears all buffered elements, including a partial
	// trailing chunk.
	Drain() []T
}
