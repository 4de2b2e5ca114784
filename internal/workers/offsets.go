package workers

import (
	"sync"

	kafkago "github.com/segmentio/kafka-go"
)

type offsetState int

const (
	offsetInFlight offsetState = iota
	offsetDone
	offsetFailed
)

type trackedOffset struct {
	offset int64
	state  offsetState
}

// partitionOffsets holds the fetched but not yet committed offsets of one
// partition, in fetch order.
type partitionOffsets struct {
	commitMu  sync.Mutex
	committed int64
	entries   []trackedOffset
}

// offsetTracker only releases a partition's offset for commit once every
// earlier fetched offset of that partition is done. A failed offset pins the
// partition until the consumer restarts and the group redelivers from it.
type offsetTracker struct {
	mu         sync.Mutex
	partitions map[int]*partitionOffsets
}

func newOffsetTracker() *offsetTracker {
	return &offsetTracker{partitions: make(map[int]*partitionOffsets)}
}

func (t *offsetTracker) add(msg kafkago.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.partitions[msg.Partition]
	if !ok {
		p = &partitionOffsets{committed: -1}
		t.partitions[msg.Partition] = p
	}
	p.entries = append(p.entries, trackedOffset{offset: msg.Offset, state: offsetInFlight})
}

// finish records the outcome of msg and returns the highest offset of its
// partition that is now safe to commit. ready is false when nothing advanced.
// Messages that were never added are released as-is.
func (t *offsetTracker) finish(msg kafkago.Message, succeeded bool) (p *partitionOffsets, upTo int64, ready bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.partitions[msg.Partition]
	if !ok {
		return nil, msg.Offset, succeeded
	}
	found := false
	for i := range p.entries {
		if p.entries[i].offset == msg.Offset && p.entries[i].state == offsetInFlight {
			p.entries[i].state = offsetFailed
			if succeeded {
				p.entries[i].state = offsetDone
			}
			found = true
			break
		}
	}
	if !found {
		return nil, msg.Offset, succeeded
	}

	for len(p.entries) > 0 && p.entries[0].state == offsetDone {
		upTo = p.entries[0].offset
		p.entries = p.entries[1:]
		ready = true
	}
	return p, upTo, ready
}
