package observability

import (
	"runtime"
	"sync/atomic"
)

// Stats is a point-in-time snapshot of pipeline activity.
type Stats struct {
	MessagesSeen   uint64 `json:"messages_seen"`
	Matched        uint64 `json:"matched"`
	Delivered      uint64 `json:"delivered"`
	DeliveryFailed uint64 `json:"delivery_failed"`
	SinkFailures   uint64 `json:"sink_failures"`
	AllocMemMb     uint64 `json:"alloc_mem_mb"`
	NumGC          uint32 `json:"num_gc"`
}

// Manager aggregates pipeline counters for the heartbeat worker.
// Counters are atomic; the snapshot is computed on demand.
type Manager struct {
	messagesSeen   uint64
	matched        uint64
	delivered      uint64
	deliveryFailed uint64
	sinkFailures   uint64
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) IncrMessagesSeen()   { atomic.AddUint64(&m.messagesSeen, 1) }
func (m *Manager) IncrMatched()        { atomic.AddUint64(&m.matched, 1) }
func (m *Manager) IncrDelivered()      { atomic.AddUint64(&m.delivered, 1) }
func (m *Manager) IncrDeliveryFailed() { atomic.AddUint64(&m.deliveryFailed, 1) }
func (m *Manager) IncrSinkFailures()   { atomic.AddUint64(&m.sinkFailures, 1) }

func (m *Manager) GetLatest() Stats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return Stats{
		MessagesSeen:   atomic.LoadUint64(&m.messagesSeen),
		Matched:        atomic.LoadUint64(&m.matched),
		Delivered:      atomic.LoadUint64(&m.delivered),
		DeliveryFailed: atomic.LoadUint64(&m.deliveryFailed),
		SinkFailures:   atomic.LoadUint64(&m.sinkFailures),
		AllocMemMb:     mem.Alloc / 1024 / 1024,
		NumGC:          mem.NumGC,
	}
}
