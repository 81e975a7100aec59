package facts

import (
	"sort"
	"sync"
	"time"

	"github.com/syduan2016/space-math-adventure/internal/storage"
)

const flushInterval = 30 * time.Second

// Ledger is the sole owner and writer of FactRecords. Records load
// from storage at Open and flush back on a background timer and at
// Close.
type Ledger struct {
	mu      sync.Mutex
	store   *storage.Store
	records map[string]*FactRecord
	dirty   bool

	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once

	now func() time.Time
}

// Open loads the fact ledger from st and starts the periodic flush.
// Callers must Close the ledger to guarantee a final flush.
func Open(st *storage.Store) *Ledger {
	l := &Ledger{
		store:   st,
		records: make(map[string]*FactRecord),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		now:     time.Now,
	}
	var saved map[string]*FactRecord
	if st.Get(storage.KeyFactPerformance, &saved) && saved != nil {
		l.records = saved
	}
	go l.flushLoop()
	return l
}

func (l *Ledger) flushLoop() {
	defer close(l.stopped)
	t := time.NewTicker(flushInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			l.Flush()
		case <-l.done:
			return
		}
	}
}

// Close stops the flush timer and writes any pending changes.
// Safe to call more than once.
func (l *Ledger) Close() {
	l.closeOnce.Do(func() {
		close(l.done)
		<-l.stopped
		l.Flush()
	})
}

// Flush persists the full record map if anything changed since the
// last write.
func (l *Ledger) Flush() {
	l.mu.Lock()
	if !l.dirty {
		l.mu.Unlock()
		return
	}
	snapshot := make(map[string]*FactRecord, len(l.records))
	for k, r := range l.records {
		c := *r
		snapshot[k] = &c
	}
	l.dirty = false
	l.mu.Unlock()

	l.store.Set(storage.KeyFactPerformance, snapshot)
}

// RecordAttempt registers one answer against a fact. The key is
// normalized first; an unparseable key is still recorded under
// operation "unknown".
func (l *Ledger) RecordAttempt(factKey string, correct bool, responseMs float64) {
	key := NormalizeKey(factKey)
	op, operands := ParseKey(key)

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[key]
	if !ok {
		rec = &FactRecord{Operation: op, Operands: operands, Mastery: MasteryNew}
		l.records[key] = rec
	}

	rec.Attempts++
	if correct {
		rec.Correct++
		rec.Streak++
	} else {
		rec.Incorrect++
		rec.Streak = 0
	}
	if responseMs > 0 {
		if rec.AvgResponseMs == 0 {
			rec.AvgResponseMs = responseMs
		} else {
			n := float64(rec.Attempts)
			rec.AvgResponseMs = (rec.AvgResponseMs*(n-1) + responseMs) / n
		}
	}
	rec.LastSeen = l.now()
	rec.Mastery = classify(rec.Attempts, rec.Correct)
	l.dirty = true
}

// FactData returns a copy of the record for factKey, normalizing the
// key first. The second result is false when the fact is unseen.
func (l *Ledger) FactData(factKey string) (FactRecord, bool) {
	key := NormalizeKey(factKey)
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.records[key]
	if !ok {
		return FactRecord{}, false
	}
	return *rec, true
}

// MasteryFor returns the mastery level for factKey, MasteryNew when
// the fact is unseen.
func (l *Ledger) MasteryFor(factKey string) MasteryLevel {
	rec, ok := l.FactData(factKey)
	if !ok {
		return MasteryNew
	}
	return rec.Mastery
}

// TotalAttempts sums attempts across every fact. Weighted question
// selection activates only past a minimum total.
func (l *Ledger) TotalAttempts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := 0
	for _, rec := range l.records {
		total += rec.Attempts
	}
	return total
}

// FactEntry pairs a normalized fact key with a snapshot of its record.
type FactEntry struct {
	Key    string
	Record FactRecord
}

// WeakestFacts returns up to count attempted facts ordered from lowest
// to highest accuracy. An empty op matches every operation.
func (l *Ledger) WeakestFacts(count int, op Operation) []FactEntry {
	l.mu.Lock()
	entries := make([]FactEntry, 0, len(l.records))
	for k, rec := range l.records {
		if rec.Attempts == 0 {
			continue
		}
		if op != "" && rec.Operation != op {
			continue
		}
		entries = append(entries, FactEntry{Key: k, Record: *rec})
	}
	l.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Record.Accuracy() < entries[j].Record.Accuracy()
	})
	if len(entries) > count {
		entries = entries[:count]
	}
	return entries
}
