package manager

import (
	"sync"
	"time"

	"grid-snake/game/types"
)

// maxRecords bounds the kept history; older rounds still count in Summary.
const maxRecords = 100

// RoundRecord describes one finished round.
type RoundRecord struct {
	SessionID string
	StartTime time.Time
	EndTime   time.Time
	Length    int
	Reason    types.CollisionType
}

func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Summary is what the score bar shows across rounds.
type Summary struct {
	Rounds  int
	Best    int
	Average float64
}

// StatsManager keeps round results for the lifetime of the process. Nothing
// is written to disk.
type StatsManager struct {
	mutex       sync.RWMutex
	records     []RoundRecord
	rounds      int
	best        int
	totalLength int
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		records: make([]RoundRecord, 0),
	}
}

// AddRound records a finished round.
func (sm *StatsManager) AddRound(record RoundRecord) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	if len(sm.records) >= maxRecords {
		sm.records = sm.records[1:]
	}
	sm.records = append(sm.records, record)

	sm.rounds++
	sm.totalLength += record.Length
	if record.Length > sm.best {
		sm.best = record.Length
	}
}

// Records returns the kept history, oldest first.
func (sm *StatsManager) Records() []RoundRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	records := make([]RoundRecord, len(sm.records))
	copy(records, sm.records)
	return records
}

func (sm *StatsManager) Summary() Summary {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	summary := Summary{Rounds: sm.rounds, Best: sm.best}
	if sm.rounds > 0 {
		summary.Average = float64(sm.totalLength) / float64(sm.rounds)
	}
	return summary
}
