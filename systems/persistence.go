package systems

import (
	"encoding/json"
	"time"

	"github.com/quasilyte/gdata"
)

// SavedRecord is the per-level race record stored on disk.
type SavedRecord struct {
	BestMillis int64 `json:"bestMillis"`
	Wins       int   `json:"wins"`
}

// itemStore is the subset of *gdata.Manager the game uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for race records
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "spider_climb",
	})
	if err != nil {
		logger.Warn("could not initialize persistence", "err", err)
		return err
	}
	store = m
	return nil
}

func recordKey(level string) string {
	return "best_" + level
}

// LoadRecord loads the saved record for level. A missing record is the zero
// value.
func LoadRecord(level string) (SavedRecord, error) {
	if store == nil {
		return SavedRecord{}, nil
	}

	data, err := store.LoadItem(recordKey(level))
	if err != nil {
		return SavedRecord{}, err
	}
	if len(data) == 0 {
		// No record yet
		return SavedRecord{}, nil
	}

	var rec SavedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return SavedRecord{}, err
	}
	return rec, nil
}

// LoadBestTime returns the best winning time on level, zero if none.
func LoadBestTime(level string) time.Duration {
	rec, err := LoadRecord(level)
	if err != nil {
		logger.Warn("could not load race record", "level", level, "err", err)
		return 0
	}
	return time.Duration(rec.BestMillis) * time.Millisecond
}

// SaveBestTime records a win on level, keeping the faster of the stored and
// given times.
func SaveBestTime(level string, best time.Duration) error {
	if store == nil {
		return nil
	}

	rec, err := LoadRecord(level)
	if err != nil {
		logger.Warn("discarding unreadable race record", "level", level, "err", err)
		rec = SavedRecord{}
	}
	rec.Wins++
	if ms := best.Milliseconds(); rec.BestMillis == 0 || ms < rec.BestMillis {
		rec.BestMillis = ms
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return store.SaveItem(recordKey(level), data)
}
