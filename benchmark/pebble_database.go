package benchmark

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/rs/zerolog/log"
)

const baselineKeyPrefix = "baseline/"

// PebbleBaselineStore implements the BaselineStore interface for Pebble
type PebbleBaselineStore struct {
	db  *pebble.DB
	now func() time.Time
}

// NewPebbleBaselineStore opens (or creates) a Pebble database at path
func NewPebbleBaselineStore(path string) (*PebbleBaselineStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open baseline store %s", path)
	}

	log.Debug().Str("path", path).Msg("Opened Pebble baseline store")

	return &PebbleBaselineStore{db: db, now: time.Now}, nil
}

func baselineKey(name, id string) []byte {
	return []byte(baselineKeyPrefix + name + "/" + id)
}

// Save implements BaselineStore.Save for Pebble
func (p *PebbleBaselineStore) Save(name string, results []Result) error {
	if p.db == nil {
		return ErrStoreClosed
	}

	batch := p.db.NewBatch()
	defer batch.Close()

	now := p.now().UTC()
	for _, r := range results {
		value, err := json.Marshal(entryFromResult(r, now))
		if err != nil {
			return errors.Wrapf(err, "encode baseline entry %s", r.ID)
		}
		if err := batch.Set(baselineKey(name, r.ID), value, nil); err != nil {
			return errors.Wrapf(err, "stage baseline entry %s", r.ID)
		}
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return errors.Wrapf(err, "commit baseline %s", name)
	}
	return nil
}

// Load implements BaselineStore.Load for Pebble
func (p *PebbleBaselineStore) Load(name, id string) (BaselineEntry, error) {
	if p.db == nil {
		return BaselineEntry{}, ErrStoreClosed
	}

	value, closer, err := p.db.Get(baselineKey(name, id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return BaselineEntry{}, ErrBaselineNotFound
		}
		return BaselineEntry{}, errors.Wrapf(err, "read baseline entry %s", id)
	}
	defer closer.Close()

	var entry BaselineEntry
	if err := json.Unmarshal(value, &entry); err != nil {
		return BaselineEntry{}, errors.Wrapf(err, "decode baseline entry %s", id)
	}
	return entry, nil
}

// Close implements BaselineStore.Close for Pebble
func (p *PebbleBaselineStore) Close() error {
	var err error
	if p.db != nil {
		err = p.db.Close()
		p.db = nil
	}
	return err
}
