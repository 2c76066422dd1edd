package store

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"botforge/internal/entity"
	"botforge/pkg/keyval"
)

const (
	triggersKey = "botforge:triggers"
	datasetsKey = "botforge:datasets"

	defaultFlushInterval = 30 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Flusher is the durability hook handed to services that mutate the store.
// Flush errors only affect durability across restarts, never live reads, so
// callers log and move on.
type Flusher interface {
	Flush(ctx context.Context) error
}

// NopFlusher satisfies Flusher without persisting anything. Used in tests.
type NopFlusher struct{}

func (NopFlusher) Flush(ctx context.Context) error { return nil }

// Persister flushes the store to the key-value backend: periodically, on
// shutdown, and whenever a mutating operation asks for it. Flush is
// idempotent and last-writer-wins; there is only one logical writer.
type Persister struct {
	store    *Store
	kv       keyval.IKeyValue
	log      *logrus.Logger
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewPersister(s *Store, kv keyval.IKeyValue, log *logrus.Logger) *Persister {
	interval := defaultFlushInterval
	if raw := os.Getenv("STORE_FLUSH_INTERVAL_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			interval = time.Duration(seconds) * time.Second
		}
	}

	return &Persister{
		store:    s,
		kv:       kv,
		log:      log,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Load restores both collections from the backend. Missing keys mean a
// fresh install and leave the store empty.
func (p *Persister) Load(ctx context.Context) error {
	raw, err := p.kv.Get(ctx, triggersKey)
	if err != nil && !errors.Is(err, keyval.ErrNotFound) {
		return err
	}

	var triggers []entity.Trigger
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &triggers); err != nil {
			return err
		}
	}

	raw, err = p.kv.Get(ctx, datasetsKey)
	if err != nil && !errors.Is(err, keyval.ErrNotFound) {
		return err
	}

	datasets := make(map[string]entity.Dataset)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &datasets); err != nil {
			return err
		}
	}

	p.store.Replace(triggers, datasets)

	p.log.WithFields(logrus.Fields{
		"triggers": len(triggers),
		"datasets": len(datasets),
	}).Info("Store restored from persistence")

	return nil
}

func (p *Persister) Flush(ctx context.Context) error {
	triggers, err := json.Marshal(p.store.Triggers())
	if err != nil {
		return err
	}
	datasets, err := json.Marshal(p.store.Datasets())
	if err != nil {
		return err
	}

	if err := p.kv.Set(ctx, triggersKey, triggers); err != nil {
		return err
	}
	return p.kv.Set(ctx, datasetsKey, datasets)
}

// Start runs the periodic flush loop until Shutdown is called.
func (p *Persister) Start() {
	go func() {
		defer close(p.done)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				if err := p.Flush(ctx); err != nil {
					p.log.WithFields(logrus.Fields{
						"error": err.Error(),
					}).Error("Periodic store flush failed")
				}
				cancel()
			case <-p.stop:
				return
			}
		}
	}()
}

// Shutdown stops the flush loop and performs a final flush.
func (p *Persister) Shutdown(ctx context.Context) error {
	close(p.stop)

	select {
	case <-p.done:
	case <-ctx.Done():
	}

	return p.Flush(ctx)
}
