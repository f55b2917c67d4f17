package app

import (
	"context"
	"fmt"
	"time"

	_ "github.com/kilianp07/fabric/app/plugins"
	"github.com/kilianp07/fabric/config"
	"github.com/kilianp07/fabric/core/descriptor"
	"github.com/kilianp07/fabric/core/discovery"
	coremetrics "github.com/kilianp07/fabric/core/metrics"
	"github.com/kilianp07/fabric/core/registry"
	"github.com/kilianp07/fabric/infra/logger"
	"github.com/kilianp07/fabric/infra/metrics"
	"github.com/kilianp07/fabric/internal/eventbus"
)

// Service wires the block registry to metrics, the descriptor manifest and
// discovery.
type Service struct {
	Store      *registry.Store
	Index      *descriptor.Index
	Enumerator *discovery.Enumerator
	slots      []discovery.Slot
	runs       *eventbus.Bus[discovery.Result]
	sink       coremetrics.MetricsSink
	log        logger.Logger
	listenAddr string
}

// New creates a Service around the process-wide registry.
func New(cfg *config.Config) (*Service, error) {
	return NewWithStore(cfg, registry.Default())
}

// NewWithStore creates a Service around store.
func NewWithStore(cfg *config.Config, store *registry.Store) (*Service, error) {
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logg := logger.New("service")

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	store.SetObserver(sink)

	// The configured manifest replaces any installed translator; without
	// one only the direct table answers.
	var (
		index *descriptor.Index
		tr    registry.Translator
	)
	if cfg.Descriptors.Manifest != "" {
		index, err = descriptor.Load(cfg.Descriptors.Manifest)
		if err != nil {
			return nil, fmt.Errorf("descriptor manifest: %w", err)
		}
		tr = index
		logg.Infof("loaded %d descriptor mappings from %s", index.Len(), cfg.Descriptors.Manifest)
	}
	store.SetTranslator(tr)

	direct, desc := store.Len()
	if inv, ok := sink.(coremetrics.InventoryRecorder); ok {
		if err := inv.RecordInventory(direct, desc); err != nil {
			logg.Warnf("record inventory: %v", err)
		}
	}
	logg.Infof("registry holds %d direct and %d descriptor blocks", direct, desc)

	slots, err := cfg.Discovery.ToSlots()
	if err != nil {
		return nil, fmt.Errorf("discovery slots: %w", err)
	}
	policy, err := discovery.ParsePolicy(cfg.Discovery.Policy)
	if err != nil {
		return nil, err
	}
	enum := discovery.New(store, discovery.Options{
		Policy:      policy,
		Parallelism: cfg.Discovery.Parallelism,
		Params:      cfg.Discovery.Params,
		Logger:      logger.New("discovery"),
		Sink:        sink,
	})

	return &Service{
		Store:      store,
		Index:      index,
		Enumerator: enum,
		slots:      slots,
		runs:       eventbus.New[discovery.Result](),
		sink:       sink,
		log:        logg,
		listenAddr: cfg.Metrics.ListenAddr,
	}, nil
}

// Slots returns the statically configured slots.
func (s *Service) Slots() []discovery.Slot { return s.slots }

// Subscribe returns a channel receiving every successful enumeration.
func (s *Service) Subscribe() <-chan discovery.Result { return s.runs.Subscribe() }

// Unsubscribe releases a channel obtained from Subscribe.
func (s *Service) Unsubscribe(ch <-chan discovery.Result) { s.runs.Unsubscribe(ch) }

// Enumerate constructs the blocks found in slots and publishes the result
// to subscribers.
func (s *Service) Enumerate(ctx context.Context, slots []discovery.Slot) (discovery.Result, error) {
	start := time.Now()
	res, err := s.Enumerator.Enumerate(ctx, slots)
	if err != nil {
		return res, err
	}
	s.log.Infof("run %s: %d blocks constructed, %d skipped in %s",
		res.RunID, len(res.Blocks), len(res.Skipped), time.Since(start))
	s.runs.Publish(res)
	return res, nil
}

// Run enumerates the configured slots. When a metrics listen address is
// configured it then serves /metrics until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	res, err := s.Enumerate(ctx, s.slots)
	if err != nil {
		return err
	}
	for _, b := range res.Blocks {
		s.log.Debugw("block constructed", map[string]any{
			"id":     b.ID.String(),
			"name":   b.Name,
			"noc_id": b.Slot.NocID.String(),
		})
	}
	if s.listenAddr == "" {
		return nil
	}
	s.log.Infof("serving metrics on %s", s.listenAddr)
	return metrics.StartPromServer(ctx, s.listenAddr)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.runs.Close()
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}
