package discovery

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/logger"
	"github.com/kilianp07/fabric/core/metrics"
	"github.com/kilianp07/fabric/core/registry"
	infralogger "github.com/kilianp07/fabric/infra/logger"
)

// Resolver is the subset of *registry.Store used by the enumerator.
type Resolver interface {
	Resolve(id block.NocID) (block.Factory, string, error)
}

// Options configures an Enumerator.
type Options struct {
	Policy Policy
	// Parallelism bounds concurrent factory calls; zero or less means one.
	Parallelism int
	// Params holds per block name construction parameters, e.g. Params["DDC"].
	// Block names match case-insensitively.
	Params map[string]map[string]any
	Logger logger.Logger
	Sink   metrics.MetricsSink
}

// Enumerator resolves and constructs the blocks of a device.
type Enumerator struct {
	resolver Resolver
	opts     Options
}

// New returns an Enumerator. A nil logger or sink is replaced by a no-op.
func New(r Resolver, opts Options) *Enumerator {
	if opts.Policy == "" {
		opts.Policy = PolicySkip
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = 1
	}
	if opts.Logger == nil {
		opts.Logger = infralogger.NopLogger{}
	}
	if opts.Sink == nil {
		opts.Sink = metrics.NopSink{}
	}
	opts.Params = FoldParams(opts.Params)
	return &Enumerator{resolver: r, opts: opts}
}

// FoldParams returns params keyed by lower-cased block and parameter names.
// Entries whose names differ only in case are merged, and an entry already
// spelled in lower case wins on conflicting parameters.
func FoldParams(params map[string]map[string]any) map[string]map[string]any {
	if params == nil {
		return nil
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	// Mixed-case names first, lower-case names last; sorted for a stable merge.
	slices.SortFunc(names, func(a, b string) int {
		la, lb := a == strings.ToLower(a), b == strings.ToLower(b)
		if la != lb {
			if la {
				return 1
			}
			return -1
		}
		return strings.Compare(a, b)
	})
	out := make(map[string]map[string]any, len(params))
	for _, name := range names {
		key := strings.ToLower(name)
		merged := out[key]
		if merged == nil {
			merged = make(map[string]any, len(params[name]))
			out[key] = merged
		}
		for k, v := range params[name] {
			merged[strings.ToLower(k)] = v
		}
	}
	return out
}

type planned struct {
	slot    Slot
	id      block.BlockID
	name    string
	factory block.Factory
}

// Enumerate resolves every slot and constructs its controller. Blocks in the
// result keep slot order. On error the returned Result still carries the
// RunID and any skipped slots.
func (e *Enumerator) Enumerate(ctx context.Context, slots []Slot) (Result, error) {
	start := time.Now()
	res := Result{RunID: uuid.NewString()}
	log := e.opts.Logger

	plan, skipped, err := e.plan(slots)
	res.Skipped = skipped
	if err != nil {
		e.record(res, len(slots), start, true)
		return res, err
	}

	blocks := make([]Instance, len(plan))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Parallelism)
	for i, p := range plan {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ctrl, err := p.factory(block.Args{
				ID:     p.id,
				NocID:  p.slot.NocID,
				Port:   p.slot.Port,
				Params: e.opts.Params[strings.ToLower(p.name)],
				Logger: log,
			})
			if err != nil {
				return fmt.Errorf("construct %s: %w", p.id, err)
			}
			if ctrl == nil {
				return fmt.Errorf("construct %s: factory returned no controller", p.id)
			}
			blocks[i] = Instance{ID: p.id, Slot: p.slot, Name: p.name, Controller: ctrl}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Errorf("enumeration %s failed: %v", res.RunID, err)
		e.record(res, len(slots), start, true)
		return res, err
	}

	res.Blocks = blocks
	log.Infof("enumeration %s: %d blocks constructed, %d skipped", res.RunID, len(blocks), len(skipped))
	e.record(res, len(slots), start, false)
	return res, nil
}

func (e *Enumerator) plan(slots []Slot) ([]planned, []Skipped, error) {
	var (
		plan    = make([]planned, 0, len(slots))
		skipped []Skipped
		counts  = make(map[int]map[string]int)
	)
	for _, s := range slots {
		f, name, err := e.resolver.Resolve(s.NocID)
		if err != nil {
			if !errors.Is(err, registry.ErrNotFound) {
				return nil, skipped, fmt.Errorf("resolve %s: %w", s, err)
			}
			uerr := &UnknownBlockError{Slot: s, Err: err}
			if e.opts.Policy == PolicyFail {
				return nil, skipped, uerr
			}
			e.opts.Logger.Warnf("skipping %v", uerr)
			skipped = append(skipped, Skipped{Slot: s, Err: uerr})
			continue
		}
		if counts[s.Device] == nil {
			counts[s.Device] = make(map[string]int)
		}
		inst := counts[s.Device][name]
		counts[s.Device][name]++
		plan = append(plan, planned{
			slot:    s,
			id:      block.BlockID{Device: s.Device, Name: name, Instance: inst},
			name:    name,
			factory: f,
		})
	}
	return plan, skipped, nil
}

func (e *Enumerator) record(res Result, slots int, start time.Time, failed bool) {
	rec, ok := e.opts.Sink.(metrics.EnumerationRecorder)
	if !ok {
		return
	}
	ev := metrics.EnumerationEvent{
		RunID:       res.RunID,
		Slots:       slots,
		Constructed: len(res.Blocks),
		Skipped:     len(res.Skipped),
		Failed:      failed,
		Duration:    time.Since(start),
		Time:        time.Now(),
	}
	if err := rec.RecordEnumeration(ev); err != nil {
		e.opts.Logger.Debugf("record enumeration: %v", err)
	}
}
