package registry

import (
	"cmp"
	"fmt"
	"sync"
	"time"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/factory"
	"github.com/kilianp07/fabric/core/logger"
	"github.com/kilianp07/fabric/core/metrics"
	infralogger "github.com/kilianp07/fabric/infra/logger"
)

// Entry binds a display name to a factory. The name is for diagnostics only.
type Entry struct {
	Name    string
	Factory block.Factory
}

// DirectEntry is a snapshot row of the direct table.
type DirectEntry struct {
	NocID block.NocID
	Entry
}

// DescriptorEntry is a snapshot row of the descriptor table.
type DescriptorEntry struct {
	Key block.Key
	Entry
}

// View is a read-only view of one registry table.
type View[K cmp.Ordered] interface {
	Get(K) (Entry, bool)
	Contains(K) bool
	Len() int
	Keys() []K
}

// Translator maps an observed NocID to a descriptor key.
type Translator interface {
	Translate(id block.NocID) (block.Key, bool)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(block.NocID) (block.Key, bool)

func (f TranslatorFunc) Translate(id block.NocID) (block.Key, bool) { return f(id) }

// Store holds the direct and descriptor tables. Tables only grow.
type Store struct {
	direct     *factory.Table[block.NocID, Entry]
	descriptor *factory.Table[block.Key, Entry]

	mu         sync.RWMutex
	log        logger.Logger
	observer   metrics.MetricsSink
	translator Translator
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the diagnostic logger.
func WithLogger(l logger.Logger) Option { return func(s *Store) { s.log = l } }

// WithObserver sets the sink receiving registration and resolution events.
func WithObserver(o metrics.MetricsSink) Option { return func(s *Store) { s.observer = o } }

// WithTranslator installs the NocID to descriptor key translator.
func WithTranslator(t Translator) Option { return func(s *Store) { s.translator = t } }

// NewStore returns an empty store. Without WithLogger, diagnostics go to
// stderr.
func NewStore(opts ...Option) *Store {
	s := &Store{
		direct:     factory.NewTable[block.NocID, Entry](),
		descriptor: factory.NewTable[block.Key, Entry](),
	}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = infralogger.NewDiagnostic("registry")
	}
	if s.observer == nil {
		s.observer = metrics.NopSink{}
	}
	return s
}

// SetLogger replaces the diagnostic logger.
func (s *Store) SetLogger(l logger.Logger) {
	if l == nil {
		return
	}
	s.mu.Lock()
	s.log = l
	s.mu.Unlock()
}

// SetObserver replaces the metrics sink. A nil sink disables observation.
func (s *Store) SetObserver(o metrics.MetricsSink) {
	if o == nil {
		o = metrics.NopSink{}
	}
	s.mu.Lock()
	s.observer = o
	s.mu.Unlock()
}

// SetTranslator installs or, with nil, removes the translator.
func (s *Store) SetTranslator(t Translator) {
	s.mu.Lock()
	s.translator = t
	s.mu.Unlock()
}

func (s *Store) hooks() (logger.Logger, metrics.MetricsSink, Translator) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.log, s.observer, s.translator
}

// Direct returns a read-only view of the direct table.
func (s *Store) Direct() View[block.NocID] { return s.direct }

// Descriptor returns a read-only view of the descriptor table.
func (s *Store) Descriptor() View[block.Key] { return s.descriptor }

// RegisterDirect binds id to factory f. A second registration for the same
// id is rejected and logged; the first one stays in place.
func (s *Store) RegisterDirect(id block.NocID, name string, f block.Factory) Outcome {
	log, obs, _ := s.hooks()
	ev := metrics.RegistrationEvent{Table: metrics.TableDirect, Ident: id.String(), Name: name, Time: time.Now()}

	var out Outcome
	switch {
	case f == nil:
		log.Warnf("refusing to register block %q with noc id %s: nil factory", name, id)
		out = rejected(fmt.Errorf("noc id %s: %w", id, ErrInvalidFactory))
	default:
		if err := s.direct.Insert(id, Entry{Name: name, Factory: f}); err != nil {
			log.Warnf("attempting to overwrite previously registered block with noc id %s", id)
			out = rejected(fmt.Errorf("noc id %s: %w", id, err))
		} else {
			out = inserted()
		}
	}
	s.observe(obs, log, ev, out)
	return out
}

// RegisterDescriptor binds key to factory f. The key doubles as the display
// name. Conflicts are handled as in RegisterDirect.
func (s *Store) RegisterDescriptor(key block.Key, f block.Factory) Outcome {
	log, obs, _ := s.hooks()
	ev := metrics.RegistrationEvent{Table: metrics.TableDescriptor, Ident: string(key), Name: string(key), Time: time.Now()}

	var out Outcome
	switch {
	case key == "":
		log.Warnf("refusing to register block with empty key")
		out = rejected(ErrInvalidKey)
	case f == nil:
		log.Warnf("refusing to register block with key %q: nil factory", string(key))
		out = rejected(fmt.Errorf("key %q: %w", string(key), ErrInvalidFactory))
	default:
		if err := s.descriptor.Insert(key, Entry{Name: string(key), Factory: f}); err != nil {
			log.Warnf("attempting to overwrite previously registered block with key %q", string(key))
			out = rejected(fmt.Errorf("key %q: %w", string(key), err))
		} else {
			out = inserted()
		}
	}
	s.observe(obs, log, ev, out)
	return out
}

func (s *Store) observe(obs metrics.MetricsSink, log logger.Logger, ev metrics.RegistrationEvent, out Outcome) {
	ev.Accepted = out.OK()
	if out.Reason != nil {
		ev.Reason = out.Reason.Error()
	}
	if err := obs.RecordRegistration(ev); err != nil {
		log.Debugf("record registration: %v", err)
	}
}

// Resolve returns the factory and display name registered for id. The
// descriptor table is consulted first when a translator is installed.
// The controller is not constructed.
func (s *Store) Resolve(id block.NocID) (block.Factory, string, error) {
	log, obs, tr := s.hooks()
	ev := metrics.ResolutionEvent{NocID: id, Time: time.Now()}
	defer func() {
		if err := obs.RecordResolution(ev); err != nil {
			log.Debugf("record resolution: %v", err)
		}
	}()

	if tr != nil {
		if key, ok := tr.Translate(id); ok {
			if e, ok := s.descriptor.Get(key); ok {
				ev.Name, ev.Table, ev.Found = e.Name, metrics.TableDescriptor, true
				return e.Factory, e.Name, nil
			}
			log.Debugf("noc id %s maps to key %q which has no registered block", id, string(key))
		}
	}

	if e, ok := s.direct.Get(id); ok {
		ev.Name, ev.Table, ev.Found = e.Name, metrics.TableDirect, true
		return e.Factory, e.Name, nil
	}

	log.Warnf("could not find block with noc id %s", id)
	return nil, "", &NotFoundError{ID: id}
}

// ResolveKey returns the factory registered under a descriptor key.
func (s *Store) ResolveKey(key block.Key) (block.Factory, string, error) {
	e, ok := s.descriptor.Get(key)
	if !ok {
		return nil, "", &KeyNotFoundError{Key: key}
	}
	return e.Factory, e.Name, nil
}

// DirectEntries returns the direct table ordered by NocID.
func (s *Store) DirectEntries() []DirectEntry {
	keys := s.direct.Keys()
	out := make([]DirectEntry, 0, len(keys))
	for _, k := range keys {
		if e, ok := s.direct.Get(k); ok {
			out = append(out, DirectEntry{NocID: k, Entry: e})
		}
	}
	return out
}

// DescriptorEntries returns the descriptor table ordered by key.
func (s *Store) DescriptorEntries() []DescriptorEntry {
	keys := s.descriptor.Keys()
	out := make([]DescriptorEntry, 0, len(keys))
	for _, k := range keys {
		if e, ok := s.descriptor.Get(k); ok {
			out = append(out, DescriptorEntry{Key: k, Entry: e})
		}
	}
	return out
}

// Len returns the number of entries in the direct and descriptor tables.
func (s *Store) Len() (direct, descriptor int) {
	return s.direct.Len(), s.descriptor.Len()
}
