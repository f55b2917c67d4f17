package registry

import (
	"fmt"
	"sync"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/metrics"
)

type recLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recLogger) Debugf(string, ...any)         {}
func (l *recLogger) Debugw(string, map[string]any) {}
func (l *recLogger) Infof(string, ...any)          {}
func (l *recLogger) Errorf(string, ...any)         {}

func (l *recLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func (l *recLogger) warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warns...)
}

type recSink struct {
	mu   sync.Mutex
	regs []metrics.RegistrationEvent
	res  []metrics.ResolutionEvent
}

func (s *recSink) RecordRegistration(ev metrics.RegistrationEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regs = append(s.regs, ev)
	return nil
}

func (s *recSink) RecordResolution(ev metrics.ResolutionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.res = append(s.res, ev)
	return nil
}

type fakeCtrl struct {
	block.Base
	tag string
}

// factoryTagged returns a factory whose controllers carry tag, so tests can
// tell factories apart after resolution.
func factoryTagged(tag string) block.Factory {
	return func(args block.Args) (block.Controller, error) {
		return &fakeCtrl{Base: block.NewBase(args), tag: tag}, nil
	}
}

func tagOf(f block.Factory) string {
	c, err := f(block.Args{})
	if err != nil {
		return ""
	}
	return c.(*fakeCtrl).tag
}

func resetDefault() {
	defaultOnce = sync.Once{}
	defaultStore = nil
}
