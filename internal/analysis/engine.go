package analysis

import (
	"context"
	"sync"

	"kundali-engine/internal/errors"
)

// Section is one independently derivable analysis unit. Sections must
// be safe for concurrent use; the engine runs them in parallel.
type Section interface {
	Name() string
	Calculate(ctx context.Context, input *Input) (interface{}, error)
}

// SectionResult holds one section's outcome. Exactly one of Value and
// Err is set.
type SectionResult struct {
	Name  string
	Value interface{}
	Err   error
}

// Engine runs registered sections over an input using a worker pool.
// A failing section degrades to an error result; it never blocks the
// other sections.
type Engine struct {
	workers  int
	sections map[string]Section
	mu       sync.RWMutex
}

// NewEngine creates a section engine with the specified number of workers.
func NewEngine(workers int) *Engine {
	if workers <= 0 {
		workers = 4
	}
	return &Engine{
		workers:  workers,
		sections: make(map[string]Section),
	}
}

// Register adds a section to the engine. A section with the same name
// replaces the previous one.
func (e *Engine) Register(s Section) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sections[s.Name()] = s
}

// CalculateAll runs every registered section in parallel and returns
// one result per section, keyed by name.
func (e *Engine) CalculateAll(ctx context.Context, input *Input) map[string]SectionResult {
	e.mu.RLock()
	sections := make([]Section, 0, len(e.sections))
	for _, s := range e.sections {
		sections = append(sections, s)
	}
	e.mu.RUnlock()

	results := make(map[string]SectionResult, len(sections))
	var mu sync.Mutex
	var wg sync.WaitGroup

	work := make(chan Section, len(sections))

	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range work {
				select {
				case <-ctx.Done():
					mu.Lock()
					results[s.Name()] = SectionResult{
						Name: s.Name(),
						Err:  errors.NewSectionError(s.Name(), ctx.Err()),
					}
					mu.Unlock()
				default:
					value, err := s.Calculate(ctx, input)
					res := SectionResult{Name: s.Name(), Value: value}
					if err != nil {
						res = SectionResult{
							Name: s.Name(),
							Err:  errors.NewSectionError(s.Name(), err),
						}
					}
					mu.Lock()
					results[s.Name()] = res
					mu.Unlock()
				}
			}
		}()
	}

	for _, s := range sections {
		work <- s
	}
	close(work)
	wg.Wait()

	return results
}

// SectionFunc adapts a plain function to the Section interface.
type SectionFunc struct {
	SectionName string
	Fn          func(ctx context.Context, input *Input) (interface{}, error)
}

// Name returns the section name.
func (f SectionFunc) Name() string {
	return f.SectionName
}

// Calculate invokes the wrapped function.
func (f SectionFunc) Calculate(ctx context.Context, input *Input) (interface{}, error) {
	return f.Fn(ctx, input)
}
