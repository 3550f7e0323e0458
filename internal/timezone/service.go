package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// Service resolves the local timezone for a coordinate. Open-now filtering
// evaluates each center's schedule in the center's own timezone, so a query
// from one timezone cannot misjudge a center in another.
type Service interface {
	Resolve(latitude, longitude float64) (*time.Location, error)
}

type service struct {
	finder tzf.F

	mu        sync.RWMutex
	locations map[string]*time.Location
}

var (
	instance *service
	once     sync.Once
)

// NewService creates or returns the singleton timezone service. tzf loads its
// polygon data into memory once per process, so the finder is shared.
func NewService() (Service, error) {
	var err error
	once.Do(func() {
		finder, findErr := tzf.NewDefaultFinder()
		if findErr != nil {
			err = fmt.Errorf("failed to initialize timezone finder: %w", findErr)
			return
		}
		instance = &service{
			finder:    finder,
			locations: make(map[string]*time.Location),
		}
	})
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, fmt.Errorf("timezone finder unavailable")
	}
	return instance, nil
}

// Resolve returns the time.Location for the given coordinates
func (s *service) Resolve(latitude, longitude float64) (*time.Location, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return nil, fmt.Errorf("could not determine timezone for lat=%f, lon=%f", latitude, longitude)
	}

	s.mu.RLock()
	loc, ok := s.locations[name]
	s.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	s.mu.Lock()
	s.locations[name] = loc
	s.mu.Unlock()

	return loc, nil
}
