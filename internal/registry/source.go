package registry

import (
	"cool-finder/internal/types"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

// Source supplies the full cooling-center collection. A source is consulted
// at startup and again on every refresh; it must always return the complete
// dataset, never a delta.
type Source interface {
	Load() ([]types.CoolingCenter, error)
}

// FileSource loads centers from a JSON file on disk
type FileSource struct {
	Path string
}

func (s FileSource) Load() ([]types.CoolingCenter, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read centers file: %w", err)
	}
	return decodeCenters(data)
}

//go:embed data/seattle_centers.json
var seattleSeed []byte

// SeedSource serves the bundled Seattle dataset. Used when no centers file
// is configured so the service is usable out of the box.
type SeedSource struct{}

func (SeedSource) Load() ([]types.CoolingCenter, error) {
	return decodeCenters(seattleSeed)
}

func decodeCenters(data []byte) ([]types.CoolingCenter, error) {
	var centers []types.CoolingCenter
	if err := json.Unmarshal(data, &centers); err != nil {
		return nil, fmt.Errorf("failed to decode centers: %w", err)
	}

	seen := make(map[string]struct{}, len(centers))
	for i := range centers {
		c := &centers[i]
		if c.ID == "" {
			return nil, fmt.Errorf("center %d: missing id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("center %q: duplicate id", c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.Name == "" {
			return nil, fmt.Errorf("center %q: missing name", c.ID)
		}
		if err := c.Coordinates.Validate(); err != nil {
			return nil, fmt.Errorf("center %q: %w", c.ID, err)
		}
		if _, err := types.ParseCenterType(string(c.Type)); err != nil {
			return nil, fmt.Errorf("center %q: %w", c.ID, err)
		}
	}

	return centers, nil
}
