package location

import (
	_ "embed"
	"encoding/json"
	"sync"
)

// Location is a static reference entry. Only level-2 entries
// (provinces/cities) are selectable as origin or destination.
type Location struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
	Tags  string `json:"tags"`
	Level int    `json:"level"`
}

const LevelCity = 2

//go:embed location_info.json
var locationData []byte

var (
	loadOnce sync.Once
	all      []Location
	cities   []Location
	loadErr  error
)

func load() {
	loadOnce.Do(func() {
		if err := json.Unmarshal(locationData, &all); err != nil {
			loadErr = err
			return
		}
		for _, loc := range all {
			if loc.Level == LevelCity {
				cities = append(cities, loc)
			}
		}
	})
}

// All returns every entry of the embedded location table.
func All() ([]Location, error) {
	load()
	return all, loadErr
}

// Cities returns the level-2 entries, the only ones a subscription may
// use as origin or destination.
func Cities() ([]Location, error) {
	load()
	return cities, loadErr
}
