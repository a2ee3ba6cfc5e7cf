package sink

import (
	"encoding/json"
	"os"
	"time"
)

// RunMetadata is the JSON sidecar written next to a render's image
// output: the mass, r_s, image size, thread count and timing of the
// run. Camera, disk and accretion settings are not recorded.
type RunMetadata struct {
	Timestamp           time.Time `json:"timestamp"`
	SolarMasses         float64   `json:"solar_masses"`
	SchwarzschildRadius float64   `json:"schwarzschild_radius_m"`
	Width               int       `json:"width"`
	Height              int       `json:"height"`
	Threads             int       `json:"threads"`
	ElapsedSeconds      float64   `json:"elapsed_seconds"`
}

// WriteMetadata writes meta as indented JSON to path.
func WriteMetadata(path string, meta RunMetadata) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
