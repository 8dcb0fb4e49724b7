package trackers

import (
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/qmaze/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment.
// Note that an episode must finish for this Tracker to save its data.
// Truncated episodes finish at the step limit and are tracked as well.
type EpisodeLength struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength tracker which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the episode length if the timestep passed to it is the
// last timestep in the episode.
func (e *EpisodeLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(t.Number))
	}
}

// Data returns the tracked episode lengths
func (e *EpisodeLength) Data() []float64 {
	return e.episodeLengths
}

// Mean returns the mean length of the last n tracked episodes, or of all
// episodes if fewer than n were tracked. The mean of no episodes is 0.
func (e *EpisodeLength) Mean(n int) float64 {
	if len(e.episodeLengths) == 0 {
		return 0
	}
	return stat.Mean(last(e.episodeLengths, n), nil)
}

// Save saves the data tracked by the EpisodeLength Tracker to disk.
func (e *EpisodeLength) Save() error {
	return save(e.filename, e.episodeLengths)
}

func last(data []float64, n int) []float64 {
	if n < len(data) {
		return data[len(data)-n:]
	}
	return data
}
