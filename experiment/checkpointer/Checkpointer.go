// Package checkpointer saves learned values periodically during an
// experiment
package checkpointer

import (
	ts "github.com/samuelfneumann/qmaze/timestep"
)

// Serializable is an object that can be saved to a file, such as a
// *qtable.QTable
type Serializable interface {
	Save(filename string) error
}

// Checkpointer checkpoints/saves serializable objects based on
// timestep.TimeSteps
type Checkpointer interface {
	Checkpoint(ts.TimeStep) error
}

// nEpisode implements checkpointing every N episodes
type nEpisode struct {
	interval int
	episodes int
	object   Serializable

	// filename returns the name of the file to save the object in. Use
	// FilenameEnumerator to save each checkpoint in its own numbered file
	// or a constant function to overwrite a single file.
	filename func() string
}

// NewNEpisode returns a checkpointer that checkpoints object at the end of
// every n-th episode. NewNEpisode panics if n < 1.
func NewNEpisode(n int, object Serializable,
	filename func() string) Checkpointer {
	if n < 1 {
		panic("newNEpisode: checkpoint interval must be positive")
	}

	return &nEpisode{
		interval: n,
		object:   object,
		filename: filename,
	}
}

// Checkpoint saves the tracked object if t ends the n-th episode since the
// last checkpoint
func (n *nEpisode) Checkpoint(t ts.TimeStep) error {
	if !t.Last() {
		return nil
	}

	n.episodes++
	if n.episodes%n.interval == 0 {
		return n.object.Save(n.filename())
	}
	return nil
}
