package experiment

import (
	"iter"

	"github.com/rs/zerolog"

	"github.com/samuelfneumann/qmaze/agent"
	env "github.com/samuelfneumann/qmaze/environment"
	"github.com/samuelfneumann/qmaze/experiment/checkpointer"
	"github.com/samuelfneumann/qmaze/experiment/trackers"
	ts "github.com/samuelfneumann/qmaze/timestep"
)

// DefaultMaxSteps is the default step limit of an episode
const DefaultMaxSteps int = 100

// Online is an Experiment that runs an agent online, learning on every
// transition. Episodes run strictly one after the other since each
// depends on the values learned in all earlier episodes.
type Online struct {
	env.Environment
	agent.Agent
	limit StepLimit

	episodes      int
	trackers      []trackers.Tracker
	checkpointers []checkpointer.Checkpointer
	err           error
	logger        zerolog.Logger
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The maxSteps parameter limits the
// number of steps in each episode, and t is a list of trackers.Tracker
// which determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, maxSteps int,
	t ...trackers.Tracker) (*Online, error) {
	limit, err := NewStepLimit(maxSteps)
	if err != nil {
		return nil, err
	}

	return &Online{
		Environment: e,
		Agent:       a,
		limit:       limit,
		trackers:    t,
		logger:      zerolog.Nop(),
	}, nil
}

// Register registers a trackers.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RegisterCheckpointer registers a checkpointer.Checkpointer which is
// passed every TimeStep of the experiment
func (o *Online) RegisterCheckpointer(c checkpointer.Checkpointer) {
	o.checkpointers = append(o.checkpointers, c)
}

// SetLogger sets the logger that episode results are reported to
func (o *Online) SetLogger(l zerolog.Logger) {
	o.logger = l
}

// RunEpisode runs a single episode of the experiment
func (o *Online) RunEpisode() Outcome {
	state := o.Environment.Reset()
	step := ts.New(ts.First, 0, state, 0)
	o.track(step)

	var episodeReturn float64
	for !o.limit.End(&step) {
		action := o.Agent.SelectAction(state)
		next, reward, last := o.Environment.Step(state, action)
		o.Agent.Learn(state, action, reward, next)

		step = ts.New(ts.Mid, reward, next, step.Number+1)
		if last {
			step.StepType = ts.Last
			step.SetEnd(ts.TerminalStateReached)
		}
		o.limit.End(&step)

		episodeReturn += reward
		state = next
		o.track(step)
	}
	o.Agent.EndEpisode()

	outcome := Outcome{
		Episode: o.episodes,
		Steps:   step.Number,
		Status:  Truncated,
		Return:  episodeReturn,
	}
	if step.EndType() == ts.TerminalStateReached {
		outcome.Status = Succeeded
	}
	o.episodes++

	o.logger.Debug().
		Int("episode", outcome.Episode).
		Int("steps", outcome.Steps).
		Stringer("status", outcome.Status).
		Float64("return", outcome.Return).
		Msg("episode finished")

	return outcome
}

// Train returns a sequence which runs numTrials episodes, one per
// element, reusing the same agent for every episode. The sequence is lazy:
// an episode only runs when its outcome is requested, and stopping the
// iteration early stops training. Each iteration over the sequence runs
// numTrials further episodes, continuing from the values learned so far.
func (o *Online) Train(numTrials int) (iter.Seq[Outcome], error) {
	if numTrials < 0 {
		return nil, env.InvalidParameter("train: number of trials must "+
			"be non-negative, have %d", numTrials)
	}

	return func(yield func(Outcome) bool) {
		succeeded := 0
		for i := 0; i < numTrials; i++ {
			outcome := o.RunEpisode()
			if outcome.Succeeded() {
				succeeded++
			}
			if !yield(outcome) {
				return
			}
		}

		o.logger.Info().
			Int("trials", numTrials).
			Int("succeeded", succeeded).
			Msg("training finished")
	}, nil
}

// Episodes returns the number of episodes run so far
func (o *Online) Episodes() int {
	return o.episodes
}

// MaxSteps returns the step limit of each episode
func (o *Online) MaxSteps() int {
	return o.limit.Steps()
}

// Err returns the first error returned by a checkpointer, if any
func (o *Online) Err() error {
	return o.err
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return err
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each tracker
// and passing it to each checkpointer
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}

	for _, c := range o.checkpointers {
		if err := c.Checkpoint(t); err != nil {
			o.logger.Error().Err(err).Int("episode", o.episodes).
				Msg("could not checkpoint")
			if o.err == nil {
				o.err = err
			}
		}
	}
}
