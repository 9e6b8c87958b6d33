// Package replay records and replays sessions as a msgpack stream:
// one Header followed by one Frame per simulated tick
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/game"
	"github.com/lixenwraith/pacific-fighter/parameter"
)

// Version is bumped whenever Header or Frame change shape
const Version = 1

var ErrVersion = errors.New("unsupported replay version")

// Header pins everything a session needs to reproduce a run
type Header struct {
	Version int              `msgpack:"v"`
	Seed    uint64           `msgpack:"seed"`
	Tuning  parameter.Tuning `msgpack:"tuning"`
}

// Frame is one host tick: the applied delta and the sampled intent
// Restart frames carry no delta and reset the session
type Frame struct {
	DT      time.Duration `msgpack:"dt"`
	Intent  core.Intent   `msgpack:"in"`
	Restart bool          `msgpack:"rs,omitempty"`
}

// Replay is a fully loaded recording
type Replay struct {
	Header Header
	Frames []Frame
}

// Recorder streams frames to a writer as they happen
type Recorder struct {
	file   *os.File
	writer *bufio.Writer
	enc    *msgpack.Encoder
	frames int
}

// NewRecorder creates the replay file at path and writes its header
func NewRecorder(path string, seed uint64, tuning parameter.Tuning) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create replay %s: %w", path, err)
	}
	r, err := NewWriter(f, seed, tuning)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f
	return r, nil
}

// NewWriter records onto an arbitrary writer; Close flushes but does not close it
func NewWriter(w io.Writer, seed uint64, tuning parameter.Tuning) (*Recorder, error) {
	bw := bufio.NewWriter(w)
	r := &Recorder{writer: bw, enc: msgpack.NewEncoder(bw)}
	h := Header{Version: Version, Seed: seed, Tuning: tuning}
	if err := r.enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("write replay header: %w", err)
	}
	return r, nil
}

// Record appends one simulated tick
func (r *Recorder) Record(dt time.Duration, intent core.Intent) error {
	return r.write(Frame{DT: dt, Intent: intent})
}

// RecordRestart marks a session restart at this point of the stream
func (r *Recorder) RecordRestart() error {
	return r.write(Frame{Restart: true})
}

func (r *Recorder) write(f Frame) error {
	if err := r.enc.Encode(&f); err != nil {
		return fmt.Errorf("write replay frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames written so far
func (r *Recorder) Frames() int { return r.frames }

// Close flushes buffered frames and closes the file if the recorder owns one
func (r *Recorder) Close() error {
	err := r.writer.Flush()
	if r.file != nil {
		if cerr := r.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Load reads a replay file
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a header and frames until the stream ends
// A frame cut short at the end of the stream is dropped
func Decode(rd io.Reader) (*Replay, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(rd))

	rep := &Replay{}
	if err := dec.Decode(&rep.Header); err != nil {
		return nil, fmt.Errorf("read replay header: %w", err)
	}
	if rep.Header.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rep.Header.Version)
	}

	for {
		var f Frame
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return rep, fmt.Errorf("read replay frame %d: %w", len(rep.Frames), err)
		}
		rep.Frames = append(rep.Frames, f)
	}
	return rep, nil
}

// Result summarizes the end state of a replayed run
type Result struct {
	Frames    int
	Restarts  int
	Now       time.Duration
	Score     int
	BestScore int
	Cycles    int
	GameOver  bool
	Snapshot  game.Snapshot
}

// Run replays the recording in a fresh session with the recorded seed and tuning
// Sinks may be empty; persistence defaults to an in-memory store
func Run(rep *Replay, sinks engine.Sinks) Result {
	tuning := rep.Header.Tuning
	sess := game.NewSession(game.Options{
		Tuning: &tuning,
		Seed:   rep.Header.Seed,
		Sinks:  sinks,
	})

	var res Result
	for _, f := range rep.Frames {
		if f.Restart {
			sess.Restart()
			res.Restarts++
			continue
		}
		sess.Step(f.Intent, f.DT)
		res.Frames++
	}

	g := sess.World().Resources.Game
	res.Now = sess.Now()
	res.Score = g.Score
	res.BestScore = g.BestScore
	res.Cycles = g.Cycles
	res.GameOver = g.GameOver
	res.Snapshot = sess.Snapshot()
	return res
}
