// Package app assembles a playable session from command-line options
// Both front-ends share it so a replay recorded in one plays in the other
package app

import (
	"flag"
	"fmt"
	"log"

	"github.com/lixenwraith/pacific-fighter/audio"
	"github.com/lixenwraith/pacific-fighter/config"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/game"
	"github.com/lixenwraith/pacific-fighter/persist"
	"github.com/lixenwraith/pacific-fighter/replay"
)

// Options mirror the shared command-line flags
type Options struct {
	ConfigPath string
	Seed       uint64
	Debug      bool
	RecordPath string
	DataPath   string
	Mute       bool
	NoAudio    bool
}

// RegisterFlags binds the shared flags onto fs
func RegisterFlags(fs *flag.FlagSet, o *Options) {
	fs.StringVar(&o.ConfigPath, "config", "", "TOML file overriding tuning values")
	fs.Uint64Var(&o.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.BoolVar(&o.Debug, "debug", false, "write logs/pacific-fighter.log and show the telemetry overlay")
	fs.StringVar(&o.RecordPath, "record", "", "record the run to this replay file")
	fs.StringVar(&o.DataPath, "data", "", "state file for best score and flags (default under the user config dir)")
	fs.BoolVar(&o.Mute, "mute", false, "start muted")
	fs.BoolVar(&o.NoAudio, "no-audio", false, "do not open the audio device")
}

// Runtime is a fully wired session and the resources it owns
type Runtime struct {
	Session  *game.Session
	HUD      *game.HUDLatch
	Effects  *game.Effects
	Audio    *audio.Player
	Store    engine.KeyValueStore
	Recorder *replay.Recorder
}

// Setup loads tuning and state, opens audio and the recorder, and builds the session
// Audio and persistence failures degrade to silent and in-memory operation
func Setup(o Options) (*Runtime, error) {
	tuning, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		HUD:     &game.HUDLatch{},
		Effects: game.NewEffects(),
		Audio:   audio.NewPlayer(),
		Store:   openStore(o.DataPath),
	}

	if !o.NoAudio {
		if err := rt.Audio.Initialize(); err != nil {
			log.Printf("app: audio unavailable, continuing silent: %v", err)
		}
	}

	rt.Session = game.NewSession(game.Options{
		Tuning: &tuning,
		Seed:   o.Seed,
		Sinks: engine.Sinks{
			Effects: rt.Effects,
			Audio:   rt.Audio,
			HUD:     rt.HUD,
			Store:   rt.Store,
		},
	})
	if o.Mute && !rt.Audio.IsMuted() {
		rt.Session.ToggleMute()
	}

	if o.RecordPath != "" {
		rec, err := replay.NewRecorder(o.RecordPath, rt.Session.Seed(), rt.Session.Tuning())
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("recorder: %w", err)
		}
		rt.Recorder = rec
		log.Printf("app: recording to %s", o.RecordPath)
	}
	return rt, nil
}

func openStore(path string) engine.KeyValueStore {
	if path == "" {
		p, err := persist.DefaultPath()
		if err != nil {
			log.Printf("app: no state path, best score will not persist: %v", err)
			return engine.NewMemoryStore()
		}
		path = p
	}
	store, err := persist.Open(path)
	if err != nil {
		log.Printf("app: state file unusable, best score will not persist: %v", err)
		return engine.NewMemoryStore()
	}
	log.Printf("app: state file %s", store.Path())
	return store
}

// Close flushes the recorder and releases the audio device
func (rt *Runtime) Close() {
	if rt.Recorder != nil {
		if err := rt.Recorder.Close(); err != nil {
			log.Printf("app: replay close failed: %v", err)
		} else {
			log.Printf("app: replay saved with %d frames", rt.Recorder.Frames())
		}
		rt.Recorder = nil
	}
	rt.Audio.Cleanup()
}
