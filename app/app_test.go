package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/pacific-fighter/core"
	"github.com/lixenwraith/pacific-fighter/engine"
	"github.com/lixenwraith/pacific-fighter/persist"
	"github.com/lixenwraith/pacific-fighter/replay"
)

func TestRegisterFlags(t *testing.T) {
	var o Options
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(fs, &o)
	err := fs.Parse([]string{"-seed", "42", "-mute", "-record", "run.pfr", "-data", "state.toml", "-debug"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if o.Seed != 42 || !o.Mute || !o.Debug || o.RecordPath != "run.pfr" || o.DataPath != "state.toml" {
		t.Errorf("Unexpected options %+v", o)
	}
}

func TestSetupHeadless(t *testing.T) {
	dir := t.TempDir()
	o := Options{
		Seed:       9,
		DataPath:   filepath.Join(dir, "state.toml"),
		RecordPath: filepath.Join(dir, "run.pfr"),
		Mute:       true,
		NoAudio:    true,
	}
	rt, err := Setup(o)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if rt.Session.Seed() != 9 {
		t.Errorf("Expected seed 9, got %d", rt.Session.Seed())
	}
	if !rt.Audio.IsMuted() {
		t.Error("Expected -mute to mute the player")
	}

	for i := 0; i < 10; i++ {
		dt := rt.Session.Step(core.Intent{}, 16*time.Millisecond)
		rt.Recorder.Record(dt, core.Intent{})
	}
	rt.Close()

	store, err := persist.Open(o.DataPath)
	if err != nil {
		t.Fatalf("state reopen failed: %v", err)
	}
	if v, _ := store.Get(engine.KeyMuted); v != "1" {
		t.Errorf("Expected persisted mute flag, got %q", v)
	}

	rep, err := replay.Load(o.RecordPath)
	if err != nil {
		t.Fatalf("replay load failed: %v", err)
	}
	if len(rep.Frames) != 10 || rep.Header.Seed != 9 {
		t.Errorf("Expected 10 frames with seed 9, got %d and %d", len(rep.Frames), rep.Header.Seed)
	}
}

func TestSetupRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("world_speed = -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Setup(Options{ConfigPath: path, NoAudio: true, DataPath: filepath.Join(t.TempDir(), "s.toml")}); err == nil {
		t.Error("Expected invalid tuning to fail setup")
	}
}

func TestBrokenStateFallsBackToMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	if err := os.WriteFile(path, []byte("[values\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok := openStore(path).(*engine.MemoryStore); !ok {
		t.Error("Expected a memory store for an unreadable state file")
	}
}
