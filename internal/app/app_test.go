package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/tornado"
)

func TestRegisterFlags(t *testing.T) {
	var o Options
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", "a.toml", "-script", "s.json", "-seed", "7", "-debug"}); err != nil {
		t.Fatal(err)
	}
	if o.ConfigPath != "a.toml" || o.ScriptPath != "s.json" || o.Seed != 7 || !o.Debug || o.Audio {
		t.Errorf("options = %+v", o)
	}
}

func TestNewDefaults(t *testing.T) {
	a, err := New(Options{Seed: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()
	if a.Audio != nil {
		t.Error("audio started without being enabled")
	}
	if a.Config.Simulation.Seed != 3 {
		t.Errorf("seed = %d, want 3", a.Config.Simulation.Seed)
	}
	a.World.AdvanceNow()
	if a.ECS.Stats().Scene != tornado.SceneHouse {
		t.Error("ECS bridge not attached to the world")
	}
}

func TestNewWithScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")
	if err := os.WriteFile(path, []byte(`{"steps":[{"action":"advance"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := New(Options{ScriptPath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()
	a.World.Update()
	if a.World.Scene() != tornado.SceneHouse {
		t.Errorf("scene = %v, want house after the scripted advance", a.World.Scene())
	}
}

func TestNewErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"steps":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cases := map[string]Options{
		"missing config": {ConfigPath: filepath.Join(dir, "nope.toml")},
		"missing script": {ScriptPath: filepath.Join(dir, "nope.json")},
		"empty script":   {ScriptPath: bad},
	}
	for name, opts := range cases {
		if _, err := New(opts); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
