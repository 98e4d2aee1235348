package config

import "testing"

func TestDecodeOverridesDefaults(t *testing.T) {
	doc := []byte(`
[system]
identity = "demo"

[display]
width = 320
height = 200
scale = 2
`)
	cfg, err := Decode(doc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.System.Identity != "demo" {
		t.Fatalf("Identity = %q, want demo", cfg.System.Identity)
	}
	if cfg.Display.Width != 320 || cfg.Display.Height != 200 || cfg.Display.Scale != 2 {
		t.Fatalf("Display = %+v", cfg.Display)
	}
	// fields the document omits keep Default()'s values.
	if cfg.Engine.FramesPerSecond != 60 {
		t.Fatalf("FramesPerSecond = %d, want 60", cfg.Engine.FramesPerSecond)
	}
}

func TestApplyOverrideDotKey(t *testing.T) {
	cfg := Default()
	if err := ApplyOverride(&cfg, "display.scale=3"); err != nil {
		t.Fatalf("ApplyOverride: %v", err)
	}
	if cfg.Display.Scale != 3 {
		t.Fatalf("Scale = %d, want 3", cfg.Display.Scale)
	}

	if err := ApplyOverride(&cfg, "system.identity=foo"); err != nil {
		t.Fatalf("ApplyOverride: %v", err)
	}
	if cfg.System.Identity != "foo" {
		t.Fatalf("Identity = %q, want foo", cfg.System.Identity)
	}
}

func TestApplyOverrideRejectsUnknownKey(t *testing.T) {
	cfg := Default()
	if err := ApplyOverride(&cfg, "display.bogus=1"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestRequireVersion(t *testing.T) {
	if err := RequireVersion(Version{1, 0, 0}, Version{1, 1, 0}); err == nil {
		t.Fatal("expected error when engine older than required")
	}
	if err := RequireVersion(Version{2, 0, 0}, Version{1, 9, 9}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
