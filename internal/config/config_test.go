package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/aria-primitives/internal/anchor"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tun := cfg.App.Tunables
	want := anchor.Placement{Side: anchor.SideBottom, Align: anchor.AlignStart}
	if tun.Placement != want {
		t.Fatalf("expected default placement %v, got %v", want, tun.Placement)
	}
	if !tun.Flip || !tun.Loop {
		t.Fatalf("expected flip and loop on by default, got %+v", tun)
	}
	if tun.TypeAheadTimeout != 500*time.Millisecond {
		t.Fatalf("expected 500ms type-ahead timeout, got %s", tun.TypeAheadTimeout)
	}
	if tun.TooltipOpenDelay != 700*time.Millisecond || tun.TooltipCloseDelay != 300*time.Millisecond {
		t.Fatalf("unexpected tooltip delays %s/%s", tun.TooltipOpenDelay, tun.TooltipCloseDelay)
	}
	if !cfg.App.Inspector {
		t.Fatalf("expected inspector on by default")
	}
	if cfg.App.ShowFooter || cfg.Logging.Trace {
		t.Fatalf("expected footer and trace off by default")
	}
}

func TestLoadArgsEnvironmentAndFlags(t *testing.T) {
	env := []string{
		envWidth + "=90",
		envPlacement + "=top-end",
		envTrace + "=true",
		envTooltipOpen + "=1s",
		envLoop + "=nope",
	}
	cfg, err := LoadArgs([]string{"--placement", "right", "--height=30"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 90 || cfg.App.Height != 30 {
		t.Fatalf("expected 90x30, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if got := cfg.App.Tunables.Placement.String(); got != "right" {
		t.Fatalf("expected flag to beat env, got placement %q", got)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from env")
	}
	if cfg.App.Tunables.TooltipOpenDelay != time.Second {
		t.Fatalf("expected 1s open delay, got %s", cfg.App.Tunables.TooltipOpenDelay)
	}
	if !cfg.App.Tunables.Loop {
		t.Fatalf("expected unparsable env value to keep the default")
	}
	if cfg.Flags["placement"] != "right" || cfg.Flags["height"] != "30" {
		t.Fatalf("unexpected flags %v", cfg.Flags)
	}
}

func TestLoadArgsReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "playground.yaml")
	body := strings.Join([]string{
		"placement: left-end",
		"offset: 2",
		"flip: false",
		"demo: tooltip",
		"tooltip:",
		"  open-delay: 150ms",
		"  close-delay: 50ms",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadArgs([]string{"--config", path, "--offset", "3"}, []string{envFlip + "=true"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tun := cfg.App.Tunables
	if tun.Placement.String() != "left-end" {
		t.Fatalf("expected placement from file, got %s", tun.Placement)
	}
	if tun.Offset != 3 {
		t.Fatalf("expected flag offset 3, got %g", tun.Offset)
	}
	if !tun.Flip {
		t.Fatalf("expected env to beat file for flip")
	}
	if tun.TooltipOpenDelay != 150*time.Millisecond || tun.TooltipCloseDelay != 50*time.Millisecond {
		t.Fatalf("unexpected tooltip delays %s/%s", tun.TooltipOpenDelay, tun.TooltipCloseDelay)
	}
	if cfg.App.RootDemo != "tooltip" || cfg.File != path {
		t.Fatalf("unexpected demo %q or file %q", cfg.App.RootDemo, cfg.File)
	}
}

func TestLoadArgsConfigFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "playground.toml")
	if err := os.WriteFile(path, []byte("loop = false\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadArgs(nil, []string{envConfig + "=" + path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Tunables.Loop {
		t.Fatalf("expected loop disabled by the file")
	}
}

func TestLoadArgsErrors(t *testing.T) {
	cases := map[string][]string{
		"negative width":    {"--width", "-1"},
		"negative height":   {"--height=-4"},
		"bad placement":     {"--placement", "middle"},
		"unknown flag":      {"--socket", "x"},
		"missing file":      {"--config", filepath.Join(t.TempDir(), "absent.yaml")},
		"bad duration flag": {"--typeahead-timeout", "soon"},
	}
	for name, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestConfigFlagForms(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--config", "a.yaml"}, "a.yaml"},
		{[]string{"-config=b.toml"}, "b.toml"},
		{[]string{"--", "--config", "c.yaml"}, "env.yaml"},
		{[]string{"config", "d.yaml"}, "env.yaml"},
	}
	for _, tc := range cases {
		if got := configFlag(tc.args, "env.yaml"); got != tc.want {
			t.Fatalf("configFlag(%v) = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestValidateRejectsNegativeTunables(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	bad := cfg
	bad.App.Tunables.Offset = -1
	if err := Validate(bad); err == nil {
		t.Fatalf("expected negative offset to fail")
	}
	bad = cfg
	bad.App.Tunables.TooltipCloseDelay = -time.Second
	if err := Validate(bad); err == nil {
		t.Fatalf("expected negative delay to fail")
	}
}
