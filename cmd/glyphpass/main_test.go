package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/glyphpass/internal/config"
	"github.com/verte-zerg/glyphpass/internal/model"
)

func baseConfig() model.Config {
	return model.Config{
		Lengths:     []int{16, 64},
		MinDigits:   1,
		MinScripts:  5,
		Long:        model.LongRepair{Length: 64, MinDigits: 4},
		Width:       64,
		History:     true,
		HistoryPath: "history.db",
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(baseConfig()); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	cases := map[string]func(*model.Config){
		"empty lengths":    func(c *model.Config) { c.Lengths = nil },
		"zero length":      func(c *model.Config) { c.Lengths = []int{16, 0} },
		"negative digits":  func(c *model.Config) { c.MinDigits = -1 },
		"negative scripts": func(c *model.Config) { c.MinScripts = -1 },
		"negative long":    func(c *model.Config) { c.Long.Length = -1 },
		"negative width":   func(c *model.Config) { c.Width = -1 },
		"missing db path":  func(c *model.Config) { c.HistoryPath = "" },
	}
	for name, mutate := range cases {
		cfg := baseConfig()
		mutate(&cfg)
		if err := validateConfig(cfg); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestHistoryFilter(t *testing.T) {
	f, err := historyFilter("Extended", "2024-03-01", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Variant != model.VariantExtended || f.Last != 5 || f.Since == nil {
		t.Fatalf("unexpected filter %+v", f)
	}
	if f.Since.Year() != 2024 || f.Since.Month() != 3 || f.Since.Day() != 1 {
		t.Fatalf("unexpected since %s", f.Since)
	}
	if _, err := historyFilter("rot13", "", 0); err == nil {
		t.Fatalf("expected unknown variant error")
	}
	if _, err := historyFilter("", "03/01/2024", 0); err == nil {
		t.Fatalf("expected date error")
	}
	if _, err := historyFilter("", "", -1); err == nil {
		t.Fatalf("expected --last error")
	}
}

func TestPoolsForCustomRequiresFile(t *testing.T) {
	cfg := baseConfig()
	if _, err := poolsFor(cfg, model.VariantCustom); err == nil {
		t.Fatalf("expected error without --pool-file")
	}
	path := filepath.Join(t.TempDir(), "pool.txt")
	if err := os.WriteFile(path, []byte("αβγ\n123\n"), 0o644); err != nil {
		t.Fatalf("write pool: %v", err)
	}
	cfg.PoolFile = path
	pools, err := poolsFor(cfg, model.VariantCustom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pools.Custom.String() != "αβγ123" {
		t.Fatalf("unexpected custom pool %q", pools.Custom.String())
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	tmpl := defaultConfigTemplate()
	if !strings.Contains(tmpl, "[generate]") || !strings.Contains(tmpl, "[history]") {
		t.Fatalf("template missing sections:\n%s", tmpl)
	}
	var cfg config.FileConfig
	if _, err := toml.Decode(tmpl, &cfg); err != nil {
		t.Fatalf("template must be valid TOML: %v", err)
	}

	uncommented := strings.NewReplacer("# lengths", "lengths", "# min-scripts", "min-scripts").Replace(tmpl)
	cfg = config.FileConfig{}
	if _, err := toml.Decode(uncommented, &cfg); err != nil {
		t.Fatalf("uncommented template must be valid TOML: %v", err)
	}
	if len(cfg.Generate.Lengths) != len(defaultLengths) {
		t.Fatalf("unexpected lengths %v", cfg.Generate.Lengths)
	}
	if cfg.Generate.MinScripts == nil || *cfg.Generate.MinScripts != defaultMinScripts {
		t.Fatalf("unexpected min-scripts")
	}
}

func TestSetupLogging(t *testing.T) {
	if err := setupLogging("json", "debug"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := setupLogging("xml", "info"); err == nil {
		t.Fatalf("expected format error")
	}
	if err := setupLogging("text", "loud"); err == nil {
		t.Fatalf("expected level error")
	}
}

func TestCommandsRender(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cases := []struct {
		args []string
		want []string
	}{
		{args: []string{"langs"}, want: []string{"Cyrillic", "Cyrl", "Hiragana"}},
		{args: []string{"pools", "--lengths", "64"}, want: []string{"Standard pool size: 94 characters", "Dingbats", "419.49"}},
	}
	for _, tc := range cases {
		root := newRootCmd()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs(tc.args)
		if err := root.Execute(); err != nil {
			t.Fatalf("%v: %v", tc.args, err)
		}
		for _, want := range tc.want {
			if !strings.Contains(out.String(), want) {
				t.Fatalf("%v: output missing %q:\n%s", tc.args, want, out.String())
			}
		}
	}
}

func TestGenCommandRecordsHistory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"gen", "--variant", "standard", "--length", "20", "--count", "3", "--width", "0"})
	if err := root.Execute(); err != nil {
		t.Fatalf("gen: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 passwords, got %q", out.String())
	}
	for _, line := range lines {
		if len([]rune(line)) != 20 {
			t.Fatalf("unexpected password %q", line)
		}
	}
	if _, err := os.Stat(filepath.Join(data, "glyphpass", "history.db")); err != nil {
		t.Fatalf("expected history db: %v", err)
	}

	root = newRootCmd()
	out.Reset()
	root.SetOut(&out)
	root.SetArgs([]string{"history", "--plain", "--variant", "standard"})
	if err := root.Execute(); err != nil {
		t.Fatalf("history: %v", err)
	}
	for _, want := range []string{"standard", "Entropy per run (bits)", "Moving avg"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in history output:\n%s", want, out.String())
		}
	}
}
