package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sofmeright/badgekit/src/config"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

// runCLI executes the root command with an explicit config file so state
// from earlier runs does not leak in.
func runCLI(t *testing.T, configPath string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--config", configPath))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionAndFonts(t *testing.T) {
	empty := writeTempFile(t, t.TempDir(), ".badgekit.yml", "")

	out, _, err := runCLI(t, empty, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "badgekit ") {
		t.Errorf("version output = %q", out)
	}

	out, _, err = runCLI(t, empty, "fonts")
	if err != nil {
		t.Fatalf("fonts: %v", err)
	}
	if !strings.Contains(out, "go-regular (default)") || !strings.Contains(out, "go-mono") {
		t.Errorf("fonts output = %q", out)
	}
}

func TestBadgeRenderSVG(t *testing.T) {
	dir := t.TempDir()
	empty := writeTempFile(t, dir, ".badgekit.yml", "")
	dest := filepath.Join(dir, "nested", "inbox.svg")

	_, stderr, err := runCLI(t, empty, "badge", "render", "--content", "99+", "--shine", "-o", dest)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read badge: %v", err)
	}
	if !strings.HasPrefix(string(data), "<svg") || !strings.Contains(string(data), "linearGradient") {
		t.Errorf("unexpected svg: %.80s", data)
	}
	if !strings.Contains(stderr, "badge → "+dest) {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestBadgeRenderPNG(t *testing.T) {
	dir := t.TempDir()
	empty := writeTempFile(t, dir, ".badgekit.yml", "")
	dest := filepath.Join(dir, "badge.png")

	if _, _, err := runCLI(t, empty, "badge", "render", "--content", "7", "--scale", "2", "-o", dest); err != nil {
		t.Fatalf("render: %v", err)
	}
	f, err := os.Open(dest)
	if err != nil {
		t.Fatalf("open badge: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Errorf("png bounds = %v, want 40×40", b)
	}
}

func TestBadgeMeasure(t *testing.T) {
	empty := writeTempFile(t, t.TempDir(), ".badgekit.yml", "")

	out, _, err := runCLI(t, empty, "badge", "measure", "--content", "5", "--scale", "1")
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	for _, want := range []string{"── Measure", `"5"`, "20 × 20", "16.2pt", "    ├─"} {
		if !strings.Contains(out, want) {
			t.Errorf("measure output missing %q:\n%s", want, out)
		}
	}

	// Context block precedes the section frame.
	lines := strings.Split(out, "\n")
	if len(lines) < 3 || !strings.HasPrefix(lines[1], "    content") || !strings.Contains(lines[1], "length") {
		t.Errorf("context block = %q", lines)
	}
	if strings.Index(out, "length") > strings.Index(out, "── Measure") {
		t.Errorf("context block printed after the section:\n%s", out)
	}
}

func TestBadgeMeasureBlankContent(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	empty := writeTempFile(t, t.TempDir(), ".badgekit.yml", "")

	out, _, err := runCLI(t, empty, "badge", "measure", "--content", " ", "--scale", "1")
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if !strings.Contains(out, "20 × 20  blank content, placeholder size") {
		t.Errorf("blank content not flagged:\n%s", out)
	}
}

func TestBadgeGenerate(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "badges")
	cfgPath := writeTempFile(t, dir, ".badgekit.yml", `version: 1
badges:
  output_dir: "`+filepath.ToSlash(outDir)+`"
  defaults:
    frame_visible: true
  items:
    - id: inbox
      content: "99+"
    - id: chat
      content: "3"
      format: png
    - id: alerts
      content: "!"
      status: critical
      style:
        inset_color: auto
`)

	out, _, err := runCLI(t, cfgPath, "badge", "generate")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, name := range []string{"inbox.svg", "chat.png", "alerts.svg"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
		if !strings.Contains(out, strings.TrimSuffix(name, filepath.Ext(name))) {
			t.Errorf("summary does not list %s:\n%s", name, out)
		}
	}

	if !strings.Contains(out, "    ├─") || !strings.Contains(out, "total") {
		t.Errorf("summary missing separator or total:\n%s", out)
	}

	if _, _, err := runCLI(t, cfgPath, "badge", "generate", "nope"); err == nil {
		t.Error("generate with an unknown id succeeded")
	}
}

func TestSelectBadgeItems(t *testing.T) {
	items := []config.BadgeItemConfig{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	got, err := selectBadgeItems(items, nil)
	if err != nil || len(got) != 3 {
		t.Errorf("all items: got %v, %v", got, err)
	}

	got, err = selectBadgeItems(items, []string{"c", "a"})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("selected %v, want a and c in config order", got)
	}

	if _, err := selectBadgeItems(items, []string{"a", "zz"}); err == nil || !strings.Contains(err.Error(), "zz") {
		t.Errorf("unknown id: err = %v", err)
	}
	if _, err := selectBadgeItems(nil, nil); err == nil {
		t.Error("empty config accepted")
	}
}

func TestMigrateCommand(t *testing.T) {
	dir := t.TempDir()
	legacy := writeTempFile(t, dir, "old.yml", "defaults:\n  font: go-mono\nbadges:\n  - id: inbox\n    content: \"4\"\n")

	if _, _, err := runCLI(t, legacy, "migrate", legacy, "--in-place"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg, err := config.Load(legacy)
	if err != nil {
		t.Fatalf("load migrated config: %v", err)
	}
	if cfg.Version != config.LatestVersion || len(cfg.Badges.Items) != 1 {
		t.Errorf("migrated config = %+v", cfg)
	}
}
