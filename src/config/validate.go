package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/fonts"
)

var identifierRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_.\-]*$`)

func isIdentifier(s string) bool { return identifierRe.MatchString(s) }

// Validate checks structural invariants of a loaded Config. binVersion is the
// running badgekit version, checked against requires.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config, binVersion string) (warnings []string, err error) {
	var errs []string

	// ── Version ───────────────────────────────────────────────────────────

	switch cfg.Version {
	case LatestVersion:
	case 0:
		errs = append(errs, "version: missing; run 'badgekit migrate' to upgrade an unversioned config")
	default:
		errs = append(errs, fmt.Sprintf("version: must be %d, got %d", LatestVersion, cfg.Version))
	}

	if cfg.Requires != "" {
		w, e := checkRequires(cfg.Requires, binVersion)
		warnings = append(warnings, w...)
		errs = append(errs, e...)
	}

	// ── Defaults ──────────────────────────────────────────────────────────

	w, e := validateStyle(cfg.Badges.Defaults, "badges.defaults")
	warnings = append(warnings, w...)
	errs = append(errs, e...)

	// ── Items ─────────────────────────────────────────────────────────────

	ids := make(map[string]bool)
	for i, item := range cfg.Badges.Items {
		ipath := fmt.Sprintf("badges.items[%d]", i)

		switch {
		case item.ID == "":
			errs = append(errs, fmt.Sprintf("%s: id is required", ipath))
		case !isIdentifier(item.ID):
			errs = append(errs, fmt.Sprintf("%s: id %q is not a valid identifier (must match [a-zA-Z][a-zA-Z0-9_.\\-]*)", ipath, item.ID))
		case ids[item.ID]:
			errs = append(errs, fmt.Sprintf("%s: duplicate badge id %q", ipath, item.ID))
		default:
			ids[item.ID] = true
		}

		if badge.IsBlank(item.Content) {
			warnings = append(warnings, fmt.Sprintf("%s: content is blank, badge renders without a label", ipath))
		}
		if item.Format != "" {
			if _, err := badge.ParseFormat(item.Format); err != nil {
				errs = append(errs, fmt.Sprintf("%s.format: %v", ipath, err))
			}
		}
		switch item.Status {
		case "", "passed", "success", "warning", "critical", "failed":
		default:
			warnings = append(warnings, fmt.Sprintf("%s.status: unknown status %q, using default color", ipath, item.Status))
		}

		w, e := validateStyle(item.Style, ipath+".style")
		warnings = append(warnings, w...)
		errs = append(errs, e...)
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return warnings, nil
}

// validateStyle checks one style block. Out-of-range geometry is accepted
// with a warning since it renders, only malformed.
func validateStyle(s StyleConfig, path string) (warnings, errs []string) {
	if s.Font != "" {
		if _, ok := fonts.Builtin[s.Font]; !ok {
			errs = append(errs, fmt.Sprintf("%s.font: unknown built-in font %q (available: %s)", path, s.Font, strings.Join(fonts.Names(), ", ")))
		}
	}
	if s.FontSize != nil && *s.FontSize <= 0 {
		errs = append(errs, fmt.Sprintf("%s.font_size: must be positive, got %g", path, *s.FontSize))
	}

	colors := []struct{ name, value string }{
		{"text_color", s.TextColor},
		{"inset_color", s.InsetColor},
		{"frame_color", s.FrameColor},
	}
	for _, c := range colors {
		if c.value == "" || (c.name == "inset_color" && c.value == "auto") {
			continue
		}
		if _, err := badge.ParseColor(c.value); err != nil {
			errs = append(errs, fmt.Sprintf("%s.%s: %v", path, c.name, err))
		}
	}

	if s.CornerRoundness != nil && (*s.CornerRoundness < 0 || *s.CornerRoundness > 1) {
		warnings = append(warnings, fmt.Sprintf("%s.corner_roundness: %g is outside [0, 1], corners will be malformed", path, *s.CornerRoundness))
	}
	if s.ScaleFactor != nil && *s.ScaleFactor <= 0 {
		warnings = append(warnings, fmt.Sprintf("%s.scale_factor: %g is not positive, badge will not be visible", path, *s.ScaleFactor))
	}
	return warnings, errs
}

// checkRequires matches binVersion against a semver constraint. Development
// builds without a semantic version only produce a warning.
func checkRequires(requires, binVersion string) (warnings, errs []string) {
	c, err := semver.NewConstraint(requires)
	if err != nil {
		return nil, []string{fmt.Sprintf("requires: invalid constraint %q: %v", requires, err)}
	}
	v, err := semver.NewVersion(binVersion)
	if err != nil {
		return []string{fmt.Sprintf("requires: cannot check %q against version %q", requires, binVersion)}, nil
	}
	if ok, reasons := c.Validate(v); !ok {
		msgs := make([]string, len(reasons))
		for i, r := range reasons {
			msgs[i] = r.Error()
		}
		return nil, []string{fmt.Sprintf("requires: badgekit %s does not satisfy %q (%s)", v, requires, strings.Join(msgs, ", "))}
	}
	return nil, nil
}
