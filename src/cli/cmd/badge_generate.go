package cmd

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/config"
	"github.com/sofmeright/badgekit/src/output"
)

var bgKeepGoing bool

var badgeGenerateCmd = &cobra.Command{
	Use:   "generate [id...]",
	Short: "Generate badges defined in config",
	Long: `Generate every badge in badges.items, or only the named ids.

Badges are independent and rendered in parallel. With --keep-going a failing
badge is reported and the rest still render.`,
	RunE: runBadgeGenerate,
}

func init() {
	badgeGenerateCmd.Flags().BoolVar(&bgKeepGoing, "keep-going", false, "render remaining badges after a failure")

	badgeCmd.AddCommand(badgeGenerateCmd)
}

type generateResult struct {
	spec config.BadgeSpec
	out  badge.Output
	err  error
}

func runBadgeGenerate(cmd *cobra.Command, args []string) error {
	items, err := selectBadgeItems(cfg.Badges.Items, args)
	if err != nil {
		return err
	}

	specs := make([]config.BadgeSpec, 0, len(items))
	styles := make([]config.StyleConfig, 0, len(items))
	for _, item := range items {
		spec, err := cfg.Badges.Resolve(item)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
		styles = append(styles, spec.Style)
	}

	rt, err := newBadgeRuntime(styles...)
	if err != nil {
		return err
	}
	defer rt.Close()

	start := time.Now()
	results := make([]generateResult, len(specs))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())
	for i, spec := range specs {
		g.Go(func() error {
			results[i] = generateOne(ctx, cmd, rt.engine, spec)
			if results[i].err != nil && !bgKeepGoing {
				return results[i].err
			}
			return nil
		})
	}
	groupErr := g.Wait()

	color := output.UseColor()
	w := cmd.OutOrStdout()
	sec := output.NewSection(w, "Badges", time.Since(start), color)
	failed := 0
	for _, r := range results {
		switch {
		case r.err != nil:
			failed++
			output.SummaryRow(w, r.spec.ID, "failed", r.err.Error(), color)
		case r.out.Data == nil:
			output.SummaryRow(w, r.spec.ID, "skipped", output.Dimmed("not rendered", color), color)
		default:
			detail := fmt.Sprintf("%s %s", r.spec.Output,
				output.Dimmed(fmt.Sprintf("%gx%g", r.out.Size.Width, r.out.Size.Height), color))
			output.SummaryRow(w, r.spec.ID, "success", detail, color)
		}
	}
	status := "success"
	if failed > 0 {
		status = "failed"
	}
	sec.Separator()
	output.SummaryTotal(w, time.Since(start), status, color)
	sec.Close()

	if groupErr != nil {
		return groupErr
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d badges failed", failed, len(specs))
	}
	return nil
}

// generateOne renders and writes a single badge. A cancelled context skips
// the work and leaves the result empty.
func generateOne(ctx context.Context, cmd *cobra.Command, eng *badge.Engine, spec config.BadgeSpec) generateResult {
	res := generateResult{spec: spec}
	if ctx.Err() != nil {
		return res
	}

	out, err := eng.Generate(badge.Spec{Content: spec.Content, Config: spec.Config, Format: spec.Format})
	if err != nil {
		res.err = fmt.Errorf("badge %s: %w", spec.ID, err)
		return res
	}
	if err := writeBadge(cmd, spec.Output, out.Data); err != nil {
		res.err = fmt.Errorf("badge %s: %w", spec.ID, err)
		return res
	}
	res.out = out
	return res
}

// selectBadgeItems filters items to the given ids, or returns all of them.
func selectBadgeItems(items []config.BadgeItemConfig, ids []string) ([]config.BadgeItemConfig, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no badges configured in badges.items")
	}
	if len(ids) == 0 {
		return items, nil
	}

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var filtered []config.BadgeItemConfig
	for _, item := range items {
		if want[item.ID] {
			filtered = append(filtered, item)
			delete(want, item.ID)
		}
	}
	if len(want) > 0 {
		missing := make([]string, 0, len(want))
		for _, id := range ids {
			if want[id] {
				missing = append(missing, id)
			}
		}
		return nil, fmt.Errorf("no matching badge items for: %v", missing)
	}
	return filtered, nil
}
