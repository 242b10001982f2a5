package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/badgekit/src/badge"
	"github.com/sofmeright/badgekit/src/config"
	"github.com/sofmeright/badgekit/src/output"
)

var (
	bmContent string
	bmStyle   styleFlags
)

var badgeMeasureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Print the computed size of a badge",
	Long: `Print the intrinsic size a badge would report for --content, along with
the derived text size, frame width and outline bounds.`,
	RunE: runBadgeMeasure,
}

func init() {
	badgeMeasureCmd.Flags().StringVar(&bmContent, "content", "", "badge label")
	bmStyle.register(badgeMeasureCmd.Flags())

	badgeCmd.AddCommand(badgeMeasureCmd)
}

func runBadgeMeasure(cmd *cobra.Command, args []string) error {
	spec, err := cfg.Badges.Resolve(config.BadgeItemConfig{
		ID:      "measure",
		Content: bmContent,
		Style:   bmStyle.overrides(cmd.Flags()),
	})
	if err != nil {
		return err
	}

	rt, err := newBadgeRuntime(spec.Style)
	if err != nil {
		return err
	}
	defer rt.Close()

	b := badge.New(rt.fonts, badge.WithConfig(spec.Config))
	size, sized := b.SetContent(spec.Content)
	bc := b.Config()
	shape := badge.BuildShape(badge.NewRect(size), bc.CornerRoundness)
	bounds := shape.Bounds()

	color := output.UseColor()
	w := cmd.OutOrStdout()
	output.ContextBlock(w, []output.KV{
		{Key: "content", Value: fmt.Sprintf("%q", spec.Content)},
		{Key: "length", Value: fmt.Sprint(badge.ContentLength(spec.Content))},
		{Key: "font", Value: bc.Font.Family},
		{Key: "scale", Value: fmt.Sprintf("%g", bc.ScaleFactor)},
	})

	sec := output.NewSection(w, "Measure", 0, color)
	dims := output.Bold(fmt.Sprintf("%g × %g", size.Width, size.Height), color)
	if !sized {
		dims += "  " + output.Dimmed("blank content, placeholder size", color)
	}
	sec.Row("%-14s%s", "size", dims)
	sec.Row("%-14s%gpt", "text size", badge.TextFontSize(spec.Content, bc.ScaleFactor))
	sec.Separator()
	sec.Row("%-14s%g", "frame width", badge.FrameLineWidth(bc.ScaleFactor))
	sec.Row("%-14s%g,%g %g × %g", "outline", bounds.X, bounds.Y, bounds.Width, bounds.Height)
	sec.Close()
	return nil
}
