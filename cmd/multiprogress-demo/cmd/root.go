// Package cmd implements the command line of the MultiProgressView demo.
package cmd

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zxf000000/MultiProgressView/internal/config"
	"github.com/zxf000000/MultiProgressView/internal/ui"
	"github.com/zxf000000/MultiProgressView/pkg/multiprogress"
)

// Version is set during build via -ldflags "-X github.com/zxf000000/MultiProgressView/cmd/multiprogress-demo/cmd.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "io.github.zxf000000.multiprogressview"
	AppName = "MultiProgressView Demo"
)

// Flag names, also used as viper keys
const (
	FlagSections = "sections"
	FlagUnits    = "units"
	FlagLineCap  = "line-cap"
	FlagInset    = "inset"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:     "multiprogress-demo",
		Short:   "Interactive demo of the multi-section progress bar",
		Version: version,
		Long: `multiprogress-demo opens a window with a storage-usage style progress bar
split into colored sections. Advance grows the next section, Reset zeroes
all of them and Reload rebuilds the bar from the current settings.

Flags override stored preferences and can also be set through the
environment:
  MULTIPROGRESS_SECTIONS  - number of sections
  MULTIPROGRESS_UNITS     - unit capacity, 0 for normalized
  MULTIPROGRESS_LINE_CAP  - round, square or butt
  MULTIPROGRESS_INSET     - track inset`,
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			a := app.NewWithID(AppID)
			settings := config.NewSettings(a)
			if err := applyOverrides(newDemoViper(), c.Flags(), settings); err != nil {
				return err
			}
			run(a, settings)
			return nil
		},
	}

	c.Flags().Int(FlagSections, config.DefaultSectionCount, "number of sections")
	c.Flags().Int(FlagUnits, config.DefaultUnitTotal, "unit capacity, 0 for the normalized capacity")
	c.Flags().String(FlagLineCap, config.DefaultLineCap.String(), "line cap: round, square or butt")
	c.Flags().Float32(FlagInset, config.DefaultTrackInset, "inset between the bar border and the track")
	return c
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("executing root command: %w", err)
	}
	return nil
}

// newDemoViper returns a viper instance reading MULTIPROGRESS_* environment variables
func newDemoViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("MULTIPROGRESS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// applyOverrides writes explicitly set flags and environment variables into settings.
// Values left at their flag default keep the stored preference.
func applyOverrides(v *viper.Viper, flags *pflag.FlagSet, settings *config.Settings) error {
	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if v.IsSet(FlagSections) {
		settings.SetSectionCount(v.GetInt(FlagSections))
	}
	if v.IsSet(FlagUnits) {
		settings.SetUnitTotal(v.GetInt(FlagUnits))
	}
	if v.IsSet(FlagLineCap) {
		lc, err := multiprogress.ParseLineCap(v.GetString(FlagLineCap))
		if err != nil {
			return fmt.Errorf("--%s: %w", FlagLineCap, err)
		}
		settings.SetLineCap(lc)
	}
	if v.IsSet(FlagInset) {
		settings.SetTrackInset(float32(v.GetFloat64(FlagInset)))
	}
	return nil
}

func run(a fyne.App, settings *config.Settings) {
	log.Printf("%s v%s starting...", AppName, version)

	a.Settings().SetTheme(ui.NewDemoTheme())

	window := a.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewDemoUI(window, a, settings)
	window.ShowAndRun()
}
