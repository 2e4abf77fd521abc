package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shutter/internal/camera"
	"shutter/internal/host"
	"shutter/internal/log"
	"shutter/internal/tui"
)

var (
	captureQuality     int
	captureEdit        bool
	captureResultType  string
	captureWidth       int
	captureHeight      int
	captureOrientation bool
	captureSource      string
	capturePick        string
	captureJSON        bool
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Pick or take a photo and print the result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, err := loadManifest(cfg.Host.Manifest)
		if err != nil {
			return err
		}

		opts := host.FromConfig(cfg, manifest)
		if captureSource != "" {
			src, ok := host.ParseSource(captureSource)
			if !ok {
				return fmt.Errorf("--source must be library, camera or cancel, got %q", captureSource)
			}
			opts.PresetSource = src
			opts.HasPresetSource = true
		}
		opts.PresetPick = capturePick

		plugin := camera.NewPlugin(host.NewTerminal(opts))
		defer plugin.Close()

		done := make(chan camera.Outcome, 1)
		plugin.GetPhotoOptions(map[string]any{
			"quality":            captureQuality,
			"allowEditing":       captureEdit,
			"resultType":         captureResultType,
			"width":              captureWidth,
			"height":             captureHeight,
			"correctOrientation": captureOrientation,
		}, func(o camera.Outcome) { done <- o })

		var out camera.Outcome
		select {
		case out = <-done:
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}

		switch {
		case out.Cancelled():
			fmt.Fprintln(os.Stderr, "Capture cancelled.")
			return nil
		case out.Err != nil:
			return errors.New(out.Message())
		}
		log.Infof("capture: session %s returned %s %dx%d", out.SessionID, out.Result.Kind, out.Result.Width, out.Result.Height)

		if captureJSON {
			enc := json.NewEncoder(os.Stdout)
			return enc.Encode(out.Result.Payload())
		}

		rows := []tui.SummaryRow{
			{Label: "Format", Value: out.Result.Format},
			{Label: "Dimensions", Value: fmt.Sprintf("%dx%d", out.Result.Width, out.Result.Height)},
		}
		if out.Result.Kind == camera.ResultFile {
			rows = append(rows, tui.SummaryRow{Label: "Path", Value: out.Result.Path})
		} else {
			rows = append(rows, tui.SummaryRow{Label: "Inline length", Value: fmt.Sprintf("%d", len(out.Result.Data))})
		}
		fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))
		return nil
	},
}

// loadManifest treats a missing manifest as an app that declares nothing, so
// the prerequisite check reports it the same way a platform would.
func loadManifest(path string) (host.Manifest, error) {
	manifest, err := host.LoadManifest(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warnf("manifest %s not found; no usage disclosures declared", path)
		return host.Manifest{}, nil
	}
	return manifest, err
}

func init() {
	captureCmd.Flags().IntVarP(&captureQuality, "quality", "q", 100, "JPEG quality 0-100")
	captureCmd.Flags().BoolVarP(&captureEdit, "edit", "e", false, "allow editing (square crop) before returning")
	captureCmd.Flags().StringVarP(&captureResultType, "result-type", "r", "base64", "base64 or uri")
	captureCmd.Flags().IntVarP(&captureWidth, "width", "W", 0, "target width, 0 for unconstrained")
	captureCmd.Flags().IntVarP(&captureHeight, "height", "H", 0, "target height, 0 for unconstrained")
	captureCmd.Flags().BoolVar(&captureOrientation, "correct-orientation", false, "render pixels upright and drop the orientation tag")
	captureCmd.Flags().StringVar(&captureSource, "source", "", "skip the sheet: library, camera or cancel")
	captureCmd.Flags().StringVar(&capturePick, "pick", "", "library file to return instead of showing the picker")
	captureCmd.Flags().BoolVar(&captureJSON, "json", false, "print the result payload as JSON")

	rootCmd.AddCommand(captureCmd)
}
