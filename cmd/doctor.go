package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"shutter/internal/camera"
	"shutter/internal/host"
	"shutter/internal/tui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report disclosures and permissions without capturing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, err := loadManifest(cfg.Host.Manifest)
		if err != nil {
			return err
		}
		term := host.NewTerminal(host.FromConfig(cfg, manifest))

		fmt.Fprintf(os.Stdout, "%s\n", doctorHeadStyle.Render(cfg.Host.Manifest))
		for _, key := range camera.RequiredDisclosures() {
			if usage, ok := manifest.Lookup(key); ok {
				fmt.Fprintf(os.Stdout, "  %s %s %s\n", doctorOKStyle.Render("✓"), doctorValueStyle.Render(key), doctorDimStyle.Render(usage))
			} else {
				fmt.Fprintf(os.Stdout, "  %s %s\n", doctorBadStyle.Render("✗"), doctorValueStyle.Render(key))
			}
		}

		fmt.Fprintln(os.Stdout)
		fmt.Fprintf(os.Stdout, "%s\n", doctorHeadStyle.Render("Permissions"))
		fmt.Fprintf(os.Stdout, "  %s %s\n", doctorDimStyle.Render("library:"), doctorValueStyle.Render(term.LibraryAuthorization().String()))
		live := "unavailable"
		if term.LiveCaptureAvailable() {
			live = "available"
		}
		fmt.Fprintf(os.Stdout, "  %s %s\n", doctorDimStyle.Render("camera:"), doctorValueStyle.Render(live))
		fmt.Fprintf(os.Stdout, "  %s %s\n", doctorDimStyle.Render("temp dir:"), doctorValueStyle.Render(camera.NewMaterializer(term.TempDir()).Dir()))

		fmt.Fprintln(os.Stdout)
		if err := camera.CheckPrerequisites(term.Disclosures()); err != nil {
			fmt.Fprintln(os.Stdout, tui.RenderAlert("Camera Error", err.Error()))
			return nil
		}
		fmt.Fprintln(os.Stdout, doctorOKStyle.Render("Ready to capture."))
		return nil
	},
}

var (
	doctorHeadStyle  = lipgloss.NewStyle().Bold(true).Foreground(tui.ColorAccent)
	doctorValueStyle = lipgloss.NewStyle().Foreground(tui.ColorInk)
	doctorDimStyle   = lipgloss.NewStyle().Foreground(tui.ColorDim)
	doctorOKStyle    = lipgloss.NewStyle().Foreground(tui.ColorSuccess)
	doctorBadStyle   = lipgloss.NewStyle().Foreground(tui.ColorWarn)
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}
