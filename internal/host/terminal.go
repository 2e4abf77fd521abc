// Package host implements the platform side of the camera plugin for a
// terminal: disclosures come from a YAML manifest, the source sheet and the
// library picker are bubbletea menus, and live capture is a synthetic camera.
package host

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"shutter/internal/camera"
	"shutter/internal/config"
	"shutter/internal/log"
	"shutter/internal/tui"
	"shutter/pkg/imgutil"
)

type Options struct {
	Manifest      Manifest
	LibraryDir    string
	Authorization camera.AuthorizationStatus
	Camera        string
	FrameWidth    int
	FrameHeight   int
	TempDir       string

	// PresetSource skips the source sheet when HasPresetSource is set.
	PresetSource    camera.Source
	HasPresetSource bool
	// PresetPick names the library file to return instead of showing the
	// picker. Relative paths resolve against LibraryDir.
	PresetPick string

	Alerts         io.Writer
	Logger         log.Logger
	ProgramOptions []tea.ProgramOption
}

// FromConfig builds Options from the loaded config and manifest.
func FromConfig(cfg config.Config, manifest Manifest) Options {
	return Options{
		Manifest:      manifest,
		LibraryDir:    cfg.Host.LibraryDir,
		Authorization: ParseAuthorization(cfg.Host.LibraryAuthorization),
		Camera:        cfg.Host.Camera,
		FrameWidth:    cfg.Host.CameraWidth,
		FrameHeight:   cfg.Host.CameraHeight,
		TempDir:       cfg.Host.TempDir,
	}
}

type Terminal struct {
	opts Options

	// ui serialises bubbletea programs; only one may own the terminal.
	ui sync.Mutex
}

var errPickerCancelled = errors.New("picker cancelled")

func NewTerminal(opts Options) *Terminal {
	if opts.Alerts == nil {
		opts.Alerts = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = log.Default
	}
	if opts.ProgramOptions == nil {
		opts.ProgramOptions = []tea.ProgramOption{tea.WithOutput(os.Stderr)}
	}
	return &Terminal{opts: opts}
}

func (t *Terminal) Disclosures() camera.Disclosures {
	if t.opts.Manifest == nil {
		return Manifest{}
	}
	return t.opts.Manifest
}

func (t *Terminal) LibraryAuthorization() camera.AuthorizationStatus {
	return t.opts.Authorization
}

func (t *Terminal) LiveCaptureAvailable() bool {
	return strings.EqualFold(t.opts.Camera, config.CameraSynthetic)
}

func (t *Terminal) TempDir() string {
	return t.opts.TempDir
}

func (t *Terminal) PresentSourceSheet(choices []camera.Choice, choose func(camera.Source)) {
	go func() {
		choose(t.selectSource(choices))
	}()
}

func (t *Terminal) selectSource(choices []camera.Choice) camera.Source {
	if t.opts.HasPresetSource {
		return t.opts.PresetSource
	}

	titles := make([]string, len(choices))
	cancel := -1
	for i, c := range choices {
		titles[i] = c.Title
		if c.Source == camera.SourceCancel {
			cancel = i
		}
	}
	idx, err := t.runMenu(tui.NewMenu("Photo", titles, cancel))
	if err != nil {
		t.opts.Logger.Warnf("host: source sheet: %v", err)
		return camera.SourceCancel
	}
	if idx < 0 || idx >= len(choices) {
		return camera.SourceCancel
	}
	return choices[idx].Source
}

func (t *Terminal) PresentPicker(src camera.Source, allowEditing bool, cont camera.Continuation) {
	go func() {
		raw, err := t.capture(src)
		switch {
		case errors.Is(err, errPickerCancelled):
			cont.Cancelled()
			return
		case err != nil:
			cont.Failed(err)
			return
		}
		if allowEditing {
			raw.Edited = CenterSquare(raw.Original)
		}
		cont.Picked(raw)
	}()
}

func (t *Terminal) capture(src camera.Source) (camera.RawImage, error) {
	switch src {
	case camera.SourceLibrary:
		path, err := t.pickLibraryFile()
		if err != nil {
			return camera.RawImage{}, err
		}
		return LoadImage(path)
	case camera.SourceCamera:
		return camera.RawImage{
			Original:    SyntheticFrame(t.opts.FrameWidth, t.opts.FrameHeight),
			Orientation: camera.OrientationUp,
		}, nil
	default:
		return camera.RawImage{}, errPickerCancelled
	}
}

func (t *Terminal) pickLibraryFile() (string, error) {
	if t.opts.PresetPick != "" {
		if filepath.IsAbs(t.opts.PresetPick) {
			return t.opts.PresetPick, nil
		}
		return filepath.Join(t.opts.LibraryDir, t.opts.PresetPick), nil
	}

	files, err := ListLibrary(t.opts.LibraryDir)
	if err != nil {
		return "", err
	}
	labels := make([]string, len(files))
	for i, f := range files {
		labels[i] = f.Label()
	}
	idx, err := t.runMenu(tui.NewMenu("Photos", labels, -1))
	if err != nil {
		return "", err
	}
	if idx < 0 {
		return "", errPickerCancelled
	}
	return filepath.Join(t.opts.LibraryDir, files[idx].Name), nil
}

func (t *Terminal) runMenu(menu tui.Menu) (int, error) {
	t.ui.Lock()
	defer t.ui.Unlock()
	return tui.RunMenu(menu, t.opts.ProgramOptions...)
}

func (t *Terminal) Dismiss() {
	t.opts.Logger.Debugf("host: picker dismissed")
}

func (t *Terminal) Alert(title, message string) {
	fmt.Fprintln(t.opts.Alerts, tui.RenderAlert(title, message))
}

// LibraryEntry is a library file whose content was sniffed as an image.
type LibraryEntry struct {
	Name string
	Kind imgutil.Kind
}

// Label is the picker row for the entry.
func (e LibraryEntry) Label() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.Kind.MediaType())
}

// ListLibrary returns the image files directly inside dir, sorted by name.
// Files whose content does not match a supported format are skipped even when
// the extension claims otherwise.
func ListLibrary(dir string) ([]LibraryEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []LibraryEntry
	for _, e := range entries {
		if !e.Type().IsRegular() || !imgutil.HasImageExtension(e.Name()) {
			continue
		}
		kind, err := imgutil.SniffFile(filepath.Join(dir, e.Name()))
		if err != nil || kind == imgutil.KindUnknown {
			continue
		}
		files = append(files, LibraryEntry{Name: e.Name(), Kind: kind})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// LoadImage decodes a library file and reads its EXIF orientation.
func LoadImage(path string) (camera.RawImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return camera.RawImage{}, err
	}
	img, kind, err := imgutil.Decode(data)
	if err != nil {
		return camera.RawImage{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	orientation := camera.OrientationUp
	if kind == imgutil.KindJPEG {
		if o, err := camera.ReadOrientation(data); err == nil {
			orientation = o
		}
	}
	return camera.RawImage{Original: img, Orientation: orientation}, nil
}
