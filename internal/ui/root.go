package ui

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"

	"github.com/umget/umget/internal/config"
	"github.com/umget/umget/internal/model"
	"github.com/umget/umget/internal/selection"
	"github.com/umget/umget/internal/session"
)

// RootUI is the main window. It implements session.FrontEnd: widget
// callbacks feed the channels the session goroutine blocks on, and session
// events are rendered via fyne.Do so ordering is preserved.
type RootUI struct {
	window   fyne.Window
	settings *config.Settings

	urlEntry    *widget.Entry
	fetchBtn    *widget.Button
	promptLabel *widget.Label
	options     *widget.RadioGroup
	confirmBtn  *widget.Button
	backBtn     *widget.Button
	choicePanel *fyne.Container
	progressBar *widget.ProgressBar
	statusLabel *widget.Label
	destLabel   *widget.Label

	urls  chan string
	picks chan int // chosen option index, -1 for back

	closed    chan struct{}
	closeOnce sync.Once
}

// NewRootUI creates and initializes the main UI. destination is the base
// directory downloads land in, shown at the bottom of the window.
func NewRootUI(window fyne.Window, app fyne.App, destination string) *RootUI {
	ui := &RootUI{
		window:   window,
		settings: config.NewSettings(app),
		urls:     make(chan string, 1),
		picks:    make(chan int, 1),
		closed:   make(chan struct{}),
	}

	window.SetTitle(AppTitle)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetOnClosed(ui.markClosed)

	ui.setupUI(destination)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(destination string) {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(URLPlaceholder)
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onFetchClick()
	}
	ui.fetchBtn = widget.NewButton(FetchButtonLabel, ui.onFetchClick)

	topPanel := container.NewBorder(nil, nil, nil, ui.fetchBtn, ui.urlEntry)

	// Choice panel, shown only while the session waits for a selection
	ui.promptLabel = widget.NewLabel("")
	ui.promptLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.options = widget.NewRadioGroup(nil, func(selected string) {
		if selected != "" {
			ui.confirmBtn.Enable()
		}
	})
	ui.confirmBtn = widget.NewButton(DownloadButtonLabel, ui.onConfirmClick)
	ui.confirmBtn.Importance = widget.HighImportance
	ui.backBtn = widget.NewButton(BackButtonLabel, ui.onBackClick)
	ui.choicePanel = container.NewVBox(
		ui.promptLabel,
		ui.options,
		container.NewHBox(ui.backBtn, ui.confirmBtn),
	)
	ui.choicePanel.Hide()

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	ui.destLabel = widget.NewLabel(IconFolder + " " + destination)
	ui.destLabel.Truncation = fyne.TextTruncateEllipsis

	content := container.NewBorder(
		topPanel,
		container.NewVBox(ui.progressBar, ui.statusLabel, ui.destLabel),
		nil,
		nil,
		container.NewVScroll(ui.choicePanel),
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)
	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
	))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings)
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsed, err := url.Parse(input)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}

// onFetchClick hands the entered URL to the session
func (ui *RootUI) onFetchClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		ui.statusLabel.SetText("Please enter a URL.")
		return
	}
	if err := ui.validateURL(urlText); err != nil {
		ui.statusLabel.SetText("Invalid URL: " + err.Error())
		return
	}

	select {
	case ui.urls <- urlText:
		ui.setBusy(true)
	default:
		// the session is still working on the previous URL
	}
}

// onConfirmClick resolves the pending choice with the selected index
func (ui *RootUI) onConfirmClick() {
	idx := lo.IndexOf(ui.options.Options, ui.options.Selected)
	if idx < 0 {
		return
	}
	ui.confirmBtn.Disable()
	select {
	case ui.picks <- idx:
	default:
	}
}

// onBackClick resolves the pending choice as "go back"
func (ui *RootUI) onBackClick() {
	select {
	case ui.picks <- -1:
	default:
	}
}

// setBusy toggles the URL row while a URL is being processed. Runs on the
// Fyne thread.
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.urlEntry.Disable()
		ui.fetchBtn.Disable()
		return
	}
	ui.urlEntry.Enable()
	ui.fetchBtn.Enable()
}

// markClosed unblocks the session when the window goes away.
func (ui *RootUI) markClosed() {
	ui.closeOnce.Do(func() { close(ui.closed) })
}

// NextURL blocks until the user submits a URL or closes the window.
func (ui *RootUI) NextURL() (string, bool) {
	fyne.Do(func() {
		ui.setBusy(false)
		ui.urlEntry.SetText("")
	})

	select {
	case u := <-ui.urls:
		return u, true
	case <-ui.closed:
		return "", false
	}
}

// ChoosePlaylistAction presents the playlist menu.
func (ui *RootUI) ChoosePlaylistAction(entryCount int) session.PlaylistAction {
	prompt := "This URL is a playlist. What would you like to do?"
	if entryCount > 0 {
		prompt = fmt.Sprintf("This URL is a playlist with %d entries. What would you like to do?", entryCount)
	}

	idx := ui.presentChoices(prompt, []string{
		"Download the whole playlist",
		"Download just this video",
	}, "Continue")

	switch idx {
	case 0:
		return session.PlaylistDownloadAll
	case 1:
		return session.PlaylistDownloadSingle
	default:
		return session.PlaylistGoBack
	}
}

// ChooseOffer presents the per-video offer menu.
func (ui *RootUI) ChooseOffer(offers []model.Offer) (int, bool) {
	lines := make([]string, 0, len(offers))
	for _, o := range offers {
		lines = append(lines, fmt.Sprintf("%s (%s)", o.Label, o.DisplaySize()))
	}

	idx := ui.presentChoices("Choose a download option:", lines, DownloadButtonLabel)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// ChooseTier presents the whole-playlist quality menu.
func (ui *RootUI) ChooseTier(tiers []selection.PlaylistTier) (int, bool) {
	lines := make([]string, 0, len(tiers))
	for _, t := range tiers {
		lines = append(lines, t.Label)
	}

	idx := ui.presentChoices("Choose a quality for the whole playlist:", lines, DownloadButtonLabel)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// Notify renders session events on the Fyne thread.
func (ui *RootUI) Notify(e session.Event) {
	fyne.Do(func() {
		switch e.Kind {
		case session.EventProgress:
			ui.progressBar.Show()
			ui.progressBar.SetValue(e.Progress.Fraction())
			ui.statusLabel.SetText(progressStatus(e.Progress))
		case session.EventCompleted:
			ui.progressBar.SetValue(1)
			ui.statusLabel.SetText(e.Message)
			fyne.CurrentApp().SendNotification(&fyne.Notification{
				Title:   AppTitle,
				Content: e.Message,
			})
		case session.EventFailed:
			ui.progressBar.Hide()
			ui.statusLabel.SetText(e.Message)
		default:
			ui.statusLabel.SetText(e.Message)
		}
	})
}

// presentChoices shows the choice panel and blocks until the user confirms,
// goes back, or closes the window. Returns -1 for back or close.
func (ui *RootUI) presentChoices(prompt string, options []string, confirmLabel string) int {
	fyne.Do(func() {
		ui.promptLabel.SetText(prompt)
		ui.options.Options = options
		ui.options.SetSelected("")
		ui.options.Refresh()
		ui.confirmBtn.SetText(confirmLabel)
		ui.confirmBtn.Disable()
		ui.choicePanel.Show()
	})

	var idx int
	select {
	case idx = <-ui.picks:
	case <-ui.closed:
		idx = -1
	}

	fyne.Do(func() { ui.choicePanel.Hide() })
	return idx
}

// progressStatus renders one progress event as a status line.
func progressStatus(p model.Progress) string {
	var line string
	if p.TotalBytes > 0 {
		line = fmt.Sprintf("Downloading: %s of %s",
			model.FormatSize(p.DownloadedBytes), model.FormatSize(p.TotalBytes))
	} else {
		line = fmt.Sprintf("Downloading: %s", model.FormatSize(p.DownloadedBytes))
	}
	if p.PlaylistCount > 0 {
		line = fmt.Sprintf("Item %d of %d. %s", p.PlaylistIndex, p.PlaylistCount, line)
	}
	return line
}

var _ session.FrontEnd = (*RootUI)(nil)
