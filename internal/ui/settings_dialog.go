package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/umget/umget/internal/config"
)

// SettingsDialog represents the settings configuration dialog. Destination
// changes take effect on the next launch, since the media folders are
// created at startup.
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	downloadDirEntry *widget.Entry
	sortBySizeCheck  *widget.Check
	maxOffersEntry   *widget.Entry
	verboseCheck     *widget.Check
}

// ShowSettingsDialog builds and shows the settings dialog.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings) {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}
	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Default: Desktop")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.sortBySizeCheck = widget.NewCheck("Sort download options by size", nil)
	sd.maxOffersEntry = widget.NewEntry()
	sd.maxOffersEntry.SetPlaceHolder("1-20")
	sd.verboseCheck = widget.NewCheck("Verbose logging", nil)

	form := container.NewVBox(
		widget.NewLabel("Destination Directory (applies on restart):"),
		downloadDirRow,

		widget.NewSeparator(),

		sd.sortBySizeCheck,

		widget.NewLabel("Maximum Download Options:"),
		sd.maxOffersEntry,

		widget.NewSeparator(),

		sd.verboseCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(460, 320))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.sortBySizeCheck.SetChecked(sd.settings.GetSortBySize())
	sd.maxOffersEntry.SetText(strconv.Itoa(sd.settings.GetMaxOffers()))
	sd.verboseCheck.SetChecked(sd.settings.GetVerbose())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetDownloadDirectory(sd.downloadDirEntry.Text)
	sd.settings.SetSortBySize(sd.sortBySizeCheck.Checked)
	sd.settings.SetVerbose(sd.verboseCheck.Checked)

	if text := sd.maxOffersEntry.Text; text != "" {
		if count, err := strconv.Atoi(text); err == nil {
			sd.settings.SetMaxOffers(count)
		}
	}

	dialog.ShowInformation("Settings", "Settings saved.", sd.window)
}
