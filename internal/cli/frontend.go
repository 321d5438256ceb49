package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"

	"github.com/umget/umget/internal/model"
	"github.com/umget/umget/internal/selection"
	"github.com/umget/umget/internal/session"
)

const goBackOption = "Go back"

// Commands that end the URL loop.
var exitWords = []string{"exit", "quit"}

// TextFrontEnd is the stdin/stdout session front end. All methods run on the
// session goroutine, so no locking is needed.
type TextFrontEnd struct {
	in  *bufio.Scanner
	out io.Writer

	// a progress line is pending and must be terminated before other output
	inProgress bool
}

// NewTextFrontEnd builds a front end over the given streams.
func NewTextFrontEnd(in io.Reader, out io.Writer) *TextFrontEnd {
	return &TextFrontEnd{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// NextURL prompts for the next URL. Exit words and closed stdin end the loop.
func (f *TextFrontEnd) NextURL() (string, bool) {
	f.endProgress()
	fmt.Fprint(f.out, "\nEnter a video or playlist URL (or 'exit'): ")

	if !f.in.Scan() {
		fmt.Fprintln(f.out)
		return "", false
	}

	url := strings.TrimSpace(f.in.Text())
	if lo.Contains(exitWords, strings.ToLower(url)) {
		return "", false
	}
	return url, true
}

// ChoosePlaylistAction presents the playlist menu.
func (f *TextFrontEnd) ChoosePlaylistAction(entryCount int) session.PlaylistAction {
	f.endProgress()

	options := []string{
		"Download the whole playlist",
		"Download just this video",
		goBackOption,
	}
	idx, err := f.selectIndex(playlistPrompt(entryCount), options)
	if err != nil || idx == len(options)-1 {
		return session.PlaylistGoBack
	}
	if idx == 1 {
		return session.PlaylistDownloadSingle
	}
	return session.PlaylistDownloadAll
}

// ChooseOffer presents the per-video offer menu with a trailing back entry.
func (f *TextFrontEnd) ChooseOffer(offers []model.Offer) (int, bool) {
	f.endProgress()

	options := make([]string, 0, len(offers)+1)
	for _, o := range offers {
		options = append(options, offerLine(o))
	}
	options = append(options, goBackOption)

	idx, err := f.selectIndex("Choose a download option:", options)
	if err != nil || idx == len(offers) {
		return 0, false
	}
	return idx, true
}

// ChooseTier presents the whole-playlist quality menu.
func (f *TextFrontEnd) ChooseTier(tiers []selection.PlaylistTier) (int, bool) {
	f.endProgress()

	options := make([]string, 0, len(tiers)+1)
	for _, t := range tiers {
		options = append(options, t.Label)
	}
	options = append(options, goBackOption)

	idx, err := f.selectIndex("Choose a quality for the whole playlist:", options)
	if err != nil || idx == len(tiers) {
		return 0, false
	}
	return idx, true
}

// Notify renders session events. Progress rewrites a single line in place;
// everything else gets its own line.
func (f *TextFrontEnd) Notify(e session.Event) {
	switch e.Kind {
	case session.EventProgress:
		fmt.Fprintf(f.out, "\r  %s", progressLine(e.Progress))
		f.inProgress = true
	case session.EventCompleted:
		f.endProgress()
		fmt.Fprintf(f.out, "%s\n", e.Message)
	case session.EventFailed:
		f.endProgress()
		fmt.Fprintf(f.out, "%s\n", e.Message)
	default:
		f.endProgress()
		fmt.Fprintf(f.out, "%s\n", e.Message)
	}
}

// selectIndex runs one survey selection and returns the chosen index.
func (f *TextFrontEnd) selectIndex(message string, options []string) (int, error) {
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: len(options),
	}
	var idx int
	if err := survey.AskOne(prompt, &idx); err != nil {
		return 0, err
	}
	return idx, nil
}

// endProgress terminates a pending in-place progress line.
func (f *TextFrontEnd) endProgress() {
	if f.inProgress {
		fmt.Fprintln(f.out)
		f.inProgress = false
	}
}

var _ session.FrontEnd = (*TextFrontEnd)(nil)
