package tui

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/chromasynth/go-seadream/internal/tuilog"
)

func termSizeOpts() []tea.ProgramOption {
	var opts []tea.ProgramOption
	for _, fd := range []int{int(os.Stdout.Fd()), int(os.Stdin.Fd()), int(os.Stderr.Fd())} {
		if term.IsTerminal(fd) {
			w, h, err := term.GetSize(fd)
			if err == nil && w > 0 && h > 0 {
				opts = append(opts, tea.WithWindowSize(w, h))
				break
			}
		}
	}
	return opts
}

// Run starts the playground TUI and blocks until the user quits.
func Run(opts Options) error {
	InitStyles(opts.UITheme)
	tuilog.Log.Info("starting playground", "theme", opts.UITheme)
	p := tea.NewProgram(NewModel(opts), termSizeOpts()...)
	_, err := p.Run()
	return err
}
