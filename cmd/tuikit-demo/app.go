package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/lixenwraith/tuikit/audio"
	"github.com/lixenwraith/tuikit/config"
	"github.com/lixenwraith/tuikit/engine"
	"github.com/lixenwraith/tuikit/logger"
	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/terminal/teahost"
	"github.com/lixenwraith/tuikit/widget"
)

// sceneFunc builds widgets into w and returns a key handler reporting whether it consumed the key
type sceneFunc func(w *engine.World, bell widget.Bell) (func(key string) bool, error)

func runScene(ctx context.Context, flags *rootFlags, build sceneFunc) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	log, closeLog, err := openLogger(flags)
	if err != nil {
		return err
	}
	defer closeLog()

	theme := config.DefaultTheme()
	if flags.theme != "" {
		if theme, err = config.LoadTheme(flags.theme); err != nil {
			return err
		}
	}
	w := engine.NewWorld(engine.Options{Logger: log, Theme: &theme})

	var bell widget.Bell
	if flags.bell {
		spk := audio.NewSpeaker(log)
		defer spk.Close()
		b, err := audio.NewBell(spk, audio.DefaultBellOptions(), log)
		if err != nil {
			return err
		}
		bell = b
	}

	handle, err := build(w, bell)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	guard, err := newQuitGuard(w, bell)
	if err != nil {
		return err
	}
	handler := guard.wrap(handle)

	if flags.host == hostTea {
		_, err := tea.NewProgram(teahost.New(w, handler, nil), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	scr, err := terminal.Open(log)
	if err != nil {
		return err
	}
	defer scr.Close()
	svc := terminal.NewService(scr)
	if err := svc.Start(); err != nil {
		return err
	}
	defer svc.Stop()

	err = svc.Run(ctx, w, func(in terminal.Input) bool { return handler(in.Key) })
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func openLogger(flags *rootFlags) (*logger.Logger, func(), error) {
	if flags.logFile == "" {
		return logger.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log, err := logger.New(logger.Options{Level: flags.logLevel, Writer: f})
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return log, func() { f.Close() }, nil
}

// quitGuard asks before leaving on "q"; ctrl+c leaves at once
type quitGuard struct {
	question *widget.Question
	done     bool
}

func newQuitGuard(w *engine.World, bell widget.Bell) (*quitGuard, error) {
	q, err := widget.NewQuestion(w, widget.QuestionOptions{
		Bounds: widget.Bounds{X: 4, Y: 3, Width: 28, Height: 3},
		Prompt: "Leave the demo?",
		Bell:   bell,
	})
	if err != nil {
		return nil, err
	}
	g := &quitGuard{question: q}
	q.OnConfirm.Add(func(struct{}) { g.done = true })
	return g, nil
}

// wrap returns a handler that reports false once the program should end
func (g *quitGuard) wrap(inner func(string) bool) func(string) bool {
	return func(key string) bool {
		if key == "ctrl+c" {
			return false
		}
		if g.question.IsShown() {
			g.question.HandleKey(key)
			return !g.done
		}
		if inner(key) {
			return true
		}
		if key == "q" {
			g.question.Show()
		}
		return true
	}
}
