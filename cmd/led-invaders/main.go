package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/led-invaders/config"
	"github.com/lixenwraith/led-invaders/constants"
	"github.com/lixenwraith/led-invaders/display"
	"github.com/lixenwraith/led-invaders/display/window"
	"github.com/lixenwraith/led-invaders/driver"
	"github.com/lixenwraith/led-invaders/input"
	"github.com/lixenwraith/led-invaders/invaders"
	"github.com/lixenwraith/led-invaders/status"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Parse("led-invaders", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "led-invaders: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "led-invaders: %v\n", err)
		return 2
	}

	log.Printf("frontend=%s tick=%v", cfg.Frontend, cfg.Tick)
	if cfg.Frontend == constants.FrontendWindow {
		err = runWindow(cfg, keys)
	} else {
		err = runTerminal(cfg, keys)
	}
	if err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "led-invaders: %v\n", err)
		return 1
	}
	return 0
}

// runTerminal plays in the current terminal until the quit key or a signal
func runTerminal(cfg config.Config, keys *input.KeyTable) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal, try -frontend window")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the trace
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mLED-INVADERS CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	registry := status.NewRegistry()
	sink := display.NewTerminal(screen, registry)
	var buttons input.Buttons

	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(r)
			}
		}()
		sink.Events(keys, &buttons, cancel)
	}()

	session := driver.NewSession(invaders.New(), &buttons, sink, registry)
	clock := driver.RealClock{}

	if _, err := driver.Run(ctx, session, clock, cfg.Tick); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	err = driver.Celebrate(ctx, sink, session.Score(), clock, cfg.Tick)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runWindow plays in an ebiten window; ebiten paces the ticks
func runWindow(cfg config.Config, keys *input.KeyTable) error {
	registry := status.NewRegistry()
	frontend := &window.Frontend{}
	var buttons input.Buttons

	session := driver.NewSession(invaders.New(), &buttons, frontend, registry)
	g := window.NewGame(session, frontend, keys, &buttons, cfg.Tick, cfg.Scale)
	if err := window.Run(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
