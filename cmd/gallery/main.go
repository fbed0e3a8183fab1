// Command gallery runs the bloom demo apps in a window or a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/hubastard/bloom/engine/core"
	"github.com/hubastard/bloom/engine/platform"
	"github.com/hubastard/bloom/engine/profiler"
	"github.com/hubastard/bloom/engine/terminal"
	"github.com/hubastard/bloom/engine/text"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	demo := flag.String("demo", "counter", "demo to run: "+strings.Join(demoNames(), ", "))
	configPath := flag.String("config", "gallery.toml", "TOML config file; missing means defaults")
	term := flag.String("terminal", "", "override the config host: auto, always or never")
	profilePath := flag.String("profile", "", "write a speedscope profile here on exit (needs -tags profile)")
	debug := flag.Bool("debug", false, "show the debug overlay")
	flag.Parse()

	if err := run(*demo, *configPath, core.TerminalMode(*term), *profilePath, *debug); err != nil {
		log.Fatal(err)
	}
}

func run(demo, configPath string, term core.TerminalMode, profilePath string, debug bool) error {
	build, ok := demos[demo]
	if !ok {
		return fmt.Errorf("unknown demo %q (have %s)", demo, strings.Join(demoNames(), ", "))
	}

	cfg, err := core.LoadConfigOrDefault(configPath)
	if err != nil {
		return err
	}
	if term != "" {
		cfg.Terminal = term
	}
	cfg.Debug = cfg.Debug || debug
	if cfg.Title == core.DefaultConfig().Title {
		cfg.Title = "bloom: " + demo
	}

	profiler.Init(1 << 12)
	if cfg.Debug {
		cfg.OnSetup = func(a *core.App) { a.PushLayer(&LayerDebug{}) }
	}

	var newWindow func(core.Config) (core.Window, error)
	if hostTerminal(cfg.Terminal) {
		newWindow = func(cfg core.Config) (core.Window, error) { return terminal.New(cfg) }
		// stderr shares the tty with the screen.
		log.SetOutput(io.Discard)
	} else {
		if err := loadFonts(cfg); err != nil {
			return err
		}
		newWindow = func(cfg core.Config) (core.Window, error) { return platform.NewGLFWWindow(cfg) }
	}

	if err := core.Run(cfg, build, newWindow); err != nil {
		return err
	}

	if profilePath != "" && profiler.Enabled() {
		if err := profiler.Dump(profilePath); err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		log.Println("gallery: profile written to", profilePath)
	}
	return nil
}

// loadFonts installs the first configured font as the default, falling
// back to Go Regular.
func loadFonts(cfg core.Config) error {
	var (
		f   *text.Face
		err error
	)
	if len(cfg.Fonts) > 0 {
		f, err = text.LoadTTF(cfg.Fonts[0], cfg.FontSize)
	} else {
		f, err = text.ParseTTF(goregular.TTF, cfg.FontSize)
	}
	if err != nil {
		return err
	}
	text.SetDefault(f)
	return nil
}
