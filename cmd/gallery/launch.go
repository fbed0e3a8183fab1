package main

import (
	"os"
	"runtime"

	"github.com/hubastard/bloom/engine/core"
	"github.com/mattn/go-isatty"
)

// useTerminal decides the host for mode. Auto picks the terminal when no
// display server is reachable and stdout is a terminal.
func useTerminal(mode core.TerminalMode, getenv func(string) string, goos string, tty bool) bool {
	switch mode {
	case core.TerminalAlways:
		return true
	case core.TerminalNever:
		return false
	}
	if !tty {
		return false
	}
	switch goos {
	case "darwin", "windows":
		return false
	}
	return getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == ""
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func hostTerminal(mode core.TerminalMode) bool {
	return useTerminal(mode, os.Getenv, runtime.GOOS, stdoutIsTerminal())
}
