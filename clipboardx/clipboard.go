package clipboardx

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"

	"editbox/log"
)

// System talks to the host clipboard. When neither atotto/clipboard nor the
// platform tools work, the last written text is kept in-process so copy and
// paste still work inside the editor.
type System struct {
	internal string

	// OSC52 receives the terminal escape sequence, normally os.Stdout.
	// Nil disables OSC52.
	OSC52 io.Writer
}

func NewSystem() *System {
	return &System{OSC52: os.Stdout}
}

// Write stores text on every clipboard it can reach. It reports whether any
// of them accepted it.
func (s *System) Write(text string) bool {
	s.internal = text
	ok := false

	if err := clipboard.WriteAll(text); err == nil {
		ok = true
	} else {
		log.Debug(log.CatClipboard, "system clipboard write failed", "error", err)
	}
	if writeWithCommands(text) {
		ok = true
	}
	if s.writeOSC52(text) {
		ok = true
	}

	return ok
}

// Read returns the clipboard text, or "" when nothing is available.
func (s *System) Read() string {
	if text, err := clipboard.ReadAll(); err == nil && text != "" {
		return text
	}
	if text, ok := readWithCommands(); ok && text != "" {
		return text
	}
	return s.internal
}

// Memory is an in-process clipboard.
type Memory struct {
	Text string
}

func (m *Memory) Write(text string) bool {
	m.Text = text
	return true
}

func (m *Memory) Read() string {
	return m.Text
}

func writeWithCommands(text string) bool {
	commands := []struct {
		name string
		args []string
	}{
		{name: "wl-copy", args: []string{}},
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
		{name: "pbcopy", args: []string{}},
		{name: "clip.exe", args: []string{}},
	}

	for _, cmdCfg := range commands {
		if _, err := exec.LookPath(cmdCfg.name); err != nil {
			continue
		}
		cmd := exec.Command(cmdCfg.name, cmdCfg.args...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return true
		}
		log.Debug(log.CatClipboard, "clipboard tool failed", "tool", cmdCfg.name)
	}
	return false
}

func readWithCommands() (string, bool) {
	commands := []struct {
		name string
		args []string
	}{
		{name: "wl-paste", args: []string{"--no-newline"}},
		{name: "xclip", args: []string{"-o", "-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--output"}},
		{name: "pbpaste", args: []string{}},
		{name: "powershell.exe", args: []string{"-NoProfile", "-Command", "Get-Clipboard"}},
	}

	for _, cmdCfg := range commands {
		if _, err := exec.LookPath(cmdCfg.name); err != nil {
			continue
		}
		out, err := exec.Command(cmdCfg.name, cmdCfg.args...).Output()
		if err == nil && len(out) > 0 {
			return strings.ReplaceAll(string(out), "\r\n", "\n"), true
		}
	}
	return "", false
}

func (s *System) writeOSC52(text string) bool {
	if text == "" || s.OSC52 == nil {
		return false
	}
	if f, ok := s.OSC52.(*os.File); ok {
		if fi, err := f.Stat(); err != nil || (fi.Mode()&os.ModeCharDevice) == 0 {
			return false
		}
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(s.OSC52, "\x1b]52;c;%s\x07", encoded)
	return err == nil
}
