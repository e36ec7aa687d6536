package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer draws a grid view as block characters
type TerminalRenderer struct {
	// Out defaults to os.Stdout
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the view, one terminal line per row
func (r *TerminalRenderer) Display(v View) error {
	w := bufio.NewWriter(r.out())
	for row := range v.Height() {
		for col := range v.Width() {
			if v.Alive(col, row) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
