package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Alia5/synthmouse/device/mouse"

	"golang.org/x/term"
)

// Buttons lists every mouse button with the event each operation injects.
type Buttons struct{}

// Run is called by Kong when the buttons command is executed.
func (b *Buttons) Run() error {
	return b.Write(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

// Write prints the button table to w. Aligned output pads columns for a
// terminal; otherwise rows are tab separated for scripts.
func (b *Buttons) Write(w io.Writer, aligned bool) error {
	out := w
	var tw *tabwriter.Writer
	if aligned {
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		out = tw
	}

	if _, err := fmt.Fprintln(out, "BUTTON\tPRESS\tRELEASE\tCLICK\tDATA"); err != nil {
		return err
	}
	for _, btn := range mouse.Buttons() {
		var flags [3]mouse.EventFlag
		for i, op := range []mouse.Op{mouse.OpPress, mouse.OpRelease, mouse.OpClick} {
			ev, err := mouse.EventFor(op, btn)
			if err != nil {
				return err
			}
			flags[i] = ev.Flags
		}
		if _, err := fmt.Fprintf(out, "%s\t0x%04x\t0x%04x\t0x%04x\t0x%04x\n",
			btn, uint32(flags[0]), uint32(flags[1]), uint32(flags[2]), uint16(mouse.AuxiliaryDataFor(btn))); err != nil {
			return err
		}
	}

	if tw != nil {
		return tw.Flush()
	}
	return nil
}
