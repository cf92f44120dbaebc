// Demo binary: a colorable inventory table. Attaches a tinter to a
// list-view widget and maps hotkeys to every public coloring operation;
// rejected color input answers with a short error tone.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/lvtint/dispatch"
	"github.com/lixenwraith/lvtint/widget"
)

const (
	logDir      = "logs"
	logFileName = "lvtint-demo.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	debugFlag    = flag.Bool("debug", false, "write a debug log to logs/lvtint-demo.log")
	staticFlag   = flag.Bool("static", true, "bind colors to row content instead of display position")
	elevatedFlag = flag.Bool("elevated", false, "deliver each paint pass without input interleaving")
)

// setupLogging routes the stdlib logger to a file when debug is on and
// discards it otherwise. An oversized log rotates aside with a timestamp.
// Returns the open file, nil when logging is off
func setupLogging(debugOn bool) *os.File {
	if !debugOn {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("lvtint-demo-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

// promptTarget says what the text being typed will color
type promptTarget uint8

const (
	promptNone promptTarget = iota
	promptRow
	promptCell
	promptSelection
)

type app struct {
	screen tcell.Screen
	view   *widget.ListView
	mgr    *dispatch.Manager
	tinter *dispatch.Tinter

	altRows bool
	altCols bool

	prompt promptTarget
	input  string
	status string

	audioInit bool
}

func (a *app) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audioInit = true
	}
	return err
}

// playErrorTone gives audible feedback for rejected color input
func (a *app) playErrorTone() {
	if !a.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(80 * time.Millisecond)
	sine, err := generators.SineTone(sampleRate, 220)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(duration, sine))
}

func buildView() *widget.ListView {
	lv := widget.New(
		widget.Column{Title: "Item", Width: 16},
		widget.Column{Title: "Qty", Width: 6, Align: widget.AlignRight},
		widget.Column{Title: "Price", Width: 8, Align: widget.AlignRight},
	)
	rows := [][3]string{
		{"apples", "120", "1.20"},
		{"bananas", "80", "0.60"},
		{"cherries", "35", "4.10"},
		{"dates", "52", "3.75"},
		{"elderberries", "12", "6.40"},
		{"figs", "44", "2.95"},
		{"grapes", "96", "2.10"},
		{"honeydew", "18", "3.30"},
		{"kiwis", "63", "0.85"},
		{"lemons", "71", "0.55"},
		{"mangoes", "29", "1.95"},
		{"nectarines", "57", "1.40"},
	}
	for _, r := range rows {
		lv.InsertRow(r[0], r[1], r[2])
	}
	lv.Select(1)
	return lv
}

func main() {
	// Ensure the terminal is reset even if a paint callback panics
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLVTINT-DEMO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	a := &app{
		screen: screen,
		view:   buildView(),
		mgr:    dispatch.NewManager(),
	}

	if err := a.initAudio(); err != nil {
		// Non-fatal, the demo runs silently
		log.Printf("Audio initialization failed: %v", err)
	}

	a.tinter, err = a.mgr.Attach(a.view, dispatch.Options{
		Static:     *staticFlag,
		LockSort:   false,
		LockResize: false,
		Elevated:   *elevatedFlag,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Attach failed: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Attached to control %d (static=%v)", a.view.Handle(), *staticFlag)

	a.status = "r/c/s: color row/cell/selection  a/A: alternate  1-3: sort  q: quit"
	a.run()
	a.tinter.Detach()
}

func (a *app) run() {
	for {
		a.render()
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
			a.view.Redraw()
		case *tcell.EventKey:
			if a.prompt != promptNone {
				a.handlePromptKey(ev)
				continue
			}
			if !a.handleKey(ev) {
				return
			}
		}
	}
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.view.MoveSelection(-1)
		return true
	case tcell.KeyDown:
		a.view.MoveSelection(1)
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'k':
		a.view.MoveSelection(-1)
	case 'j':
		a.view.MoveSelection(1)
	case '1', '2', '3':
		col := int(ev.Rune() - '0')
		if !a.view.HeaderClick(col) {
			a.setStatus("sort is locked")
		}
	case 'r':
		a.openPrompt(promptRow, "row color (name/hex, empty clears): ")
	case 'c':
		a.openPrompt(promptCell, "qty-cell color (name/hex, empty clears): ")
	case 's':
		a.openPrompt(promptSelection, "selection color (name/hex, empty disables): ")
	case 'a':
		a.altRows = !a.altRows
		if a.altRows {
			a.tinter.AlternateRows(0x3C3228, nil)
			a.setStatus("row alternation on")
		} else {
			a.tinter.AlternateRows(nil, nil)
			a.setStatus("row alternation off")
		}
		a.view.Redraw()
	case 'A':
		a.altCols = !a.altCols
		if a.altCols {
			a.tinter.AlternateCols(0x28323C, nil)
			a.setStatus("column alternation on")
		} else {
			a.tinter.AlternateCols(nil, nil)
			a.setStatus("column alternation off")
		}
		a.view.Redraw()
	case 'o':
		a.tinter.LockSort(true)
		a.setStatus("sort locked (O unlocks)")
	case 'O':
		a.tinter.LockSort(false)
		a.setStatus("sort unlocked")
	case 'z':
		a.tinter.LockResize(true)
		a.setStatus("resize locked (Z unlocks)")
	case 'Z':
		a.tinter.LockResize(false)
		a.setStatus("resize unlocked")
	case '<':
		a.view.ResizeColumn(1, -1)
	case '>':
		a.view.ResizeColumn(1, 1)
	case 'i':
		on := a.tinter.State() != dispatch.StateActive
		a.tinter.SetIntercepting(on)
		if on {
			a.setStatus("intercepting resumed")
		} else {
			a.setStatus("intercepting suspended")
		}
	case 'x':
		a.tinter.Clear(true, true)
		a.altRows, a.altCols = false, false
		a.setStatus("all colors cleared")
		a.view.Redraw()
	}
	return true
}

func (a *app) handlePromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.closePrompt()
		return
	case tcell.KeyEnter:
		a.applyPrompt()
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
		a.view.Redraw()
		return
	}
	if r := ev.Rune(); r != 0 {
		a.input += string(r)
		a.view.Redraw()
	}
}

func (a *app) openPrompt(target promptTarget, label string) {
	a.prompt = target
	a.input = ""
	a.status = label
	a.view.Redraw()
}

func (a *app) closePrompt() {
	a.prompt = promptNone
	a.input = ""
	a.setStatus("")
}

// applyPrompt feeds the typed color into the targeted setter. An empty
// input is a deliberate clear; a rejected one beeps and keeps the prompt
// open for another try
func (a *app) applyPrompt() {
	var in any
	if a.input != "" {
		in = a.input
	}

	pos := a.view.Selected()
	var ok bool
	switch a.prompt {
	case promptRow:
		ok = a.tinter.Row(pos, in, nil)
	case promptCell:
		ok = a.tinter.Cell(pos, 2, in, nil)
	case promptSelection:
		ok = a.tinter.SelectionColors(in, nil)
	default:
		ok = true
	}

	if !ok {
		log.Printf("Rejected color input %q", a.input)
		a.playErrorTone()
		a.status = fmt.Sprintf("%q is not a color, try again (esc cancels)", a.input)
		a.input = ""
		a.view.Redraw()
		return
	}
	a.closePrompt()
	a.view.Redraw()
}

func (a *app) setStatus(s string) {
	a.status = s
	a.view.Redraw()
}

func (a *app) render() {
	if !a.view.NeedsRedraw() {
		return
	}
	w, h := a.screen.Size()
	a.screen.Clear()
	a.view.Render(a.screen, 0, 0, w, h-1)

	// Status or prompt line
	line := a.status
	if a.prompt != promptNone {
		line = a.status + a.input
	}
	style := tcell.StyleDefault
	x := 0
	for _, ch := range line {
		if x >= w {
			break
		}
		a.screen.SetContent(x, h-1, ch, nil, style)
		x++
	}

	a.screen.Show()
}
