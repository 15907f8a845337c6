// Package cli drives a single autocomplete field from stdin for testing queries by hand
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tk-it/personcomplete/internal/logger"
	"github.com/tk-it/personcomplete/internal/utils"
	"github.com/tk-it/personcomplete/pkg/complete"
	"github.com/tk-it/personcomplete/pkg/person"
)

// blurCommand simulates the field losing focus.
const blurCommand = ":blur"

// InputHandler feeds each line read to a field controller as if it had been
// typed, and prints the resulting selection.
type InputHandler struct {
	field        *complete.Controller
	reader       *bufio.Reader
	out          *log.Logger
	maxQuery     int
	showTitles   bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler
func NewInputHandler(field *complete.Controller, r io.Reader, w io.Writer, maxQuery int, showTitles bool) *InputHandler {
	return &InputHandler{
		field:      field,
		reader:     bufio.NewReader(r),
		out:        logger.NewWithConfig(w, "", log.InfoLevel, false, false, log.TextFormatter),
		maxQuery:   maxQuery,
		showTitles: showTitles,
	}
}

// Start begins the interface loop. It returns nil when the input ends.
func (h *InputHandler) Start() error {
	h.out.Print("personcomplete CLI")
	h.out.Print("type a name, id or title and press Enter (:blur to leave the field, Ctrl+C to exit):")
	if p, ok := h.field.Selected(); ok {
		h.printPerson("Initial selection", p)
	}

	for {
		line, err := h.reader.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				return nil
			}
			return err
		}
		h.handleInput(strings.TrimRight(line, "\r\n"))
		if err == io.EOF {
			return nil
		}
	}
}

// handleInput runs one keystroke update and prints what it did
func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	if strings.TrimSpace(line) == blurCommand {
		h.field.Blur()
		h.out.Printf("input: %q value: %q", h.field.Input(), h.field.Value())
		return
	}

	if h.maxQuery > 0 && len(line) > h.maxQuery {
		h.out.Errorf("Query too long: %s", line)
		return
	}
	if strings.TrimSpace(line) != "" && !utils.IsValidQuery(line, h.maxQuery) {
		h.out.Warnf("Ignoring query with control characters: %q", line)
		return
	}
	if utils.IsOnlyNumbers(strings.TrimSpace(line)) {
		log.Debug("Query looks like an id", "query", line)
	}

	start := time.Now()
	ev := h.field.Update(line)
	log.Debugf("Took [ %v ] for query '%s'", time.Since(start), line)

	switch ev.Kind {
	case complete.Cleared:
		h.out.Print("cleared")
	case complete.Selected:
		h.printPerson("selected", ev.Person)
	default:
		if p, ok := h.field.Selected(); ok {
			h.out.Warnf("No match for '%s', keeping %d %s", line, p.ID, p.Str)
		} else {
			h.out.Warnf("No match for '%s'", line)
		}
	}
}

func (h *InputHandler) printPerson(label string, p person.Person) {
	h.out.Printf("%s: %d %s", label, p.ID, p.Str)
	if !h.showTitles {
		return
	}
	for _, t := range p.Titles {
		h.out.Printf("    %s %d", t.Title, t.Period)
	}
}

// Requests is the number of lines handled.
func (h *InputHandler) Requests() int {
	return h.requestCount
}

// String describes the handler state, for debug logs.
func (h *InputHandler) String() string {
	return fmt.Sprintf("cli(value=%q input=%q requests=%d)", h.field.Value(), h.field.Input(), h.requestCount)
}
