// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const otpLength = 6

// readClipboard is swapped in tests.
var readClipboard = clipboard.ReadAll

// otpInput is a row of six single-digit slots.
//
// Typing a digit fills the focused slot and moves focus right. Backspace
// clears the focused slot, or, when it is already empty, moves focus left
// and clears that slot. Pasted text (bracketed paste or ctrl+v) fills
// consecutive slots starting at the focused one; non-digits are skipped.
type otpInput struct {
	slots [otpLength]rune
	focus int
}

func newOtpInput() otpInput {
	return otpInput{}
}

// Update handles key and paste messages. Messages it does not understand are
// ignored.
func (o otpInput) Update(msg tea.Msg) (otpInput, tea.Cmd) {
	switch msg := msg.(type) {
	case clipboardPasteMsg:
		if msg.err == nil {
			o.paste(msg.text)
		}
		return o, nil
	case tea.KeyMsg:
		return o.handleKey(msg)
	}
	return o, nil
}

func (o otpInput) handleKey(msg tea.KeyMsg) (otpInput, tea.Cmd) {
	if msg.Paste {
		o.paste(string(msg.Runes))
		return o, nil
	}

	switch {
	case key.Matches(msg, keys.paste):
		return o, cmdReadClipboard
	case key.Matches(msg, keys.backspace):
		o.backspace()
	case key.Matches(msg, keys.left):
		if o.focus > 0 {
			o.focus--
		}
	case key.Matches(msg, keys.right):
		if o.focus < otpLength-1 {
			o.focus++
		}
	case msg.Type == tea.KeyRunes:
		if len(msg.Runes) == 1 {
			o.typeDigit(msg.Runes[0])
		} else {
			o.paste(string(msg.Runes))
		}
	}
	return o, nil
}

func (o *otpInput) typeDigit(r rune) {
	if !isDigit(r) {
		return
	}
	o.slots[o.focus] = r
	if o.focus < otpLength-1 {
		o.focus++
	}
}

func (o *otpInput) backspace() {
	if o.slots[o.focus] != 0 {
		o.slots[o.focus] = 0
		return
	}
	if o.focus > 0 {
		o.focus--
		o.slots[o.focus] = 0
	}
}

func (o *otpInput) paste(text string) {
	pos := o.focus
	for _, r := range text {
		if pos >= otpLength {
			break
		}
		if !isDigit(r) {
			continue
		}
		o.slots[pos] = r
		pos++
	}
	o.focus = min(pos, otpLength-1)
}

// Value returns the digits typed so far, left to right, skipping empty slots.
func (o otpInput) Value() string {
	var b strings.Builder
	for _, r := range o.slots {
		if r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Complete reports whether every slot holds a digit.
func (o otpInput) Complete() bool {
	for _, r := range o.slots {
		if r == 0 {
			return false
		}
	}
	return true
}

// Reset clears all slots and focuses the first one.
func (o *otpInput) Reset() {
	*o = otpInput{}
}

func (o otpInput) View() string {
	cells := make([]string, 0, otpLength)
	for i, r := range o.slots {
		ch := " "
		if r != 0 {
			ch = string(r)
		}
		style := slotStyle
		if i == o.focus {
			style = slotFocusStyle
		}
		cells = append(cells, style.Render(ch))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func cmdReadClipboard() tea.Msg {
	text, err := readClipboard()
	return clipboardPasteMsg{text: text, err: err}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
