// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyPaste(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeOtp(o otpInput, digits string) otpInput {
	for _, r := range digits {
		o, _ = o.Update(keyRunes(string(r)))
	}
	return o
}

func TestOtpInput_TypingFillsAndAdvances(t *testing.T) {
	o := typeOtp(newOtpInput(), "042")

	assert.Equal(t, "042", o.Value())
	assert.Equal(t, 3, o.focus)
	assert.False(t, o.Complete())
}

func TestOtpInput_LastSlotKeepsFocus(t *testing.T) {
	o := typeOtp(newOtpInput(), "1234567")

	assert.Equal(t, "123457", o.Value())
	assert.Equal(t, otpLength-1, o.focus)
	assert.True(t, o.Complete())
}

func TestOtpInput_IgnoresNonDigits(t *testing.T) {
	o := typeOtp(newOtpInput(), "1a 2")

	assert.Equal(t, "12", o.Value())
	assert.Equal(t, 2, o.focus)
}

func TestOtpInput_Backspace(t *testing.T) {
	o := typeOtp(newOtpInput(), "123")

	// focus is on the empty 4th slot: step back and clear the 3rd
	o, _ = o.Update(keyType(tea.KeyBackspace))
	assert.Equal(t, "12", o.Value())
	assert.Equal(t, 2, o.focus)

	// fill the focused slot again, then move back onto it and clear in place
	o = typeOtp(o, "9")
	o, _ = o.Update(keyType(tea.KeyLeft))
	require.Equal(t, 2, o.focus)
	o, _ = o.Update(keyType(tea.KeyBackspace))
	assert.Equal(t, "12", o.Value())
	assert.Equal(t, 2, o.focus)
}

func TestOtpInput_BackspaceOnFirstEmptySlot(t *testing.T) {
	o, _ := newOtpInput().Update(keyType(tea.KeyBackspace))

	assert.Equal(t, 0, o.focus)
	assert.Empty(t, o.Value())
}

func TestOtpInput_PasteDistributesDigits(t *testing.T) {
	tests := []struct {
		name      string
		before    string
		paste     string
		wantValue string
		wantFocus int
	}{
		{name: "full code", paste: "123456", wantValue: "123456", wantFocus: 5},
		{name: "skips separators", paste: " 12-34 56\n", wantValue: "123456", wantFocus: 5},
		{name: "truncates to six", paste: "98765432", wantValue: "987654", wantFocus: 5},
		{name: "short paste", paste: "007", wantValue: "007", wantFocus: 3},
		{name: "from focused slot", before: "12", paste: "3456789", wantValue: "123456", wantFocus: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := typeOtp(newOtpInput(), tt.before)
			o, _ = o.Update(keyPaste(tt.paste))

			assert.Equal(t, tt.wantValue, o.Value())
			assert.Equal(t, tt.wantFocus, o.focus)
		})
	}
}

func TestOtpInput_CtrlVReadsClipboard(t *testing.T) {
	orig := readClipboard
	t.Cleanup(func() { readClipboard = orig })
	readClipboard = func() (string, error) { return "654321", nil }

	o, cmd := newOtpInput().Update(keyType(tea.KeyCtrlV))
	require.NotNil(t, cmd)

	o, _ = o.Update(cmd())

	assert.Equal(t, "654321", o.Value())
	assert.True(t, o.Complete())
}

func TestOtpInput_ClipboardErrorIgnored(t *testing.T) {
	o, _ := newOtpInput().Update(clipboardPasteMsg{text: "123456", err: errors.New("no clipboard")})

	assert.Empty(t, o.Value())
}

func TestOtpInput_Reset(t *testing.T) {
	o := typeOtp(newOtpInput(), "123456")
	o.Reset()

	assert.Empty(t, o.Value())
	assert.Equal(t, 0, o.focus)
}

func TestOtpInput_View(t *testing.T) {
	view := typeOtp(newOtpInput(), "12").View()

	assert.Contains(t, view, "1")
	assert.Contains(t, view, "2")
}
