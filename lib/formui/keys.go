// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the form.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Submit   key.Binding

	// ToggleMode switches the decoder between text and binary.
	ToggleMode key.Binding

	// CycleForm advances the encode form.
	CycleForm key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("Tab", "next field"),
	),
	Previous: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("S-Tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "submit"),
	),
	ToggleMode: key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("C-b", "text/binary"),
	),
	CycleForm: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("C-f", "encode form"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("Esc", "quit"),
	),
}

// helpBindings lists the bindings shown in the footer, in order.
func (keys KeyMap) helpBindings() []key.Binding {
	return []key.Binding{keys.Next, keys.Submit, keys.ToggleMode, keys.CycleForm, keys.Quit}
}
