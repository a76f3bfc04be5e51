// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	buildInfo key.Binding

	// list
	newForm key.Binding
	edit    key.Binding
	preview key.Binding
	delete  key.Binding
	copy    key.Binding
	yes     key.Binding
	no      key.Binding

	// editor
	addRow    key.Binding
	removeRow key.Binding
	cycleType key.Binding
	required  key.Binding
	submit    key.Binding

	// preview
	toggle key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	buildInfo: key.NewBinding(key.WithKeys("v")),

	newForm: key.NewBinding(key.WithKeys("n")),
	edit:    key.NewBinding(key.WithKeys("e", "enter")),
	preview: key.NewBinding(key.WithKeys("p")),
	delete:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),

	addRow:    key.NewBinding(key.WithKeys("ctrl+n")),
	removeRow: key.NewBinding(key.WithKeys("ctrl+x")),
	cycleType: key.NewBinding(key.WithKeys("ctrl+t")),
	required:  key.NewBinding(key.WithKeys("ctrl+r")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),

	// the option cursor uses arrows only so j/k stay typeable
	toggle: key.NewBinding(key.WithKeys(" ")),
}

var optionKeys = struct {
	up   key.Binding
	down key.Binding
}{
	up:   key.NewBinding(key.WithKeys("up")),
	down: key.NewBinding(key.WithKeys("down")),
}
