// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	formID string
	title  string
}

func (m confirmModel) View() string {
	content := "Delete form \"" + fitText(displayText(m.title), 40) + "\"?\n"
	content += helpStyle.Render("Stored responses are kept.") + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
