// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import "github.com/charmbracelet/lipgloss"

// Theme is the form's color palette.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color
	LabelText  lipgloss.Color
	ErrorText  lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	FocusBorder      lipgloss.Color
	HelpText         lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal palette. Error text uses
// the same red as the decode error display elsewhere.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),
	LabelText:  lipgloss.Color("75"),
	ErrorText:  lipgloss.Color("#d32f2f"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	FocusBorder:      lipgloss.Color("114"),
	HelpText:         lipgloss.Color("241"),
}
