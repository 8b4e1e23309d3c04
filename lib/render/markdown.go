// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownConverter is built once; goldmark.Markdown is safe for
// concurrent Convert calls.
var (
	markdownConverter     goldmark.Markdown
	markdownConverterOnce sync.Once
)

func getMarkdownConverter() goldmark.Markdown {
	markdownConverterOnce.Do(func() {
		markdownConverter = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownConverter
}

// markdownTable formats a GFM table. Cell text is escaped so that
// descriptor values containing '|', '`', or '*' cannot break the table
// or pick up emphasis.
func markdownTable(headers []string, rows [][]string) string {
	var buffer strings.Builder

	writeRow := func(cells []string) {
		buffer.WriteString("|")
		for column := range headers {
			cell := ""
			if column < len(cells) {
				cell = escapeMarkdownCell(cells[column])
			}
			buffer.WriteString(" " + cell + " |")
		}
		buffer.WriteString("\n")
	}

	writeRow(headers)
	buffer.WriteString("|")
	for range headers {
		buffer.WriteString(" --- |")
	}
	buffer.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return buffer.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"<", `\<`,
	"[", `\[`,
	"\n", " ",
)

func escapeMarkdownCell(cell string) string {
	if cell == "" {
		return ""
	}
	return markdownEscaper.Replace(cell)
}

// markdownToHTML converts GFM markdown to an HTML fragment.
func markdownToHTML(markdown string) (string, error) {
	var buffer bytes.Buffer
	if err := getMarkdownConverter().Convert([]byte(markdown), &buffer); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buffer.String(), nil
}
