// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package docs renders a command catalog as reference documentation:
// Markdown for repositories and wikis, HTML for static hosting, and
// syntax-highlighted text for terminals.
package docs

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/bureau-foundation/conquer/lib/command"
)

// Markdown renders one section per command with a parameter table.
func Markdown(title string, catalog []command.CommandDoc) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "# %s\n", title)

	for _, doc := range catalog {
		fmt.Fprintf(&builder, "\n## %s\n\n", doc.Name)
		if doc.Description != "" {
			fmt.Fprintf(&builder, "%s\n\n", escapeText(doc.Description))
		}
		if len(doc.Parameters) == 0 {
			builder.WriteString("Takes no parameters.\n")
			continue
		}

		builder.WriteString("| Parameter | Type | Required | Default | Description |\n")
		builder.WriteString("|---|---|---|---|---|\n")
		for _, param := range doc.Parameters {
			fmt.Fprintf(&builder, "| `%s` | `%s` | %s | %s | %s |\n",
				param.Name,
				param.Type,
				yesNo(param.Required),
				defaultCell(param),
				escapeCell(param.Description),
			)
		}
	}
	return builder.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func defaultCell(param command.ParameterDoc) string {
	switch {
	case param.Required:
		return ""
	case param.Default == nil:
		return "`null`"
	default:
		return fmt.Sprintf("`%v`", param.Default)
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(escapeText(s), "|", `\|`)
}

func escapeText(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

// GitHub-flavoured Markdown is needed for tables.
func markdownParser() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownInstance
}

// HTML converts Markdown produced by [Markdown] to an HTML fragment.
func HTML(markdown string) ([]byte, error) {
	var buffer bytes.Buffer
	if err := markdownParser().Convert([]byte(markdown), &buffer); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}
	return buffer.Bytes(), nil
}

// Highlight writes source to w with terminal colour codes for
// language ("json", "markdown", "html").
func Highlight(w io.Writer, source, language string) error {
	if err := quick.Highlight(w, source, language, "terminal256", "monokai"); err != nil {
		return fmt.Errorf("highlighting %s: %w", language, err)
	}
	return nil
}
