package ui

import (
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// RenderStack draws the stack pane top-to-bottom (top of stack first and
// highlighted), one value per line (spec §3.3's `stack` snapshot).
func RenderStack(stack []int32, width int) string {
	title := RunAreaTitle.Render("Stack")

	if len(stack) == 0 {
		body := StackValueStyle.Render("(empty)")
		return RunAreaBorder.Width(width).Render(title + "\n" + body)
	}

	lines := make([]string, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		v := strconv.FormatInt(int64(stack[i]), 10)
		if i == len(stack)-1 {
			lines[len(stack)-1-i] = StackTopStyle.Render(v)
		} else {
			lines[len(stack)-1-i] = StackValueStyle.Render(v)
		}
	}

	return RunAreaBorder.Width(width).Render(title + "\n" + strings.Join(lines, "\n"))
}

// RenderOutput draws the committed/buffered program output stream.
func RenderOutput(output string, width int) string {
	title := RunAreaTitle.Render("Output")
	wrapped := wordwrap.String(output, maxInt(width-2, 1))
	return RunAreaBorder.Width(width).Render(title + "\n" + OutputStyle.Render(wrapped))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
