package todo

import (
	"fmt"
	"strings"
)

// Markdown renders items as a GitHub-style task list.
func Markdown(title string, items []Item) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if len(items) == 0 {
		sb.WriteString("_Nothing to do._\n")
		return sb.String()
	}
	for _, item := range items {
		mark := " "
		if item.Done() {
			mark = "x"
		}
		fmt.Fprintf(&sb, "- [%s] %s\n", mark, item.Task)
	}
	return sb.String()
}
