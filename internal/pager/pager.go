// Package pager splits long documents into bounded pages and formats
// the per-page navigation footer.
package pager

import (
	"fmt"
	"strings"
)

// Paginate splits text on line boundaries into pages of at most
// linesPerPage lines each. The result is never empty: empty input
// yields a single empty page. Concatenating every page's lines in
// order reproduces the original line sequence exactly.
func Paginate(text string, linesPerPage int) []string {
	if linesPerPage < 1 {
		linesPerPage = 1
	}
	lines := strings.Split(text, "\n")

	pages := make([]string, 0, (len(lines)+linesPerPage-1)/linesPerPage)
	for i := 0; i < len(lines); i += linesPerPage {
		end := i + linesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, strings.Join(lines[i:end], "\n"))
	}
	return pages
}

// FormatPage appends the navigation footer to one page's content. The
// footer on non-final pages offers the next page or Q to quit; the
// final page only asks for RETURN. The state machine keys its
// transition rule off this distinction.
func FormatPage(content string, pageIndex, totalPages int) string {
	var footer string
	if pageIndex < totalPages-1 {
		footer = fmt.Sprintf("-- Page %d/%d - Press RETURN for next page, or Q to quit --",
			pageIndex+1, totalPages)
	} else {
		footer = fmt.Sprintf("-- Page %d/%d - Press RETURN to continue --",
			pageIndex+1, totalPages)
	}
	return content + "\n\n" + footer + "\n"
}
