package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"adviceslip/internal/app/advice"
	"adviceslip/internal/app/navigation"
)

// searchOutput is the JSON shape printed for search results
type searchOutput struct {
	Query string           `json:"query"`
	Total int              `json:"total_results"`
	Slips advice.ResultSet `json:"slips"`
}

// printer writes slips to the terminal as wrapped text or as JSON
type printer struct {
	out    io.Writer
	width  int
	asJSON bool
}

// newPrinter creates a printer, a wrapWidth of 0 follows the terminal width when out is a terminal
func newPrinter(out io.Writer, wrapWidth int, asJSON bool) *printer {
	if wrapWidth <= 0 {
		wrapWidth = terminalWidth(out)
	}

	return &printer{
		out:    out,
		width:  wrapWidth,
		asJSON: asJSON,
	}
}

// terminalWidth returns the column count of out, or 0 when out is not a terminal
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return 0
	}

	width, _, err := term.GetSize(f.Fd())
	if err != nil {
		return 0
	}

	return width
}

// Item prints a single slip
func (p *printer) Item(item advice.Item) error {
	if p.asJSON {
		return p.encode(item)
	}

	_, err := fmt.Fprintln(p.out, p.formatItem(item))

	return err
}

// Results prints every slip found for query
func (p *printer) Results(query string, results advice.ResultSet) error {
	if p.asJSON {
		if results == nil {
			results = advice.ResultSet{}
		}

		return p.encode(searchOutput{Query: query, Total: len(results), Slips: results})
	}

	if len(results) == 0 {
		_, err := fmt.Fprintln(p.out, noticeStyle.Render(navigation.NoResultsText))
		return err
	}

	for _, item := range results {
		if _, err := fmt.Fprintln(p.out, p.formatItem(item)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(p.out, searchQueryTag.Render(foundLabel(len(results), query)))

	return err
}

// formatItem renders "#id text" with the text wrapped beside the id
func (p *printer) formatItem(item advice.Item) string {
	id := slipIDStyle.Render(fmt.Sprintf("#%d", item.ID)) + " "

	text := slipTextStyle
	if textWidth := p.width - lipgloss.Width(id); p.width > 0 && textWidth > 0 {
		text = text.Width(textWidth)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, id, text.Render(item.Text))
}

func (p *printer) encode(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// foundLabel summarises a printed result list
func foundLabel(total int, query string) string {
	noun := "results"
	if total == 1 {
		noun = "result"
	}

	return fmt.Sprintf("Found %d %s for %q", total, noun, query)
}
