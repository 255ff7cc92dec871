package pager

import (
	"strings"

	"bikeshare/dataset"
	"bikeshare/prompt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	log "github.com/sirupsen/logrus"
)

const (
	skipSentinel      = "no"
	firstQuestion     = "Press Enter to see raw data. Write \"no\" to skip.\n"
	nextQuestion      = "Press Enter to see more raw data. Write \"no\" to stop.\n"
	noMoreRowsMessage = "No more raw data to display."
)

var borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// Cursor tracks how many rows of a dataset of total rows have been revealed
type Cursor struct {
	total    int
	pageSize int
	shown    int
}

func NewCursor(total int, pageSize int) *Cursor {
	return &Cursor{
		total:    total,
		pageSize: pageSize,
	}
}

// Next grows the revealed head by one page, clamped to total, and returns its new length.
// The second return value is false when there was nothing left to reveal.
func (c *Cursor) Next() (int, bool) {
	if c.shown >= c.total {
		return c.shown, false
	}

	c.shown += c.pageSize
	if c.shown > c.total {
		c.shown = c.total
	}
	return c.shown, true
}

// Pager reveals the raw rows of a Dataset, one page more on every continuation
type Pager struct {
	prompter *prompt.Prompter
	pageSize int
}

func NewPager(prompter *prompt.Prompter, pageSize int) *Pager {
	return &Pager{
		prompter: prompter,
		pageSize: pageSize,
	}
}

// IsSkip returns true if answer asks to stop showing raw data
func IsSkip(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), skipSentinel)
}

// Run asks whether to show raw data and keeps revealing rows until the user writes "no" or
// nothing is left to show
func (p *Pager) Run(d *dataset.Dataset) error {
	answer, err := p.prompter.Ask(firstQuestion)
	if err != nil {
		return err
	}

	cursor := NewCursor(d.Len(), p.pageSize)
	for !IsSkip(answer) {
		shown, ok := cursor.Next()
		if !ok {
			p.prompter.Println(noMoreRowsMessage)
			return nil
		}

		log.Debugf("[component: pager][status: OK] showing %v of %v rows", shown, d.Len())
		p.prompter.Println(render(d.Head(shown)))

		answer, err = p.prompter.Ask(nextQuestion)
		if err != nil {
			return err
		}
	}

	return nil
}

// render draws records as a table, the first record being the header
func render(records [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(records[0]...).
		Rows(records[1:]...)
	return t.Render()
}
