package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on a terminal and reads one line per answer
type Prompter struct {
	scanner *bufio.Scanner
	output  io.Writer
}

func NewPrompter(input io.Reader, output io.Writer) *Prompter {
	scanner := bufio.NewScanner(input)
	scanner.Split(bufio.ScanLines)
	return &Prompter{
		scanner: scanner,
		output:  output,
	}
}

// Ask writes question and returns the next line of input without its trailing line break.
// io.EOF is returned once the input is exhausted.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.output, question); err != nil {
		return "", err
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}

func (p *Prompter) Println(a ...any) {
	_, _ = fmt.Fprintln(p.output, a...)
}

func (p *Prompter) Writer() io.Writer {
	return p.output
}
