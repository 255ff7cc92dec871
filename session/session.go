package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/filters"
	"bikeshare/pager"
	"bikeshare/prompt"
	"bikeshare/reporters"

	log "github.com/sirupsen/logrus"
)

const (
	restartQuestion = "\nWould you like to restart? Write yes or no.\n"
	restartAnswer   = "yes"
)

// DatasetLoader returns the Dataset of a Selection
type DatasetLoader interface {
	Load(selection filters.Selection) (*dataset.Dataset, error)
}

// Session runs the explore loop: collect filters, load, report, page raw rows and ask to
// restart. Nothing is kept from one iteration to the next.
type Session struct {
	prompter  *prompt.Prompter
	collector *filters.Collector
	loader    DatasetLoader
	runner    *reporters.Runner
	pager     *pager.Pager
}

func NewSession(explorerConfig *config.ExplorerConfig, prompter *prompt.Prompter, loader DatasetLoader) *Session {
	return &Session{
		prompter:  prompter,
		collector: filters.NewCollector(prompter, explorerConfig.SeparatorWidth),
		loader:    loader,
		runner:    reporters.NewRunner(prompter.Writer(), explorerConfig.SeparatorWidth, reporters.Defaults()...),
		pager:     pager.NewPager(prompter, explorerConfig.PageSize),
	}
}

// Run loops until the user does not want to restart or the input ends. A dataset that cannot
// be loaded stops the loop with an error.
func (s *Session) Run() error {
	iteration := 0
	for {
		iteration += 1
		log.Debugf("[component: session][iteration: %v] starting", iteration)

		restart, err := s.runOnce()
		if err != nil {
			return err
		}

		if !restart {
			return nil
		}
	}
}

func (s *Session) runOnce() (bool, error) {
	selection, err := s.collector.Collect()
	if err != nil {
		return false, ignoreEndOfInput(err)
	}

	d, err := s.loader.Load(selection)
	if err != nil {
		return false, fmt.Errorf("error loading %s data: %w", selection.City, err)
	}

	s.runner.Run(d)

	err = s.pager.Run(d)
	if err != nil {
		return false, ignoreEndOfInput(err)
	}

	answer, err := s.prompter.Ask(restartQuestion)
	if err != nil {
		return false, ignoreEndOfInput(err)
	}

	return strings.EqualFold(strings.TrimSpace(answer), restartAnswer), nil
}

// ignoreEndOfInput returns nil when a prompt failed because the input was closed
func ignoreEndOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		log.Debug("[component: session] input closed")
		return nil
	}
	return err
}
