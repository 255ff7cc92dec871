package filters

import (
	"strings"

	"bikeshare/prompt"

	log "github.com/sirupsen/logrus"
)

const greeting = "Hello! Let's explore some US bikeshare data!"

// Collector asks the user for a Selection
type Collector struct {
	prompter       *prompt.Prompter
	separatorWidth int
}

func NewCollector(prompter *prompt.Prompter, separatorWidth int) *Collector {
	return &Collector{
		prompter:       prompter,
		separatorWidth: separatorWidth,
	}
}

// Collect asks for city, month and day, in that order. Each axis is asked again until a member
// of its vocabulary is entered. Only an input error stops the loop.
func (c *Collector) Collect() (Selection, error) {
	c.prompter.Println(greeting)

	city, err := c.collectAxis(CityAxis)
	if err != nil {
		return Selection{}, err
	}

	month, err := c.collectAxis(MonthAxis)
	if err != nil {
		return Selection{}, err
	}

	day, err := c.collectAxis(DayAxis)
	if err != nil {
		return Selection{}, err
	}

	c.prompter.Println(strings.Repeat("-", c.separatorWidth))

	selection := Selection{City: city, Month: month, Day: day}
	log.Debugf("[component: collector][status: OK] selection: %+v", selection)
	return selection, nil
}

func (c *Collector) collectAxis(axis Axis) (string, error) {
	question := axis.Question
	for {
		input, err := c.prompter.Ask(question)
		if err != nil {
			return "", err
		}

		value, ok := ParseSelector(axis, input)
		if ok {
			return value, nil
		}

		log.Debugf("[component: collector][axis: %s] invalid value %q", axis.Name, input)
		question = axis.Hint
	}
}
