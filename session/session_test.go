package session

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/filters"
	"bikeshare/loader"
	"bikeshare/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	noData   = "No data available for the selected filters."
	greeting = "Hello! Let's explore some US bikeshare data!"
)

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Customer
1330037,2017-05-30 01:02:59,2017-05-30 01:13:37,637.251,17th St & Massachusetts Ave NW,5th & K St NW,Subscriber
`

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
1473887,2017-06-26 09:01:20,2017-06-26 09:11:06,586,Clinton St & Washington Blvd,Canal St & Taylor St,Subscriber,Male,1990.0
`

func newTestSession(t *testing.T, input string) (*Session, *bytes.Buffer) {
	t.Helper()

	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "washington.csv"), []byte(washingtonCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "chicago.csv"), []byte(chicagoCSV), 0o644))

	cfg := config.Default()
	cfg.DataDir = dataDir

	var output bytes.Buffer
	p := prompt.NewPrompter(strings.NewReader(input), &output)
	return NewSession(cfg, p, loader.NewLoader(cfg)), &output
}

func TestRunWashingtonAll(t *testing.T) {
	s, output := newTestSession(t, "washington\nall\nall\nno\nno\n")

	require.NoError(t, s.Run())
	out := output.String()

	assert.Equal(t, 1, strings.Count(out, greeting))
	assert.Regexp(t, `Subscriber\s+2`, out)
	assert.Regexp(t, `Customer\s+1`, out)
	assert.NotContains(t, out, "Gender")
	assert.NotContains(t, out, "year of birth")
	assert.Contains(t, out, restartQuestion)
}

func TestRunChicagoJune(t *testing.T) {
	s, output := newTestSession(t, "chicago\njune\nall\nno\nno\n")

	require.NoError(t, s.Run())
	out := output.String()

	assert.Contains(t, out, "The most common month is: June (6)")
	assert.Contains(t, out, "Gender")
	assert.Contains(t, out, "The earliest year of birth is: 1990")
	assert.NotContains(t, out, "Theater on the Lake")
}

func TestRunEmptySelection(t *testing.T) {
	s, output := newTestSession(t, "washington\nfebruary\nall\n\nno\n")

	require.NoError(t, s.Run())
	out := output.String()

	assert.Equal(t, 4, strings.Count(out, noData))
	assert.Contains(t, out, "No more raw data to display.")
}

func TestRunRestart(t *testing.T) {
	input := "washington\nall\nall\nno\nYes\nchicago\nall\nfriday\nno\nno\n"
	s, output := newTestSession(t, input)

	require.NoError(t, s.Run())
	out := output.String()

	assert.Equal(t, 2, strings.Count(out, greeting))
	assert.Equal(t, 2, strings.Count(out, restartQuestion))
	assert.Contains(t, out, "The most common day is: Friday")
}

func TestRunEndsOnAnythingButYes(t *testing.T) {
	s, output := newTestSession(t, "washington\nall\nall\nno\ny\nchicago\nall\nall\nno\nno\n")

	require.NoError(t, s.Run())
	assert.Equal(t, 1, strings.Count(output.String(), greeting))
}

func TestRunEndOfInput(t *testing.T) {
	s, _ := newTestSession(t, "washington\nall\n")

	assert.NoError(t, s.Run())
}

func TestRunLoadFailure(t *testing.T) {
	s, _ := newTestSession(t, "new york city\nall\nall\n")

	err := s.Run()
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

type recordingLoader struct {
	selections []filters.Selection
	delegate   DatasetLoader
}

func (rl *recordingLoader) Load(selection filters.Selection) (*dataset.Dataset, error) {
	rl.selections = append(rl.selections, selection)
	return rl.delegate.Load(selection)
}

func TestRunCollectsFreshSelectionOnRestart(t *testing.T) {
	s, _ := newTestSession(t, "washington\nmay\ntuesday\nno\nyes\nwashington\nall\nall\nno\nno\n")
	recorder := &recordingLoader{delegate: s.loader}
	s.loader = recorder

	require.NoError(t, s.Run())
	assert.Equal(t, []filters.Selection{
		{City: "washington", Month: "may", Day: "tuesday"},
		filters.NewSelection("washington"),
	}, recorder.selections)
}

type failingLoader struct {
	err error
}

func (fl *failingLoader) Load(selection filters.Selection) (*dataset.Dataset, error) {
	return nil, fl.err
}

func TestRunLoadFailureWrappingEndOfFile(t *testing.T) {
	s, _ := newTestSession(t, "chicago\nall\nall\nno\nno\n")
	s.loader = &failingLoader{err: fmt.Errorf("reading chicago.csv: %w", io.EOF)}

	err := s.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "error loading chicago data")
}

func TestRunEndOfInputInPager(t *testing.T) {
	s, output := newTestSession(t, "washington\nall\nall\n\n")

	assert.NoError(t, s.Run())
	assert.NotContains(t, output.String(), restartQuestion)
}
