// Package cli implements the interactive parts of the langdrill command.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/langdrill/internal/practice"
)

var errEnd = errors.New("end")

//go:generate mockgen -source=practice_cli.go -destination=../mocks/cli/mock_practicer.go -package=mock_cli Practicer

// Practicer generates questions and grades answers.
type Practicer interface {
	GenerateQuestion(ctx context.Context, ownerID string, questionTypeID int64, lang string) (*practice.GeneratedQuestion, error)
	SubmitAnswer(ctx context.Context, ownerID string, questionID int64, answer string) (*practice.Question, error)
}

// PracticeCLI asks generated questions one by one and reports the score.
type PracticeCLI struct {
	practicer      Practicer
	ownerID        string
	language       string
	questionTypeID int64
	// count is the number of questions to ask; 0 asks until the learner quits.
	count int

	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	correct      *color.Color
	incorrect    *color.Color

	asked    int
	answered int
	score    int
}

// NewPracticeCLI creates a PracticeCLI reading answers from stdin.
func NewPracticeCLI(practicer Practicer, ownerID, lang string, questionTypeID int64, count int) *PracticeCLI {
	return &PracticeCLI{
		practicer:      practicer,
		ownerID:        ownerID,
		language:       lang,
		questionTypeID: questionTypeID,
		count:          count,
		stdinReader:    bufio.NewReader(os.Stdin),
		stdoutWriter:   os.Stdout,
		bold:           color.New(color.Bold),
		correct:        color.New(color.FgGreen),
		incorrect:      color.New(color.FgRed),
	}
}

// SetIO replaces stdin and stdout.
func (cli *PracticeCLI) SetIO(in io.Reader, out io.Writer) {
	cli.stdinReader = bufio.NewReader(in)
	cli.stdoutWriter = out
}

// Run asks questions until the count is reached, the learner quits or the
// process is interrupted, then prints the score.
func (cli *PracticeCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		for ctx.Err() == nil {
			if err := cli.Session(ctx); err != nil {
				if !errors.Is(err, errEnd) {
					errCh <- err
				}
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "\nReceived interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}
	cli.printScore()
	return nil
}

// Session asks a single question. It returns errEnd when the practice is over.
func (cli *PracticeCLI) Session(ctx context.Context) error {
	if cli.count > 0 && cli.asked >= cli.count {
		return errEnd
	}

	question, err := cli.practicer.GenerateQuestion(ctx, cli.ownerID, cli.questionTypeID, cli.language)
	if err != nil {
		return fmt.Errorf("practicer.GenerateQuestion() > %w", err)
	}
	cli.asked++

	_, _ = cli.bold.Fprintf(cli.stdoutWriter, "Q%d. %s\n", cli.asked, question.Text)
	_, _ = fmt.Fprint(cli.stdoutWriter, "Answer: ")
	input, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("read answer: %w", err)
		}
		if strings.TrimSpace(input) == "" {
			return errEnd
		}
	}
	answer := strings.TrimSpace(input)
	if answer == "quit" || answer == "exit" {
		return errEnd
	}

	graded, err := cli.practicer.SubmitAnswer(ctx, cli.ownerID, question.QuestionID, answer)
	if err != nil {
		return fmt.Errorf("practicer.SubmitAnswer() > %w", err)
	}
	cli.answered++
	if graded.IsCorrect != nil && *graded.IsCorrect {
		cli.score++
		_, _ = cli.correct.Fprintln(cli.stdoutWriter, "Correct!")
	} else {
		_, _ = cli.incorrect.Fprintf(cli.stdoutWriter, "Incorrect. Expected: %s\n", graded.Expected)
	}
	_, _ = fmt.Fprintln(cli.stdoutWriter)
	return nil
}

func (cli *PracticeCLI) printScore() {
	_, _ = fmt.Fprintf(cli.stdoutWriter, "Score: %d/%d\n", cli.score, cli.answered)
}
