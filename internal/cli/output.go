package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/at-ishikawa/langdrill/internal/language"
	"github.com/at-ishikawa/langdrill/internal/practice"
	"github.com/at-ishikawa/langdrill/internal/questiongen"
	"github.com/at-ishikawa/langdrill/internal/questiontype"
	"github.com/at-ishikawa/langdrill/internal/word"
)

const timeLayout = "2006-01-02 15:04"

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// PrintWords writes one row per word.
func PrintWords(w io.Writer, words []word.Word) error {
	tw := newTabWriter(w)
	_, _ = fmt.Fprintln(tw, "ID\tTEXT\tTYPE\tMEANING\tTAGS")
	for _, entry := range words {
		tags := ""
		if entry.Tags != nil {
			tags = *entry.Tags
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", entry.ID, entry.Text, entry.Type, entry.Meaning, tags)
	}
	return tw.Flush()
}

// PrintWord writes every field of a word.
func PrintWord(w io.Writer, entry *word.Word) error {
	tw := newTabWriter(w)
	_, _ = fmt.Fprintf(tw, "ID:\t%d\n", entry.ID)
	_, _ = fmt.Fprintf(tw, "Language:\t%s\n", language.Name(entry.Language))
	_, _ = fmt.Fprintf(tw, "Text:\t%s\n", entry.Text)
	_, _ = fmt.Fprintf(tw, "Type:\t%s\n", entry.Type)
	_, _ = fmt.Fprintf(tw, "Meaning:\t%s\n", entry.Meaning)
	if entry.Tags != nil {
		_, _ = fmt.Fprintf(tw, "Tags:\t%s\n", *entry.Tags)
	}
	_, _ = fmt.Fprintf(tw, "Updated:\t%s\n", entry.UpdatedAt.Local().Format(timeLayout))
	return tw.Flush()
}

// PrintQuestionTypes writes one row per question type.
func PrintQuestionTypes(w io.Writer, questionTypes []questiontype.QuestionType) error {
	tw := newTabWriter(w)
	_, _ = fmt.Fprintln(tw, "ID\tNAME")
	for _, qt := range questionTypes {
		_, _ = fmt.Fprintf(tw, "%d\t%s\n", qt.ID, qt.Name)
	}
	return tw.Flush()
}

// PrintQuestionType writes a question type with its templates.
func PrintQuestionType(w io.Writer, qt *questiontype.QuestionType) error {
	_, err := fmt.Fprintf(w, "ID: %d\nName: %s\nLanguage: %s\n\n[data]\n%s\n\n[question]\n%s\n\n[answer]\n%s\n",
		qt.ID, qt.Name, language.Name(qt.Language), qt.DataTemplate, qt.QuestionTemplate, qt.AnswerTemplate)
	return err
}

// PrintHistory writes answered and pending questions, newest first.
func PrintHistory(w io.Writer, questions []practice.Question) error {
	tw := newTabWriter(w)
	_, _ = fmt.Fprintln(tw, "ID\tASKED\tQUESTION\tEXPECTED\tANSWER\tRESULT")
	for _, q := range questions {
		answer, result := "-", "pending"
		if q.Answered() {
			if q.AnswerGiven != nil {
				answer = *q.AnswerGiven
			}
			result = "incorrect"
			if q.IsCorrect != nil && *q.IsCorrect {
				result = "correct"
			}
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			q.ID, q.CreatedAt.Local().Format(timeLayout), q.Text, q.Expected, answer, result)
	}
	return tw.Flush()
}

// PrintLanguages writes the supported languages and marks the current one.
func PrintLanguages(w io.Writer, current string) error {
	tw := newTabWriter(w)
	for _, l := range language.Supported() {
		marker := " "
		if l.Code == current {
			marker = "*"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", marker, l.Code, l.Name)
	}
	return tw.Flush()
}

// PrintPreview writes a generated question and its expected answer.
func PrintPreview(w io.Writer, result questiongen.Result) error {
	_, err := fmt.Fprintf(w, "Question: %s\nExpected: %s\n", result.Text, result.Expected)
	return err
}

// FilterSince keeps the questions created at or after since.
func FilterSince(questions []practice.Question, since time.Time) []practice.Question {
	filtered := make([]practice.Question, 0, len(questions))
	for _, q := range questions {
		if !q.CreatedAt.Before(since) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}
