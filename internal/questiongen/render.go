package questiongen

// runQuestionAnswerStep renders the question and the answer against data. Both
// templates are compiled before either is rendered, the question first.
func runQuestionAnswerStep(questionTemplate, answerTemplate string, data map[string]any) (Result, error) {
	questionTpl, err := compile(questionTemplate, nil)
	if err != nil {
		return Result{}, err
	}
	answerTpl, err := compile(answerTemplate, nil)
	if err != nil {
		return Result{}, err
	}

	text, err := execute(questionTpl, data)
	if err != nil {
		return Result{}, err
	}
	expected, err := execute(answerTpl, data)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: text, Expected: expected}, nil
}
