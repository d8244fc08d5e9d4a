package questiongen

// DataTemplateError reports a failure while compiling or running the data
// template, including a failed word lookup.
type DataTemplateError struct {
	Err error
}

func (e *DataTemplateError) Error() string {
	return "Data template error: " + e.Err.Error()
}

func (e *DataTemplateError) Unwrap() error {
	return e.Err
}

// QuestionAnswerTemplateError reports a failure while compiling or rendering the
// question or the answer template.
type QuestionAnswerTemplateError struct {
	Err error
}

func (e *QuestionAnswerTemplateError) Error() string {
	return "Question/answer template error: " + e.Err.Error()
}

func (e *QuestionAnswerTemplateError) Unwrap() error {
	return e.Err
}
