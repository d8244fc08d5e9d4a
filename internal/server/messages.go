package server

// Word is the wire form of a word.
type Word struct {
	ID       int64   `json:"id"`
	Language string  `json:"language"`
	Text     string  `json:"text"`
	Type     string  `json:"type"`
	Meaning  string  `json:"meaning"`
	Tags     *string `json:"tags,omitempty"`
}

type ListWordsRequest struct {
	Language string `json:"language"`
}

type ListWordsResponse struct {
	Words []Word `json:"words"`
}

type GetWordRequest struct {
	ID       int64  `json:"id"`
	Language string `json:"language"`
}

type GetWordResponse struct {
	Word Word `json:"word"`
}

type CreateWordRequest struct {
	Language string  `json:"language"`
	Text     string  `json:"text"`
	Type     string  `json:"type"`
	Meaning  string  `json:"meaning"`
	Tags     *string `json:"tags,omitempty"`
}

type CreateWordResponse struct {
	ID int64 `json:"id"`
}

type UpdateWordRequest struct {
	ID      int64   `json:"id"`
	Text    string  `json:"text"`
	Type    string  `json:"type"`
	Meaning string  `json:"meaning"`
	Tags    *string `json:"tags,omitempty"`
}

type UpdateWordResponse struct{}

// QuestionType is the wire form of a question type.
type QuestionType struct {
	ID               int64  `json:"id"`
	Language         string `json:"language"`
	Name             string `json:"name"`
	DataTemplate     string `json:"dataTemplate"`
	QuestionTemplate string `json:"questionTemplate"`
	AnswerTemplate   string `json:"answerTemplate"`
}

type ListQuestionTypesRequest struct {
	Language string `json:"language"`
}

type ListQuestionTypesResponse struct {
	QuestionTypes []QuestionType `json:"questionTypes"`
}

type GetQuestionTypeRequest struct {
	ID       int64  `json:"id"`
	Language string `json:"language"`
}

type GetQuestionTypeResponse struct {
	QuestionType QuestionType `json:"questionType"`
}

type CreateQuestionTypeRequest struct {
	Language         string `json:"language"`
	Name             string `json:"name"`
	DataTemplate     string `json:"dataTemplate"`
	QuestionTemplate string `json:"questionTemplate"`
	AnswerTemplate   string `json:"answerTemplate"`
}

type CreateQuestionTypeResponse struct {
	ID int64 `json:"id"`
}

type UpdateQuestionTypeRequest struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	DataTemplate     string `json:"dataTemplate"`
	QuestionTemplate string `json:"questionTemplate"`
	AnswerTemplate   string `json:"answerTemplate"`
}

type UpdateQuestionTypeResponse struct{}

type GenerateQuestionRequest struct {
	QuestionTypeID int64  `json:"questionTypeId"`
	Language       string `json:"language"`
}

type GenerateQuestionResponse struct {
	QuestionID int64  `json:"questionId"`
	Text       string `json:"text"`
	Expected   string `json:"expected"`
}

type SubmitAnswerRequest struct {
	QuestionID int64  `json:"questionId"`
	Answer     string `json:"answer"`
}

type SubmitAnswerResponse struct {
	Correct  bool   `json:"correct"`
	Expected string `json:"expected"`
}

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ListLanguagesRequest struct{}

type ListLanguagesResponse struct {
	Languages []Language `json:"languages"`
	Default   string     `json:"default"`
}
