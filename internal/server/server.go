// Package server provides the Connect RPC handlers of langdrill.
package server

import (
	"context"
	"fmt"
	"net/http"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/langdrill/internal/auth"
	"github.com/at-ishikawa/langdrill/internal/language"
	"github.com/at-ishikawa/langdrill/internal/practice"
	"github.com/at-ishikawa/langdrill/internal/questiontype"
	"github.com/at-ishikawa/langdrill/internal/word"
)

const (
	WordServiceListWordsProcedure  = "/langdrill.v1.WordService/ListWords"
	WordServiceGetWordProcedure    = "/langdrill.v1.WordService/GetWord"
	WordServiceCreateWordProcedure = "/langdrill.v1.WordService/CreateWord"
	WordServiceUpdateWordProcedure = "/langdrill.v1.WordService/UpdateWord"

	QuestionTypeServiceListQuestionTypesProcedure  = "/langdrill.v1.QuestionTypeService/ListQuestionTypes"
	QuestionTypeServiceGetQuestionTypeProcedure    = "/langdrill.v1.QuestionTypeService/GetQuestionType"
	QuestionTypeServiceCreateQuestionTypeProcedure = "/langdrill.v1.QuestionTypeService/CreateQuestionType"
	QuestionTypeServiceUpdateQuestionTypeProcedure = "/langdrill.v1.QuestionTypeService/UpdateQuestionType"

	PracticeServiceGenerateQuestionProcedure = "/langdrill.v1.PracticeService/GenerateQuestion"
	PracticeServiceSubmitAnswerProcedure     = "/langdrill.v1.PracticeService/SubmitAnswer"

	LanguageServiceListLanguagesProcedure = "/langdrill.v1.LanguageService/ListLanguages"
)

// WordService is the part of word.Service used by the handlers.
type WordService interface {
	Get(ctx context.Context, ownerID string, id int64, lang string) (*word.Word, error)
	List(ctx context.Context, ownerID, lang string) ([]word.Word, error)
	Create(ctx context.Context, ownerID string, input word.CreateInput) (int64, error)
	Update(ctx context.Context, ownerID string, id int64, input word.UpdateInput) error
}

// QuestionTypeService is the part of questiontype.Service used by the handlers.
type QuestionTypeService interface {
	Get(ctx context.Context, ownerID string, id int64, lang string) (*questiontype.QuestionType, error)
	List(ctx context.Context, ownerID, lang string) ([]questiontype.QuestionType, error)
	Create(ctx context.Context, ownerID string, input questiontype.CreateInput) (int64, error)
	Update(ctx context.Context, ownerID string, id int64, input questiontype.UpdateInput) error
}

// PracticeService is the part of practice.Service used by the handlers.
type PracticeService interface {
	GenerateQuestion(ctx context.Context, ownerID string, questionTypeID int64, lang string) (*practice.GeneratedQuestion, error)
	SubmitAnswer(ctx context.Context, ownerID string, questionID int64, answer string) (*practice.Question, error)
}

// Server implements the langdrill RPC services.
type Server struct {
	words           WordService
	questionTypes   QuestionTypeService
	practice        PracticeService
	defaultLanguage string
}

// New creates a new Server. Requests without a language use defaultLanguage.
func New(words WordService, questionTypes QuestionTypeService, practiceService PracticeService, defaultLanguage string) *Server {
	return &Server{
		words:           words,
		questionTypes:   questionTypes,
		practice:        practiceService,
		defaultLanguage: defaultLanguage,
	}
}

// Handler returns the HTTP handler serving every procedure.
func (s *Server) Handler(resolver *auth.TokenResolver) http.Handler {
	opts := []connect.HandlerOption{
		connect.WithCodec(Codec()),
		connect.WithInterceptors(NewAuthInterceptor(resolver)),
	}

	mux := http.NewServeMux()
	mux.Handle(WordServiceListWordsProcedure, connect.NewUnaryHandler(WordServiceListWordsProcedure, s.ListWords, opts...))
	mux.Handle(WordServiceGetWordProcedure, connect.NewUnaryHandler(WordServiceGetWordProcedure, s.GetWord, opts...))
	mux.Handle(WordServiceCreateWordProcedure, connect.NewUnaryHandler(WordServiceCreateWordProcedure, s.CreateWord, opts...))
	mux.Handle(WordServiceUpdateWordProcedure, connect.NewUnaryHandler(WordServiceUpdateWordProcedure, s.UpdateWord, opts...))

	mux.Handle(QuestionTypeServiceListQuestionTypesProcedure, connect.NewUnaryHandler(QuestionTypeServiceListQuestionTypesProcedure, s.ListQuestionTypes, opts...))
	mux.Handle(QuestionTypeServiceGetQuestionTypeProcedure, connect.NewUnaryHandler(QuestionTypeServiceGetQuestionTypeProcedure, s.GetQuestionType, opts...))
	mux.Handle(QuestionTypeServiceCreateQuestionTypeProcedure, connect.NewUnaryHandler(QuestionTypeServiceCreateQuestionTypeProcedure, s.CreateQuestionType, opts...))
	mux.Handle(QuestionTypeServiceUpdateQuestionTypeProcedure, connect.NewUnaryHandler(QuestionTypeServiceUpdateQuestionTypeProcedure, s.UpdateQuestionType, opts...))

	mux.Handle(PracticeServiceGenerateQuestionProcedure, connect.NewUnaryHandler(PracticeServiceGenerateQuestionProcedure, s.GenerateQuestion, opts...))
	mux.Handle(PracticeServiceSubmitAnswerProcedure, connect.NewUnaryHandler(PracticeServiceSubmitAnswerProcedure, s.SubmitAnswer, opts...))

	mux.Handle(LanguageServiceListLanguagesProcedure, connect.NewUnaryHandler(LanguageServiceListLanguagesProcedure, s.ListLanguages, opts...))
	return mux
}

// resolveLanguage returns the language of a request, which must be supported.
func (s *Server) resolveLanguage(requested string) (string, error) {
	if requested == "" {
		requested = s.defaultLanguage
	}
	if !language.IsSupported(requested) {
		return "", connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unsupported language %q", requested))
	}
	return requested, nil
}

func userID(ctx context.Context) string {
	id, _ := auth.UserFromContext(ctx)
	return id
}

// ListLanguages returns the supported languages.
func (s *Server) ListLanguages(
	_ context.Context,
	_ *connect.Request[ListLanguagesRequest],
) (*connect.Response[ListLanguagesResponse], error) {
	supported := language.Supported()
	languages := make([]Language, 0, len(supported))
	for _, l := range supported {
		languages = append(languages, Language{Code: l.Code, Name: l.Name})
	}
	return connect.NewResponse(&ListLanguagesResponse{
		Languages: languages,
		Default:   s.defaultLanguage,
	}), nil
}
