package server

import (
	"context"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/langdrill/internal/questiontype"
)

func (s *Server) ListQuestionTypes(
	ctx context.Context,
	req *connect.Request[ListQuestionTypesRequest],
) (*connect.Response[ListQuestionTypesResponse], error) {
	lang, err := s.resolveLanguage(req.Msg.Language)
	if err != nil {
		return nil, err
	}
	questionTypes, err := s.questionTypes.List(ctx, userID(ctx), lang)
	if err != nil {
		return nil, toConnectError(err)
	}

	result := make([]QuestionType, 0, len(questionTypes))
	for _, qt := range questionTypes {
		result = append(result, toQuestionTypeMessage(qt))
	}
	return connect.NewResponse(&ListQuestionTypesResponse{QuestionTypes: result}), nil
}

func (s *Server) GetQuestionType(
	ctx context.Context,
	req *connect.Request[GetQuestionTypeRequest],
) (*connect.Response[GetQuestionTypeResponse], error) {
	lang, err := s.resolveLanguage(req.Msg.Language)
	if err != nil {
		return nil, err
	}
	qt, err := s.questionTypes.Get(ctx, userID(ctx), req.Msg.ID, lang)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetQuestionTypeResponse{QuestionType: toQuestionTypeMessage(*qt)}), nil
}

func (s *Server) CreateQuestionType(
	ctx context.Context,
	req *connect.Request[CreateQuestionTypeRequest],
) (*connect.Response[CreateQuestionTypeResponse], error) {
	lang, err := s.resolveLanguage(req.Msg.Language)
	if err != nil {
		return nil, err
	}
	id, err := s.questionTypes.Create(ctx, userID(ctx), questiontype.CreateInput{
		Language:         lang,
		Name:             req.Msg.Name,
		DataTemplate:     req.Msg.DataTemplate,
		QuestionTemplate: req.Msg.QuestionTemplate,
		AnswerTemplate:   req.Msg.AnswerTemplate,
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&CreateQuestionTypeResponse{ID: id}), nil
}

func (s *Server) UpdateQuestionType(
	ctx context.Context,
	req *connect.Request[UpdateQuestionTypeRequest],
) (*connect.Response[UpdateQuestionTypeResponse], error) {
	if err := s.questionTypes.Update(ctx, userID(ctx), req.Msg.ID, questiontype.UpdateInput{
		Name:             req.Msg.Name,
		DataTemplate:     req.Msg.DataTemplate,
		QuestionTemplate: req.Msg.QuestionTemplate,
		AnswerTemplate:   req.Msg.AnswerTemplate,
	}); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&UpdateQuestionTypeResponse{}), nil
}

func toQuestionTypeMessage(qt questiontype.QuestionType) QuestionType {
	return QuestionType{
		ID:               qt.ID,
		Language:         qt.Language,
		Name:             qt.Name,
		DataTemplate:     qt.DataTemplate,
		QuestionTemplate: qt.QuestionTemplate,
		AnswerTemplate:   qt.AnswerTemplate,
	}
}
