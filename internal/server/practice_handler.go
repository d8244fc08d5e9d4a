package server

import (
	"context"

	"connectrpc.com/connect"
)

func (s *Server) GenerateQuestion(
	ctx context.Context,
	req *connect.Request[GenerateQuestionRequest],
) (*connect.Response[GenerateQuestionResponse], error) {
	lang, err := s.resolveLanguage(req.Msg.Language)
	if err != nil {
		return nil, err
	}
	q, err := s.practice.GenerateQuestion(ctx, userID(ctx), req.Msg.QuestionTypeID, lang)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GenerateQuestionResponse{
		QuestionID: q.QuestionID,
		Text:       q.Text,
		Expected:   q.Expected,
	}), nil
}

func (s *Server) SubmitAnswer(
	ctx context.Context,
	req *connect.Request[SubmitAnswerRequest],
) (*connect.Response[SubmitAnswerResponse], error) {
	q, err := s.practice.SubmitAnswer(ctx, userID(ctx), req.Msg.QuestionID, req.Msg.Answer)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&SubmitAnswerResponse{
		Correct:  q.IsCorrect != nil && *q.IsCorrect,
		Expected: q.Expected,
	}), nil
}
