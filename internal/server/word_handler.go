package server

import (
	"context"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/langdrill/internal/word"
)

func (s *Server) ListWords(
	ctx context.Context,
	req *connect.Request[ListWordsRequest],
) (*connect.Response[ListWordsResponse], error) {
	lang, err := s.resolveLanguage(req.Msg.Language)
	if err != nil {
		return nil, err
	}
	words, err := s.words.List(ctx, userID(ctx), lang)
	if err != nil {
		return nil, toConnectError(err)
	}

	result := make([]Word, 0, len(words))
	for _, w := range words {
		result = append(result, toWordMessage(w))
	}
	return connect.NewResponse(&ListWordsResponse{Words: result}), nil
}

func (s *Server) GetWord(
	ctx context.Context,
	req *connect.Request[GetWordRequest],
) (*connect.Response[GetWordResponse], error) {
	lang, err := s.resolveLanguage(req.Msg.Language)
	if err != nil {
		return nil, err
	}
	w, err := s.words.Get(ctx, userID(ctx), req.Msg.ID, lang)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetWordResponse{Word: toWordMessage(*w)}), nil
}

func (s *Server) CreateWord(
	ctx context.Context,
	req *connect.Request[CreateWordRequest],
) (*connect.Response[CreateWordResponse], error) {
	lang, err := s.resolveLanguage(req.Msg.Language)
	if err != nil {
		return nil, err
	}
	id, err := s.words.Create(ctx, userID(ctx), word.CreateInput{
		Language: lang,
		Text:     req.Msg.Text,
		Type:     word.Type(req.Msg.Type),
		Meaning:  req.Msg.Meaning,
		Tags:     req.Msg.Tags,
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&CreateWordResponse{ID: id}), nil
}

func (s *Server) UpdateWord(
	ctx context.Context,
	req *connect.Request[UpdateWordRequest],
) (*connect.Response[UpdateWordResponse], error) {
	if err := s.words.Update(ctx, userID(ctx), req.Msg.ID, word.UpdateInput{
		Text:    req.Msg.Text,
		Type:    word.Type(req.Msg.Type),
		Meaning: req.Msg.Meaning,
		Tags:    req.Msg.Tags,
	}); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&UpdateWordResponse{}), nil
}

func toWordMessage(w word.Word) Word {
	return Word{
		ID:       w.ID,
		Language: w.Language,
		Text:     w.Text,
		Type:     string(w.Type),
		Meaning:  w.Meaning,
		Tags:     w.Tags,
	}
}
