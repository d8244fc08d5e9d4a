package questiongen

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(words map[string]Word) LookupWordFunc {
	return func(_ context.Context, text string) (*Word, error) {
		w, ok := words[text]
		if !ok {
			return nil, nil
		}
		return &w, nil
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   Result
	}{
		{
			name: "empty data template",
			params: Params{
				QuestionTemplate: "Q",
				AnswerTemplate:   "A",
			},
			want: Result{Text: "Q", Expected: "A"},
		},
		{
			name: "binding read from the initial context",
			params: Params{
				DataTemplate:     `x = lookup this "val"`,
				QuestionTemplate: "{{x}}",
				AnswerTemplate:   "{{x}}",
				InitialContext:   map[string]any{"val": "hello"},
			},
			want: Result{Text: "hello", Expected: "hello"},
		},
		{
			name: "word helper binds the looked up word",
			params: Params{
				DataTemplate:     "word = word text=wordText",
				QuestionTemplate: "What is the meaning of {{#with word}}{{text}}{{/with}}?",
				AnswerTemplate:   "{{#with word}}{{meaning}}{{/with}}",
				InitialContext:   map[string]any{"wordText": "chat"},
				LookupWord:       lookupFrom(map[string]Word{"chat": {Text: "chat", Meaning: "cat"}}),
			},
			want: Result{Text: "What is the meaning of chat?", Expected: "cat"},
		},
		{
			name: "word helper without a match renders nothing",
			params: Params{
				DataTemplate:     "word = word text=wordText",
				QuestionTemplate: "{{#with word}}{{text}}{{/with}}",
				AnswerTemplate:   "{{#with word}}{{meaning}}{{/with}}",
				InitialContext:   map[string]any{"wordText": "missing"},
				LookupWord:       lookupFrom(nil),
			},
			want: Result{Text: "", Expected: ""},
		},
		{
			name: "word helper with a literal text",
			params: Params{
				DataTemplate:     `w = word text="chien"`,
				QuestionTemplate: "{{w.text}}",
				AnswerTemplate:   "{{w.meaning}}",
				LookupWord:       lookupFrom(map[string]Word{"chien": {Text: "chien", Meaning: "dog"}}),
			},
			want: Result{Text: "chien", Expected: "dog"},
		},
		{
			name: "multiple lines with a blank line",
			params: Params{
				DataTemplate:     "a = lookup this \"valA\"\n\nb = lookup this \"valB\"",
				QuestionTemplate: "{{a}}-{{b}}",
				AnswerTemplate:   "{{b}}",
				InitialContext:   map[string]any{"valA": "A", "valB": "B"},
			},
			want: Result{Text: "A-B", Expected: "B"},
		},
		{
			name: "malformed line is ignored",
			params: Params{
				DataTemplate:     "x = lookup this \"valX\"\nmalformed line",
				QuestionTemplate: "{{x}}",
				AnswerTemplate:   "{{x}}",
				InitialContext:   map[string]any{"valX": "X"},
			},
			want: Result{Text: "X", Expected: "X"},
		},
		{
			name: "missing variables render as empty strings",
			params: Params{
				QuestionTemplate: "{{missing}}",
				AnswerTemplate:   "{{alsoMissing}}",
			},
			want: Result{Text: "", Expected: ""},
		},
		{
			name: "initial context is not visible to the question template",
			params: Params{
				DataTemplate:     `x = lookup this "val"`,
				QuestionTemplate: "{{val}}",
				AnswerTemplate:   "{{x}}",
				InitialContext:   map[string]any{"val": "v"},
			},
			want: Result{Text: "", Expected: "v"},
		},
		{
			name: "triple braces skip escaping",
			params: Params{
				DataTemplate:     `x = lookup this "val"`,
				QuestionTemplate: "{{{x}}}",
				AnswerTemplate:   "{{{x}}}",
				InitialContext:   map[string]any{"val": "l'eau"},
			},
			want: Result{Text: "l'eau", Expected: "l'eau"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(context.Background(), tt.params)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name        string
		params      Params
		wantData    bool
		wantMessage []string
	}{
		{
			name: "question template compile error",
			params: Params{
				QuestionTemplate: "{{#unclosed",
				AnswerTemplate:   "A",
			},
			wantMessage: []string{"Question/answer template error"},
		},
		{
			name: "answer template compile error",
			params: Params{
				QuestionTemplate: "Q",
				AnswerTemplate:   "{{#bad",
			},
			wantMessage: []string{"Question/answer template error"},
		},
		{
			name: "word lookup failure",
			params: Params{
				DataTemplate:     "word = word text=wordText",
				QuestionTemplate: "Q",
				AnswerTemplate:   "A",
				InitialContext:   map[string]any{"wordText": "chat"},
				LookupWord: func(context.Context, string) (*Word, error) {
					return nil, errors.New("DB connection failed")
				},
			},
			wantData:    true,
			wantMessage: []string{"Data template error", "DB connection failed"},
		},
		{
			name: "data template compile error",
			params: Params{
				DataTemplate:     "{{#each items}}",
				QuestionTemplate: "Q",
				AnswerTemplate:   "A",
			},
			wantData:    true,
			wantMessage: []string{"Data template error: "},
		},
		{
			name: "helper called with wrong arguments",
			params: Params{
				DataTemplate:     "x = lookup this",
				QuestionTemplate: "Q",
				AnswerTemplate:   "A",
			},
			wantData:    true,
			wantMessage: []string{"Data template error: ", "lookup"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(context.Background(), tt.params)
			require.Error(t, err)
			for _, msg := range tt.wantMessage {
				assert.Contains(t, err.Error(), msg)
			}

			var dataErr *DataTemplateError
			var templateErr *QuestionAnswerTemplateError
			if tt.wantData {
				assert.ErrorAs(t, err, &dataErr)
				assert.False(t, errors.As(err, &templateErr))
			} else {
				assert.ErrorAs(t, err, &templateErr)
				assert.False(t, errors.As(err, &dataErr))
			}
		})
	}
}

func TestGenerate_ErrorKeepsCause(t *testing.T) {
	cause := errors.New("DB connection failed")
	_, err := Generate(context.Background(), Params{
		DataTemplate: `w = word text="chat"`,
		LookupWord: func(context.Context, string) (*Word, error) {
			return nil, cause
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Data template error: DB connection failed", err.Error())
}

func TestGenerate_BlankDataTemplateSkipsLookup(t *testing.T) {
	for _, dataTemplate := range []string{"", "   ", "\n\t\n"} {
		var calls atomic.Int32
		got, err := Generate(context.Background(), Params{
			DataTemplate:     dataTemplate,
			QuestionTemplate: "Q{{word}}",
			AnswerTemplate:   "A",
			LookupWord: func(context.Context, string) (*Word, error) {
				calls.Add(1)
				return &Word{Text: "x"}, nil
			},
		})
		require.NoError(t, err)
		assert.Equal(t, Result{Text: "Q", Expected: "A"}, got)
		assert.Zero(t, calls.Load())
	}
}

func TestGenerate_WordWithoutTextSkipsLookup(t *testing.T) {
	var calls atomic.Int32
	got, err := Generate(context.Background(), Params{
		DataTemplate:     "w = word text=missing",
		QuestionTemplate: "[{{#if w}}found{{/if}}]",
		AnswerTemplate:   "",
		LookupWord: func(context.Context, string) (*Word, error) {
			calls.Add(1)
			return &Word{Text: "x"}, nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "[]", got.Text)
	assert.Zero(t, calls.Load())
}

func TestGenerate_LookupsRunConcurrently(t *testing.T) {
	var started atomic.Int32
	bothStarted := make(chan struct{})

	lookup := func(ctx context.Context, text string) (*Word, error) {
		if started.Add(1) == 2 {
			close(bothStarted)
		}
		select {
		case <-bothStarted:
		case <-time.After(2 * time.Second):
			return nil, errors.New("lookups were not started concurrently")
		}
		return &Word{Text: text, Meaning: "meaning of " + text}, nil
	}

	got, err := Generate(context.Background(), Params{
		DataTemplate:     "a = word text=\"un\"\nb = word text=\"deux\"",
		QuestionTemplate: "{{a.text}} {{b.text}}",
		AnswerTemplate:   "{{b.meaning}}",
		LookupWord:       lookup,
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Text: "un deux", Expected: "meaning of deux"}, got)
}

func TestGenerate_RenderFailureCancelsPendingLookups(t *testing.T) {
	lookupCanceled := make(chan struct{})
	lookup := func(ctx context.Context, _ string) (*Word, error) {
		select {
		case <-ctx.Done():
			close(lookupCanceled)
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return &Word{Text: "x"}, nil
		}
	}

	start := time.Now()
	_, err := Generate(context.Background(), Params{
		DataTemplate: "a = word text=\"x\"\nb = lookup this",
		LookupWord:   lookup,
	})
	require.Error(t, err)
	var dataErr *DataTemplateError
	assert.ErrorAs(t, err, &dataErr)
	assert.Less(t, time.Since(start), 2*time.Second)

	select {
	case <-lookupCanceled:
	default:
		t.Fatal("pending lookup was not canceled")
	}
}

func TestGenerate_LookupPanic(t *testing.T) {
	tests := []struct {
		name    string
		panicOf any
		wantMsg string
	}{
		{
			name:    "string",
			panicOf: "lookup exploded",
			wantMsg: "Data template error: lookup exploded",
		},
		{
			name:    "error",
			panicOf: errors.New("nil dictionary"),
			wantMsg: "Data template error: nil dictionary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(context.Background(), Params{
				DataTemplate:     `w = word text="chat"`,
				QuestionTemplate: "{{w.Text}}",
				LookupWord: func(context.Context, string) (*Word, error) {
					panic(tt.panicOf)
				},
			})
			require.Error(t, err)
			var dataErr *DataTemplateError
			assert.ErrorAs(t, err, &dataErr)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, Params{
		DataTemplate: `w = word text="chat"`,
		LookupWord: func(ctx context.Context, _ string) (*Word, error) {
			return nil, ctx.Err()
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_InitialContextIsNotModified(t *testing.T) {
	initial := map[string]any{"val": "hello"}
	_, err := Generate(context.Background(), Params{
		DataTemplate:     `val = lookup this "val"` + "\n" + `other = lookup this "val"`,
		QuestionTemplate: "{{other}}",
		InitialContext:   initial,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"val": "hello"}, initial)
}

func TestGenerate_Idempotent(t *testing.T) {
	params := Params{
		DataTemplate:     "word = word text=wordText",
		QuestionTemplate: "{{#with word}}{{text}}{{/with}}",
		AnswerTemplate:   "{{#with word}}{{meaning}}{{/with}}",
		InitialContext:   map[string]any{"wordText": "chat"},
		LookupWord:       lookupFrom(map[string]Word{"chat": {Text: "chat", Meaning: "cat"}}),
	}

	first, err := Generate(context.Background(), params)
	require.NoError(t, err)
	second, err := Generate(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name             string
		dataTemplate     string
		questionTemplate string
		answerTemplate   string
		wantErr          string
	}{
		{
			name:             "valid templates",
			dataTemplate:     "word = word text=wordText",
			questionTemplate: "{{#with word}}{{text}}{{/with}}",
			answerTemplate:   "{{word.meaning}}",
		},
		{
			name:             "invalid data template",
			dataTemplate:     "x = (lookup",
			questionTemplate: "Q",
			wantErr:          "Data template error",
		},
		{
			name:             "invalid question template",
			questionTemplate: "{{#if x}}",
			wantErr:          "Question/answer template error",
		},
		{
			name:           "invalid answer template",
			answerTemplate: "{{/if}}",
			wantErr:        "Question/answer template error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.dataTemplate, tt.questionTemplate, tt.answerTemplate)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
