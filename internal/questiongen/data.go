package questiongen

import (
	"context"
	"log/slog"

	"github.com/aymerick/raymond"
	"golang.org/x/sync/errgroup"
)

// pendingWord is stored in place of a word lookup that has not finished yet.
// word is written by the lookup goroutine and read only after the group is waited on.
type pendingWord struct {
	word *Word
}

func (p *pendingWord) value() any {
	if p.word == nil {
		return nil
	}
	return *p.word
}

// runDataStep collects the bindings of dataTemplate in two phases. Rendering
// stores plain values directly and starts word lookups in the background;
// settling then waits for every lookup and replaces the placeholders.
func runDataStep(
	ctx context.Context,
	dataTemplate string,
	initialContext map[string]any,
	lookupWord LookupWordFunc,
) (map[string]any, error) {
	data := make(map[string]any)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	helpers := map[string]any{
		storeHelperName: func(name string, value any) string {
			data[name] = value
			return ""
		},
		"word": func(options *raymond.Options) any {
			text, ok := options.HashProp("text").(string)
			if !ok {
				return nil
			}
			pending := &pendingWord{}
			g.Go(func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = panicToError(r)
					}
				}()
				word, err := lookupWord(gctx, text)
				if err != nil {
					return err
				}
				pending.word = word
				return nil
			})
			return pending
		},
	}

	tpl, err := compile(transformDataTemplate(dataTemplate), helpers)
	if err != nil {
		cancel()
		_ = g.Wait()
		return nil, err
	}

	if initialContext == nil {
		initialContext = map[string]any{}
	}
	if _, err := execute(tpl, initialContext); err != nil {
		cancel()
		_ = g.Wait()
		return nil, err
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	for name, value := range data {
		if pending, ok := value.(*pendingWord); ok {
			data[name] = pending.value()
		}
	}

	slog.Default().Debug("data template resolved", "bindings", len(data))
	return data, nil
}
