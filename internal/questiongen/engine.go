package questiongen

import (
	"fmt"

	"github.com/aymerick/raymond"
)

// compile parses source into a new template instance and registers helpers on
// that instance only, so nothing leaks into other templates.
func compile(source string, helpers map[string]any) (tpl *raymond.Template, err error) {
	tpl, err = raymond.Parse(source)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			tpl, err = nil, panicToError(r)
		}
	}()
	for name, helper := range helpers {
		tpl.RegisterHelper(name, helper)
	}
	return tpl, nil
}

// execute renders tpl once. Helpers report failures by panicking, and raymond
// only converts some of these panics into errors.
func execute(tpl *raymond.Template, data any) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = "", panicToError(r)
		}
	}()
	return tpl.Exec(data)
}

func panicToError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
