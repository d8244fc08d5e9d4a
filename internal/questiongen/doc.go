// Package questiongen generates a question and its expected answer from the
// three templates of a question type.
//
// Generation runs in two stages. The data template binds names to values with
// lines of the form "name = expression", where expression is any Handlebars
// expression, including the word helper that looks a word up in the owner's
// dictionary. The question and answer templates are then rendered against the
// bindings collected by the first stage.
package questiongen
