// Package form declares the user-facing forms as static schemas: field
// names, labels, help texts and kinds are plain data consulted by templates
// and tests instead of being introspected from anywhere.
package form

import "github.com/go-playground/validator/v10"

type Kind string

const (
	KindText   Kind = "text"
	KindChoice Kind = "choice"
	KindImage  Kind = "image"
)

type Field struct {
	Name     string
	Label    string
	HelpText string
	Required bool
	Kind     Kind
}

// Schema is an ordered field list for one form.
type Schema []Field

func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var validate = validator.New()

// Errors maps field name to a display message for re-rendering.
type Errors map[string]string

func (e Errors) Empty() bool { return len(e) == 0 }
