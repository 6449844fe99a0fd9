package form

import "github.com/go-playground/validator/v10"

var CommentSchema = Schema{
	{Name: "text", Label: "Comment text", HelpText: "Text of the new comment", Required: true, Kind: KindText},
}

type CommentForm struct {
	Text string `form:"text" validate:"required"`
}

func (f *CommentForm) Validate() Errors {
	errs := Errors{}
	if err := validate.Struct(f); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			if fe.Field() == "Text" {
				errs["text"] = "This field is required."
			}
		}
	}
	return errs
}
