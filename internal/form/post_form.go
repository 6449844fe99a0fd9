package form

import "github.com/go-playground/validator/v10"

// PostSchema describes the post create/edit form. The image field is a file
// input handled outside normal binding.
var PostSchema = Schema{
	{Name: "text", Label: "Post text", HelpText: "Text of the new post", Required: true, Kind: KindText},
	{Name: "group", Label: "Group", HelpText: "Group this post belongs to", Required: false, Kind: KindChoice},
	{Name: "image", Label: "Image", HelpText: "Optional image", Required: false, Kind: KindImage},
}

// PostForm carries the bound values of a post submission.
type PostForm struct {
	Text    string `form:"text" validate:"required"`
	GroupID *uint  `form:"group" validate:"omitempty,gt=0"`
}

func (f *PostForm) Validate() Errors {
	errs := Errors{}
	if err := validate.Struct(f); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "Text":
				errs["text"] = "This field is required."
			case "GroupID":
				errs["group"] = "Select a valid group."
			}
		}
	}
	return errs
}
