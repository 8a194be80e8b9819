package hub

import (
	"fmt"
	"strings"
)

// FieldError is one failed check, tied to the field that failed it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the full list of failed checks. It is returned as data so
// a form can show every problem at once; it also satisfies error for callers
// that only need to know something was wrong.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Messages returns the human-readable messages in order.
func (v ValidationErrors) Messages() []string {
	out := make([]string, len(v))
	for i, e := range v {
		out[i] = e.Message
	}
	return out
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateOverview checks that every required overview field is present.
// All checks run; an empty result means the overview is complete.
func ValidateOverview(o Overview) ValidationErrors {
	var errs ValidationErrors
	if blank(o.Title) {
		errs = append(errs, FieldError{"title", "Title is required"})
	}
	if blank(o.Description) {
		errs = append(errs, FieldError{"description", "Description is required"})
	}
	if blank(o.Author) {
		errs = append(errs, FieldError{"author", "Author is required"})
	}
	if blank(o.Category) {
		errs = append(errs, FieldError{"category", "Category is required"})
	}
	if blank(o.Image) {
		errs = append(errs, FieldError{"image", "Featured image URL is required"})
	}
	if len(FilterEmpty(o.Tags)) == 0 {
		errs = append(errs, FieldError{"tags", "At least one tag is required"})
	}
	return errs
}

// ValidateContent checks that the body has at least one block and that every
// block has a known kind and a non-blank value.
func ValidateContent(blocks []ContentBlock) ValidationErrors {
	if len(blocks) == 0 {
		return ValidationErrors{{Field: "content", Message: "Blog content cannot be empty"}}
	}
	var errs ValidationErrors
	for i, b := range blocks {
		field := fmt.Sprintf("content[%d]", i)
		n := i + 1
		switch {
		case b.Kind == "":
			errs = append(errs, FieldError{field + ".type", fmt.Sprintf("Content item %d: Type is required", n)})
		case !b.Kind.Valid():
			errs = append(errs, FieldError{field + ".type", fmt.Sprintf("Content item %d: Type %q is not supported", n, b.Kind)})
		}
		if b.Kind == KindList {
			if len(b.Items) == 0 {
				errs = append(errs, FieldError{field + ".content", fmt.Sprintf("Content item %d: List items are required", n)})
			}
			continue
		}
		if blank(b.Text) {
			errs = append(errs, FieldError{field + ".content", fmt.Sprintf("Content item %d: Content is required", n)})
		}
	}
	return errs
}
