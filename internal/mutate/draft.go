package mutate

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shopbook/bookdesk/internal/catalog"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Draft holds the fields of a create or update form, edited independently of
// any fetched view state. Image is the persisted server-relative path;
// NewImagePath names a newly chosen local file and is empty when the image is
// unchanged.
type Draft struct {
	Name         string  `validate:"required"`
	Category     string  `validate:"required"`
	ID           string  `validate:"-"`
	Price        float64 `validate:"required,gte=0"`
	Discount     int     `validate:"gte=0,lte=100"`
	Author       string  `validate:"required"`
	Publisher    string  `validate:"required"`
	Image        string  `validate:"-"`
	NewImagePath string  `validate:"-"`
}

// DraftFromBook seeds an update draft from a fetched record.
func DraftFromBook(b catalog.Book) Draft {
	return Draft{
		Name:      b.Name,
		Category:  b.Category,
		ID:        b.ID,
		Price:     b.Price,
		Discount:  b.Discount,
		Author:    b.Author,
		Publisher: b.Publisher,
		Image:     b.Image,
	}
}

// Form converts the draft into the multipart fields submitted to the API.
func (d Draft) Form() catalog.BookForm {
	return catalog.BookForm{
		Name:      strings.TrimSpace(d.Name),
		Category:  d.Category,
		ID:        d.ID,
		Price:     d.Price,
		Discount:  d.Discount,
		Author:    strings.TrimSpace(d.Author),
		Publisher: strings.TrimSpace(d.Publisher),
		ImagePath: d.NewImagePath,
	}
}

// Validate checks the required-field set for the operation before any network
// call is made. Update requires name, price, and author; create additionally
// requires the category and publisher, and the category must be a known code.
func (d Draft) Validate(op Op) error {
	switch op {
	case OpUpdate:
		if err := validate.StructPartial(d, "Name", "Price", "Discount", "Author"); err != nil {
			return validationError(err)
		}
	case OpCreate:
		if err := validate.Struct(d); err != nil {
			return validationError(err)
		}
		if !catalog.ValidCategory(d.Category) {
			return &catalog.ValidationError{Field: "category", Message: "unknown category code"}
		}
	}
	return nil
}

// validationError converts the first validator failure into the displayable
// taxonomy used everywhere else.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return &catalog.ValidationError{Field: field, Message: "is required"}
		case "gte", "lte":
			return &catalog.ValidationError{Field: field, Message: "is out of range"}
		}
		return &catalog.ValidationError{Field: field, Message: "is invalid"}
	}
	return &catalog.ValidationError{Message: err.Error()}
}
