package post

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "golang.org/x/image/webp"

	"yatube/pkg/group"
)

const (
	msgRequired     = "This field is required."
	msgBadChoice    = "Select a valid choice. That choice is not one of the available choices."
	msgEmptyFile    = "The submitted file is empty."
	msgBadImage     = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	msgFileTooLarge = "The submitted file is too large."
)

var validate = validator.New()

type Upload struct {
	Filename string
	Data     []byte
}

type PostForm struct {
	Text  string `validate:"required"`
	Group string

	// Filled by Validate from Group.
	GroupID int64
	group   *group.Group

	Image        *Upload
	ClearImage   bool
	CurrentImage string

	Errors map[string]string
}

type CommentForm struct {
	Text   string `validate:"required"`
	Errors map[string]string
}

type IGroupGetter interface {
	GetById(context.Context, int64) (*group.Group, error)
}

// Text fields above this size are refused.
const maxFieldBytes = 1 << 20

// ParsePostForm reads a create/edit submission part by part. An image over
// maxBytes is drained and reported as a field error, text fields are kept.
// Other read failures are returned.
func ParsePostForm(w http.ResponseWriter, r *http.Request, maxBytes int64) (*PostForm, error) {
	form := &PostForm{Errors: map[string]string{}}
	r.Body = http.MaxBytesReader(w, r.Body, 2*maxBytes+maxFieldBytes)

	mr, err := r.MultipartReader()
	if errors.Is(err, http.ErrNotMultipart) {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("post/forms: bad form: %w", err)
		}
		form.fill(r.PostForm)
		return form, nil
	}
	if err != nil {
		return nil, fmt.Errorf("post/forms: bad multipart form: %w", err)
	}

	values := url.Values{}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if tooLarge(err) {
			form.Errors["image"] = msgFileTooLarge
			break
		}
		if err != nil {
			return nil, fmt.Errorf("post/forms: bad multipart form: %w", err)
		}

		name := part.FormName()
		if part.FileName() == "" {
			b, err := io.ReadAll(io.LimitReader(part, maxFieldBytes+1))
			if err != nil {
				return nil, fmt.Errorf("post/forms: can't read field %s: %w", name, err)
			}
			if len(b) > maxFieldBytes {
				return nil, fmt.Errorf("post/forms: field %s is too large", name)
			}
			values.Add(name, string(b))
			continue
		}
		if name != "image" {
			if _, err := io.Copy(io.Discard, part); err != nil {
				return nil, fmt.Errorf("post/forms: can't skip file %s: %w", name, err)
			}
			continue
		}

		data, err := io.ReadAll(io.LimitReader(part, maxBytes+1))
		if tooLarge(err) {
			form.Errors["image"] = msgFileTooLarge
			break
		}
		if err != nil {
			return nil, fmt.Errorf("post/forms: can't read image: %w", err)
		}
		if int64(len(data)) > maxBytes {
			form.Errors["image"] = msgFileTooLarge
			if _, err := io.Copy(io.Discard, part); tooLarge(err) {
				break
			} else if err != nil {
				return nil, fmt.Errorf("post/forms: can't read image: %w", err)
			}
			continue
		}
		form.Image = &Upload{Filename: part.FileName(), Data: data}
	}

	form.fill(values)
	return form, nil
}

func (f *PostForm) fill(values url.Values) {
	f.Text = strings.TrimSpace(values.Get("text"))
	f.Group = strings.TrimSpace(values.Get("group"))
	f.ClearImage = values.Get("image-clear") == "on"
}

// tooLarge reports whether the body hit the MaxBytesReader cap.
func tooLarge(err error) bool {
	return err != nil && strings.Contains(err.Error(), "request body too large")
}

// Valid checks the form and resolves the selected group.
func (f *PostForm) Valid(ctx context.Context, groups IGroupGetter) (bool, error) {
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}

	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return false, err
		}
		for _, fe := range verrs {
			f.Errors[strings.ToLower(fe.Field())] = msgRequired
		}
	}

	if f.Group != "" {
		id, err := strconv.ParseInt(f.Group, 10, 64)
		if err != nil {
			f.Errors["group"] = msgBadChoice
		} else {
			g, err := groups.GetById(ctx, id)
			switch {
			case errors.Is(err, group.ErrNotFound):
				f.Errors["group"] = msgBadChoice
			case err != nil:
				return false, err
			default:
				f.GroupID = g.Id
				f.group = g
			}
		}
	}

	if f.Image != nil {
		if len(f.Image.Data) == 0 {
			f.Errors["image"] = msgEmptyFile
		} else if _, _, err := image.DecodeConfig(bytes.NewReader(f.Image.Data)); err != nil {
			f.Errors["image"] = msgBadImage
		}
	}

	return len(f.Errors) == 0, nil
}

func ParseCommentForm(r *http.Request) (*CommentForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("post/forms: bad comment form: %w", err)
	}
	return &CommentForm{
		Text:   strings.TrimSpace(r.PostFormValue("text")),
		Errors: map[string]string{},
	}, nil
}

func (f *CommentForm) Valid() bool {
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	if err := validate.Struct(f); err != nil {
		f.Errors["text"] = msgRequired
	}
	return len(f.Errors) == 0
}
