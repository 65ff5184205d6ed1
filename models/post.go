package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-playground/validator/v10"
)

// Post is a single blog entry as served by the backend.
// The identifier is always `id`; older backend revisions that used `_id`
// are normalised at their own boundary (see BlogDocument).
type Post struct {
	ID    string   `json:"id" validate:"required"`
	Title string   `json:"title" validate:"required"`
	Text  string   `json:"text"`
	Story string   `json:"story"`
	Date  string   `json:"date"`
	Files []string `json:"files"`
	Tags  []string `json:"tags,omitempty"`
}

// NewPostInput is the payload the admin editor submits.
type NewPostInput struct {
	Title string   `json:"title" validate:"required"`
	Text  string   `json:"text" validate:"required"`
	Story string   `json:"story" validate:"required"`
	Tags  []string `json:"tags"`
	Date  string   `json:"date,omitempty"`
}

var validate = validator.New()

// Timestamp parses Date. ok is false when the date is missing or unparseable.
func (p Post) Timestamp() (t time.Time, ok bool) {
	return ParseDate(p.Date)
}

// Validate checks the invariants a post must satisfy to be displayed.
func (p Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return describe(err)
	}
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title must not be blank")
	}
	return nil
}

// Normalize trims the submission and fills the date with today when empty.
func (in NewPostInput) Normalize(now time.Time) NewPostInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Story = strings.TrimSpace(in.Story)
	tags := make([]string, 0, len(in.Tags))
	for _, tag := range in.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	in.Tags = tags
	if strings.TrimSpace(in.Date) == "" {
		in.Date = now.Format("2006-01-02")
	}
	return in
}

func (in NewPostInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return describe(err)
	}
	if in.Date != "" {
		if _, ok := ParseDate(in.Date); !ok {
			return fmt.Errorf("date %q is not a valid ISO-8601 date", in.Date)
		}
	}
	return nil
}

// ParseDate accepts the ISO-8601 forms the backend has produced over time
// (plain dates and full timestamps).
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseStrict(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, ", "))
}
