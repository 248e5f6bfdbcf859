package domain

import (
	"fmt"
	"unicode/utf8"
)

const (
	TitleMinLen       = 1
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
)

type TaskCreate struct {
	Title       string
	Description *string
}

// TaskUpdate carries a partial update. Fields that are not Set are left alone.
type TaskUpdate struct {
	Title       Optional[string]
	Description Optional[string]
	Status      Optional[TaskStatus]
}

func (c TaskCreate) Validate() error {
	verr := &ValidationError{}
	checkTitle(verr, c.Title)
	if c.Description != nil {
		checkDescription(verr, *c.Description)
	}
	return verr.Err()
}

func (u TaskUpdate) Validate() error {
	verr := &ValidationError{}

	if u.Title.Set() {
		if title, ok := u.Title.Get(); ok {
			checkTitle(verr, title)
		} else {
			// a task always keeps a title
			verr.Add(FieldError{Location: []string{"title"}, Message: "Input should be a valid string", Type: ErrTypeStringType})
		}
	}

	if desc, ok := u.Description.Get(); ok {
		checkDescription(verr, desc)
	}

	if u.Status.Set() {
		st, ok := u.Status.Get()
		if !ok || !st.Valid() {
			verr.Add(StatusError())
		}
	}

	return verr.Err()
}

// Apply returns a copy of t with every field present in u applied.
func (u TaskUpdate) Apply(t Task) Task {
	out := t
	if title, ok := u.Title.Get(); ok {
		out.Title = title
	}
	if u.Description.Set() {
		if desc, ok := u.Description.Get(); ok {
			out.Description = &desc
		} else {
			out.Description = nil
		}
	}
	if st, ok := u.Status.Get(); ok {
		out.Status = st
	}
	return out
}

func checkTitle(verr *ValidationError, title string) {
	n := utf8.RuneCountInString(title)
	switch {
	case n < TitleMinLen:
		verr.Add(FieldError{
			Location: []string{"title"},
			Message:  fmt.Sprintf("String should have at least %d character", TitleMinLen),
			Type:     ErrTypeStringTooShort,
		})
	case n > TitleMaxLen:
		verr.Add(FieldError{
			Location: []string{"title"},
			Message:  fmt.Sprintf("String should have at most %d characters", TitleMaxLen),
			Type:     ErrTypeStringTooLong,
		})
	}
}

func checkDescription(verr *ValidationError, desc string) {
	if utf8.RuneCountInString(desc) > DescriptionMaxLen {
		verr.Add(FieldError{
			Location: []string{"description"},
			Message:  fmt.Sprintf("String should have at most %d characters", DescriptionMaxLen),
			Type:     ErrTypeStringTooLong,
		})
	}
}

// StatusError is the field error reported for a status outside the enum.
func StatusError() FieldError {
	return FieldError{
		Location: []string{"status"},
		Message:  "Input should be 'created', 'in_progress' or 'completed'",
		Type:     ErrTypeEnum,
	}
}
