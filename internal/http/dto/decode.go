package dto

import (
	"errors"
	"task-manager-api/internal/domain"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// DecodeCreateTask parses a create body. Type errors and domain rule
// violations are reported together in one *domain.ValidationError.
func DecodeCreateTask(body []byte) (domain.TaskCreate, error) {
	root, verr := parseObject(body)
	if verr != nil {
		return domain.TaskCreate{}, verr
	}

	verr = &domain.ValidationError{}
	var in domain.TaskCreate
	titleOK := true

	switch title := root["title"]; {
	case !title.Exists():
		verr.Add(domain.FieldError{Location: []string{"title"}, Message: "Field required", Type: domain.ErrTypeMissing})
		titleOK = false
	case title.Type != gjson.String:
		verr.Add(stringTypeError("title"))
		titleOK = false
	default:
		in.Title = title.String()
	}

	switch desc := root["description"]; {
	case !desc.Exists(), desc.Type == gjson.Null:
	case desc.Type != gjson.String:
		verr.Add(stringTypeError("description"))
	default:
		s := desc.String()
		in.Description = &s
	}

	mergeRules(verr, in.Validate(), func(fe domain.FieldError) bool {
		return titleOK || fe.Location[0] != "title"
	})

	if err := verr.Err(); err != nil {
		return domain.TaskCreate{}, err
	}
	return in, nil
}

// DecodeUpdateTask parses a partial update body. A field that is missing from
// the body stays unset; an explicit null becomes domain.Null.
func DecodeUpdateTask(body []byte) (domain.TaskUpdate, error) {
	root, verr := parseObject(body)
	if verr != nil {
		return domain.TaskUpdate{}, verr
	}

	verr = &domain.ValidationError{}
	var upd domain.TaskUpdate

	upd.Title = optionalString(verr, root, "title")
	upd.Description = optionalString(verr, root, "description")

	switch status := root["status"]; {
	case !status.Exists():
	case status.Type == gjson.Null:
		upd.Status = domain.Null[domain.TaskStatus]()
	case status.Type != gjson.String:
		verr.Add(domain.StatusError())
	default:
		st, ok := domain.ParseTaskStatus(status.String())
		if !ok {
			verr.Add(domain.StatusError())
		} else {
			upd.Status = domain.Some(st)
		}
	}

	mergeRules(verr, upd.Validate(), nil)

	if err := verr.Err(); err != nil {
		return domain.TaskUpdate{}, err
	}
	return upd, nil
}

// object holds the top-level members of a body. A key that appears more than
// once keeps its last value.
type object map[string]gjson.Result

func parseObject(body []byte) (object, *domain.ValidationError) {
	if !utf8.Valid(body) || !gjson.ValidBytes(body) {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{
			Message: "JSON decode error",
			Type:    domain.ErrTypeJSONInvalid,
		}}}
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{
			Message: "Input should be a valid dictionary or object to extract fields from",
			Type:    domain.ErrTypeModelType,
		}}}
	}

	members := make(object)
	root.ForEach(func(key, value gjson.Result) bool {
		members[key.String()] = value
		return true
	})
	return members, nil
}

func optionalString(verr *domain.ValidationError, root object, field string) domain.Optional[string] {
	v := root[field]
	switch {
	case !v.Exists():
		return domain.Optional[string]{}
	case v.Type == gjson.Null:
		return domain.Null[string]()
	case v.Type != gjson.String:
		verr.Add(stringTypeError(field))
		return domain.Optional[string]{}
	default:
		return domain.Some(v.String())
	}
}

func stringTypeError(field string) domain.FieldError {
	return domain.FieldError{Location: []string{field}, Message: "Input should be a valid string", Type: domain.ErrTypeStringType}
}

// mergeRules copies the field errors of a domain validation result into verr,
// skipping those keep rejects.
func mergeRules(verr *domain.ValidationError, err error, keep func(domain.FieldError) bool) {
	var rules *domain.ValidationError
	if !errors.As(err, &rules) {
		return
	}
	for _, fe := range rules.Fields {
		if keep == nil || keep(fe) {
			verr.Add(fe)
		}
	}
}
