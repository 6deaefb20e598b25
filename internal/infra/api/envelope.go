package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"staykit/internal/pkg/errs"
	"staykit/internal/transport"
	"staykit/internal/usecase/queries"
)

// The backend is inconsistent about list shapes: some endpoints answer
// with a bare JSON array, others wrap the items in {"data": [...],
// "meta": {...}}. listPayload absorbs both so callers upstream of this
// package always see items plus meta.
type listPayload[T any] struct {
	Items []T
	Meta  queries.ListMeta
}

type listEnvelope[T any] struct {
	Data []T              `json:"data"`
	Meta queries.ListMeta `json:"meta"`
}

func (p *listPayload[T]) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return errs.New("empty list payload")
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		p.Items = items
		p.Meta = syntheticMeta(len(items))
		return nil
	}

	var envelope listEnvelope[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return err
	}
	p.Items = envelope.Data
	p.Meta = envelope.Meta
	if p.Meta.Total == 0 && len(envelope.Data) > 0 {
		p.Meta = syntheticMeta(len(envelope.Data))
	}
	return nil
}

// syntheticMeta stands in for pagination info on endpoints that never
// paginate: everything fits on a single page.
func syntheticMeta(n int) queries.ListMeta {
	return queries.ListMeta{
		Total:      n,
		Page:       1,
		PageSize:   n,
		TotalPages: 1,
	}
}

// dataEnvelope unwraps single-object responses of the {"data": {...}}
// shape; endpoints returning the object directly skip this.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// markNotFound tags a 404 with the entity's sentinel so callers can
// tell "gone" apart from transient failures.
func markNotFound(err error, sentinel error) error {
	var apiErr *transport.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return errs.Mark(err, sentinel)
	}
	return err
}
