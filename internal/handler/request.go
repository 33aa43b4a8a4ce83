package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// dateLayout is the wire format for calendar dates in request and response
// bodies. Timestamps use RFC 3339 as encoding/json does by default.
const dateLayout = "2006-01-02"

// pathUUID parses the named chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s is not a valid UUID", name)
	}
	return id, nil
}

// decodeBody decodes the JSON request body into dst, rejecting unknown fields
// so client typos surface as 422s instead of silently dropped data.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.New("request body is malformed")
	}
	return nil
}

// apiDate marshals as a bare "2006-01-02" string. An empty apiDate renders
// as "" and parses from "" to the zero time, letting optional dates round-trip
// without pointer juggling.
type apiDate struct {
	time.Time
}

func (d apiDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *apiDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("date must be in %s format", dateLayout)
	}
	d.Time = t
	return nil
}
