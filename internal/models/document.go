package models

import "fmt"

// IDField is the key under which every stored document exposes its identifier.
const IDField = "_id"

// Document is a schemaless record as posted by the client. Scholarships,
// applications and reviews are all stored this way.
type Document map[string]interface{}

// ID returns the document identifier in its string form, or "" when unset.
func (d Document) ID() string {
	v, ok := d[IDField]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if h, ok := v.(interface{ Hex() string }); ok {
		return h.Hex()
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// Name returns the top-level "name" field used by scholarship search.
func (d Document) Name() string {
	s, _ := d["name"].(string)
	return s
}

// OwnerEmail returns userData.email, the embedded applicant/reviewer email.
func (d Document) OwnerEmail() string {
	userData, ok := d["userData"].(map[string]interface{})
	if !ok {
		if typed, ok := d["userData"].(Document); ok {
			userData = typed
		}
	}
	email, _ := userData["email"].(string)
	return email
}

// WithoutID returns a shallow copy with the identifier removed. Stores
// generate ids themselves and never let a patch rewrite one.
func (d Document) WithoutID() Document {
	out := make(Document, len(d))
	for k, v := range d {
		if k == IDField {
			continue
		}
		out[k] = v
	}
	return out
}
