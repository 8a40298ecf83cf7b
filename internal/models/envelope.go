package models

import "encoding/json"

// Envelope is the JSON wrapper used by every API response.
// Success is a pointer so that an absent field can be told apart from false.
type Envelope struct {
	Success *bool           `json:"success,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// HasData reports whether the envelope carries a non-null data field.
func (e Envelope) HasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}

// UploadResult is returned by the image upload endpoint.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
}
