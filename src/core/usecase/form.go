package usecase

// FormRejection is the structured payload returned to a form that failed
// validation or a business check. It is reported with HTTP 400 and carries the
// submitted values so the client can re-populate the form.
//
// Rejections are ordinary values, not errors: only upstream failures (the
// database being down, hashing failing) travel through error returns.
type FormRejection struct {
	// FieldErrors maps field names to their validation messages.
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`

	// FormError is a failure not attributable to a single field.
	FormError string `json:"formError,omitempty"`

	// Fields echoes the submitted values.
	Fields map[string]string `json:"fields,omitempty"`
}
