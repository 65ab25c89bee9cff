package business

// ToastPosition is where the front-end displays a validation toast
type ToastPosition string

const (
	ToastPositionBottomRight ToastPosition = "bottom-right"
)

// ToastValidation is the outcome of a pre-submission check.
// An empty Message means the payload may be submitted.
type ToastValidation struct {
	Message  string        `json:"message"`
	Position ToastPosition `json:"position,omitempty"`
}

// Valid reports whether the validation passed
func (v ToastValidation) Valid() bool {
	return v.Message == ""
}
