// Package humanize is the client side of the humanizer.
//
// It reads a form state (text, mode, ultra), posts it to a remote
// humanize endpoint and renders the returned text and confidence score
// into a View.
//
// Responsibilities:
//   - Apply form defaults (mode "standard", ultra false).
//   - Reject blank text before any network activity.
//   - Issue exactly one POST per invocation.
//   - Render the result, or alert the user when anything fails.
package humanize

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// DefaultMode is sent when the form has no mode selector (or it is empty).
const DefaultMode = "standard"

// Alert messages shown to the user.
const (
	AlertEmptyText     = "Please enter some text"
	AlertBackendFailed = "Backend connection failed. Check console."
)

// scorePrefix is prepended to the confidence in the score field.
const scorePrefix = "Human-Style Confidence: "

// FormState is a snapshot of the page inputs at the moment of the action.
//
// Mode is empty when the selector is absent. Ultra is false when the
// toggle is absent or unchecked.
type FormState struct {
	Text  string
	Mode  string
	Ultra bool
}

// Request is the JSON body posted to the humanize endpoint.
//
// Mode and Ultra are opaque to the client: they are passed through as-is.
type Request struct {
	Text  string `json:"text" validate:"notblank"`
	Mode  string `json:"mode"`
	Ultra bool   `json:"ultra"`
}

// Response is the JSON body returned by the humanize endpoint.
// Missing fields decode to their zero values ("" and 0).
type Response struct {
	Result               string  `json:"result"`
	HumanStyleConfidence float64 `json:"human_style_confidence"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank is not a built-in tag; it rejects whitespace-only strings.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Request builds the outgoing request, trimming the text and
// substituting defaults for absent form elements.
func (s FormState) Request() Request {
	mode := s.Mode
	if mode == "" {
		mode = DefaultMode
	}

	return Request{
		Text:  strings.TrimSpace(s.Text),
		Mode:  mode,
		Ultra: s.Ultra,
	}
}

// Validate reports ErrEmptyText when the text is blank.
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return ErrEmptyText
	}
	return nil
}

// FormatScore renders the confidence the way the score field expects it,
// e.g. 87 -> "Human-Style Confidence: 87%".
func FormatScore(confidence float64) string {
	return scorePrefix + formatNumber(confidence) + "%"
}

// formatNumber prints v like a JavaScript Number converted to a string:
// shortest round-trip digits, plain notation in [1e-6, 1e21) and
// exponent notation without zero padding outside it ("1e+21", "1.5e-7").
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// Covers negative zero, which prints as "0".
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	mantissa, sign, exp := s[:i], s[i+1:i+2], strings.TrimLeft(s[i+2:], "0")
	return mantissa + "e" + sign + exp
}
