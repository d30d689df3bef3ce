package rendering

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/inspector/pkg/errors"
)

// EncodeGradient returns the text form of g, suitable for copy and paste.
func EncodeGradient(g Gradient) string {
	return encode("rendering.EncodeGradient", g)
}

// DecodeGradient parses text produced by EncodeGradient. Malformed input
// is reported and yields nil.
func DecodeGradient(text string) *Gradient {
	var g Gradient
	if !decode("rendering.DecodeGradient", "Gradient", text, &g) {
		return nil
	}
	if err := g.Validate(); err != nil {
		reportCodec("rendering.DecodeGradient", "Gradient", err)
		return nil
	}
	return &g
}

// EncodeCurve returns the text form of c, suitable for copy and paste.
func EncodeCurve(c Curve) string {
	return encode("rendering.EncodeCurve", c)
}

// DecodeCurve parses text produced by EncodeCurve. Malformed input is
// reported and yields nil.
func DecodeCurve(text string) *Curve {
	var c Curve
	if !decode("rendering.DecodeCurve", "Curve", text, &c) {
		return nil
	}
	return &c
}

func encode(op string, v any) string {
	data, err := yaml.Marshal(v)
	if err != nil {
		reportCodec(op, fmt.Sprintf("%T", v), err)
		return ""
	}
	return string(data)
}

func decode(op, typ, text string, out any) bool {
	if text == "" {
		reportCodec(op, typ, errors.New("empty input"))
		return false
	}
	if err := yaml.Unmarshal([]byte(text), out); err != nil {
		reportCodec(op, typ, err)
		return false
	}
	return true
}

func reportCodec(op, typ string, err error) {
	errors.Report(&errors.BindError{
		Op:        op,
		Kind:      errors.KindCodec,
		Type:      typ,
		Err:       err,
		Timestamp: time.Now(),
	})
}
