package rendering

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/inspector/pkg/errors"
)

type codecHandler struct {
	errors.LogHandler
	errs []*errors.BindError
}

func (h *codecHandler) HandleError(err *errors.BindError) { h.errs = append(h.errs, err) }

func TestGradientCodec(t *testing.T) {
	g := Gradient{
		Mode:      GradientFixed,
		ColorKeys: []ColorKey{{Color: ColorRed, Time: 0}, {Color: ColorBlue, Time: 0.5}},
		AlphaKeys: []AlphaKey{{Alpha: 0.25, Time: 1}},
	}
	text := EncodeGradient(g)
	if !strings.Contains(text, "#FF0000FF") || !strings.Contains(text, "fixed") {
		t.Errorf("encoded text:\n%s", text)
	}
	got := DecodeGradient(text)
	if got == nil {
		t.Fatal("DecodeGradient returned nil")
	}
	if diff := cmp.Diff(g, *got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCurveCodec(t *testing.T) {
	c := NewLinearCurve(0, 1, 1, 3)
	got := DecodeCurve(EncodeCurve(c))
	if got == nil {
		t.Fatal("DecodeCurve returned nil")
	}
	if diff := cmp.Diff(c, *got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCodecReportsMalformedInput(t *testing.T) {
	h := &codecHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)

	inputs := []struct {
		name   string
		decode func() bool
	}{
		{"empty gradient", func() bool { return DecodeGradient("") == nil }},
		{"bad yaml", func() bool { return DecodeGradient("mode: [") == nil }},
		{"bad color", func() bool { return DecodeGradient("colorKeys:\n  - color: nope\n") == nil }},
		{"bad mode", func() bool { return DecodeGradient("mode: wavy\n") == nil }},
		{"out of range", func() bool { return DecodeGradient("alphaKeys:\n  - alpha: 3\n") == nil }},
		{"bad curve", func() bool { return DecodeCurve("keys: 12") == nil }},
	}
	for _, in := range inputs {
		if !in.decode() {
			t.Errorf("%s: expected nil result", in.name)
		}
	}
	if len(h.errs) != len(inputs) {
		t.Fatalf("reported %d errors, want %d", len(h.errs), len(inputs))
	}
	for _, err := range h.errs {
		if err.Kind != errors.KindCodec {
			t.Errorf("kind = %v, want codec", err.Kind)
		}
	}
}
