package elements

import (
	"strconv"

	"github.com/go-drift/inspector/pkg/core"
	"github.com/go-drift/inspector/pkg/errors"
)

func init() {
	core.SetErrorElementBuilder(ErrorHelpBox)
}

// ErrorHelpBox renders a build failure as a read-only error help box.
func ErrorHelpBox(err *errors.BuildError) core.Element {
	h := NewHelpBox(core.NewErrorElement(err).Message(), MessageError)
	h.SetInteractable(false)
	return h
}

func itoa(n int) string { return strconv.Itoa(n) }
