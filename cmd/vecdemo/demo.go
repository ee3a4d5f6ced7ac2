package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/vecmath/internal/config"
	"github.com/Faultbox/vecmath/internal/logger"
	vmath "github.com/Faultbox/vecmath/pkg/math"
)

// runDemo prints every vector operation applied to the configured operands.
// A failing operation is reported on its own line and does not stop the run.
func runDemo(w io.Writer, vc config.VectorsConfig) {
	v1, v2, k := vc.A.Vec(), vc.B.Vec(), vc.Scalar

	logger.Debug("running demo",
		zap.Stringer("v1", v1),
		zap.Stringer("v2", v2),
		zap.Float64("scalar", k))

	line := func(label string, result any) {
		fmt.Fprintf(w, "%-40s %v\n", label+":", result)
	}
	failed := func(label string, err error) {
		logger.Warn("operation failed", zap.String("op", label), zap.Error(err))
		line(label, "error: "+err.Error())
	}

	line("v1", v1)
	line("v2", v2)
	line("v1 (detailed)", fmt.Sprintf("%#v", v1))
	line("Addition", v1.Add(v2))
	line("Subtraction", v1.Sub(v2))
	line("Dot Product", v1.Dot(v2))
	line(fmt.Sprintf("Scalar Multiplication (v1 * %v)", k), v1.Scale(k))
	line(fmt.Sprintf("Scalar Multiplication (%v * v1)", k), vmath.Scale(k, v1))

	label := fmt.Sprintf("Scalar Division (v1 / %v)", k)
	if q, err := v1.Div(k); err != nil {
		failed(label, err)
	} else {
		line(label, q)
	}

	line("Magnitude of v1", v1.Length())

	if n, err := v1.Normalize(); err != nil {
		failed("Normalized v1", err)
	} else {
		line("Normalized v1", n)
	}

	line("Angle between v1 and v2 (radians)", v1.AngleBetween(v2))
	line("Equality check", v1.Equal(v2))
	line("Negation of v1", v1.Neg())

	if _, err := v1.Pow(2); err != nil {
		failed("Power (v1 ** 2)", err)
	}
}
