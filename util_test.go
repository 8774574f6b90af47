package curves_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/soypat/curves"
)

const tol = 1e-9

var approx = cmpopts.EquateApprox(0, tol)

func diff(t *testing.T, want, got interface{}, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func isInvalid(err error) bool {
	return errors.Is(err, curves.ErrInvalidParameter)
}
