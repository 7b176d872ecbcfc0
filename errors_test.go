package planscrape_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/planscrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := planscrape.Errorf(planscrape.ENOTFOUND, "program %q not found", "BLGE_LS")

	assert.Equal(t, planscrape.ENOTFOUND, planscrape.ErrorCode(err))
	assert.Equal(t, "program \"BLGE_LS\" not found", planscrape.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, planscrape.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, planscrape.EINTERNAL, planscrape.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, planscrape.ErrorMessage(nil))
}
