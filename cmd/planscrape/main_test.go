package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	main "github.com/fwojciec/planscrape/cmd/planscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help and returns an error", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		defer m.Close()

		err := m.Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "planscrape")
	})

	t.Run("help returns nil", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		defer m.Close()

		require.NoError(t, m.Run(context.Background(), []string{"--help"}, stdout, stderr))
		assert.Contains(t, stdout.String(), "Commands:")
	})

	t.Run("unknown command returns an error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		defer m.Close()

		err := m.Run(context.Background(), []string{"bogus"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("grab extracts the first table body end to end", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html><body>
<script>ignored();</script>
<table><tbody><tr><td>FIZ101</td><td>Physics I</td></tr></tbody></table>
</body></html>`))
		}))
		defer srv.Close()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		defer m.Close()

		require.NoError(t, m.Run(context.Background(), []string{"grab", srv.URL}, stdout, stderr))
		assert.Contains(t, stdout.String(), "FIZ101")
		assert.Contains(t, stdout.String(), "Physics I")
		assert.NotContains(t, stdout.String(), "ignored")
	})
}
