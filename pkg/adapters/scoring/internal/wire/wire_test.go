package wire

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diapredict/diapredict/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostTruncatesOversizedRejectionBody(t *testing.T) {
	big := strings.Repeat("x", 10*maxErrorBody)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(big))
	}))
	defer srv.Close()

	_, err := Post(context.Background(), srv.Client(), srv.URL, "tok", []byte(`{}`))

	var rejection *domain.RemoteRejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Len(t, rejection.Body, maxErrorBody)
}

func TestExtractScalar(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{`[[152.5]]`, 152.5, true},
		{`[152.5]`, 152.5, true},
		{`[[1],[2]]`, 0, false},
		{`[[1,2]]`, 0, false},
		{`[]`, 0, false},
		{`"152.5"`, 0, false},
		{`152.5`, 0, false},
	}

	for _, tc := range cases {
		got, err := ExtractScalar(json.RawMessage(tc.raw))
		if tc.ok {
			require.NoError(t, err, "raw %s", tc.raw)
			assert.Equal(t, tc.want, got)
		} else {
			var parse *domain.ParseError
			require.ErrorAs(t, err, &parse, "raw %s", tc.raw)
		}
	}
}
