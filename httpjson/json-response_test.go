package httpjson_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leetcoach/client/httpjson"
	"github.com/leetcoach/client/srvcerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleErrorKeepsServiceStatus(t *testing.T) {
	w := httptest.NewRecorder()
	err := srvcerror.New("locked", "Solutions are locked").SetHttpStatusCode(http.StatusForbidden)
	httpjson.HandleError(discardLogger(), w, err)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var body httpjson.DetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Solutions are locked", body.Detail)
}

func TestHandleErrorHidesUnknownErrors(t *testing.T) {
	w := httptest.NewRecorder()
	httpjson.HandleError(discardLogger(), w, errors.New("nil map write"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body httpjson.DetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Detail)
}
