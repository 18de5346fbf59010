package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/sells-group/geokit-cli/internal/check"
)

// ---------------------------------------------------------------------------
// statusFor
// ---------------------------------------------------------------------------

func TestStatusFor_ClassifiedErrors(t *testing.T) {
	for _, kind := range []error{
		check.ErrEmptyInput,
		check.ErrInvalidColumn,
		check.ErrNonNumericData,
		check.ErrInvalidParameterValue,
		check.ErrSampleSizeExceeded,
		check.ErrNumericValueSign,
	} {
		assert.Equal(t, http.StatusBadRequest, statusFor(eris.Wrap(kind, "wrapped")))
	}
}

func TestStatusFor_UnclassifiedError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFor(eris.New("boom")))
}

// ---------------------------------------------------------------------------
// rateLimit
// ---------------------------------------------------------------------------

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := rateLimit(rate.Limit(0.001), 2)(ok)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

// ---------------------------------------------------------------------------
// tableRequest
// ---------------------------------------------------------------------------

func TestTableRequestFrame(t *testing.T) {
	req := tableRequest{
		Header: []string{"a", "b"},
		Rows:   [][]string{{"1", "2"}, {"3", "4"}},
	}
	f, err := req.frame()
	require.NoError(t, err)

	vals, err := f.Numeric("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, vals)
}

// ---------------------------------------------------------------------------
// handlers
// ---------------------------------------------------------------------------

func TestHandleDescribe(t *testing.T) {
	body := `{"header":["v"],"rows":[["1"],["2"],["3"],["4"]]}`
	rec := httptest.NewRecorder()
	handleDescribe(rec, httptest.NewRequest(http.MethodPost, "/api/describe", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Contains(t, out, "v")
	assert.InDelta(t, 2.5, out["v"]["mean"], 1e-9)
}

func TestHandleCorrelation_BadMethod(t *testing.T) {
	body := `{"header":["a","b"],"rows":[["1","2"]],"method":"cosine"}`
	rec := httptest.NewRecorder()
	handleCorrelation(rec, httptest.NewRequest(http.MethodPost, "/api/correlation", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleNormality_ArrayInput(t *testing.T) {
	body := `{"data":[1.1,2.3,1.9,2.8,2.2,1.4,2.6,1.7,2.1,2.4]}`
	rec := httptest.NewRecorder()
	handleNormality(rec, httptest.NewRequest(http.MethodPost, "/api/normality", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleNormality_EmptyRequest(t *testing.T) {
	rec := httptest.NewRecorder()
	handleNormality(rec, httptest.NewRequest(http.MethodPost, "/api/normality", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleOneHot(t *testing.T) {
	body := `{"header":["rock"],"rows":[["granite"],["basalt"]]}`
	rec := httptest.NewRecorder()
	handleOneHot(rec, httptest.NewRequest(http.MethodPost, "/api/one-hot", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Header []string   `json:"header"`
		Rows   [][]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, []string{"rock_basalt", "rock_granite"}, out.Header)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, []string{"0", "1"}, out.Rows[0])
}

func TestHandleBadJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	handleDescribe(rec, httptest.NewRequest(http.MethodPost, "/api/describe", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
