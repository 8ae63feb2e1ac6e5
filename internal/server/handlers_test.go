package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	"github.com/skaranth/facpay/internal/calculation"
	"github.com/skaranth/facpay/internal/config"
)

func testServer() *Server {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewServer(calculation.NewCalculationEngine(), config.DefaultSettings(), log)
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		ctx.Request.SetBody(data)
	}
	s.Handler(ctx)
	return ctx
}

func decodeBody(t *testing.T, ctx *fasthttp.RequestCtx, out any) {
	t.Helper()
	assert.NoError(t, json.Unmarshal(ctx.Response.Body(), out))
}

func TestHandler_Health(t *testing.T) {
	ctx := doRequest(t, testServer(), fasthttp.MethodGet, "/healthz", nil)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
}

func TestHandler_Compare(t *testing.T) {
	s := testServer()
	ctx := doRequest(t, s, fasthttp.MethodPost, "/v1/compare", CompareRequest{
		PositionID:      1,
		ExperienceYears: 0,
	})
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp CompareResponse
	decodeBody(t, ctx, &resp)

	assert.NotEmpty(t, resp.CalculationMetadata.CalculationID)
	assert.Equal(t, OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)
	assert.True(t, resp.Result.Baseline.TotalMonthly.Equal(decimal.NewFromInt(108394)),
		"Entry assistant professor baseline, got %s", resp.Result.Baseline.TotalMonthly)
	assert.True(t, resp.Result.Enhanced.TotalCTCMonthly.GreaterThan(resp.Result.Baseline.TotalMonthly))
}

func TestHandler_CompareWithOverrides(t *testing.T) {
	s := testServer()
	strategy := "premium"
	ctx := doRequest(t, s, fasthttp.MethodPost, "/v1/compare", CompareRequest{
		PositionID: 1,
		Overrides:  &SettingsOverride{Strategy: &strategy},
	})
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp CompareResponse
	decodeBody(t, ctx, &resp)
	assert.True(t, resp.Result.Enhanced.MultiplicativeBonus.IsZero(),
		"Premium strategy override must zero the bonus")
}

func TestHandler_CompareValidation(t *testing.T) {
	s := testServer()

	t.Run("missing position id", func(t *testing.T) {
		ctx := doRequest(t, s, fasthttp.MethodPost, "/v1/compare", map[string]any{})
		assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

		var errResp ErrorResponse
		decodeBody(t, ctx, &errResp)
		assert.Equal(t, fasthttp.StatusBadRequest, errResp.Status)
		assert.Contains(t, errResp.Message, "validation failed")
	})

	t.Run("unknown position id", func(t *testing.T) {
		ctx := doRequest(t, s, fasthttp.MethodPost, "/v1/compare", CompareRequest{PositionID: 99})
		assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	})

	t.Run("malformed body", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.Header.SetMethod(fasthttp.MethodPost)
		ctx.Request.SetRequestURI("/v1/compare")
		ctx.Request.SetBody([]byte("{not json"))
		s.Handler(ctx)
		assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	})

	t.Run("invalid strategy override", func(t *testing.T) {
		strategy := "mystery"
		ctx := doRequest(t, s, fasthttp.MethodPost, "/v1/compare", CompareRequest{
			PositionID: 1,
			Overrides:  &SettingsOverride{Strategy: &strategy},
		})
		assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	})
}

func TestHandler_Baseline(t *testing.T) {
	s := testServer()
	ctx := doRequest(t, s, fasthttp.MethodPost, "/v1/baseline", BaselineRequest{
		Level: "10",
		Cell:  0,
	})
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp BaselineResponse
	decodeBody(t, ctx, &resp)
	assert.True(t, resp.Result.BasicPay.Equal(decimal.NewFromInt(57700)))
	assert.True(t, resp.Result.TotalMonthly.Equal(decimal.NewFromInt(108394)))

	unknown := doRequest(t, s, fasthttp.MethodPost, "/v1/baseline", BaselineRequest{Level: "99"})
	assert.Equal(t, fasthttp.StatusNotFound, unknown.Response.StatusCode())
}

func TestHandler_Projection(t *testing.T) {
	s := testServer()
	ctx := doRequest(t, s, fasthttp.MethodPost, "/v1/projection", ProjectionRequest{
		PositionID:    1,
		Cell:          0,
		FitmentFactor: decimal.NewFromFloat(2.57),
	})
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp ProjectionResponse
	decodeBody(t, ctx, &resp)
	assert.True(t, resp.Result.Projected.BasicPay.Equal(decimal.NewFromInt(148289)))

	bad := doRequest(t, s, fasthttp.MethodPost, "/v1/projection", ProjectionRequest{
		PositionID: 1,
	})
	assert.Equal(t, fasthttp.StatusBadRequest, bad.Response.StatusCode(),
		"A zero fitment factor must be rejected")
}

func TestHandler_Catalog(t *testing.T) {
	s := testServer()

	positions := doRequest(t, s, fasthttp.MethodGet, "/v1/positions", nil)
	assert.Equal(t, fasthttp.StatusOK, positions.Response.StatusCode())
	var positionList []PositionInfo
	decodeBody(t, positions, &positionList)
	assert.Len(t, positionList, 8)

	levels := doRequest(t, s, fasthttp.MethodGet, "/v1/levels", nil)
	assert.Equal(t, fasthttp.StatusOK, levels.Response.StatusCode())
	var levelList []LevelInfo
	decodeBody(t, levels, &levelList)
	assert.Len(t, levelList, 6)
	assert.Len(t, levelList[0].Ladder, levelList[0].Cells)
}

func TestHandler_Routing(t *testing.T) {
	s := testServer()

	wrongMethod := doRequest(t, s, fasthttp.MethodGet, "/v1/compare", nil)
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, wrongMethod.Response.StatusCode())

	missing := doRequest(t, s, fasthttp.MethodGet, "/v1/nothing", nil)
	assert.Equal(t, fasthttp.StatusNotFound, missing.Response.StatusCode())

	var errResp ErrorResponse
	decodeBody(t, missing, &errResp)
	assert.Equal(t, fasthttp.StatusNotFound, errResp.Status)
	assert.Equal(t, "not found", errResp.Message)
}
