package server

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"github.com/skaranth/facpay/internal/calculation"
	"github.com/skaranth/facpay/internal/domain"
	"github.com/skaranth/facpay/internal/paydata"
)

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	var req CompareRequest
	if !s.decode(ctx, &req) {
		return
	}

	position, ok := paydata.PositionByID(req.PositionID)
	if !ok {
		s.writeError(ctx, fasthttp.StatusNotFound, "unknown position id")
		return
	}

	settings := req.Overrides.Apply(s.settings)
	cell := position.SuggestCell(req.ExperienceYears)
	if req.Cell != nil {
		cell = *req.Cell
	}

	meta := startCalculation()
	result := s.engine.CompareAt(settings, position, cell)
	meta.finish(OutcomeSuccess)

	s.writeJSON(ctx, fasthttp.StatusOK, CompareResponse{
		CalculationMetadata: meta.CalculationMetadata,
		Result:              result,
	})
}

func (s *Server) handleBaseline(ctx *fasthttp.RequestCtx) {
	var req BaselineRequest
	if !s.decode(ctx, &req) {
		return
	}

	if _, ok := paydata.LevelByID(req.Level); !ok {
		s.writeError(ctx, fasthttp.StatusNotFound, "unknown academic level")
		return
	}

	settings := req.Overrides.Apply(s.settings)

	meta := startCalculation()
	result := calculationBaseline(settings, req.Level, req.Cell)
	meta.finish(OutcomeSuccess)

	s.writeJSON(ctx, fasthttp.StatusOK, BaselineResponse{
		CalculationMetadata: meta.CalculationMetadata,
		Result:              result,
	})
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	var req ProjectionRequest
	if !s.decode(ctx, &req) {
		return
	}

	if req.FitmentFactor.LessThanOrEqual(decimal.Zero) {
		s.writeError(ctx, fasthttp.StatusBadRequest, "fitment_factor must be positive")
		return
	}

	position, ok := paydata.PositionByID(req.PositionID)
	if !ok {
		s.writeError(ctx, fasthttp.StatusNotFound, "unknown position id")
		return
	}

	settings := req.Overrides.Apply(s.settings)

	meta := startCalculation()
	result := s.engine.Project(settings, position, req.Cell, req.FitmentFactor, req.NextDearnessPercent)
	meta.finish(OutcomeSuccess)

	s.writeJSON(ctx, fasthttp.StatusOK, ProjectionResponse{
		CalculationMetadata: meta.CalculationMetadata,
		Result:              result,
	})
}

func (s *Server) handlePositions(ctx *fasthttp.RequestCtx) {
	positions := paydata.Positions()
	infos := make([]PositionInfo, 0, len(positions))
	for _, p := range positions {
		infos = append(infos, PositionInfo{
			ID:               p.ID,
			Name:             p.Name,
			Level:            p.Level,
			SpecialAllowance: p.SpecialAllowance,
			ExperienceMin:    p.ExperienceMin,
			ExperienceMax:    p.ExperienceMax,
		})
	}
	s.writeJSON(ctx, fasthttp.StatusOK, infos)
}

func (s *Server) handleLevels(ctx *fasthttp.RequestCtx) {
	levels := paydata.Levels()
	infos := make([]LevelInfo, 0, len(levels))
	for _, l := range levels {
		infos = append(infos, LevelInfo{
			ID:       l.ID,
			EntryPay: l.RationalisedEntryPay,
			Cells:    l.Cells,
			Ladder:   paydata.CellsFor(l.ID),
		})
	}
	s.writeJSON(ctx, fasthttp.StatusOK, infos)
}

// calculationBaseline computes the statutory breakdown for a bare
// level/cell pair, with no position-specific special allowance.
func calculationBaseline(settings domain.Settings, level string, cell int) domain.SalaryBreakdown {
	return calculation.CalculateBaseline(calculation.BaselineInput{
		BasicPay:         paydata.BasicPayAt(level, cell),
		DearnessPercent:  settings.DearnessPercent,
		City:             settings.CityClass,
		Level:            level,
		SpecialAllowance: decimal.Zero,
		TPTACity:         settings.TPTACity,
		Housing:          settings.Housing,
	})
}

// decode parses and validates the request body. A false return means the
// error response has already been written.
func (s *Server) decode(ctx *fasthttp.RequestCtx, req any) bool {
	if err := json.Unmarshal(ctx.PostBody(), req); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "validation failed: "+err.Error())
		return false
	}
	return true
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		s.log.WithError(err).Error("response encoding failed")
		s.writeError(ctx, fasthttp.StatusInternalServerError, "internal error")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	data, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

// calcTimer tracks a calculation's identity and wall time.
type calcTimer struct {
	CalculationMetadata
	started time.Time
}

func startCalculation() *calcTimer {
	now := time.Now().UTC()
	return &calcTimer{
		CalculationMetadata: CalculationMetadata{
			CalculationID:        uuid.NewString(),
			CalculationStartedAt: now.Format(time.RFC3339Nano),
		},
		started: now,
	}
}

func (t *calcTimer) finish(outcome string) {
	done := time.Now().UTC()
	t.CalculationCompletedAt = done.Format(time.RFC3339Nano)
	t.CalculationDurationMs = done.Sub(t.started).Milliseconds()
	t.CalculationOutcome = outcome
}
