// Package evaluation runs the service's self assessment against its own report endpoints.
package evaluation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"users-insights/internal/dto"
	"users-insights/internal/entities"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Report endpoint paths.
const (
	PathSuperusers   = "/superusers"
	PathTopCountries = "/top-countries"
	PathTeamInsights = "/team-insights"
	PathActiveUsers  = "/active-users-per-day"
)

// timed is implemented by every report body.
type timed interface {
	executionTimeMs() int64
}

type superusersBody struct{ dto.SuperusersResponse }

func (b *superusersBody) executionTimeMs() int64 { return b.ExecutionTimeMs }

type topCountriesBody struct{ dto.TopCountriesResponse }

func (b *topCountriesBody) executionTimeMs() int64 { return b.ExecutionTimeMs }

type teamInsightsBody struct{ dto.TeamInsightsResponse }

func (b *teamInsightsBody) executionTimeMs() int64 { return b.ExecutionTimeMs }

type activeUsersBody struct{ dto.ActiveUsersResponse }

func (b *activeUsersBody) executionTimeMs() int64 { return b.ExecutionTimeMs }

var endpoints = map[string]func() timed{
	PathSuperusers:   func() timed { return &superusersBody{} },
	PathTopCountries: func() timed { return &topCountriesBody{} },
	PathTeamInsights: func() timed { return &teamInsightsBody{} },
	PathActiveUsers:  func() timed { return &activeUsersBody{} },
}

// Evaluator calls the report endpoints of a running instance.
type Evaluator struct {
	log     *zap.SugaredLogger
	baseURL string
	timeout time.Duration
}

// New constructs an evaluator targeting baseURL.
func New(log *zap.SugaredLogger, baseURL string, timeout time.Duration) *Evaluator {
	return &Evaluator{
		log:     log.Named("evaluation"),
		baseURL: baseURL,
		timeout: timeout,
	}
}

// Evaluate calls every report endpoint concurrently. Unreachable endpoints are reported
// with status 0 and an invalid response rather than failing the whole evaluation.
func (e *Evaluator) Evaluate(ctx context.Context) (entities.Evaluation, error) {
	res := entities.Evaluation{Endpoints: make(map[string]entities.EndpointResult, len(endpoints))}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for path, body := range endpoints {
		path, body := path, body
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("evaluate %s: %w", path, err)
			}
			r := e.call(path, body())
			mu.Lock()
			res.Endpoints[path] = r
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return entities.Evaluation{}, err
	}

	e.log.Infow("evaluation finished", "endpoints", len(res.Endpoints))
	return res, nil
}

func (e *Evaluator) call(path string, body timed) entities.EndpointResult {
	agent := fiber.Get(e.baseURL + path)
	if e.timeout > 0 {
		agent.Timeout(e.timeout)
	}

	code, raw, errs := agent.Bytes()
	if len(errs) > 0 {
		e.log.Warnw("evaluation call failed", "path", path, "error", errs[0])
		return entities.EndpointResult{Status: code}
	}

	r := entities.EndpointResult{Status: code}
	if code != fiber.StatusOK {
		return r
	}
	if err := json.Unmarshal(raw, body); err != nil {
		e.log.Warnw("evaluation response is not valid", "path", path, "error", err)
		return r
	}
	r.TimeMs = body.executionTimeMs()
	r.ValidResponse = true
	return r
}
