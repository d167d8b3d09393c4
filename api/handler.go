// Package api exposes the scheduling engine over HTTP.
package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/cpusched/config"
	"github.com/inference-sim/cpusched/sim"
	"github.com/inference-sim/cpusched/sim/trace"
)

// ScheduleRequest is the body of the schedule and compare endpoints.
type ScheduleRequest struct {
	Quantum   int64             `json:"quantum"`
	Processes []sim.ProcessSpec `json:"processes"`
}

// SchedulerHandler serves the /api/v1 routes.
type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.ServerConfig
}

func NewSchedulerHandlerImpl(cfg *config.ServerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: cfg}
}

// Schedule runs the algorithm named in the path over the request's processes.
// The trace query parameter ("dispatch") attaches the dispatch log.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	algorithm, err := sim.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return err
	}
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}

	ps, err := s.boundedProcesses(request)
	if err != nil {
		return err
	}
	cfg := sim.Config{
		Algorithm:  algorithm,
		TraceLevel: trace.TraceLevel(ctx.Query("trace")),
	}
	if cfg.RequiresQuantum() {
		cfg.Quantum, err = sim.ResolveQuantum(ps, s.requestedQuantum(ps, request.Quantum))
		if err != nil {
			return err
		}
	}

	res, err := sim.Run(ps, cfg)
	if err != nil {
		return err
	}
	return ctx.JSON(sim.NewReport(res))
}

// Compare runs every algorithm the request's processes can satisfy.
func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	ps, err := s.boundedProcesses(request)
	if err != nil {
		return err
	}

	results, err := sim.Compare(ps, sim.ApplicableAlgorithms(ps, s.requestedQuantum(ps, request.Quantum)))
	if err != nil {
		return err
	}
	reports := make([]*sim.Report, len(results))
	for i, res := range results {
		reports[i] = sim.NewReport(res)
	}
	return ctx.JSON(reports)
}

// Algorithms lists the canonical algorithm names and what each one needs.
func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	algorithms := make([]fiber.Map, len(sim.AllAlgorithms))
	for i, a := range sim.AllAlgorithms {
		cfg := sim.Config{Algorithm: a}
		algorithms[i] = fiber.Map{
			"name":              a,
			"requires_priority": cfg.RequiresPriority(),
			"requires_quantum":  cfg.RequiresQuantum(),
		}
	}
	return ctx.JSON(fiber.Map{"algorithms": algorithms})
}

// requestedQuantum falls back to the server default only when neither the
// request nor any process record carries a quantum.
func (s *SchedulerHandlerImpl) requestedQuantum(ps []*sim.Process, requested int64) int64 {
	if requested > 0 {
		return requested
	}
	for _, p := range ps {
		if p.Quantum != nil {
			return 0
		}
	}
	return s.config.DefaultQuantum
}

// boundedProcesses builds the request's processes and rejects any whose
// makespan bound exceeds the server's limit before a timeline is allocated.
func (s *SchedulerHandlerImpl) boundedProcesses(request *ScheduleRequest) ([]*sim.Process, error) {
	ps := sim.ProcessesFromSpecs(request.Processes)
	if err := sim.ValidateProcesses(ps, false); err != nil {
		return nil, err
	}
	if err := sim.CheckMakespan(ps, s.config.MaxMakespan); err != nil {
		return nil, err
	}
	return ps, nil
}

func parseRequest(ctx *fiber.Ctx) (*ScheduleRequest, error) {
	request := &ScheduleRequest{}
	if err := ctx.BodyParser(request); err != nil {
		return nil, fmt.Errorf("%w: invalid request format: %v", sim.ErrInvalidInput, err)
	}
	return request, nil
}

// ErrorHandler maps engine errors to HTTP status codes with a JSON body.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.Is(err, sim.ErrUnsupportedAlgorithm):
		code = fiber.StatusNotFound
	case errors.Is(err, sim.ErrInvalidInput):
		code = fiber.StatusBadRequest
	case errors.As(err, &fe):
		code = fe.Code
	}
	if code == fiber.StatusInternalServerError {
		logrus.Errorf("%s %s: %v", ctx.Method(), ctx.Path(), err)
	} else {
		logrus.Debugf("%s %s: %d %v", ctx.Method(), ctx.Path(), code, err)
	}
	return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
}
