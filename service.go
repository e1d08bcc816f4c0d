package superstaq

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// clientAPI is the endpoint surface Service depends on. *Client implements
// it; tests substitute a mock.
type clientAPI interface {
	CreateJob(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	GetJob(ctx context.Context, jobID string) (JobResponse, error)
	GetBalance(ctx context.Context) (BalanceResponse, error)
	AqtCompile(ctx context.Context, req AqtCompileRequest) (AqtCompileResponse, error)
	SubmitQUBO(ctx context.Context, req QuboRequest) (QuboResponse, error)
	MinVolPortfolio(ctx context.Context, req MinVolRequest) (MinVolResponse, error)
	MaxPseudoSharpeRatio(ctx context.Context, req MaxSharpeRequest) (MaxSharpeResponse, error)
	TSP(ctx context.Context, req TSPRequest) (TSPResponse, error)
	Warehouse(ctx context.Context, req WarehouseRequest) (WarehouseResponse, error)
	AqtUploadConfigs(ctx context.Context, req AqtConfigsRequest) (StatusResponse, error)
	Targets(ctx context.Context) (TargetsResponse, error)
}

// Service is the high-level SuperstaQ API. It resolves and serializes
// inputs, delegates to the endpoint client and maps responses into typed
// result objects. Configuration is fixed at construction.
type Service struct {
	RemoteHost string
	APIKey     string

	client        clientAPI
	defaultTarget string
	pollInterval  time.Duration
}

// NewService returns a Service. The API key must be resolvable from the
// options or the environment; the remote host falls back to APIURL.
func NewService(options ...DialOption) (*Service, error) {
	conn, err := Dial(options...)
	if err != nil {
		return nil, err
	}
	return &Service{
		RemoteHost:    conn.RemoteHost(),
		APIKey:        conn.APIKey(),
		client:        NewClient(conn),
		defaultTarget: conn.dopts.defaultTarget,
		pollInterval:  conn.dopts.pollInterval,
	}, nil
}

// serializeResolved resolves any symbolic parameters in the circuit and
// returns its wire form.
func serializeResolved(circuit Circuit, params Params) (string, error) {
	if params != nil {
		var err error
		if circuit, err = circuit.Resolve(params); err != nil {
			return "", err
		}
	}
	return circuit.Serialize()
}

// Run submits the circuit, waits for it to reach a terminal state and
// returns the measurement histogram, outcome bitstring to count.
func (s *Service) Run(ctx context.Context, circuit Circuit, repetitions int, target, name string, params Params) (map[string]int64, error) {
	serialized, err := serializeResolved(circuit, params)
	if err != nil {
		return nil, err
	}

	target = resolveTarget(target, s.defaultTarget)
	if target == "" {
		return nil, BadTargetErr{target: target}
	}

	resp, err := s.client.CreateJob(ctx, CreateJobRequest{
		Circuit:     serialized,
		Repetitions: repetitions,
		Target:      target,
		Name:        name,
	})
	if err != nil {
		return nil, err
	}

	job := newJob(s.client, resp)
	for !job.Done() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.pollInterval):
		}
		if err := job.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	if job.Status() == StatusError || job.Status() == StatusFailed {
		return nil, ApiErr{usrMsg: "job " + job.ID() + " failed on the server"}
	}
	return job.Counts(), nil
}

// CreateJob submits the circuit for execution and returns a Job handle
// without waiting for completion.
func (s *Service) CreateJob(ctx context.Context, circuit Circuit, repetitions int, target string) (*Job, error) {
	serialized, err := circuit.Serialize()
	if err != nil {
		return nil, err
	}
	target = resolveTarget(target, s.defaultTarget)
	if target == "" {
		return nil, BadTargetErr{target: target}
	}

	resp, err := s.client.CreateJob(ctx, CreateJobRequest{
		Circuit:     serialized,
		Repetitions: repetitions,
		Target:      target,
	})
	if err != nil {
		return nil, err
	}

	// Seed the handle with the freshest server state.
	job := newJob(s.client, resp)
	if err := job.Refresh(ctx); err != nil {
		return nil, err
	}
	return job, nil
}

// GetJob returns a handle on an existing job. An unknown id surfaces as a
// NotFoundErr.
func (s *Service) GetJob(ctx context.Context, jobID string) (*Job, error) {
	resp, err := s.client.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return newJob(s.client, resp), nil
}

var balancePrinter = message.NewPrinter(language.AmericanEnglish)

// GetBalance returns the remaining credit balance formatted as a currency
// string, e.g. "$12,345.68".
func (s *Service) GetBalance(ctx context.Context) (string, error) {
	balance, err := s.GetBalanceValue(ctx)
	if err != nil {
		return "", err
	}
	return balancePrinter.Sprintf("$%.2f", balance), nil
}

// GetBalanceValue returns the remaining credit balance as a raw number.
func (s *Service) GetBalanceValue(ctx context.Context) (float64, error) {
	resp, err := s.client.GetBalance(ctx)
	if err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

// AqtCompile compiles the circuit for the AQT device and returns the
// compiled circuit together with its decoded state and pulse payloads.
func (s *Service) AqtCompile(ctx context.Context, circuit Circuit) (AqtCompilerOutput, error) {
	serialized, err := circuit.Serialize()
	if err != nil {
		return AqtCompilerOutput{}, err
	}
	resp, err := s.client.AqtCompile(ctx, AqtCompileRequest{Circuit: serialized})
	if err != nil {
		return AqtCompilerOutput{}, err
	}
	return newAqtCompilerOutput(resp)
}

// SubmitQUBO submits a QUBO problem to an annealing target and returns the
// decoded solution records.
func (s *Service) SubmitQUBO(ctx context.Context, qubo QUBO, target string, repetitions int) ([]QuboResult, error) {
	target = resolveTarget(target, s.defaultTarget)
	if target == "" {
		return nil, BadTargetErr{target: target}
	}
	resp, err := s.client.SubmitQUBO(ctx, QuboRequest{
		Qubo:        qubo,
		Target:      target,
		Repetitions: repetitions,
	})
	if err != nil {
		return nil, err
	}
	return decodeQuboSolution(resp.Solution)
}

// FindMinVolPortfolio returns the minimal volatility portfolio over the
// given stock symbols that achieves the desired return.
func (s *Service) FindMinVolPortfolio(ctx context.Context, stockSymbols []string, desiredReturn float64) (MinVolOutput, error) {
	resp, err := s.client.MinVolPortfolio(ctx, MinVolRequest{
		StockSymbols:  stockSymbols,
		DesiredReturn: desiredReturn,
	})
	if err != nil {
		return MinVolOutput{}, err
	}
	return MinVolOutput{
		BestPortfolio: resp.BestPortfolio,
		BestRet:       resp.BestRet,
		BestStdDev:    resp.BestStdDev,
	}, nil
}

// FindMaxPseudoSharpeRatio returns the portfolio maximizing the pseudo
// Sharpe ratio with risk weighting k.
func (s *Service) FindMaxPseudoSharpeRatio(ctx context.Context, stockSymbols []string, k float64) (MaxSharpeOutput, error) {
	resp, err := s.client.MaxPseudoSharpeRatio(ctx, MaxSharpeRequest{
		StockSymbols: stockSymbols,
		K:            k,
	})
	if err != nil {
		return MaxSharpeOutput{}, err
	}
	return MaxSharpeOutput{
		BestPortfolio:   resp.BestPortfolio,
		BestRet:         resp.BestRet,
		BestStdDev:      resp.BestStdDev,
		BestSharpeRatio: resp.BestSharpeRatio,
	}, nil
}

// TSP solves a traveling salesperson problem over the given locations.
func (s *Service) TSP(ctx context.Context, locations []string) (TSPOutput, error) {
	resp, err := s.client.TSP(ctx, TSPRequest{Locations: locations})
	if err != nil {
		return TSPOutput{}, err
	}
	return TSPOutput{
		Route:            resp.Route,
		RouteListNumbers: resp.RouteListNumbers,
		TotalDistance:    resp.TotalDistance,
		MapLink:          resp.MapLink,
	}, nil
}

// Warehouse finds the best assignment of customer destinations to k open
// warehouses chosen from the possible warehouse locations.
func (s *Service) Warehouse(ctx context.Context, kWarehouses int, possibleWarehouses, customerDests []string) (WarehouseOutput, error) {
	resp, err := s.client.Warehouse(ctx, WarehouseRequest{
		KWarehouses:        kWarehouses,
		PossibleWarehouses: possibleWarehouses,
		CustomerDests:      customerDests,
	})
	if err != nil {
		return WarehouseOutput{}, err
	}

	pairs := make([]WarehousePair, len(resp.WarehouseToDestination))
	for i, pair := range resp.WarehouseToDestination {
		pairs[i] = WarehousePair{Warehouse: pair[0], Destination: pair[1]}
	}
	return WarehouseOutput{
		WarehouseToDestination: pairs,
		TotalDistance:          resp.TotalDistance,
		MapLink:                resp.MapLink,
		OpenWarehouses:         resp.OpenWarehouses,
	}, nil
}

// AqtUploadConfigs reads the pulse and variable configuration files and
// uploads their contents, returning the server's status mapping.
func (s *Service) AqtUploadConfigs(ctx context.Context, pulsesPath, variablesPath string) (StatusResponse, error) {
	pulses, err := os.ReadFile(pulsesPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading pulses config %s", pulsesPath)
	}
	variables, err := os.ReadFile(variablesPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading variables config %s", variablesPath)
	}
	return s.client.AqtUploadConfigs(ctx, AqtConfigsRequest{
		AqtPulses:    string(pulses),
		AqtVariables: string(variables),
	})
}

// Targets lists the execution targets currently offered by the server.
func (s *Service) Targets(ctx context.Context) ([]Target, error) {
	resp, err := s.client.Targets(ctx)
	if err != nil {
		return nil, err
	}
	return resp.Targets, nil
}
