package superstaq

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

// Client wraps a Conn with one method per SuperstaQ API endpoint.
// Each method serializes a request, performs the HTTP call and decodes the
// raw response structure; no interpretation of the payload happens here.
type Client struct {
	conn *Conn
}

// NewClient returns a SuperstaQ API Client on top of an established connection
func NewClient(conn *Conn) *Client {
	return &Client{conn: conn}
}

// CreateJobRequest is the request body for submitting a circuit for execution
type CreateJobRequest struct {
	Circuit     string `json:"circuit"`
	Repetitions int    `json:"repetitions"`
	Target      string `json:"target"`
	Name        string `json:"name,omitempty"`
}

// ShotResult is one per-shot record attached to a job response
type ShotResult struct {
	Data struct {
		Counts map[string]int64 `json:"counts,omitempty"`
	} `json:"data,omitempty"`
	MeasLevel     int    `json:"meas_level,omitempty"`
	SeedSimulator int64  `json:"seed_simulator,omitempty"`
	Shots         int    `json:"shots,omitempty"`
	Status        string `json:"status,omitempty"`
}

// JobResponse is the raw job mapping returned by the create-job and get-job endpoints
type JobResponse struct {
	JobID   string           `json:"job_id,omitempty"`
	Status  string           `json:"status,omitempty"`
	Target  string           `json:"target,omitempty"`
	Samples map[string]int64 `json:"samples,omitempty"`
	Shots   []ShotResult     `json:"shots,omitempty"`
	Data    struct {
		Histogram map[string]int64 `json:"histogram,omitempty"`
	} `json:"data,omitempty"`
}

// CreateJob submits a serialized circuit for execution on the given target
func (c *Client) CreateJob(ctx context.Context, req CreateJobRequest) (JobResponse, error) {
	log.WithFields(log.Fields{"target": req.Target, "repetitions": req.Repetitions}).Debug("creating job")

	resp, err := c.conn.post(ctx, "jobs", req)
	if err != nil {
		return JobResponse{}, err
	}
	defer resp.Body.Close()

	var j JobResponse
	err = c.conn.decode(resp.Body, &j)
	return j, err
}

// GetJob retrieves the current state of a job by its id.
// An unknown id surfaces as a NotFoundErr.
func (c *Client) GetJob(ctx context.Context, jobID string) (JobResponse, error) {
	resp, err := c.conn.get(ctx, "job/"+jobID)
	if err != nil {
		var httpErr HTTPErr
		if errors.As(err, &httpErr) && httpErr.StatusCode == 404 {
			return JobResponse{}, NotFoundErr{JobID: jobID}
		}
		return JobResponse{}, err
	}
	defer resp.Body.Close()

	var j JobResponse
	err = c.conn.decode(resp.Body, &j)
	return j, err
}

// BalanceResponse is the raw balance mapping
type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// GetBalance returns the credit balance associated with the API key
func (c *Client) GetBalance(ctx context.Context) (BalanceResponse, error) {
	resp, err := c.conn.get(ctx, "balance")
	if err != nil {
		return BalanceResponse{}, err
	}
	defer resp.Body.Close()

	var b BalanceResponse
	err = c.conn.decode(resp.Body, &b)
	return b, err
}

// AqtCompileRequest is the request body for AQT compilation
type AqtCompileRequest struct {
	Circuit string `json:"circuit"`
}

// AqtCompileResponse carries a compiled circuit plus base64 encoded state
// and pulse payloads
type AqtCompileResponse struct {
	CompiledCircuit string `json:"compiled_circuit"`
	StateJP         string `json:"state_jp"`
	PulseListJP     string `json:"pulse_list_jp"`
}

// AqtCompile compiles a serialized circuit for the AQT device
func (c *Client) AqtCompile(ctx context.Context, req AqtCompileRequest) (AqtCompileResponse, error) {
	resp, err := c.conn.post(ctx, "aqt_compile", req)
	if err != nil {
		return AqtCompileResponse{}, err
	}
	defer resp.Body.Close()

	var a AqtCompileResponse
	err = c.conn.decode(resp.Body, &a)
	return a, err
}

// QuboRequest is the request body for submitting a QUBO problem
type QuboRequest struct {
	Qubo        QUBO   `json:"qubo"`
	Target      string `json:"target"`
	Repetitions int    `json:"repetitions"`
}

// QuboResponse carries a base64 encoded solution payload
type QuboResponse struct {
	Solution string `json:"solution"`
}

// SubmitQUBO submits a QUBO problem to the given annealing target
func (c *Client) SubmitQUBO(ctx context.Context, req QuboRequest) (QuboResponse, error) {
	log.WithFields(log.Fields{"target": req.Target, "terms": len(req.Qubo)}).Debug("submitting qubo")

	resp, err := c.conn.post(ctx, "qubo", req)
	if err != nil {
		return QuboResponse{}, err
	}
	defer resp.Body.Close()

	var q QuboResponse
	err = c.conn.decode(resp.Body, &q)
	return q, err
}

// MinVolRequest is the request body for minimal volatility portfolio optimization
type MinVolRequest struct {
	StockSymbols  []string `json:"stock_symbols"`
	DesiredReturn float64  `json:"desired_return"`
}

// MinVolResponse is the raw minimal volatility response mapping
type MinVolResponse struct {
	BestPortfolio []string `json:"best_portfolio"`
	BestRet       float64  `json:"best_ret"`
	BestStdDev    float64  `json:"best_std_dev"`
}

// MinVolPortfolio runs minimal volatility portfolio optimization server side
func (c *Client) MinVolPortfolio(ctx context.Context, req MinVolRequest) (MinVolResponse, error) {
	resp, err := c.conn.post(ctx, "minvol", req)
	if err != nil {
		return MinVolResponse{}, err
	}
	defer resp.Body.Close()

	var m MinVolResponse
	err = c.conn.decode(resp.Body, &m)
	return m, err
}

// MaxSharpeRequest is the request body for pseudo Sharpe ratio maximization
type MaxSharpeRequest struct {
	StockSymbols []string `json:"stock_symbols"`
	K            float64  `json:"k"`
}

// MaxSharpeResponse is the raw Sharpe ratio response mapping
type MaxSharpeResponse struct {
	BestPortfolio   []string `json:"best_portfolio"`
	BestRet         float64  `json:"best_ret"`
	BestStdDev      float64  `json:"best_std_dev"`
	BestSharpeRatio float64  `json:"best_sharpe_ratio"`
}

// MaxPseudoSharpeRatio runs pseudo Sharpe ratio maximization server side
func (c *Client) MaxPseudoSharpeRatio(ctx context.Context, req MaxSharpeRequest) (MaxSharpeResponse, error) {
	resp, err := c.conn.post(ctx, "maxsharpe", req)
	if err != nil {
		return MaxSharpeResponse{}, err
	}
	defer resp.Body.Close()

	var m MaxSharpeResponse
	err = c.conn.decode(resp.Body, &m)
	return m, err
}

// TSPRequest is the request body for traveling salesperson routing
type TSPRequest struct {
	Locations []string `json:"locs"`
}

// TSPResponse is the raw routing response mapping
type TSPResponse struct {
	Route            []string `json:"route"`
	RouteListNumbers []int    `json:"route_list_numbers"`
	TotalDistance    float64  `json:"total_distance"`
	MapLink          []string `json:"map_link"`
}

// TSP solves a traveling salesperson problem over the given locations
func (c *Client) TSP(ctx context.Context, req TSPRequest) (TSPResponse, error) {
	resp, err := c.conn.post(ctx, "tsp", req)
	if err != nil {
		return TSPResponse{}, err
	}
	defer resp.Body.Close()

	var t TSPResponse
	err = c.conn.decode(resp.Body, &t)
	return t, err
}

// WarehouseRequest is the request body for warehouse assignment optimization
type WarehouseRequest struct {
	KWarehouses        int      `json:"k_warehouses"`
	PossibleWarehouses []string `json:"possible_warehouses"`
	CustomerDests      []string `json:"customer_dests"`
}

// WarehouseResponse is the raw warehouse assignment response mapping
type WarehouseResponse struct {
	WarehouseToDestination [][2]string `json:"warehouse_to_destination"`
	TotalDistance          float64     `json:"total_distance"`
	MapLink                string      `json:"map_link"`
	OpenWarehouses         []string    `json:"open_warehouses"`
}

// Warehouse solves a warehouse assignment problem server side
func (c *Client) Warehouse(ctx context.Context, req WarehouseRequest) (WarehouseResponse, error) {
	resp, err := c.conn.post(ctx, "warehouse", req)
	if err != nil {
		return WarehouseResponse{}, err
	}
	defer resp.Body.Close()

	var w WarehouseResponse
	err = c.conn.decode(resp.Body, &w)
	return w, err
}

// AqtConfigsRequest is the request body for uploading AQT configuration files
type AqtConfigsRequest struct {
	AqtPulses    string `json:"aqt_pulses"`
	AqtVariables string `json:"aqt_variables"`
}

// StatusResponse is a bare status message mapping
type StatusResponse map[string]string

// AqtUploadConfigs uploads AQT pulse and variable configuration contents
func (c *Client) AqtUploadConfigs(ctx context.Context, req AqtConfigsRequest) (StatusResponse, error) {
	resp, err := c.conn.post(ctx, "aqt_configs", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var s StatusResponse
	err = c.conn.decode(resp.Body, &s)
	return s, err
}

// Targets lists the execution targets currently offered by the server
func (c *Client) Targets(ctx context.Context) (TargetsResponse, error) {
	resp, err := c.conn.get(ctx, "targets")
	if err != nil {
		return TargetsResponse{}, err
	}
	defer resp.Body.Close()

	var t TargetsResponse
	err = c.conn.decode(resp.Body, &t)
	return t, err
}
