package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ichyo/icfpc2019-public/internal/codec"
	"github.com/ichyo/icfpc2019-public/internal/puzzlegen"
	"github.com/ichyo/icfpc2019-public/internal/solver"
)

// MineOptions configures the mining background client.
type MineOptions struct {
	Endpoint  string // default "http://localhost:8332"
	MiningDir string // default "./mining"
	SolveFor  time.Duration
	PollEvery time.Duration
	Log       *zap.Logger
}

// miningInfo mirrors mine.rs's MiningInfo.
type miningInfo struct {
	Block int    `json:"block"`
	Puzzle string `json:"puzzle"`
	Task   string `json:"task"`
}

// blockInfo mirrors mine.rs's BlockInfo.
type blockInfo struct {
	Block  int    `json:"block"`
	Puzzle string `json:"puzzle"`
	Task   string `json:"task"`
}

// Client is a JSON-RPC client for the lambda-mining API, translated
// from original_source/src/mine.rs's jsonrpc_client!-generated
// LambdaClient into plain net/http + encoding/json since the Rust
// jsonrpc_client_http crate has no Go equivalent in the example pack.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = "http://localhost:8332"
	}
	return &Client{endpoint: endpoint, http: &http.Client{Timeout: 30 * time.Second}}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params []interface{}, out interface{}) error {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return errors.Wrap(err, "driver: encoding rpc request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "driver: building rpc request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "driver: calling %s", method)
	}
	defer resp.Body.Close()

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return errors.Wrapf(err, "driver: decoding %s response", method)
	}
	if rpcResp.Error != nil {
		return errors.Errorf("driver: %s: %s", method, rpcResp.Error.Message)
	}
	if out != nil {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return errors.Wrapf(err, "driver: unmarshaling %s result", method)
		}
	}
	return nil
}

func (c *Client) latestBlock(ctx context.Context) (int, error) {
	var info miningInfo
	if err := c.call(ctx, "getmininginfo", nil, &info); err != nil {
		return 0, err
	}
	return info.Block, nil
}

func (c *Client) blockInfo(ctx context.Context, block int) (blockInfo, error) {
	var info blockInfo
	err := c.call(ctx, "getblockinfo", []interface{}{block}, &info)
	return info, err
}

func (c *Client) submit(ctx context.Context, block int, taskSolPath, puzzleSolPath string) error {
	return c.call(ctx, "submit", []interface{}{block, taskSolPath, puzzleSolPath}, nil)
}

// Mine runs the submit-latest/sleep loop forever, grounded on
// mine.rs's Client::execute. It stops when ctx is canceled.
func Mine(ctx context.Context, opts MineOptions) error {
	if opts.MiningDir == "" {
		opts.MiningDir = "./mining"
	}
	if opts.PollEvery <= 0 {
		opts.PollEvery = 10 * time.Second
	}
	if opts.SolveFor <= 0 {
		opts.SolveFor = 180 * time.Second
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	client := NewClient(opts.Endpoint)

	if err := os.MkdirAll(opts.MiningDir, 0o755); err != nil {
		return errors.Wrapf(err, "driver: creating %s", opts.MiningDir)
	}

	ticker := time.NewTicker(opts.PollEvery)
	defer ticker.Stop()

	for {
		submitLatest(ctx, client, opts, log)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func submitLatest(ctx context.Context, client *Client, opts MineOptions, log *zap.Logger) {
	block, err := client.latestBlock(ctx)
	if err != nil {
		log.Warn("mine: latest block lookup failed", zap.Error(err))
		return
	}

	taskSolPath, puzzleSolPath, ok := generateSolution(ctx, client, opts, log, block)
	if !ok {
		return
	}

	if err := client.submit(ctx, block, taskSolPath, puzzleSolPath); err != nil {
		log.Warn("mine: submit failed", zap.Int("block", block), zap.Error(err))
		return
	}
	log.Info("mine: submitted", zap.Int("block", block))
}

func generateSolution(ctx context.Context, client *Client, opts MineOptions, log *zap.Logger, block int) (taskSolPath, puzzleSolPath string, ok bool) {
	info, err := client.blockInfo(ctx, block)
	if err != nil {
		log.Warn("mine: block info lookup failed", zap.Int("block", block), zap.Error(err))
		return "", "", false
	}

	task, err := codec.ParseTask(info.Task)
	if err != nil {
		log.Warn("mine: task parse failed", zap.Int("block", block), zap.Error(err))
		return "", "", false
	}
	puzzle, err := codec.ParsePuzzle(info.Puzzle)
	if err != nil {
		log.Warn("mine: puzzle parse failed", zap.Int("block", block), zap.Error(err))
		return "", "", false
	}

	deadline, cancel := context.WithTimeout(ctx, opts.SolveFor)
	defer cancel()
	result := solver.SolveWhile(deadline, &task, log, int64(block))

	taskSolPath = filepath.Join(opts.MiningDir, fmt.Sprintf("%d-task.sol", block))
	if err := os.WriteFile(taskSolPath, []byte(codec.EmitCommands(result.Commands)), 0o644); err != nil {
		log.Warn("mine: dumping task solution failed", zap.Error(err))
		return "", "", false
	}

	puzzleTask, err := puzzlegen.Construct(puzzle, rand.New(rand.NewSource(int64(block))))
	if err != nil {
		log.Warn("mine: puzzle solve failed", zap.Int("block", block), zap.Error(err))
		return taskSolPath, "", false
	}

	puzzleSolPath = filepath.Join(opts.MiningDir, fmt.Sprintf("%d-puzzle.desc", block))
	if err := os.WriteFile(puzzleSolPath, []byte(puzzleTask.String()), 0o644); err != nil {
		log.Warn("mine: dumping puzzle solution failed", zap.Error(err))
		return taskSolPath, "", false
	}

	return taskSolPath, puzzleSolPath, true
}
