package tablebase

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/akorenev/caprice/pkg/common"
)

// Client probes an online tablebase service speaking the lichess tablebase
// protocol: GET {base}/standard?fen=... answering a JSON document whose
// "category" field uses the same vocabulary as WDL.String.
type Client struct {
	baseURL   string
	maxPieces int
	httpc     *http.Client
	logger    *log.Logger
}

// setupCheckFen is a minimal KRvK position every standard tablebase set
// covers. Construction probes it once so that a misconfigured service is
// reported at setup time instead of mid-game.
const setupCheckFen = "7k/8/8/8/8/8/8/KR6 w - - 0 1"

func NewClient(baseURL string, logger *log.Logger) (*Client, error) {
	var client = &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		maxPieces: 7,
		httpc:     &http.Client{Timeout: 10 * time.Second},
		logger:    logger,
	}
	var res, err = client.probe(setupCheckFen)
	if err != nil {
		return nil, fmt.Errorf("tablebase setup: %w", err)
	}
	if !res.Known {
		return nil, fmt.Errorf("tablebase setup: service at %v does not cover KRvK", baseURL)
	}
	return client, nil
}

func (client *Client) MaxPieces() int {
	return client.maxPieces
}

func (client *Client) Available() bool {
	return client != nil
}

// Probe implements Prober. Transient service failures degrade to a
// not-Known result: the caller abstains from exact knowledge and plays on.
func (client *Client) Probe(fen string) Result {
	if common.CountPieces(fen) > client.maxPieces {
		return Result{}
	}
	var res, err = client.probe(fen)
	if err != nil {
		client.logger.Println("tablebase probe:", err)
		return Result{}
	}
	return res
}

type probeResponse struct {
	Category string `json:"category"`
	DTZ      *int   `json:"dtz"`
}

func (client *Client) probe(fen string) (Result, error) {
	var probeURL = client.baseURL + "/standard?fen=" + url.QueryEscape(fen)
	resp, err := client.httpc.Get(probeURL)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("tablebase service: %v", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return Result{}, err
	}
	var parsed probeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Result{}, fmt.Errorf("tablebase response: %w", err)
	}
	wdl, ok := parseCategory(parsed.Category)
	if !ok {
		return Result{}, nil
	}
	var dtz = 0
	if parsed.DTZ != nil {
		dtz = *parsed.DTZ
	}
	return Result{Known: true, WDL: wdl, DTZ: dtz}, nil
}

func parseCategory(category string) (WDL, bool) {
	switch category {
	case "win", "maybe-win":
		return WDLWin, true
	case "cursed-win":
		return WDLCursedWin, true
	case "draw":
		return WDLDraw, true
	case "blessed-loss":
		return WDLBlessedLoss, true
	case "loss", "maybe-loss":
		return WDLLoss, true
	}
	return 0, false
}
