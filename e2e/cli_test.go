package e2e_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pokerledger/internal/api"
	"github.com/mcoot/pokerledger/internal/factory"
	"github.com/mcoot/pokerledger/internal/testutil"
	"github.com/mcoot/pokerledger/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "pokerledger-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/pokerledger")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) args(args ...string) []string {
	return append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)
}

func (r *cliRunner) run(args ...string) (string, error) {
	cmd := exec.Command(r.binaryPath, r.args(args...)...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// runJSON runs a command that must succeed and decodes its output into v
func (r *cliRunner) runJSON(t *testing.T, v any, args ...string) {
	t.Helper()
	output, err := r.run(args...)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), v), "output: %s", output)
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := testutil.NopLogger()

	// Create application on in-memory storage
	app, err := factory.New(context.Background(), factory.Config{Logger: logger})
	require.NoError(t, err)

	// Create routers
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:     logger,
		Controller: app.Controller,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:     logger,
		Controller: app.Controller,
		Hub:        app.Hub,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			app.Hub.Close()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
			_ = app.Close()
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type playerResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	BuyIns  []float64 `json:"buy_ins"`
	CashOut *float64  `json:"cash_out"`
	InPlay  bool      `json:"in_play"`
	Net     float64   `json:"net"`
	Display struct {
		BuyIns string `json:"buy_ins"`
		Net    string `json:"net"`
	} `json:"display"`
}

type summaryResponse struct {
	TotalIn     float64 `json:"total_in"`
	TotalOut    float64 `json:"total_out"`
	NetInPlay   float64 `json:"net_in_play"`
	Discrepancy float64 `json:"discrepancy"`
	Balance     string  `json:"balance"`
	Display     struct {
		Discrepancy string `json:"discrepancy"`
		Color       string `json:"color"`
	} `json:"display"`
}

type sessionResponse struct {
	Players []playerResponse `json:"players"`
	Summary summaryResponse  `json:"summary"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Players int    `json:"players"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	var resp healthResponse
	cli.runJSON(t, &resp, "health")
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 0, resp.Players)
}

func TestCLI_SessionFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Seat two players
	var alice playerResponse
	cli.runJSON(t, &alice, "player", "add", "--name", "Alice", "--buy-in", "100")
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, []float64{100}, alice.BuyIns)
	assert.True(t, alice.InPlay)

	var bob playerResponse
	cli.runJSON(t, &bob, "player", "add", "--name", "Bob", "--buy-in", "100")

	// Rebuy by table position
	var rebought playerResponse
	cli.runJSON(t, &rebought, "player", "rebuy", "1", "--amount", "50")
	assert.Equal(t, alice.ID, rebought.ID)
	assert.Equal(t, []float64{100, 50}, rebought.BuyIns)
	assert.Equal(t, "$100.00 + $50.00", rebought.Display.BuyIns)

	// Cash out by id
	var cashed playerResponse
	cli.runJSON(t, &cashed, "player", "cashout", bob.ID, "--amount", "200")
	require.NotNil(t, cashed.CashOut)
	assert.InDelta(t, 200, *cashed.CashOut, 1e-9)
	assert.False(t, cashed.InPlay)

	// Whole session
	var session sessionResponse
	cli.runJSON(t, &session, "session", "show")
	require.Len(t, session.Players, 2)
	assert.Equal(t, "Alice", session.Players[0].Name)
	assert.Equal(t, "Bob", session.Players[1].Name)
	assert.InDelta(t, 250, session.Summary.TotalIn, 1e-9)
	assert.InDelta(t, 200, session.Summary.TotalOut, 1e-9)
	assert.InDelta(t, 50, session.Summary.NetInPlay, 1e-9)
	assert.Equal(t, "shortfall", session.Summary.Balance)
	assert.Equal(t, "$-50.00", session.Summary.Display.Discrepancy)

	// Summary on its own
	var summary summaryResponse
	cli.runJSON(t, &summary, "session", "summary")
	assert.InDelta(t, -50, summary.Discrepancy, 1e-9)
	assert.Equal(t, "#ef4444", summary.Display.Color)

	// Clear Bob's cash-out
	var cleared playerResponse
	cli.runJSON(t, &cleared, "player", "cashout", "2", "--clear")
	assert.Nil(t, cleared.CashOut)
	assert.True(t, cleared.InPlay)

	// Remove Alice
	var msg messageResponse
	cli.runJSON(t, &msg, "player", "remove", "1")
	assert.Equal(t, "Player removed", msg.Message)

	cli.runJSON(t, &session, "session", "show")
	require.Len(t, session.Players, 1)
	assert.Equal(t, "Bob", session.Players[0].Name)

	// Reset without prompting
	var reset sessionResponse
	cli.runJSON(t, &reset, "session", "reset", "--yes")
	assert.Empty(t, reset.Players)
	assert.Equal(t, "balanced", reset.Summary.Balance)
}

func TestCLI_TextOutput(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	cmd := exec.Command(cli.binaryPath, "--server", cli.serverURL, "player", "add", "--name", "Alice", "--buy-in", "100")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "Player: Alice")
	assert.Contains(t, string(output), "Net: $-100.00")

	cmd = exec.Command(cli.binaryPath, "--server", cli.serverURL, "session", "show")
	output, err = cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "Alice")
	assert.Contains(t, string(output), "in play")
	assert.Contains(t, string(output), "Discrepancy: $-100.00 (shortfall)")
}

func TestCLI_EventsStream(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, cli.binaryPath, cli.args("events", "--json")...)
	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, cmd.Start())
	defer func() {
		cancel()
		_ = cmd.Wait()
	}()

	events := make(chan string, 16)
	go func() {
		defer close(events)
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
		for scanner.Scan() {
			var evt struct {
				Event string `json:"event"`
				Data  string `json:"data"`
			}
			if json.Unmarshal(scanner.Bytes(), &evt) == nil {
				events <- evt.Event + " " + evt.Data
			}
		}
	}()

	waitForEvent(t, events, "connected")

	_, err = cli.run("player", "add", "--name", "Alice", "--buy-in", "100")
	require.NoError(t, err)

	update := waitForEvent(t, events, "table-update")
	assert.Contains(t, update, "Alice")
	assert.Contains(t, update, `hx-swap-oob`)
}

func waitForEvent(t *testing.T, events <-chan string, name string) string {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case evt, ok := <-events:
			if !ok {
				t.Fatalf("event stream ended before %s", name)
			}
			if strings.HasPrefix(evt, name+" ") {
				return evt
			}
		case <-timeout:
			t.Fatalf("no %s event received", name)
		}
	}
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Unknown player id
	output, err := cli.run("player", "rebuy", "nobody", "--amount", "20")
	assert.Error(t, err)
	assert.Contains(t, output, "PLAYER_NOT_FOUND")

	// Position past the end of the table
	output, err = cli.run("player", "remove", "3")
	assert.Error(t, err)
	assert.Contains(t, output, "no player at position 3")

	// Negative buy-in
	output, err = cli.run("player", "add", "--name", "Alice", "--buy-in=-5")
	assert.Error(t, err)
	assert.Contains(t, output, "INVALID_AMOUNT")

	// Cash-out needs exactly one of --amount and --clear
	output, err = cli.run("player", "cashout", "1")
	assert.Error(t, err)
	assert.Contains(t, output, "exactly one of --amount or --clear")

	// Nothing was recorded
	var session sessionResponse
	cli.runJSON(t, &session, "session", "show")
	assert.Empty(t, session.Players)
}
