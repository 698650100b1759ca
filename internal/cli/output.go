package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errOut, string(data))
	} else {
		_, _ = fmt.Fprint(o.errOut, pterm.Error.Sprintln(err.Error()))
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.out, string(data))
	} else {
		_, _ = fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Session:
		o.printSession(v)
	case Summary:
		o.printSummary(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	BuyIns    []float64     `json:"buy_ins"`
	TotalIn   float64       `json:"total_in"`
	CashOut   *float64      `json:"cash_out"`
	Net       float64       `json:"net"`
	InPlay    bool          `json:"in_play"`
	CreatedAt time.Time     `json:"created_at"`
	Display   PlayerDisplay `json:"display"`
}

// PlayerDisplay response type
type PlayerDisplay struct {
	BuyIns  string `json:"buy_ins"`
	TotalIn string `json:"total_in"`
	CashOut string `json:"cash_out"`
	Net     string `json:"net"`
}

// Summary response type
type Summary struct {
	TotalIn     float64        `json:"total_in"`
	TotalOut    float64        `json:"total_out"`
	NetInPlay   float64        `json:"net_in_play"`
	Discrepancy float64        `json:"discrepancy"`
	Balance     string         `json:"balance"`
	PlayerCount int            `json:"player_count"`
	InPlayCount int            `json:"in_play_count"`
	Display     SummaryDisplay `json:"display"`
}

// SummaryDisplay response type
type SummaryDisplay struct {
	NetInPlay   string `json:"net_in_play"`
	TotalOut    string `json:"total_out"`
	Discrepancy string `json:"discrepancy"`
	Color       string `json:"color"`
}

// Session response type
type Session struct {
	Players   []Player  `json:"players"`
	Summary   Summary   `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HealthResult response type
type HealthResult struct {
	Status  string `json:"status"`
	Players int    `json:"players"`
}

func (o *Output) printPlayer(p Player) {
	_, _ = fmt.Fprintf(o.out, "Player: %s (%s)\n", p.Name, p.ID)
	_, _ = fmt.Fprintf(o.out, "Buy-ins: %s\n", p.Display.BuyIns)
	_, _ = fmt.Fprintf(o.out, "Total in: %s\n", p.Display.TotalIn)
	if p.InPlay {
		_, _ = fmt.Fprintln(o.out, "Cash-out: in play")
	} else {
		_, _ = fmt.Fprintf(o.out, "Cash-out: %s\n", p.Display.CashOut)
	}
	_, _ = fmt.Fprintf(o.out, "Net: %s\n", p.Display.Net)
}

func (o *Output) printSession(s Session) {
	if len(s.Players) == 0 {
		_, _ = fmt.Fprintln(o.out, "No players yet")
	} else {
		data := pterm.TableData{{"#", "ID", "Player", "Buy-ins", "Total in", "Cash-out", "Net"}}
		for i, p := range s.Players {
			cashOut := p.Display.CashOut
			if p.InPlay {
				cashOut = "in play"
			}
			data = append(data, []string{
				strconv.Itoa(i + 1), p.ID, p.Name, p.Display.BuyIns, p.Display.TotalIn, cashOut, p.Display.Net,
			})
		}
		rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			o.printJSON(s)
			return
		}
		_, _ = fmt.Fprintln(o.out, rendered)
	}
	o.printSummary(s.Summary)
}

func (o *Output) printSummary(s Summary) {
	_, _ = fmt.Fprintf(o.out, "Net in play: %s\n", s.Display.NetInPlay)
	_, _ = fmt.Fprintf(o.out, "Total cashed out: %s\n", s.Display.TotalOut)
	_, _ = fmt.Fprintf(o.out, "Discrepancy: %s (%s)\n", s.Display.Discrepancy, s.Balance)
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.out, "Status: %s\n", h.Status)
	_, _ = fmt.Fprintf(o.out, "Players: %d\n", h.Players)
}
