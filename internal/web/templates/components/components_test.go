package components

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pokerledger/internal/model"
	"github.com/mcoot/pokerledger/internal/services/controller"
	"github.com/mcoot/pokerledger/internal/services/table"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestPlayerRow_EscapesName(t *testing.T) {
	row := table.Row{
		Index: 2,
		ID:    "p1",
		Name:  `<i>Ann & "Bo"'s</i>`,
		Net:   table.NetCell{PlayerID: "p1", Text: "$0.00"},
	}

	html := render(t, PlayerRow(row))

	assert.Contains(t, html, `<td class="name">&lt;i&gt;Ann &amp; &#34;Bo&#34;&#39;s&lt;/i&gt;</td>`)
	assert.NotContains(t, html, "<i>")

	doc := parse(t, "<table>"+html+"</table>")
	assert.Equal(t, `<i>Ann & "Bo"'s</i>`, doc.Find("td.name").Text())
	assert.Equal(t, "2", doc.Find("td").First().Text())
}

func TestPlayerRow_ActionPaths(t *testing.T) {
	row := table.Row{Index: 1, ID: "abc", Name: "Ann", CashOutValue: "12.5",
		Net: table.NetCell{PlayerID: "abc", Text: "$2.50", Raw: 2.5}}

	doc := parse(t, "<table>"+render(t, PlayerRow(row))+"</table>")

	rebuy, _ := doc.Find(`button[data-action="rebuy"]`).Attr("hx-get")
	assert.Equal(t, "/players/abc/rebuy", rebuy)
	cashOut, _ := doc.Find(`button[data-action="cashout"]`).Attr("hx-get")
	assert.Equal(t, "/players/abc/cashout", cashOut)
	remove, _ := doc.Find(`button[data-action="remove"]`).Attr("hx-post")
	assert.Equal(t, "/players/abc/remove", remove)

	input := doc.Find("input.cashout-input")
	value, _ := input.Attr("value")
	assert.Equal(t, "12.5", value)
	live, _ := input.Attr("hx-post")
	assert.Equal(t, "/players/abc/cashout/live", live)

	net, _ := doc.Find("#net-abc").Attr("data-net")
	assert.Equal(t, "2.5", net)
}

func TestNetCell_OutOfBand(t *testing.T) {
	cell := table.NetCell{PlayerID: "p1", Text: "$-44.00", Raw: -44}

	assert.Equal(t, `<td class="num" id="net-p1" data-net="-44">$-44.00</td>`, render(t, NetCell(cell, false)))
	assert.Equal(t, `<td class="num" id="net-p1" data-net="-44" hx-swap-oob="true">$-44.00</td>`, render(t, NetCell(cell, true)))
}

func TestPlayersBody_Empty(t *testing.T) {
	html := render(t, PlayersBody(nil, false))

	assert.Equal(t, `<tbody id="players-tbody"><tr class="empty"><td colspan="8">No players yet</td></tr></tbody>`, html)
}

func TestSummary_DiscrepancyColour(t *testing.T) {
	view := table.SummaryView{
		NetInPlay:   "$10.00",
		TotalOut:    "$0.00",
		Discrepancy: "$-10.00",
		Balance:     model.BalanceShortfall,
		Color:       table.ColorShortfall,
	}

	html := render(t, Summary(view, true))
	assert.Contains(t, html, `id="summary" hx-swap-oob="true"`)

	doc := parse(t, html)
	discrepancy := doc.Find("#discrepancy")
	style, _ := discrepancy.Attr("style")
	assert.Equal(t, "color: "+table.ColorShortfall+";", style)
	balance, _ := discrepancy.Attr("data-balance")
	assert.Equal(t, "shortfall", balance)
	assert.Equal(t, "$-10.00", discrepancy.Text())
}

func TestAddPlayerForm_Autofocus(t *testing.T) {
	tests := []struct {
		name      string
		autofocus bool
	}{
		{"initial render", false},
		{"after submit", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, render(t, AddPlayerForm(tt.autofocus)))

			_, focused := doc.Find("#playerName").Attr("autofocus")
			assert.Equal(t, tt.autofocus, focused)
			_, required := doc.Find("#buyInAmount").Attr("required")
			assert.True(t, required)
		})
	}
}

func TestAmountDialog_RequiresAmount(t *testing.T) {
	prompt := controller.Prompt{
		Kind:     controller.PromptRebuy,
		PlayerID: "p1",
		Title:    `Rebuy for <Ann>`,
		Initial:  "50",
	}

	html := render(t, AmountDialog(prompt))
	assert.Contains(t, html, "<h3>Rebuy for &lt;Ann&gt;</h3>")

	doc := parse(t, html)
	input := doc.Find("#rebuyAmount")
	_, required := input.Attr("required")
	assert.True(t, required)
	value, _ := input.Attr("value")
	assert.Equal(t, "50", value)

	action, _ := doc.Find("#rebuyForm").Attr("hx-post")
	assert.Equal(t, "/players/p1/rebuy", action)
	_, skipsValidation := doc.Find(`button[value="cancel"]`).Attr("formnovalidate")
	assert.True(t, skipsValidation)
}

func TestDialogSlot(t *testing.T) {
	assert.Equal(t, `<div id="dialog"></div>`, render(t, DialogSlot()))
}
