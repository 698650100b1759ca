package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pokerledger/internal/services/controller"
	"github.com/mcoot/pokerledger/internal/services/table"
)

func TestHomePageEmptySession(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "form#add-player-form input[name=name]")
	assertContainsElement(t, doc, "form#add-player-form input[name=buy_in][type=number][min='0']")
	assertContainsText(t, doc, "#players-tbody", "No players yet")
	assertContainsText(t, doc, "#totalIn", "$0.00")
	assertContainsText(t, doc, "#totalOut", "$0.00")
	assertContainsText(t, doc, "#discrepancy", "$0.00")
	assertContainsElement(t, doc, "body[sse-connect='/events']")

	reset := doc.Find("#resetBtn")
	confirm, _ := reset.Attr("hx-confirm")
	assert.Equal(t, controller.ResetConfirmMessage, confirm)
}

func TestAddPlayerReturnsClearedForm(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/players", url.Values{"name": {"  Alice "}, "buy_in": {"50"}})
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	doc := parseHTML(rr.Body)
	name := doc.Find("form#add-player-form input[name=name]")
	require.Equal(t, 1, name.Length())
	_, autofocus := name.Attr("autofocus")
	assert.True(t, autofocus, "Expected name field to take focus again")
	value, _ := name.Attr("value")
	assert.Empty(t, value)
	assert.Contains(t, body, `<tbody id="players-tbody" hx-swap-oob="true">`)

	page := ts.homePage()
	assertContainsText(t, page, "#players-tbody td.name", "Alice")
	assertContainsText(t, page, "#players-tbody .chip", "$50.00")
	assertContainsText(t, page, "#discrepancy", "$-50.00")
	assertContainsText(t, page, "#totalIn", "$50.00")
}

func TestAddPlayerInvalidInputIsSilent(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{"empty name", url.Values{"name": {""}, "buy_in": {"50"}}},
		{"blank name", url.Values{"name": {"   "}, "buy_in": {"50"}}},
		{"negative buy-in", url.Values{"name": {"Alice"}, "buy_in": {"-5"}}},
		{"missing buy-in", url.Values{"name": {"Alice"}}},
		{"text buy-in", url.Values{"name": {"Alice"}, "buy_in": {"fifty"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newWebTestServer(t)

			rr := ts.post("/players", tt.form)

			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Empty(t, ts.app.Session.Snapshot().Players)
		})
	}
}

func TestPlayerNameIsEscaped(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer(`<b>Tom & "Jerry"'s</b>`, "10")

	rr := ts.get("/")
	body := rr.Body.String()
	assert.Contains(t, body, `&lt;b&gt;Tom &amp; &#34;Jerry&#34;&#39;s&lt;/b&gt;`)
	assert.NotContains(t, body, `<b>Tom`)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "td.name", `<b>Tom & "Jerry"'s</b>`)
}

func TestRowLayout(t *testing.T) {
	ts := newWebTestServer(t)
	first := ts.addPlayer("Alice", "50")
	second := ts.addPlayer("Bob", "20")

	doc := ts.homePage()
	rows := doc.Find("#players-tbody tr")
	require.Equal(t, 2, rows.Length())

	assert.Equal(t, "1", rows.Eq(0).Find("td").First().Text())
	assert.Equal(t, "2", rows.Eq(1).Find("td").First().Text())

	input := rows.Eq(1).Find("input.cashout-input")
	step, _ := input.Attr("step")
	placeholder, _ := input.Attr("placeholder")
	post, _ := input.Attr("hx-post")
	assert.Equal(t, "0.01", step)
	assert.Equal(t, "0.00", placeholder)
	assert.Equal(t, "/players/"+string(second)+"/cashout/live", post)

	net := doc.Find("#net-" + string(first))
	raw, _ := net.Attr("data-net")
	assert.Equal(t, "-50", raw)
	assert.Equal(t, "$-50.00", net.Text())

	assertContainsElement(t, doc, "button[data-action=rebuy][data-id='"+string(first)+"']")
	assertContainsElement(t, doc, "button[data-action=cashout][data-id='"+string(first)+"']")
	assertContainsElement(t, doc, "button[data-action=remove][data-id='"+string(first)+"']")
}

// Rebuy dialog

func TestRebuyDialogOpensCleared(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.addPlayer("Alice", "50")

	rr := ts.get("/players/" + string(id) + "/rebuy")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "#dialog dialog[open]")
	form := doc.Find("#dialog form")
	action, _ := form.Attr("hx-post")
	assert.Equal(t, "/players/"+string(id)+"/rebuy", action)
	value, _ := doc.Find("#rebuyAmount").Attr("value")
	assert.Empty(t, value)
	assertContainsText(t, doc, "h3", "Alice")
}

func TestRebuyConfirmAppendsBuyIn(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.addPlayer("Alice", "50")

	rr := ts.post("/players/"+string(id)+"/rebuy", url.Values{"action": {"confirm"}, "amount": {"25"}})
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `<div id="dialog"></div>`)
	assert.Contains(t, body, "$50.00 + $25.00")
	assert.Equal(t, []float64{50, 25}, ts.player(id).BuyIns)
}

func TestRebuyCancelChangesNothing(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.addPlayer("Alice", "50")

	rr := ts.post("/players/"+string(id)+"/rebuy", url.Values{"action": {"cancel"}, "amount": {"25"}})
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, `<div id="dialog"></div>`, rr.Body.String())
	assert.Equal(t, []float64{50}, ts.player(id).BuyIns)
}

func TestRebuyConfirmWithInvalidAmountClosesDialog(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.addPlayer("Alice", "50")

	rr := ts.post("/players/"+string(id)+"/rebuy", url.Values{"action": {"confirm"}, "amount": {"-10"}})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `<div id="dialog"></div>`, rr.Body.String())
	assert.Equal(t, []float64{50}, ts.player(id).BuyIns)
}

func TestDialogForUnknownPlayer(t *testing.T) {
	ts := newWebTestServer(t)

	assert.Equal(t, http.StatusNoContent, ts.get("/players/ghost/rebuy").Code)
	assert.Equal(t, http.StatusNoContent, ts.get("/players/ghost/cashout").Code)
}

// Cash-out dialog

func TestCashOutDialogPrefilled(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.addPlayer("Alice", "50")

	rr := ts.get("/players/" + string(id) + "/cashout")
	value, _ := parseHTML(rr.Body).Find("#cashoutAmount").Attr("value")
	assert.Empty(t, value)

	ts.post("/players/"+string(id)+"/cashout", url.Values{"action": {"confirm"}, "amount": {"72.5"}})

	rr = ts.get("/players/" + string(id) + "/cashout")
	value, _ = parseHTML(rr.Body).Find("#cashoutAmount").Attr("value")
	assert.Equal(t, "72.5", value)
}

func TestCashOutConfirmRedrawsRow(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.addPlayer("Alice", "50")

	rr := ts.post("/players/"+string(id)+"/cashout", url.Values{"action": {"confirm"}, "amount": {"80"}})
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `players-tbody`)
	assert.Contains(t, body, `value="80"`)
	assert.Contains(t, body, `$30.00`)

	p := ts.player(id)
	require.NotNil(t, p.CashOut)
	assert.Equal(t, 80.0, *p.CashOut)
}

func TestCashOutCancelChangesNothing(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.addPlayer("Alice", "50")

	rr := ts.post("/players/"+string(id)+"/cashout", url.Values{"action": {"cancel"}, "amount": {"80"}})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, ts.player(id).CashOut)
}

// Live cash-out edits

func TestLiveCashOutPatchesNetCell(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.addPlayer("Alice", "50")

	rr := ts.post("/players/"+string(id)+"/cashout/live", url.Values{"value": {"6"}})
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `id="net-`+string(id)+`" data-net="-44" hx-swap-oob="true">$-44.00</td>`)
	assert.Contains(t, body, `id="summary" hx-swap-oob="true"`)
	assert.NotContains(t, body, "players-tbody", "Row must not be rebuilt while typing")
	assert.Equal(t, 6.0, *ts.player(id).CashOut)
}

func TestLiveCashOutEmptyClears(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.addPlayer("Alice", "50")
	ts.post("/players/"+string(id)+"/cashout/live", url.Values{"value": {"60"}})

	rr := ts.post("/players/"+string(id)+"/cashout/live", url.Values{"value": {""}})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, ts.player(id).CashOut)
	assert.Contains(t, rr.Body.String(), "$-50.00")
}

func TestLiveCashOutIgnoresGarbage(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.addPlayer("Alice", "50")
	ts.post("/players/"+string(id)+"/cashout/live", url.Values{"value": {"60"}})

	rr := ts.post("/players/"+string(id)+"/cashout/live", url.Values{"value": {"6e"}})

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 60.0, *ts.player(id).CashOut)
}

func TestLiveCashOutUnknownPlayer(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/players/ghost/cashout/live", url.Values{"value": {"6"}})

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

// Remove and reset

func TestRemovePlayer(t *testing.T) {
	ts := newWebTestServer(t)
	alice := ts.addPlayer("Alice", "50")
	ts.addPlayer("Bob", "20")

	rr := ts.post("/players/"+string(alice)+"/remove", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	doc := ts.homePage()
	assert.Equal(t, 1, doc.Find("#players-tbody tr").Length())
	assertNotContainsElement(t, doc, "#net-"+string(alice))
	assertContainsText(t, doc, "#players-tbody td.name", "Bob")
}

func TestRemoveUnknownPlayer(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("Alice", "50")

	rr := ts.post("/players/ghost/remove", nil)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Len(t, ts.app.Session.Snapshot().Players, 1)
}

func TestResetRequiresConfirmation(t *testing.T) {
	ts := newWebTestServer(t)
	ts.addPlayer("Alice", "50")

	rr := ts.post("/session/reset", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Len(t, ts.app.Session.Snapshot().Players, 1)

	rr = ts.post("/session/reset", url.Values{"confirm": {"yes"}})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, ts.app.Session.Snapshot().Players)
	assertContainsText(t, ts.homePage(), "#players-tbody", "No players yet")
}

func TestDiscrepancyColour(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.addPlayer("Alice", "50")

	style, _ := ts.homePage().Find("#discrepancy").Attr("style")
	assert.Contains(t, style, table.ColorShortfall)

	ts.post("/players/"+string(id)+"/cashout", url.Values{"action": {"confirm"}, "amount": {"50"}})
	style, _ = ts.homePage().Find("#discrepancy").Attr("style")
	assert.Contains(t, style, table.ColorBalanced)

	ts.post("/players/"+string(id)+"/cashout", url.Values{"action": {"confirm"}, "amount": {"70"}})
	style, _ = ts.homePage().Find("#discrepancy").Attr("style")
	assert.Contains(t, style, table.ColorSurplus)
}
