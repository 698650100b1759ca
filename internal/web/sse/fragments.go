package sse

import (
	"bytes"
	"context"

	"github.com/mcoot/pokerledger/internal/services/table"
	"github.com/mcoot/pokerledger/internal/web/templates/components"
)

// WrapTableFragment wraps table parts (tbody, tr, td) in a template element.
// They cannot stand alone in a parsed fragment otherwise.
func WrapTableFragment(html string) string {
	return `<template>` + html + `</template>`
}

// RenderTableUpdate renders the out-of-band fragments of a full redraw:
// the players body and the summary panel
func RenderTableUpdate(ctx context.Context, t table.Table) (string, error) {
	var body bytes.Buffer
	if err := components.PlayersBody(t.Rows, true).Render(ctx, &body); err != nil {
		return "", err
	}
	var summary bytes.Buffer
	if err := components.Summary(t.Summary, true).Render(ctx, &summary); err != nil {
		return "", err
	}
	return WrapTableFragment(body.String()) + summary.String(), nil
}

// RenderNetPatch renders the out-of-band fragments of a live cash-out edit
func RenderNetPatch(ctx context.Context, cell table.NetCell, s table.SummaryView) (string, error) {
	var cellBuf bytes.Buffer
	if err := components.NetCell(cell, true).Render(ctx, &cellBuf); err != nil {
		return "", err
	}
	var summary bytes.Buffer
	if err := components.Summary(s, true).Render(ctx, &summary); err != nil {
		return "", err
	}
	return WrapTableFragment(cellBuf.String()) + summary.String(), nil
}
