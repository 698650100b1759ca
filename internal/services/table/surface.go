package table

import "context"

// Surface is a display the controller keeps in step with the session.
// Implementations report their own failures; refreshing never fails a mutation.
type Surface interface {
	// ShowTable discards every row and redraws the table and summary
	ShowTable(ctx context.Context, t Table)
	// PatchNet replaces the text of one net cell, leaving its row intact
	PatchNet(ctx context.Context, cell NetCell)
	// ShowSummary redraws only the summary figures
	ShowSummary(ctx context.Context, s SummaryView)
}

// Surfaces fans refreshes out to several displays
type Surfaces []Surface

var _ Surface = Surfaces(nil)

func (ss Surfaces) ShowTable(ctx context.Context, t Table) {
	for _, s := range ss {
		s.ShowTable(ctx, t)
	}
}

func (ss Surfaces) PatchNet(ctx context.Context, cell NetCell) {
	for _, s := range ss {
		s.PatchNet(ctx, cell)
	}
}

func (ss Surfaces) ShowSummary(ctx context.Context, sv SummaryView) {
	for _, s := range ss {
		s.ShowSummary(ctx, sv)
	}
}
