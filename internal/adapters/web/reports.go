package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"stockbooks/internal/core"
)

// parseDateFilter builds a core.DateFilter from the request query string.
// Recognized parameters: filter (ALL|YEARLY|MONTHLY|CUSTOM), year, month,
// start and end (both YYYY-MM-DD). Missing or malformed parameters degrade
// the filter toward ALL rather than failing the request; only an unknown
// filter kind is rejected.
func parseDateFilter(r *http.Request) (core.DateFilter, bool) {
	q := r.URL.Query()

	kind := core.FilterKind(strings.ToUpper(q.Get("filter")))
	switch kind {
	case "", core.FilterAll, core.FilterYearly, core.FilterMonthly, core.FilterCustom:
	default:
		return core.DateFilter{}, false
	}
	if kind == "" {
		kind = core.FilterAll
	}

	f := core.DateFilter{Kind: kind}
	if y, err := strconv.Atoi(q.Get("year")); err == nil {
		f.Year = y
	}
	if m, err := strconv.Atoi(q.Get("month")); err == nil && m >= 1 && m <= 12 {
		f.Month = time.Month(m)
	}
	if t, err := time.Parse("2006-01-02", q.Get("start")); err == nil {
		f.Start = &t
	}
	if t, err := time.Parse("2006-01-02", q.Get("end")); err == nil {
		f.End = &t
	}
	return f, true
}

// accountingReport handles GET /api/reports/accounting. It runs the full
// aggregation under the requested date filter. When the underlying data fetch
// fails the zeroed snapshot is still served with a 200 so the dashboard always
// has a well-formed document to render; the failure is logged server-side.
func (h *Handler) accountingReport(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseDateFilter(r)
	if !ok {
		writeError(w, r, "unknown filter kind", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	snapshot, err := h.svc.GetAccountingReport(r.Context(), filter)
	if err != nil {
		h.log.WithError(err).WithField("request_id", requestIDFromContext(r.Context())).
			Warn("accounting report degraded to zeroed snapshot")
	}
	writeJSON(w, snapshot)
}

// refreshReport handles POST /api/reports/refresh — recomputes the unfiltered
// report and returns it. Overlapping refreshes are safe: the service keeps
// only the last completed result.
func (h *Handler) refreshReport(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.svc.GetAccountingReport(r.Context(), core.DateFilter{Kind: core.FilterAll})
	if err != nil {
		h.log.WithError(err).Warn("report refresh degraded to zeroed snapshot")
	}
	writeJSON(w, snapshot)
}

// latestReport handles GET /api/reports/latest — returns the most recently
// completed snapshot without recomputing, or 404 if none has finished yet.
func (h *Handler) latestReport(w http.ResponseWriter, r *http.Request) {
	snapshot := h.svc.LatestReport()
	if snapshot == nil {
		writeError(w, r, "no report computed yet", "NOT_FOUND", http.StatusNotFound)
		return
	}
	writeJSON(w, snapshot)
}
