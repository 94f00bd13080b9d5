package render

import "github.com/enerscope/enerscope/internal/domain"

// Renderer turns a Report payload into a display-ready view tree. It is
// stateless and side-effect free: rendering the same report twice yields
// identical output.
type Renderer struct {
	f *Formatter
}

func NewRenderer(f *Formatter) *Renderer {
	return &Renderer{f: f}
}

// Render selects the period renderer by exact match on the report's period.
// The facility header renders for every report; an unrecognized period leaves
// the body nil rather than falling back to one of the three renderers.
func (r *Renderer) Render(rep *domain.Report) *domain.ReportView {
	view := &domain.ReportView{
		Period: rep.Period,
		Facility: domain.FacilityHeader{
			FacilityName: rep.FacilityInfo.FacilityName,
			CompanyName:  rep.FacilityInfo.CompanyName,
			Address:      rep.FacilityInfo.Address,
			Badge:        string(rep.Period) + " Report",
		},
	}

	switch rep.Period {
	case domain.PeriodDay:
		view.Body = r.renderDay(rep)
	case domain.PeriodWeek:
		view.Body = r.renderWeek(rep)
	case domain.PeriodMonth:
		view.Body = r.renderMonth(rep)
	}

	return view
}
