package domain

// View model emitted by the rendering pipeline. Everything here is
// display-ready data: formatted strings, normalized ratios, chart configs.
// The charting front end consumes it without further computation.

// ReportView is the laid-out report. Body is nil when the payload's period
// is not one of the three known granularities; the header always renders.
type ReportView struct {
	Period   Period         `json:"period"`
	Facility FacilityHeader `json:"facility"`
	Body     *PeriodBody    `json:"body,omitempty"`
}

// FacilityHeader is the identifying banner shared by all period types.
type FacilityHeader struct {
	FacilityName string `json:"facility_name"`
	CompanyName  string `json:"company_name"`
	Address      string `json:"address"`
	Badge        string `json:"badge"` // e.g. "week Report"
}

// PeriodBody is the period-specific report body produced by exactly one of
// the three renderers.
type PeriodBody struct {
	SummaryTitle   string        `json:"summary_title"`
	QualityLine    string        `json:"quality_line"`
	SummaryCards   []StatCard    `json:"summary_cards"`
	TrendChart     BarChart      `json:"trend_chart"`
	TypicalProfile *ProfileChart `json:"typical_profile,omitempty"` // day only
	ReviewsTitle   string        `json:"reviews_title"`
	Reviews        []ReviewBlock `json:"reviews"`
}

// StatCard is one executive-summary or review card.
type StatCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// BarChart is a simple labeled bar series.
type BarChart struct {
	Title  string     `json:"title"`
	Color  string     `json:"color"`
	Points []BarPoint `json:"points"`
}

type BarPoint struct {
	Label     string  `json:"label"`
	FullLabel string  `json:"full_label,omitempty"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// ProfileChart is the 24-hour range/average composed chart with its single
// peak marker.
type ProfileChart struct {
	Title   string             `json:"title"`
	Kind    string             `json:"kind"` // composed | area
	Points  []ProfileChartSlot `json:"points"`
	Peak    PeakMarker         `json:"peak"`
	Caption string             `json:"caption"`
}

type ProfileChartSlot struct {
	Hour        int     `json:"hour"`
	AverageLoad float64 `json:"average_load"`
	MinRange    float64 `json:"min_range"`
	MaxRange    float64 `json:"max_range"`
}

// PeakMarker places the reference dot at the payload's peak coordinates.
type PeakMarker struct {
	Hour           int     `json:"hour"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formatted_value"`
	FormattedHour  string  `json:"formatted_hour"`
}

// ComparisonPanel is an ordered list of proportional bars, each scaled
// against the list's own maximum.
type ComparisonPanel struct {
	Title string          `json:"title"`
	Bars  []ComparisonBar `json:"bars"`
}

type ComparisonBar struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	// Ratio is value / max(list), in [0,1]; 0 when the whole list is zero.
	Ratio   float64 `json:"ratio"`
	Current bool    `json:"current"`
}

// Heatmap is the dense 7x24 intensity grid. Cells is always 168 entries in
// day-major order regardless of input sparsity.
type Heatmap struct {
	Days  []string      `json:"days"`
	Hours []int         `json:"hours"`
	Cells []HeatmapCell `json:"cells"`
}

type HeatmapCell struct {
	Day   string  `json:"day"`
	Hour  int     `json:"hour"`
	Value float64 `json:"value"`
	// Intensity is value / table max, in [0,1].
	Intensity float64 `json:"intensity"`
	Color     string  `json:"color"`
	// LightText flags high-intensity cells that need a light label.
	LightText bool   `json:"light_text"`
	Tooltip   string `json:"tooltip"`
}

// ComparisonBadge is the "vs prev" chip in a review header.
type ComparisonBadge struct {
	Direction  string `json:"direction"`
	Arrow      string `json:"arrow"`
	Percentage string `json:"percentage"`
	Text       string `json:"text"`
}

// OperatingHoursPanel is the daytime/nighttime split.
type OperatingHoursPanel struct {
	Daytime   OperatingCard `json:"daytime"`
	Nighttime OperatingCard `json:"nighttime"`
}

type OperatingCard struct {
	Label       string `json:"label"`
	Percentage  string `json:"percentage"`
	Consumption string `json:"consumption"`
	Details     string `json:"details"`
}

// ProfileAnalysisPanel is the weekday/weekend load statistics pair.
type ProfileAnalysisPanel struct {
	Weekday ProfileAnalysisCard `json:"weekday"`
	Weekend ProfileAnalysisCard `json:"weekend"`
}

type ProfileAnalysisCard struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

// ReviewBlock is one rendered sub-period. Optional sections are nil when
// the period's schema does not carry them.
type ReviewBlock struct {
	Title           string                `json:"title"`
	Accent          string                `json:"accent"`
	Comparison      *ComparisonBadge      `json:"comparison,omitempty"`
	Cards           []StatCard            `json:"cards"`
	DailyChart      *BarChart             `json:"daily_chart,omitempty"`
	ComparisonPanel *ComparisonPanel      `json:"comparison_panel,omitempty"`
	Profile         *ProfileChart         `json:"profile,omitempty"`
	Heatmap         *Heatmap              `json:"heatmap,omitempty"`
	ProfileAnalysis *ProfileAnalysisPanel `json:"profile_analysis,omitempty"`
	OperatingHours  OperatingHoursPanel   `json:"operating_hours"`
}
