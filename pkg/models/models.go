package models

// ParameterKey identifies one tracked water-quality parameter. The key set is
// fixed at build time and follows the field spelling of the reading records.
type ParameterKey string

const (
	ParamTemperature       ParameterKey = "temperature"
	ParamNitrate           ParameterKey = "nitrat"
	ParamNitrite           ParameterKey = "nitrit"
	ParamPhosphate         ParameterKey = "phosphat"
	ParamPH                ParameterKey = "ph"
	ParamOxygen            ParameterKey = "sauerstoff"
	ParamCarbonateHardness ParameterKey = "karbonathaerte"
	ParamAmmonium          ParameterKey = "ammonium"
)

// IconRef names a glyph symbolically. Resolution to an actual glyph happens in
// the rendering layer so the registry stays data-only.
type IconRef string

const (
	IconThermometer IconRef = "thermometer"
	IconFlask       IconRef = "flask"
	IconDroplet     IconRef = "droplet"
	IconScale       IconRef = "scale"
	IconBubbles     IconRef = "bubbles"
	IconShell       IconRef = "shell"
	IconBeaker      IconRef = "beaker"
	IconWarning     IconRef = "warning"
)

// ParameterDescriptor carries the display metadata for one parameter key.
// AlertThreshold and WarningThreshold are reference levels only; nothing in
// the dashboard compares them against reading values.
type ParameterDescriptor struct {
	Label            string  `json:"label"`
	Unit             string  `json:"unit"`
	AlertThreshold   float64 `json:"alertThreshold"`
	WarningThreshold float64 `json:"warningThreshold"`
	Icon             IconRef `json:"icon"`
	Color            string  `json:"color"`
}

// Reading is one timestamped observation. Date is an ISO 8601 calendar date,
// unique within the dataset; the dataset is ordered by it ascending.
type Reading struct {
	Date           string  `gorm:"primaryKey" json:"date"`
	Temperature    float64 `json:"temperature"`
	PrevDayTemp    float64 `json:"prevDayTemp"`
	Nitrat         float64 `json:"nitrat"`
	Nitrit         float64 `json:"nitrit"`
	Phosphat       float64 `json:"phosphat"`
	PH             float64 `json:"ph"`
	Sauerstoff     float64 `json:"sauerstoff"`
	Karbonathaerte float64 `json:"karbonathaerte"`
	Ammonium       float64 `json:"ammonium"`
	Notes          string  `json:"notes"`
}

// Value looks up the metric a reading carries for the given key. The bool is
// false for keys the record has no metric field for, so generic iteration over
// registry keys can skip them instead of failing.
func (r Reading) Value(key ParameterKey) (float64, bool) {
	switch key {
	case ParamTemperature:
		return r.Temperature, true
	case ParamNitrate:
		return r.Nitrat, true
	case ParamNitrite:
		return r.Nitrit, true
	case ParamPhosphate:
		return r.Phosphat, true
	case ParamPH:
		return r.PH, true
	case ParamOxygen:
		return r.Sauerstoff, true
	case ParamCarbonateHardness:
		return r.Karbonathaerte, true
	case ParamAmmonium:
		return r.Ammonium, true
	default:
		return 0, false
	}
}
