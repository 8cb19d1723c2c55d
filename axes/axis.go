package axes

import (
	"encoding/json"
	"fmt"
)

// Kind distinguishes the three shapes of axis that a coverage plot uses.
type Kind byte

const (
	// KindValue is a linear numeric axis.
	KindValue Kind = iota

	// KindLog is a base-10 logarithmic numeric axis.
	KindLog

	// KindSpacer is an invisible axis. It carries no ticks or labels and only
	// exists so that the auxiliary grid gets a vertical extent.
	KindSpacer
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindLog:
		return "log"
	case KindSpacer:
		return "spacer"
	}

	return fmt.Sprintf("Kind(%d)", byte(k))
}

// Scale is the y axis scale requested by the user.
type Scale string

const (
	ScaleValue Scale = "value"
	ScaleLog   Scale = "log"
)

// ParseScale maps "log" to ScaleLog. Every other value, including the empty
// string, is a linear scale.
func ParseScale(s string) Scale {
	if s == string(ScaleLog) {
		return ScaleLog
	}

	return ScaleValue
}

// Kind returns the axis kind that draws this scale.
func (s Scale) Kind() Kind {
	if s == ScaleLog {
		return KindLog
	}

	return KindValue
}

// Min is the lower bound of a y axis with this scale. Depths are floored at a
// tiny positive value, so a log axis starts at 1 rather than 0.
func (s Scale) Min() float64 {
	if s == ScaleLog {
		return 1
	}

	return 0
}

type TextStyle struct {
	FontStyle  string `json:"fontStyle,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
}

type AxisLabel struct {
	Interval string `json:"interval,omitempty"`
}

type SplitLine struct {
	Show bool `json:"show"`
}

// Axis describes one axis of one grid of a multi-grid chart. It encodes to the
// JSON shape expected in the xAxis/yAxis arrays of an ECharts option.
type Axis struct {
	Kind      Kind
	GridIndex int
	Min       float64
	Max       float64

	// Name is drawn at NameLocation. Only set on labelled y axes.
	Name          string
	NameLocation  string
	NameTextStyle *TextStyle

	AxisLabel      *AxisLabel
	MinorSplitLine *SplitLine
}

// Show reports whether the charting library should draw the axis.
func (a Axis) Show() bool {
	return a.Kind != KindSpacer
}

type axisJSON struct {
	Type           string     `json:"type,omitempty"`
	GridIndex      int        `json:"gridIndex"`
	Name           *string    `json:"name,omitempty"`
	NameTextStyle  *TextStyle `json:"nameTextStyle,omitempty"`
	NameLocation   string     `json:"nameLocation,omitempty"`
	Min            *float64   `json:"min,omitempty"`
	Max            float64    `json:"max"`
	AxisLabel      *AxisLabel `json:"axisLabel,omitempty"`
	MinorSplitLine *SplitLine `json:"minorSplitLine,omitempty"`
	Show           *bool      `json:"show,omitempty"`
}

func (a Axis) MarshalJSON() ([]byte, error) {
	out := axisJSON{
		GridIndex:      a.GridIndex,
		Max:            a.Max,
		NameTextStyle:  a.NameTextStyle,
		NameLocation:   a.NameLocation,
		AxisLabel:      a.AxisLabel,
		MinorSplitLine: a.MinorSplitLine,
	}

	switch a.Kind {
	case KindValue, KindLog:
		out.Type = a.Kind.String()
		lower := a.Min
		out.Min = &lower
	case KindSpacer:
		hidden := false
		out.Show = &hidden
	default:
		return nil, fmt.Errorf("axes: cannot encode axis of kind %v", a.Kind)
	}

	// A sample may legitimately be named "", so the presence of a name is
	// keyed off the label location rather than the name itself.
	if a.NameLocation != "" {
		name := a.Name
		out.Name = &name
	}

	return json.Marshal(out)
}

func (a *Axis) UnmarshalJSON(b []byte) error {
	var in axisJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	*a = Axis{
		GridIndex:      in.GridIndex,
		Max:            in.Max,
		NameTextStyle:  in.NameTextStyle,
		NameLocation:   in.NameLocation,
		AxisLabel:      in.AxisLabel,
		MinorSplitLine: in.MinorSplitLine,
	}
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Min != nil {
		a.Min = *in.Min
	}

	switch {
	case in.Show != nil && !*in.Show:
		a.Kind = KindSpacer
	case in.Type == string(ScaleLog):
		a.Kind = KindLog
	default:
		a.Kind = KindValue
	}

	return nil
}
