package render

import (
	"fmt"
	"math"

	"SignalDeck/internal/model"
)

// StrengthSignalCap bounds the signal list under the strength gauge.
const StrengthSignalCap = 5

// Technical renders the indicator panel. RSI defaults to 50 and the volume
// ratio to 1 when absent. A failed fetch leaves zeroed indicators in the
// snapshot, so it renders those defaults rather than a placeholder text.
func Technical(ind *model.Indicators) Panel {
	if ind == nil {
		return loading("technical", "Technical Analysis")
	}
	p := Panel{ID: "technical", Title: "Technical Analysis"}

	rsi := ind.RSI.Or(50)
	p.Sections = append(p.Sections, Section{
		Title: "RSI (14)",
		Rows: []Row{
			{Label: "RSI", Value: fmt.Sprintf("%.2f", rsi), Class: rsiClass(rsi), Topic: "rsi"},
			{Label: "Status", Value: RSIStatus(rsi), Class: rsiClass(rsi)},
		},
		Bars: []Bar{{Label: "RSI", Value: fmt.Sprintf("%.2f", rsi), Percent: clampPercent(rsi), Class: rsiClass(rsi)}},
	})

	p.Sections = append(p.Sections, Section{
		Title: "MACD",
		Rows: []Row{
			{Label: "MACD", Value: fmt.Sprintf("%.3f", ind.MACD.MACD.Float()), Topic: "macd"},
			{Label: "Signal", Value: fmt.Sprintf("%.3f", ind.MACD.Signal.Float())},
			{Label: "Histogram", Value: fmt.Sprintf("%.3f", ind.MACD.Histogram.Float()), Class: SignClass(ind.MACD.Histogram.Float())},
		},
	})

	p.Sections = append(p.Sections, Section{
		Title: "Moving Averages",
		Rows: []Row{
			{Label: "SMA 20", Value: Level(ind.SMA.SMA20), Topic: "sma"},
			{Label: "SMA 50", Value: Level(ind.SMA.SMA50)},
			{Label: "SMA 200", Value: Level(ind.SMA.SMA200)},
		},
	})

	vol := ind.VolumeAnalysis
	p.Sections = append(p.Sections, Section{
		Title: "Volume",
		Rows: []Row{
			{Label: "Current", Value: Volume(vol.Current), Topic: "volume"},
			{Label: "Avg (20)", Value: Volume(vol.Avg20)},
			{Label: "Ratio", Value: fmt.Sprintf("%.2fx", vol.Ratio.Or(1))},
			{Label: "Signal", Value: orDefault(vol.Interpretation, "Normal volume")},
		},
	})

	bb := ind.BollingerBands
	p.Sections = append(p.Sections, Section{
		Title: "Bollinger Bands",
		Rows: []Row{
			{Label: "Upper", Value: Level(bb.Upper), Topic: "bollinger_bands"},
			{Label: "Middle", Value: Level(bb.Middle)},
			{Label: "Lower", Value: Level(bb.Lower)},
		},
	})

	sr := ind.SupportResistance
	p.Sections = append(p.Sections, Section{
		Title: "Support & Resistance",
		Rows: []Row{
			{Label: "Resistance", Value: Levels(sr.Resistance), Topic: "support_resistance"},
			{Label: "Support", Value: Levels(sr.Support)},
		},
	})

	p.Sections = append(p.Sections, strengthSection(ind.SignalStrength))
	return p
}

func strengthSection(ss model.SignalStrength) Section {
	strength := ss.Strength.Float()
	action := orDefault(ss.Action, "HOLD")
	return Section{
		Title: "Signal Strength",
		Rows: []Row{
			{Label: "Strength", Value: fmt.Sprintf("%.1f", strength), Class: SignClass(strength), Topic: "signal_strength"},
			{Label: "Action", Value: action, Class: ActionClass(action)},
			{Label: "Confidence", Value: Percent(ss.Confidence)},
		},
		Bars:    []Bar{{Label: "Strength", Value: fmt.Sprintf("%.1f", strength), Percent: clampPercent(math.Abs(strength)), Class: SignClass(strength)}},
		Items:   capList(ss.Signals, StrengthSignalCap),
		Ordered: true,
	}
}
