package render

import (
	"fmt"

	"SignalDeck/internal/model"
	"SignalDeck/internal/snapshot"
)

// Placeholder texts for analysis panels without data.
const (
	NoSignals     = "No trade signals available."
	NoFundamental = "No fundamental data available."
	NoSentiment   = "No sentiment data available."
	NoExpert      = "No expert analysis available."
)

// SignalReasonCap bounds the reasoning list; zero shows every reason.
const SignalReasonCap = 0

func pendingOr(id, title, text string, state snapshot.State) Panel {
	if state == snapshot.StatePending || state == snapshot.StateIdle {
		return loading(id, title)
	}
	return placeholder(id, title, text)
}

// Signals renders the composite trade signal.
func Signals(sig *model.TradeSignal, state snapshot.State) Panel {
	const id, title = "signals", "Trade Signals"
	if sig == nil {
		return pendingOr(id, title, NoSignals, state)
	}

	action := orDefault(sig.Signal, "HOLD")
	strength := sig.Strength.Float()
	p := Panel{ID: id, Title: title}
	p.Sections = append(p.Sections, Section{
		Title: "Signal",
		Rows: []Row{
			{Label: "Action", Value: action, Class: ActionClass(action)},
			{Label: "Confidence", Value: Percent(sig.Confidence)},
			{Label: "Strength", Value: fmt.Sprintf("%.1f", strength), Class: SignClass(strength)},
		},
	})
	p.Sections = append(p.Sections, Section{
		Title:   "Reasoning",
		Items:   capList(sig.Reasoning, SignalReasonCap),
		Ordered: true,
	})
	p.Sections = append(p.Sections, Section{
		Title: "Breakdown",
		Rows: []Row{
			breakdownRow("Technical", sig.TechnicalSignal),
			breakdownRow("Fundamental", sig.FundamentalSignal),
			breakdownRow("Sentiment", sig.SentimentSignal),
		},
	})
	return p
}

func breakdownRow(label, signal string) Row {
	signal = orDefault(signal, "NEUTRAL")
	return Row{Label: label, Value: signal, Class: TrendClass(signal)}
}
