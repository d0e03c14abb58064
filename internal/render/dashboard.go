package render

import (
	"SignalDeck/internal/model"
	"SignalDeck/internal/snapshot"
)

// Set holds every panel rendered from one snapshot.
type Set struct {
	Overview    Panel
	Technical   Panel
	Signals     Panel
	Fundamental Panel
	Sentiment   Panel
	Expert      Panel
}

// All renders every panel from s. One panel's missing data never affects
// another.
func All(s *snapshot.Snapshot) Set {
	return Set{
		Overview:    Overview(OverviewOf(s)),
		Technical:   Technical(s.Indicators),
		Signals:     Signals(s.Signal, s.Status(model.KindSignals).State),
		Fundamental: Fundamental(s.Fundamental, s.Status(model.KindFundamental).State),
		Sentiment:   Sentiment(s.Sentiment, s.Status(model.KindSentiment).State),
		Expert:      Expert(s.Expert, s.Status(model.KindExpert).State),
	}
}

// ByID returns the panel with the given id.
func (s Set) ByID(id string) (Panel, bool) {
	for _, p := range []Panel{s.Overview, s.Technical, s.Signals, s.Fundamental, s.Sentiment, s.Expert} {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}
