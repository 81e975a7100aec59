package play

import "github.com/syduan2016/space-math-adventure/internal/game"

// feedbackDoneMsg is sent when the answer feedback display period ends.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}

// summaryReadyMsg carries the finished session summary.
type summaryReadyMsg struct {
	Summary game.Summary
}
