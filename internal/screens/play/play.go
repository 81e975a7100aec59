package play

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/syduan2016/space-math-adventure/internal/game"
	"github.com/syduan2016/space-math-adventure/internal/problemgen"
	"github.com/syduan2016/space-math-adventure/internal/router"
	"github.com/syduan2016/space-math-adventure/internal/screen"
	"github.com/syduan2016/space-math-adventure/internal/screens/summary"
	"github.com/syduan2016/space-math-adventure/internal/ui/components"
	"github.com/syduan2016/space-math-adventure/internal/ui/layout"
)

// feedbackDur is how long the correct/wrong flash stays up before the
// next question appears.
const feedbackDur = 800 * time.Millisecond

// PlayScreen runs one game session against the controller.
type PlayScreen struct {
	ctrl *game.Controller
	cfg  problemgen.LevelConfig

	question      *problemgen.Question
	choice        components.MultiChoice
	questionStart time.Time

	feedback    *game.Feedback
	hintsShown  int
	showingQuit bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for the given level config. The session
// starts on Init.
func New(ctrl *game.Controller, cfg problemgen.LevelConfig) *PlayScreen {
	return &PlayScreen{
		ctrl: ctrl,
		cfg:  cfg,
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	s.question = s.ctrl.StartSession(s.cfg)
	s.resetChoice()
	return nil
}

func (s *PlayScreen) Title() string {
	if s.cfg.PracticeMode {
		return "Practice: " + s.cfg.Label
	}
	return "Mission: " + s.cfg.Label
}

// HandlesEsc keeps esc local so the router does not pop a live session.
func (s *PlayScreen) HandlesEsc() bool {
	return true
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.showingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abort mission"},
			{Key: "N", Description: "Keep flying"},
		}
	}
	if s.feedback != nil {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
	}
	if s.cfg.PracticeMode {
		hints = append(hints, layout.KeyHint{Key: "?", Description: "Hint"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *PlayScreen) resetChoice() {
	if s.question != nil {
		s.choice = components.NewMultiChoice(s.question.Choices, s.question.CorrectAnswer)
		s.questionStart = time.Now()
		s.hintsShown = 0
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		return s.advance()

	case sessionEndMsg:
		sum := s.ctrl.EndSession()
		return s, func() tea.Msg { return summaryReadyMsg{Summary: sum} }

	case summaryReadyMsg:
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(msg.Summary)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// advance moves past the feedback flash: either to the next question
// or into the end-of-session flow.
func (s *PlayScreen) advance() (screen.Screen, tea.Cmd) {
	if s.feedback == nil {
		return s, nil
	}
	over := s.feedback.SessionOver
	s.feedback = nil

	if over {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	s.question = s.ctrl.NextQuestion()
	if s.question == nil {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.resetChoice()
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuit {
		switch key {
		case "y", "Y":
			s.showingQuit = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showingQuit = false
			// Restart the clock so the pause doesn't eat the
			// speed bonus.
			s.questionStart = time.Now()
		}
		return s, nil
	}

	// Feedback flash: any key skips the delay.
	if s.feedback != nil {
		return s.advance()
	}

	switch key {
	case "esc":
		s.showingQuit = true
		return s, nil
	case "?":
		if s.cfg.PracticeMode && s.question != nil {
			if s.hintsShown < len(s.ctrl.Hints()) {
				s.hintsShown++
			}
		}
		return s, nil
	}

	// Everything else drives the answer selector.
	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		return s.submit()
	}
	return s, cmd
}

func (s *PlayScreen) submit() (screen.Screen, tea.Cmd) {
	fb := s.ctrl.SubmitAnswer(s.choice.Value(), s.questionStart)
	if !fb.Outcome.Answered {
		return s, nil
	}
	s.feedback = &fb

	return s, tea.Tick(feedbackDur, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}
