package modifier_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-deck/internal/pkg/modifier"
)

type TrackerTestSuite struct {
	suite.Suite
	bus     events.EventBus
	tracker *modifier.Tracker
	ctx     context.Context
}

func (s *TrackerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()

	tracker, err := modifier.NewTracker(&modifier.Config{Bus: s.bus})
	s.Require().NoError(err)
	s.tracker = tracker
}

func (s *TrackerTestSuite) TearDownTest() {
	s.tracker.Stop()
}

func (s *TrackerTestSuite) TestNewTrackerRequiresBus() {
	tracker, err := modifier.NewTracker(&modifier.Config{})
	s.Error(err)
	s.Nil(tracker)

	tracker, err = modifier.NewTracker(nil)
	s.Error(err)
	s.Nil(tracker)
}

func (s *TrackerTestSuite) TestDefaultKey() {
	s.Equal(modifier.DefaultKey, s.tracker.Key())
}

func (s *TrackerTestSuite) TestIgnoresEventsBeforeStart() {
	s.Require().NoError(modifier.PublishKeyDown(s.ctx, s.bus, "Alt"))
	s.False(s.tracker.Pressed())
}

func (s *TrackerTestSuite) TestDownThenUp() {
	s.tracker.Start()

	s.Require().NoError(modifier.PublishKeyDown(s.ctx, s.bus, "Alt"))
	s.True(s.tracker.Pressed())

	s.Require().NoError(modifier.PublishKeyUp(s.ctx, s.bus, "Alt"))
	s.False(s.tracker.Pressed())
}

func (s *TrackerTestSuite) TestOtherKeysIgnored() {
	s.tracker.Start()

	s.Require().NoError(modifier.PublishKeyDown(s.ctx, s.bus, "Shift"))
	s.False(s.tracker.Pressed())
}

func (s *TrackerTestSuite) TestKeyMatchIsCaseInsensitive() {
	s.tracker.Start()

	s.Require().NoError(modifier.PublishKeyDown(s.ctx, s.bus, "alt"))
	s.True(s.tracker.Pressed())
}

func (s *TrackerTestSuite) TestStartTwiceSubscribesOnce() {
	s.tracker.Start()
	s.tracker.Start()
	s.True(s.tracker.Running())

	s.tracker.Stop()
	s.False(s.tracker.Running())

	s.Require().NoError(modifier.PublishKeyDown(s.ctx, s.bus, "Alt"))
	s.False(s.tracker.Pressed())
}

func (s *TrackerTestSuite) TestStopClearsPressed() {
	s.tracker.Start()
	s.Require().NoError(modifier.PublishKeyDown(s.ctx, s.bus, "Alt"))

	s.tracker.Stop()

	s.False(s.tracker.Pressed())
}

func (s *TrackerTestSuite) TestConfiguredKey() {
	tracker, err := modifier.NewTracker(&modifier.Config{Bus: s.bus, Key: "Meta"})
	s.Require().NoError(err)
	tracker.Start()
	defer tracker.Stop()

	s.Require().NoError(modifier.PublishKeyDown(s.ctx, s.bus, "Meta"))
	s.True(tracker.Pressed())
	s.False(s.tracker.Pressed())
}

func TestTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}
