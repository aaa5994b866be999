package systems

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/decker502/scrollkit/pkg/config"
	"github.com/decker502/scrollkit/pkg/ecs"
	"github.com/decker502/scrollkit/pkg/frame"
	"github.com/decker502/scrollkit/pkg/types"
)

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// recorder 记录所有引擎和协调器的通知
type recorder struct {
	events    []string
	pushes    []Push
	positions []types.Vec2
	changes   []ScrollEvent
	stables   []ScrollEvent
	pulls     []ScrollEvent
}

func (r *recorder) OnMomentumStart() { r.events = append(r.events, "momentum:start") }
func (r *recorder) OnMomentumStartOnAxis(a types.Axis) {
	r.events = append(r.events, "momentum:start:"+a.String())
}
func (r *recorder) OnMomentumPush(p Push) {
	r.events = append(r.events, "momentum:push")
	r.pushes = append(r.pushes, p)
}
func (r *recorder) OnMomentumStopOnAxis(a types.Axis) {
	r.events = append(r.events, "momentum:stop:"+a.String())
}
func (r *recorder) OnMomentumStop() { r.events = append(r.events, "momentum:stop") }

func (r *recorder) OnBounceStart() { r.events = append(r.events, "bounce:start") }
func (r *recorder) OnBounceStartOnAxis(a types.Axis) {
	r.events = append(r.events, "bounce:start:"+a.String())
}
func (r *recorder) OnBouncePositionChange(p types.Vec2) {
	r.events = append(r.events, "bounce:position")
	r.positions = append(r.positions, p)
}
func (r *recorder) OnBounceEndOnAxis(a types.Axis) {
	r.events = append(r.events, "bounce:end:"+a.String())
}
func (r *recorder) OnBounceEnd() { r.events = append(r.events, "bounce:end") }

func (r *recorder) OnAnimatedScrollStart() { r.events = append(r.events, "animated:start") }
func (r *recorder) OnAnimatedScrollPositionChange(p types.Vec2) {
	r.events = append(r.events, "animated:position")
	r.positions = append(r.positions, p)
}
func (r *recorder) OnAnimatedScrollStop() { r.events = append(r.events, "animated:stop") }

func (r *recorder) OnPositionChange(e ScrollEvent) { r.changes = append(r.changes, e) }
func (r *recorder) OnPositionStable(e ScrollEvent) { r.stables = append(r.stables, e) }
func (r *recorder) OnPullToRefresh(e ScrollEvent)  { r.pulls = append(r.pulls, e) }

// compact 把连续重复的事件折叠成 "name xN"，便于比较事件序列
func (r *recorder) compact() []string {
	var out []string
	for i := 0; i < len(r.events); {
		j := i
		for j < len(r.events) && r.events[j] == r.events[i] {
			j++
		}
		if n := j - i; n > 1 {
			out = append(out, fmt.Sprintf("%s x%d", r.events[i], n))
		} else {
			out = append(out, r.events[i])
		}
		i = j
	}
	return out
}

func (r *recorder) reset() {
	*r = recorder{}
}

// engineFixture 单个引擎测试的公共环境
type engineFixture struct {
	em     *ecs.EntityManager
	entity ecs.EntityID
	clock  *frame.Clocked
	cfg    *config.ScrollConfig
	rec    *recorder
}

func newEngineFixture(t *testing.T, axis string) *engineFixture {
	t.Helper()
	cfg := config.DefaultScrollConfig()
	cfg.Axis = axis
	require.NoError(t, cfg.Validate())

	em := ecs.NewEntityManager()
	return &engineFixture{
		em:     em,
		entity: em.CreateEntity(),
		clock:  frame.NewClocked(testStart, 0),
		cfg:    cfg,
		rec:    &recorder{},
	}
}

// scrollFixture 协调器测试的公共环境
type scrollFixture struct {
	scroll *ScrollSystem
	layout *StaticLayout
	clock  *frame.Clocked
	rec    *recorder
}

func newScrollFixture(t *testing.T, cfg *config.ScrollConfig, layout *StaticLayout) *scrollFixture {
	t.Helper()
	clock := frame.NewClocked(testStart, 0)
	s, err := NewScrollSystem(cfg, layout, ScrollSystemOptions{
		Scheduler:    clock,
		TimeProvider: clock.Time,
	})
	require.NoError(t, err)

	rec := &recorder{}
	s.AddListener(rec)
	return &scrollFixture{scroll: s, layout: layout, clock: clock, rec: rec}
}

func (f *scrollFixture) runUntilIdle(t *testing.T) {
	t.Helper()
	f.clock.RunUntilIdle(10000)
	require.True(t, f.clock.Idle(), "engines did not settle")
}
