package scenes

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// frameTimer measures the wall time between scene updates.
type frameTimer struct {
	last time.Time
}

// Delta returns seconds since the previous call. The first call after a
// reset reports one nominal tick.
func (t *frameTimer) Delta() float64 {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		return 1 / float64(ebiten.TPS())
	}
	d := now.Sub(t.last).Seconds()
	t.last = now
	return d
}

func (t *frameTimer) Reset() {
	t.last = time.Time{}
}
