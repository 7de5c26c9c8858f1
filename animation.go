package main

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-activity/config"
)

type animTickMsg struct{ ts time.Time }

// domainAnimation eases the drawn time domain toward the state's domain.
// Only rendering follows it; stats, hover and brushing read the state.
type domainAnimation struct {
	enabled bool
	fps     int
	spring  harmonica.Spring
	cur     [2]float64
	vel     [2]float64
	target  [2]float64
	running bool
}

func newDomainAnimation(cfg config.Animation, domain [2]float64) domainAnimation {
	a := domainAnimation{enabled: cfg.Enabled, fps: cfg.FPS, cur: domain, target: domain}
	if a.enabled {
		a.spring = harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping)
	}
	return a
}

func (a *domainAnimation) tickCmd() tea.Cmd {
	fps := a.fps
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(ts time.Time) tea.Msg { return animTickMsg{ts: ts} })
}

// retarget points the animation at domain. It returns the first tick when
// a new run has to start.
func (a *domainAnimation) retarget(domain [2]float64) tea.Cmd {
	if domain == a.target {
		return nil
	}
	a.target = domain
	if !a.enabled {
		a.cur = domain
		return nil
	}
	if a.running {
		return nil
	}
	a.running = true
	return a.tickCmd()
}

// step advances one frame and reports whether another is needed.
func (a *domainAnimation) step() bool {
	if !a.running {
		return false
	}
	for i := range a.cur {
		a.cur[i], a.vel[i] = a.spring.Update(a.cur[i], a.vel[i], a.target[i])
	}
	span := math.Abs(a.target[1] - a.target[0])
	eps := math.Max(span*1e-3, 1e-9)
	settled := true
	for i := range a.cur {
		if math.Abs(a.cur[i]-a.target[i]) > eps || math.Abs(a.vel[i]) > eps {
			settled = false
		}
	}
	// never draw an inverted window mid-flight
	if a.cur[0] >= a.cur[1] {
		settled = true
	}
	if settled {
		a.cur = a.target
		a.vel = [2]float64{}
		a.running = false
	}
	return a.running
}

// domain is the window to draw right now.
func (a *domainAnimation) domain() [2]float64 {
	return a.cur
}
