package engine

import (
	"math"

	"carddrawer/internal/config"
	"carddrawer/internal/drawer"
	"carddrawer/internal/widget"
)

const (
	StatusHealthy  = "OK"
	StatusWarning  = "WARN"
	StatusCritical = "CRIT"

	// Pixels between a live value and its target.
	DriftWarningThreshold  = 0.5
	DriftCriticalThreshold = 2000.0
)

type CheckResult struct {
	Name   string
	Value  float64
	Status string
}

func getStatus(value, warning, critical float64) string {
	if value > critical {
		return StatusCritical
	}
	if value > warning {
		return StatusWarning
	}
	return StatusHealthy
}

func boolStatus(ok bool) string {
	if ok {
		return StatusHealthy
	}
	return StatusCritical
}

// Evaluate checks a frame against the layout rules of the drawer. Motion
// still in flight shows up as drift, not as a broken layout.
func Evaluate(cfg config.Config, f widget.Frame, t drawer.Snapshot) []CheckResult {
	var result []CheckResult
	w := cfg.ViewportWidth
	s := f.State.Selected

	// Drift
	drift := math.Abs(f.Menu.TranslateX - t.Menu.X)
	for i, c := range f.Cards {
		if i >= len(t.Cards) {
			break
		}
		drift = math.Max(drift, math.Abs(c.TranslateX-t.Cards[i].X))
		drift = math.Max(drift, math.Abs(c.TranslateY-t.Cards[i].Y))
	}
	result = append(result, CheckResult{
		Name:   "Motion Drift",
		Value:  drift,
		Status: getStatus(drift, DriftWarningThreshold, DriftCriticalThreshold),
	})
	settled := drift <= DriftWarningThreshold

	// Targets on screen. Closed shows one card, open fans out 0..s.
	onScreen := 0
	top := -1
	for i, c := range t.Cards {
		if c.X < w {
			onScreen++
			top = i
		}
	}
	want := 1
	if f.State.Open {
		want = s + 1
	}
	result = append(result, CheckResult{
		Name:   "Cards On Screen",
		Value:  float64(onScreen),
		Status: boolStatus(onScreen == want),
	})
	result = append(result, CheckResult{
		Name:   "Selected On Top",
		Value:  float64(top),
		Status: boolStatus(top == s),
	})

	// Cascade
	if f.State.Open {
		worst := 0.0
		for i := 0; i <= s && i < len(t.Cards); i++ {
			worst = math.Max(worst, math.Abs(t.Cards[i].Y-float64(s-i)*cfg.CascadeStep))
		}
		result = append(result, CheckResult{
			Name:   "Cascade Error",
			Value:  worst,
			Status: getStatus(worst, 0, DriftWarningThreshold),
		})
	}

	// Styles stay inside their ranges even while springs overshoot.
	hMin, hMax := cfg.ViewportHeight*cfg.CardShrinkRatio, cfg.ViewportHeight
	heightsOK, shadowsOK := true, true
	for _, c := range f.Cards {
		if c.Height < hMin || c.Height > hMax {
			heightsOK = false
		}
		if c.ShadowOpacity < 0 || c.ShadowOpacity > cfg.MaxShadowOpacity {
			shadowsOK = false
		}
	}
	result = append(result,
		CheckResult{Name: "Card Height Range", Status: boolStatus(heightsOK)},
		CheckResult{Name: "Shadow Range", Status: boolStatus(shadowsOK)},
	)

	// Menu panel
	menuWant := cfg.MenuRestingX()
	if f.State.Open {
		menuWant = 0
	}
	menuStatus := boolStatus(t.Menu.X == menuWant)
	if menuStatus == StatusHealthy && !settled && f.Menu.TranslateX != menuWant {
		menuStatus = StatusWarning
	}
	result = append(result, CheckResult{
		Name:   "Menu Offset",
		Value:  f.Menu.TranslateX,
		Status: menuStatus,
	})

	return result
}

// Worst returns the most severe status in results.
func Worst(results []CheckResult) string {
	worst := StatusHealthy
	for _, r := range results {
		switch r.Status {
		case StatusCritical:
			return StatusCritical
		case StatusWarning:
			worst = StatusWarning
		}
	}
	return worst
}
