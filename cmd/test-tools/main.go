package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"carddrawer/internal/config"
	"carddrawer/internal/engine"
	"carddrawer/internal/hamburger"
	"carddrawer/internal/output"
	"carddrawer/internal/widget"
)

var failures int

func check(ok bool, format string, args ...any) {
	if ok {
		fmt.Printf("  ✅ "+format+"\n", args...)
		return
	}
	failures++
	fmt.Printf("  ❌ "+format+"\n", args...)
}

func main() {
	if err := loadEnvFile("env/.env"); err != nil {
		log.Fatalf("❌ Failed to read env file: %v", err)
	}

	cfg, err := config.Load(os.Getenv("CARDDRAWER_CONFIG"))
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	if len(cfg.Entries) < 3 {
		log.Fatalf("❌ Need at least 3 entries for the drawer checks, got %d", len(cfg.Entries))
	}

	fmt.Println("🧪 Testing Card Drawer Transitions")
	fmt.Println("==================================")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	w := widget.New(cfg, nil)
	defer w.Unmount()

	// Test 1: mount
	fmt.Println("✓ Test 1: Mount animation")
	frames := w.Settle(1000)
	x, _ := w.CardOffset(0)
	check(x == 0, "card 0 slid in after %d frames", frames)
	for i := 1; i < len(cfg.Entries); i++ {
		x, _ := w.CardOffset(i)
		check(x == cfg.ViewportWidth, "card %d stays off-screen", i)
	}

	// Test 2: scripted taps
	fmt.Println("\n✓ Test 2: Open, select, dismiss")
	actions, err := output.ParseActions([]string{"toggle", "select:2", "tap:2"})
	if err != nil {
		log.Fatalf("❌ Bad script: %v", err)
	}
	results, err := output.RunScenario(ctx, w, actions, cfg, cfg.Entries, 1000)
	if err != nil {
		log.Fatalf("❌ Scenario failed: %v", err)
	}

	for _, r := range results {
		check(r.Report.Health == engine.StatusHealthy, "%s settles with checks %s", r.Action, r.Report.Health)
	}

	opened := results[0].Report
	check(opened.Phase == "OPEN", "toggle opens the drawer (%s)", opened.Phase)
	if it := opened.SectionByID(output.SectionCards).ItemByKey("card_0_x"); it != nil {
		check(it.Value == cfg.CardRestingX(0), "card 0 rests at %.1fpx", it.Value)
	}

	selected := results[1].Report.SectionByID(output.SectionCards)
	for i := 0; i <= 2; i++ {
		want := float64(2-i) * cfg.CascadeStep
		if it := selected.ItemByKey(fmt.Sprintf("card_%d_y", i)); it != nil {
			check(it.Value == want, "card %d cascades to %.1fpx", i, want)
		}
	}

	dismissed := results[2].Report
	check(dismissed.Phase == "CLOSED", "card tap closes the drawer (%s)", dismissed.Phase)
	check(dismissed.Selected == 2, "selection survives dismissal (%d)", dismissed.Selected)
	onScreen := 0
	for i := range cfg.Entries {
		if x, _ := w.CardOffset(i); x < cfg.ViewportWidth {
			onScreen++
		}
	}
	check(onScreen == 1, "exactly one card on screen (%d)", onScreen)

	// Test 3: glyph round trip
	fmt.Println("\n✓ Test 3: Hamburger glyph")
	g := hamburger.New(cfg.SpringDamping, cfg.GlyphDuration)
	g.SetOpen(true)
	for n := 0; n < 1000 && !g.Settled(); n++ {
		g.Step(cfg.FrameInterval())
	}
	g.SetOpen(false)
	for n := 0; n < 1000 && !g.Settled(); n++ {
		g.Step(cfg.FrameInterval())
	}
	check(g.Current() == hamburger.TargetsFor(false), "glyph returns to %+v", g.Current())

	fmt.Println("\n==================================")
	if failures > 0 {
		fmt.Printf("❌ %d checks failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("✅ All drawer checks passed!")
	fmt.Println("\n💡 To try it interactively, run: go run .")
}
