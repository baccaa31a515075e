//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
// Build the Android archive or the iOS framework with:
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.carddrawer -o build/android/carddrawer.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/CardDrawer.xcframework ./mobile
package mobile

import (
	"log"

	"carddrawer/internal/config"
	"carddrawer/internal/i18n"
	"carddrawer/internal/logging"
	game "carddrawer/ui/mobile"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	cfg := config.DefaultConfig()

	tr, err := i18n.New(cfg.Language)
	if err != nil {
		log.Fatalf("load translations: %v", err)
	}

	// No writable working directory on devices; logs are dropped.
	mobile.SetGame(game.NewGame(cfg, tr, logging.Discard()))
}

// Dummy is an exported function so ebitenmobile recognizes the package.
func Dummy() {}
