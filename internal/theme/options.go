package theme

import (
	"fmt"

	"github.com/gabe/togglebar/internal/anim"
	"github.com/gabe/togglebar/internal/config"
	"github.com/gabe/togglebar/internal/togglegroup"
)

// GroupOptions translates the toggle and theme sections of cfg into
// togglegroup options.
func GroupOptions(cfg *config.Config) ([]togglegroup.Option, error) {
	d, err := cfg.Toggle.AnimationDuration()
	if err != nil {
		return nil, err
	}
	easing, err := anim.ParseEasing(cfg.Toggle.Easing)
	if err != nil {
		return nil, fmt.Errorf("toggle.easing: %w", err)
	}

	return []togglegroup.Option{
		togglegroup.WithDuration(d),
		togglegroup.WithEasing(easing),
		togglegroup.WithHeight(cfg.Toggle.Height),
		togglegroup.WithInset(togglegroup.Inset{X: cfg.Toggle.InsetX, Y: cfg.Toggle.InsetY}),
		togglegroup.WithFPS(cfg.Toggle.FPS),
		togglegroup.WithStyles(FromConfig(cfg.Theme)),
	}, nil
}
