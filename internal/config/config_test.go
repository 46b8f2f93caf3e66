package config_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-room-mirror/internal/config"
	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaultIsValid() {
	cfg := config.Default()
	s.Assert().NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestYDominanceGap() {
	cfg := config.Default()
	s.Assert().InDelta(0.512402, cfg.YDominanceGap(), 1e-9)

	cfg.DrawOrder.Y *= 100
	s.Assert().InDelta(0.00512402, cfg.YDominanceGap(), 1e-12)
}

func (s *ConfigTestSuite) TestInvalid() {
	testCases := []struct {
		name   string
		mutate func(c *config.Config)
		field  string
	}{
		{"zoom bounds inverted", func(c *config.Config) { c.MaxZoom = c.MinZoom / 2 }, "MaxZoom"},
		{"smoothing at one", func(c *config.Config) { c.SmoothingBase = 1 }, "SmoothingBase"},
		{"no frame clamp", func(c *config.Config) { c.MaxFrameDelta = 0 }, "MaxFrameDelta"},
		{"y weight too small", func(c *config.Config) { c.DrawOrder.Y = c.DrawOrder.X }, "DrawOrder.Y"},
		{"x weight too small", func(c *config.Config) { c.DrawOrder.X = c.DrawOrder.Z }, "DrawOrder.X"},
		{"tile base overlaps", func(c *config.Config) { c.DrawOrder.TileBase = -1 }, "DrawOrder.TileBase"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.field)
		})
	}
}
