package config_test

import (
	"context"
	"testing"

	"github.com/okian/tombola/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given no configuration sources", t, func() {
		cfg, err := config.Load(ctx)

		Convey("Then the defaults apply", func() {
			So(err, ShouldBeNil)
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.SpinDurationMS, ShouldEqual, 3000)
			So(cfg.SpinIntervalMS, ShouldEqual, 100)
			So(cfg.MaxGroupSize, ShouldEqual, 5)
			So(cfg.DefaultCategories, ShouldResemble, []string{"A", "B", "C"})
			So(cfg.MaxHistory, ShouldEqual, 0)
		})
	})

	Convey("Given environment overrides", t, func() {
		t.Setenv("TOMBOLA_ADDR", ":7070")
		t.Setenv("TOMBOLA_LOG_LEVEL", "debug")
		t.Setenv("TOMBOLA_SPIN_DURATION_MS", "0")
		t.Setenv("TOMBOLA_MAX_GROUP_SIZE", "9")

		cfg, err := config.Load(ctx)

		Convey("Then env values win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.SpinDurationMS, ShouldEqual, 0)
			So(cfg.MaxGroupSize, ShouldEqual, 9)
			So(cfg.SpinIntervalMS, ShouldEqual, 100)
		})
	})

	Convey("Given an invalid value", t, func() {
		Convey("When the spin interval is zero", func() {
			t.Setenv("TOMBOLA_SPIN_INTERVAL_MS", "0")
			_, err := config.Load(ctx)
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})

		Convey("When the group size cap is below one", func() {
			t.Setenv("TOMBOLA_MAX_GROUP_SIZE", "0")
			_, err := config.Load(ctx)
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})

		Convey("When the history cap is negative", func() {
			t.Setenv("TOMBOLA_MAX_HISTORY", "-1")
			_, err := config.Load(ctx)
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})
	})

	Convey("Given a missing config file path", t, func() {
		t.Setenv("TOMBOLA_CONFIG", "/nonexistent/tombola.yaml")
		_, err := config.Load(ctx)

		Convey("Then loading fails with the load sentinel", func() {
			So(err, ShouldWrap, config.ErrLoadConfig)
		})
	})
}

func TestNew(t *testing.T) {
	Convey("Given a fresh default config", t, func() {
		cfg := config.New(context.Background())

		Convey("Then it passes its own validation via Load defaults", func() {
			So(cfg.Addr, ShouldNotBeBlank)
			So(cfg.SpinIntervalMS, ShouldBeGreaterThan, 0)
			So(cfg.MaxGroupSize, ShouldBeGreaterThanOrEqualTo, 1)
		})
	})
}
