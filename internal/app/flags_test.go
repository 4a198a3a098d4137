package app

import (
	"flag"
	"io"
	"testing"

	"terrarium/internal/core"

	. "github.com/smartystreets/goconvey/convey"
)

func parse(args ...string) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("terrarium", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func TestConfig(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		cfg, err := parse()
		So(err, ShouldBeNil)
		So(cfg.Validate(), ShouldBeNil)

		Convey("It maps to an 800x600 session with 4-pixel cells", func() {
			s := cfg.Session()
			So(s.ResX, ShouldEqual, 800)
			So(s.ResY, ShouldEqual, 600)
			So(s.CellSize, ShouldEqual, 4)
			So(s.Brush.Kind, ShouldEqual, core.Sand)
			So(s.Brush.Size, ShouldEqual, 4)
			So(s.Seed, ShouldNotEqual, 0)
		})
	})

	Convey("Given explicit flags", t, func() {
		cfg, err := parse("-width", "320", "-height", "200", "-cell", "2", "-seed", "9", "-brush", "Water", "-brush-size", "7", "-sound")
		So(err, ShouldBeNil)
		So(cfg.Validate(), ShouldBeNil)

		s := cfg.Session()
		So(s.ResX, ShouldEqual, 320)
		So(s.Seed, ShouldEqual, 9)
		So(s.Brush.Kind, ShouldEqual, core.Water)
		So(s.Brush.Size, ShouldEqual, 7)
		So(cfg.Sound, ShouldBeTrue)
	})

	Convey("Invalid settings are rejected", t, func() {
		for _, args := range [][]string{
			{"-width", "0"},
			{"-cell", "0"},
			{"-cell", "700"},
			{"-tps", "-1"},
			{"-brush-size", "41"},
			{"-brush", "lava"},
			{"-brush", "empty"},
		} {
			cfg, err := parse(args...)
			So(err, ShouldBeNil)
			So(cfg.Validate(), ShouldNotBeNil)
		}
	})

	Convey("Brush errors list the paintable kinds", t, func() {
		So(BrushKinds(), ShouldResemble, []string{"sand", "stone", "water"})
		cfg, _ := parse("-brush", "lava")
		So(cfg.Validate().Error(), ShouldEqual, `brush "lava" must be one of sand, stone, water`)
	})
}
