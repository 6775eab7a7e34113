package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		viper.Reset()

		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate defaults", func() {
			_ = Setup()
			s := Load()
			So(s.HTTPPort, ShouldEqual, ":8080")
			So(s.Database.Name, ShouldEqual, "brandkit")
			So(s.RegenDebounce, ShouldEqual, 300*time.Millisecond)
			So(s.AllowedOrigins, ShouldResemble, []string{"http://localhost:3000", "http://localhost:5173"})
			So(s.Metrics.Enabled, ShouldBeFalse)
			So(s.DevMode, ShouldBeFalse)
		})

		Convey("Should read BRANDKIT_ environment variables", func() {
			t.Setenv("BRANDKIT_HTTP_PORT", ":9090")
			t.Setenv("BRANDKIT_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
			t.Setenv("BRANDKIT_REGEN_DEBOUNCE", "1s")
			_ = Setup()
			s := Load()
			So(s.HTTPPort, ShouldEqual, ":9090")
			So(s.AllowedOrigins, ShouldResemble, []string{"https://a.example", "https://b.example"})
			So(s.RegenDebounce, ShouldEqual, time.Second)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("db.in_memory"), ShouldEqual, "db_in_memory")
			So(Default[DBInMemory].Env(), ShouldEqual, "BRANDKIT_DB_IN_MEMORY")
		})

		Convey("Fields should be sorted and complete", func() {
			fields := Fields()
			So(fields, ShouldHaveLength, len(Default))
			for i := 1; i < len(fields); i++ {
				So(fields[i-1].Key, ShouldBeLessThan, fields[i].Key)
			}
		})

		Convey("ConnStr should include the host", func() {
			d := Database{Host: "db", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
			So(d.ConnStr(), ShouldEqual, "postgres://u:p@db/n?sslmode=disable")
		})
	})
}
