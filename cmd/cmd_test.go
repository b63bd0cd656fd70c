package cmd

import (
	"bytes"
	"testing"

	"github.com/multidriver/multidriver/driver"
	"github.com/multidriver/multidriver/filesystem"
	"github.com/multidriver/multidriver/registry"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func run(args ...string) string {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	lo.Must0(rootCmd.Execute())
	return out.String()
}

func TestCommands(t *testing.T) {
	Convey("Given a csv and a json file", t, func() {
		filesystem.SetMemMapFs()
		lo.Must0(filesystem.API().WriteFile("/data/people.csv", []byte("id,name\n1,Ana\n"), 0o644))
		lo.Must0(filesystem.API().WriteFile("/data/cities.json", []byte(`[{"city":"X","name":"Y"}]`), 0o644))

		Convey("create appends a csv record", func() {
			So(run("create", "/data/people.csv", "2", "Juan"), ShouldContainSubstring, "created")
			So(string(lo.Must(filesystem.API().ReadFile("/data/people.csv"))), ShouldEqual, "id,name\n1,Ana\n2,Juan\n")
		})

		Convey("read prints the matching record", func() {
			So(run("read", "/data/people.csv", "id", "1"), ShouldContainSubstring, "[id=1, name=Ana]")
		})

		Convey("read reports a missing record without failing", func() {
			So(run("read", "/data/people.csv", "id", "9"), ShouldContainSubstring, "no record")
		})

		Convey("update rewrites a json record", func() {
			run("update", "/data/cities.json", "city", "X", "Z")
			So(string(lo.Must(filesystem.API().ReadFile("/data/cities.json"))), ShouldContainSubstring, `"city": "Z"`)
		})

		Convey("delete removes json records by tokens", func() {
			run("delete", "/data/cities.json", "city:X", "name:Y", "--yes")
			So(string(lo.Must(filesystem.API().ReadFile("/data/cities.json"))), ShouldEqual, "[]\n")
		})

		Convey("clone writes a sibling copy", func() {
			So(run("clone", "/data/people.csv"), ShouldContainSubstring, "/data/people_copy.csv")
			So(lo.Must(filesystem.API().Exists("/data/people_copy.csv")), ShouldBeTrue)
		})

		Convey("show lists every record", func() {
			out := run("show", "/data/people.csv", "--truncate", "10")
			So(out, ShouldContainSubstring, "Ana")
			So(out, ShouldContainSubstring, "1 record")
		})
	})
}

func TestRenderTable(t *testing.T) {
	Convey("Given a header and rows", t, func() {
		header := []string{"id", "description"}
		rows := [][]string{{"1", "a rather long description"}}

		Convey("Cells are cut to the limit", func() {
			out := renderTable(header, rows, 6)
			So(out, ShouldContainSubstring, "a rat…")
			So(out, ShouldNotContainSubstring, "rather long")
		})

		Convey("A zero limit keeps cells whole", func() {
			So(renderTable(header, rows, 0), ShouldContainSubstring, "a rather long description")
		})
	})
}

func TestDeleter(t *testing.T) {
	Convey("Given a connected csv driver", t, func() {
		filesystem.SetMemMapFs()
		lo.Must0(filesystem.API().WriteFile("/data/people.csv", []byte("id,name\n1,Ana\n"), 0o644))
		d := lo.Must(driver.OpenCSV(registry.New(), "/data/people.csv"))

		Convey("Several keys are refused before anything runs", func() {
			remove, err := deleter(d, []string{"1", "Ana"})
			So(err, ShouldNotBeNil)
			So(remove, ShouldBeNil)
			So(lo.Must(d.Len()), ShouldEqual, 2)
		})

		Convey("A single key deletes the record", func() {
			remove, err := deleter(d, []string{"1"})
			So(err, ShouldBeNil)
			So(remove(), ShouldBeNil)
			So(lo.Must(d.Len()), ShouldEqual, 1)
		})
	})
}
