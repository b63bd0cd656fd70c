package driver

import (
	"errors"
	"testing"

	"github.com/multidriver/multidriver/filesystem"
	"github.com/multidriver/multidriver/format"
	"github.com/multidriver/multidriver/registry"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

const peopleCSV = "id,name,surname,country\n1,Ana,Lopez,Mexico\n"

func init() {
	filesystem.SetMemMapFs()
}

func seed(path, content string) {
	So(filesystem.API().WriteFile(path, []byte(content), 0o644), ShouldBeNil)
}

func contents(path string) string {
	return string(lo.Must(filesystem.API().ReadFile(path)))
}

func TestCSVScenario(t *testing.T) {
	Convey("Given a connected CSV driver", t, func() {
		filesystem.SetMemMapFs()
		seed("/data/people.csv", peopleCSV)

		reg := registry.New()
		d, err := OpenCSV(reg, "/data/people.csv")
		So(err, ShouldBeNil)
		So(d.Format(), ShouldEqual, format.CSV)
		So(reg.Len(), ShouldEqual, 1)

		Convey("The table should match the file, header included", func() {
			table := lo.Must(d.Table())
			So(table.Rows, ShouldResemble, [][]string{
				{"id", "name", "surname", "country"},
				{"1", "Ana", "Lopez", "Mexico"},
			})
		})

		Convey("When creating, reading, updating and deleting a row", func() {
			So(d.Create("2", "Juan", "Ramirez", "Colombia"), ShouldBeNil)
			So(lo.Must(d.Len()), ShouldEqual, 3)
			So(contents("/data/people.csv"), ShouldEqual, peopleCSV+"2,Juan,Ramirez,Colombia\n")

			match, err := d.Read("surname", "2")
			So(err, ShouldBeNil)
			So(match.IsPresent(), ShouldBeTrue)
			So(match.MustGet().Value, ShouldEqual, "Ramirez")
			So(match.MustGet().Values, ShouldResemble, []string{"2", "Juan", "Ramirez", "Colombia"})
			So(match.MustGet().Index, ShouldEqual, 2)

			So(d.Update("name", "Juan", "Jose"), ShouldBeNil)
			So(lo.Must(d.Table()).Rows[2], ShouldResemble, []string{"2", "Jose", "Ramirez", "Colombia"})

			So(d.Delete("2"), ShouldBeNil)
			So(lo.Must(d.Len()), ShouldEqual, 2)
			So(contents("/data/people.csv"), ShouldEqual, peopleCSV)
		})

		Convey("Creating a row with the wrong field count should fail without mutation", func() {
			err := d.Create("2", "Juan")
			So(errors.Is(err, ErrFormatMismatch), ShouldBeTrue)
			So(lo.Must(d.Len()), ShouldEqual, 2)
			So(contents("/data/people.csv"), ShouldEqual, peopleCSV)
		})

		Convey("Creating a row with an existing primary key should fail", func() {
			err := d.Create("1", "Eva", "Diaz", "Peru")
			So(errors.Is(err, ErrDuplicateRecord), ShouldBeTrue)
			So(lo.Must(d.Len()), ShouldEqual, 2)
		})

		Convey("Creating a row keyed like the header should fail", func() {
			err := d.Create("id", "x", "y", "z")
			So(errors.Is(err, ErrDuplicateRecord), ShouldBeTrue)
			So(lo.Must(d.Len()), ShouldEqual, 2)
			So(contents("/data/people.csv"), ShouldEqual, peopleCSV)
		})

		Convey("Reading an unknown field should fail with a suggestion", func() {
			_, err := d.Read("surnam", "1")
			So(errors.Is(err, ErrFieldNotFound), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `did you mean "surname"`)
		})

		Convey("Reading a missing key should be a normal negative result", func() {
			match, err := d.Read("name", "42")
			So(err, ShouldBeNil)
			So(match.IsAbsent(), ShouldBeTrue)
		})

		Convey("Updating with a predicate that matches nothing should leave the file untouched", func() {
			err := d.Update("country", "Chile", "Peru")
			So(errors.Is(err, ErrRecordNotFound), ShouldBeTrue)
			So(contents("/data/people.csv"), ShouldEqual, peopleCSV)
		})

		Convey("Deleting a missing key should fail", func() {
			So(errors.Is(d.Delete("42"), ErrRecordNotFound), ShouldBeTrue)
			So(lo.Must(d.Len()), ShouldEqual, 2)
		})

		Convey("String should render one row per line", func() {
			So(d.String(), ShouldEqual, "id, name, surname, country\n1, Ana, Lopez, Mexico\n")
		})
	})
}

func TestCSVDeleteRemovesAllMatches(t *testing.T) {
	Convey("Given a CSV file with a repeated primary key", t, func() {
		filesystem.SetMemMapFs()
		seed("/data/dups.csv", "id,name\n7,a\n8,b\n7,c\n")
		d, err := OpenCSV(registry.New(), "/data/dups.csv")
		So(err, ShouldBeNil)

		Convey("Delete should remove every matching row", func() {
			So(d.Delete("7"), ShouldBeNil)
			So(lo.Must(d.Table()).Rows, ShouldResemble, [][]string{{"id", "name"}, {"8", "b"}})
			So(contents("/data/dups.csv"), ShouldEqual, "id,name\n8,b\n")
		})

		Convey("Update should only change the first match", func() {
			So(d.Update("id", "7", "9"), ShouldBeNil)
			So(lo.Must(d.Table()).Rows, ShouldResemble, [][]string{{"id", "name"}, {"9", "a"}, {"8", "b"}, {"7", "c"}})
		})
	})
}

func TestCSVParsing(t *testing.T) {
	Convey("Given files with platform quirks", t, func() {
		filesystem.SetMemMapFs()

		Convey("A byte order mark should not hide the first field", func() {
			seed("/data/bom.csv", "\ufeffid,name\r\n1,Ana\r\n")
			d, err := OpenCSV(registry.New(), "/data/bom.csv")
			So(err, ShouldBeNil)
			So(lo.Must(d.FieldIndex("id")), ShouldEqual, 0)
			So(lo.Must(d.Header()), ShouldResemble, []string{"id", "name"})
			So(lo.Must(d.Table()).Rows[1], ShouldResemble, []string{"1", "Ana"})
		})

		Convey("Blank lines should be skipped", func() {
			seed("/data/blank.csv", "id,name\n\n1,Ana\n\n")
			d, err := OpenCSV(registry.New(), "/data/blank.csv")
			So(err, ShouldBeNil)
			So(lo.Must(d.Len()), ShouldEqual, 2)
		})

		Convey("An empty file has no header", func() {
			seed("/data/empty.csv", "")
			d, err := OpenCSV(registry.New(), "/data/empty.csv")
			So(err, ShouldBeNil)
			So(errors.Is(d.Create("1"), ErrFormatMismatch), ShouldBeTrue)
			_, err = d.Header()
			So(errors.Is(err, ErrFormatMismatch), ShouldBeTrue)
		})
	})
}

func TestCSVRoundTrip(t *testing.T) {
	Convey("Given a table that was written", t, func() {
		filesystem.SetMemMapFs()
		seed("/data/people.csv", peopleCSV)
		d, err := OpenCSV(registry.New(), "/data/people.csv")
		So(err, ShouldBeNil)
		So(d.Create("2", "Juan", "Ramirez", "Colombia"), ShouldBeNil)
		So(d.Write(), ShouldBeNil)

		Convey("Reading it back should produce an equal table", func() {
			again, err := OpenCSV(registry.New(), "/data/people.csv")
			So(err, ShouldBeNil)
			So(again.Equal(d), ShouldBeTrue)
			So(lo.Must(again.Table()).Equal(lo.Must(d.Table())), ShouldBeTrue)
		})

		Convey("A different table should not be equal", func() {
			seed("/data/other.csv", "id,name,surname,country\n1,Ana,Lopez,Peru\n2,Juan,Ramirez,Colombia\n")
			other, err := OpenCSV(registry.New(), "/data/other.csv")
			So(err, ShouldBeNil)
			So(other.Equal(d), ShouldBeFalse)
		})
	})
}

func TestCSVLifecycle(t *testing.T) {
	Convey("Given a registry and a CSV file", t, func() {
		filesystem.SetMemMapFs()
		seed("/data/people.csv", peopleCSV)
		reg := registry.New()
		d, err := OpenCSV(reg, "/data/people.csv")
		So(err, ShouldBeNil)

		Convey("A second connect to the same source should fail without re-parsing", func() {
			seed("/data/people.csv", "changed\n")
			second := NewCSV(reg)
			err := second.Connect("/data/people.csv")
			So(errors.Is(err, ErrAlreadyConnected), ShouldBeTrue)
			So(second.Source(), ShouldBeEmpty)
			So(lo.Must(d.Len()), ShouldEqual, 2)
		})

		Convey("A connected handle should not be rebound to another source", func() {
			seed("/data/other.csv", "id\n1\n")
			err := d.Connect("/data/other.csv")
			So(errors.Is(err, ErrAlreadyConnected), ShouldBeTrue)
			So(d.Source(), ShouldEqual, "/data/people.csv")
			So(reg.Contains("/data/other.csv"), ShouldBeFalse)

			Convey("Until it is closed", func() {
				So(d.Close(), ShouldBeNil)
				So(d.Connect("/data/other.csv"), ShouldBeNil)
				So(reg.Sources(), ShouldResemble, []string{"/data/other.csv"})
			})
		})

		Convey("Close should evict the table and report repeats", func() {
			So(d.Close(), ShouldBeNil)
			So(reg.Len(), ShouldEqual, 0)
			So(errors.Is(d.Close(), ErrNotConnected), ShouldBeTrue)
			So(errors.Is(d.Create("2", "a", "b", "c"), ErrNotConnected), ShouldBeTrue)

			Convey("And the source can be connected again", func() {
				_, err := OpenCSV(reg, "/data/people.csv")
				So(err, ShouldBeNil)
				So(reg.Len(), ShouldEqual, 1)
			})
		})

		Convey("Connecting to a missing file should leave the driver without a table", func() {
			missing := NewCSV(reg)
			err := missing.Connect("/data/missing.csv")
			So(errors.Is(err, ErrPathNotFound), ShouldBeTrue)
			So(missing.Source(), ShouldEqual, "/data/missing.csv")
			So(reg.Len(), ShouldEqual, 1)

			So(errors.Is(missing.Create("1"), ErrNotConnected), ShouldBeTrue)
			_, err = missing.Read("id", "1")
			So(errors.Is(err, ErrNotConnected), ShouldBeTrue)
			So(errors.Is(missing.Update("id", "1", "2"), ErrNotConnected), ShouldBeTrue)
			So(errors.Is(missing.Delete("1"), ErrNotConnected), ShouldBeTrue)
			So(errors.Is(missing.Write(), ErrNotConnected), ShouldBeTrue)
			So(missing.String(), ShouldBeEmpty)
		})

		Convey("An unconnected driver should fail gracefully", func() {
			fresh := NewCSV(reg)
			_, err := fresh.Header()
			So(errors.Is(err, ErrNotConnected), ShouldBeTrue)
			_, err = fresh.Clone()
			So(errors.Is(err, ErrNotConnected), ShouldBeTrue)
		})
	})
}

func TestCSVClone(t *testing.T) {
	Convey("Given a connected CSV driver", t, func() {
		filesystem.SetMemMapFs()
		seed("/data/people.csv", peopleCSV)
		reg := registry.New()
		d, err := OpenCSV(reg, "/data/people.csv")
		So(err, ShouldBeNil)

		Convey("When cloning it", func() {
			c, err := d.Clone()
			So(err, ShouldBeNil)
			clone := c.(*CSV)

			Convey("The copy should sit next to the source with the same bytes", func() {
				So(clone.Source(), ShouldEqual, "/data/people_copy.csv")
				So(clone.Format(), ShouldEqual, format.CSV)
				So(contents("/data/people_copy.csv"), ShouldEqual, peopleCSV)
				So(reg.Len(), ShouldEqual, 2)
				So(clone.Equal(d), ShouldBeTrue)
			})

			Convey("Both handles should share the same in-memory table", func() {
				So(lo.Must(clone.Table()), ShouldEqual, lo.Must(d.Table()))

				So(clone.Create("2", "Juan", "Ramirez", "Colombia"), ShouldBeNil)
				So(lo.Must(d.Len()), ShouldEqual, 3)
				So(contents("/data/people_copy.csv"), ShouldEqual, peopleCSV+"2,Juan,Ramirez,Colombia\n")
				So(contents("/data/people.csv"), ShouldEqual, peopleCSV)
			})

			Convey("Cloning again should refuse to overwrite the copy", func() {
				_, err := d.Clone()
				So(errors.Is(err, ErrIO), ShouldBeTrue)
				So(reg.Len(), ShouldEqual, 2)
			})
		})

		Convey("Cloning after the file vanished should fail", func() {
			So(filesystem.API().Remove("/data/people.csv"), ShouldBeNil)
			_, err := d.Clone()
			So(errors.Is(err, ErrPathNotFound), ShouldBeTrue)
		})
	})
}

func TestCopyPath(t *testing.T) {
	Convey("copyPath", t, func() {
		So(copyPath("/data/people.csv"), ShouldEqual, "/data/people_copy.csv")
		So(copyPath("people.csv"), ShouldEqual, "people_copy.csv")
		So(copyPath("archive.tar.gz"), ShouldEqual, "archive.tar_copy.gz")
		So(copyPath("/data/noext"), ShouldEqual, "/data/noext_copy")
		So(copyPath("file."), ShouldEqual, "file._copy")
	})
}
