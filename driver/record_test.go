package driver

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestProcess(t *testing.T) {
	Convey("Process", t, func() {
		Convey("Should trim keys and values", func() {
			record, err := Process(" city : New Orleans ", "name:Louis")
			So(err, ShouldBeNil)
			So(Keys(record), ShouldResemble, []string{"city", "name"})
			So(Values(record), ShouldResemble, []string{"New Orleans", "Louis"})
		})

		Convey("Should split on the first colon only", func() {
			record, err := Process("url:http://example.com:8080")
			So(err, ShouldBeNil)
			So(lo.Must(record.Get("url")), ShouldEqual, "http://example.com:8080")
		})

		Convey("Should accept an empty value", func() {
			record, err := Process("note:")
			So(err, ShouldBeNil)
			So(lo.Must(record.Get("note")), ShouldEqual, "")
		})

		Convey("Should let later keys overwrite earlier ones", func() {
			record, err := Process("a:1", "a:2")
			So(err, ShouldBeNil)
			So(record.Len(), ShouldEqual, 1)
			So(lo.Must(record.Get("a")), ShouldEqual, "2")
		})

		Convey("Should collect every malformed token and return no record", func() {
			record, err := Process("a:1", "broken", "also broken")
			So(record, ShouldBeNil)
			So(errors.Is(err, ErrFormatMismatch), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `"broken"`)
			So(err.Error(), ShouldContainSubstring, `"also broken"`)
		})
	})
}

func TestSimilar(t *testing.T) {
	Convey("Given two records with the same pairs in a different order", t, func() {
		a := lo.Must(Process("x:1", "y:2"))
		b := lo.Must(Process("y:2", "x:1"))

		Convey("They should be similar and share keys", func() {
			So(Similar(a, b), ShouldBeTrue)
			So(SameKeys(a, b), ShouldBeTrue)
		})

		Convey("A changed value should break similarity but not key equality", func() {
			b.Set("x", "3")
			So(Similar(a, b), ShouldBeFalse)
			So(SameKeys(a, b), ShouldBeTrue)
		})

		Convey("An extra key should break both", func() {
			b.Set("z", "0")
			So(Similar(a, b), ShouldBeFalse)
			So(SameKeys(a, b), ShouldBeFalse)
		})
	})
}
