package categories_test

import (
	"testing"

	"github.com/okian/tombola/internal/domain/categories"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSet(t *testing.T) {
	Convey("Given a new category set", t, func() {
		s := categories.NewSet()

		Convey("Then it is seeded with the default labels", func() {
			So(s.All(), ShouldResemble, []string{"A", "B", "C"})
		})

		Convey("When adding a label", func() {
			Convey("Then it is trimmed and upper-cased", func() {
				So(s.Add("  gold "), ShouldBeTrue)
				So(s.Has("GOLD"), ShouldBeTrue)
				So(s.Has("gold"), ShouldBeTrue)
			})

			Convey("And an empty label is rejected", func() {
				So(s.Add("   "), ShouldBeFalse)
				So(s.Len(), ShouldEqual, 3)
			})

			Convey("And a duplicate is rejected regardless of casing", func() {
				So(s.Add("a"), ShouldBeFalse)
				So(s.Len(), ShouldEqual, 3)
			})
		})

		Convey("When deleting a label", func() {
			Convey("Then a present label is removed", func() {
				So(s.Delete("b"), ShouldBeTrue)
				So(s.All(), ShouldResemble, []string{"A", "C"})
			})

			Convey("And an absent label returns false", func() {
				So(s.Delete("ZZZ"), ShouldBeFalse)
			})
		})

		Convey("When resetting after mutations", func() {
			s.Add("GOLD")
			s.Delete("A")
			s.Reset()

			Convey("Then the default labels are restored", func() {
				So(s.All(), ShouldResemble, []string{"A", "B", "C"})
			})
		})
	})

	Convey("Given a set with custom defaults", t, func() {
		s := categories.NewSet("gold", " silver ")

		Convey("Then the defaults are normalized and restored on reset", func() {
			So(s.All(), ShouldResemble, []string{"GOLD", "SILVER"})
			s.Delete("GOLD")
			s.Reset()
			So(s.All(), ShouldResemble, []string{"GOLD", "SILVER"})
		})
	})
}
