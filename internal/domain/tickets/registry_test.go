package tickets_test

import (
	"testing"

	"github.com/okian/tombola/internal/domain/tickets"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistry(t *testing.T) {
	Convey("Given a new ticket registry", t, func() {
		r := tickets.NewRegistry()

		Convey("When adding identifiers", func() {
			added := r.Add("1", "2", "3")

			Convey("Then all of them are registered once", func() {
				So(added, ShouldEqual, 3)
				So(r.Len(), ShouldEqual, 3)
				So(r.Contains("2"), ShouldBeTrue)
			})

			Convey("And duplicate inputs are silently deduplicated", func() {
				So(r.Add("2", "2", "4"), ShouldEqual, 1)
				So(r.Len(), ShouldEqual, 4)
				So(r.All(), ShouldResemble, []string{"1", "2", "3", "4"})
			})
		})

		Convey("When adding a range", func() {
			added, err := r.AddRange(5, 8)

			Convey("Then consecutive string identifiers are generated", func() {
				So(err, ShouldBeNil)
				So(added, ShouldEqual, 4)
				So(r.All(), ShouldResemble, []string{"5", "6", "7", "8"})
			})

			Convey("And overlapping ranges only add new identifiers", func() {
				more, rerr := r.AddRange(7, 10)
				So(rerr, ShouldBeNil)
				So(more, ShouldEqual, 2)
				So(r.Len(), ShouldEqual, 6)
			})
		})

		Convey("When adding an inverted range", func() {
			added, err := r.AddRange(9, 3)

			Convey("Then the range is rejected without mutation", func() {
				So(err, ShouldEqual, tickets.ErrInvalidRange)
				So(added, ShouldEqual, 0)
				So(r.Len(), ShouldEqual, 0)
			})
		})

		Convey("When removing identifiers", func() {
			r.Add("1", "2", "3", "4")
			removed := r.Remove("2", "4", "99")

			Convey("Then present ones go and absent ones are ignored", func() {
				So(removed, ShouldEqual, 2)
				So(r.All(), ShouldResemble, []string{"1", "3"})
				So(r.Contains("2"), ShouldBeFalse)
			})
		})

		Convey("When clearing", func() {
			r.Add("1", "2")
			r.Clear()

			Convey("Then the registry is empty", func() {
				So(r.Len(), ShouldEqual, 0)
				So(r.All(), ShouldBeEmpty)
			})
		})

		Convey("When mutating a returned slice", func() {
			r.Add("1", "2")
			all := r.All()
			all[0] = "tampered"

			Convey("Then the registry is unaffected", func() {
				So(r.All(), ShouldResemble, []string{"1", "2"})
			})
		})
	})
}
