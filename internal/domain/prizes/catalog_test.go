package prizes_test

import (
	"testing"

	"github.com/okian/tombola/internal/domain/model"
	"github.com/okian/tombola/internal/domain/prizes"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCatalog(t *testing.T) {
	Convey("Given a new prize catalog", t, func() {
		c := prizes.NewCatalog()

		Convey("When adding a prize", func() {
			p := c.Add("Bicycle", "A")

			Convey("Then it is unassigned with a fresh id", func() {
				So(p.ID, ShouldNotBeBlank)
				So(p.Assigned, ShouldBeFalse)
				So(p.AssignedTo, ShouldBeBlank)
				So(c.Len(), ShouldEqual, 1)
			})

			Convey("And it is retrievable by id", func() {
				got, ok := c.Get(p.ID)
				So(ok, ShouldBeTrue)
				So(got.Name, ShouldEqual, "Bicycle")
			})
		})

		Convey("When adding in bulk", func() {
			n := c.AddBulk([]model.PrizeSeed{
				{Name: "P1", Category: "A"},
				{Name: "P2", Category: "B"},
				{Name: "P3", Category: "A"},
			})

			Convey("Then the count equals the seed count", func() {
				So(n, ShouldEqual, 3)
				So(c.Len(), ShouldEqual, 3)
			})

			Convey("And category queries see insertion order", func() {
				inA := c.AvailableInCategory("A")
				So(inA, ShouldHaveLength, 2)
				So(inA[0].Name, ShouldEqual, "P1")
				So(inA[1].Name, ShouldEqual, "P3")
			})
		})

		Convey("When updating a prize", func() {
			p := c.Add("Old", "A")
			c.Update(p.ID, "New", "B")

			Convey("Then name and category are replaced", func() {
				got, _ := c.Get(p.ID)
				So(got.Name, ShouldEqual, "New")
				So(got.Category, ShouldEqual, "B")
			})

			Convey("And an unknown id is a silent no-op", func() {
				c.Update("missing", "X", "Y")
				So(c.Len(), ShouldEqual, 1)
			})
		})

		Convey("When assigning a prize", func() {
			p := c.Add("Bicycle", "A")

			Convey("Then assignment sets both fields together", func() {
				So(c.Assign(p.ID, "42"), ShouldBeTrue)
				got, _ := c.Get(p.ID)
				So(got.Assigned, ShouldBeTrue)
				So(got.AssignedTo, ShouldEqual, "42")
			})

			Convey("And a second assignment is refused", func() {
				So(c.Assign(p.ID, "42"), ShouldBeTrue)
				So(c.Assign(p.ID, "43"), ShouldBeFalse)
				got, _ := c.Get(p.ID)
				So(got.AssignedTo, ShouldEqual, "42")
			})

			Convey("And assigned prizes drop out of the available view only", func() {
				c.Assign(p.ID, "42")
				So(c.AvailableInCategory("A"), ShouldBeEmpty)
				So(c.AllInCategory("A"), ShouldHaveLength, 1)
				So(c.AnyInCategory("A"), ShouldBeTrue)
			})
		})

		Convey("When deleting a prize", func() {
			p := c.Add("Bicycle", "A")
			c.Delete(p.ID)

			Convey("Then it is gone and absent ids are ignored", func() {
				So(c.Len(), ShouldEqual, 0)
				c.Delete("missing")
				So(c.Len(), ShouldEqual, 0)
			})
		})

		Convey("When clearing", func() {
			c.Add("P1", "A")
			c.Add("P2", "B")
			c.Clear()

			Convey("Then the catalog is empty", func() {
				So(c.Len(), ShouldEqual, 0)
				So(c.AnyInCategory("A"), ShouldBeFalse)
			})
		})
	})
}
