package view_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ringmembers/ringmembership/internal/view"
)

var _ = Describe("View", func() {
	It("should report no self before JoinAck", func() {
		v := view.New()
		_, ok := v.Self()
		Expect(ok).To(BeFalse())
		Expect(v.IsMember()).To(BeFalse())
	})

	It("should be idempotent on append", func() {
		v := view.New()
		Expect(v.Append(view.Member{ID: "a"})).To(BeTrue())
		Expect(v.Append(view.Member{ID: "a", Address: "duplicate"})).To(BeFalse())
		Expect(v.Snapshot()).To(HaveLen(1))
	})

	It("should append in insertion order", func() {
		v := view.New()
		v.Append(view.Member{ID: "a"})
		v.Append(view.Member{ID: "b"})
		v.Append(view.Member{ID: "c"})
		Expect(v.Snapshot()).To(Equal([]view.Member{{ID: "a"}, {ID: "b"}, {ID: "c"}}))
	})

	It("should adopt a full view on ReplaceAll and track ring position", func() {
		v := view.New()
		v.ReplaceAll([]view.Member{{ID: "a"}, {ID: "b"}}, 1)

		self, ok := v.Self()
		Expect(ok).To(BeTrue())
		Expect(self.ID).To(Equal("b"))
		Expect(v.RingPosition()).To(Equal(1))
	})

	It("should decrement ring position when a member below it is removed", func() {
		v := view.New()
		v.ReplaceAll([]view.Member{{ID: "a"}, {ID: "b"}, {ID: "c"}}, 2)

		index, removed := v.RemoveByID("a")
		Expect(removed).To(BeTrue())
		Expect(index).To(Equal(0))
		Expect(v.RingPosition()).To(Equal(1))

		self, _ := v.Self()
		Expect(self.ID).To(Equal("c"))
	})

	It("should not shift ring position when a member above it is removed", func() {
		v := view.New()
		v.ReplaceAll([]view.Member{{ID: "a"}, {ID: "b"}, {ID: "c"}}, 0)

		_, removed := v.RemoveByID("c")
		Expect(removed).To(BeTrue())
		Expect(v.RingPosition()).To(Equal(0))
	})

	It("should report not found when removing an absent id", func() {
		v := view.New()
		v.Append(view.Member{ID: "a"})
		_, removed := v.RemoveByID("missing")
		Expect(removed).To(BeFalse())
	})

	It("should bump and reset pings dropped", func() {
		v := view.New()
		v.Append(view.Member{ID: "a"})

		count, ok := v.BumpPingsDroppedByID("a")
		Expect(ok).To(BeTrue())
		Expect(count).To(Equal(1))

		count, ok = v.BumpPingsDroppedByID("a")
		Expect(ok).To(BeTrue())
		Expect(count).To(Equal(2))

		v.ResetPingsDroppedByID("a")
		member, _ := v.FindByID("a")
		Expect(member.PingsDropped).To(Equal(0))
	})

	It("should notify on AppendAndNotify only when a member is actually added", func() {
		v := view.New()
		notified := false
		Expect(v.AppendAndNotify(view.Member{ID: "a"}, func() { notified = true })).To(BeTrue())
		Expect(notified).To(BeTrue())

		notified = false
		Expect(v.AppendAndNotify(view.Member{ID: "a", Address: "duplicate"}, func() { notified = true })).To(BeFalse())
		Expect(notified).To(BeFalse())
	})

	It("should notify on RemoveByIDAndNotify only when a member is actually removed", func() {
		v := view.New()
		v.Append(view.Member{ID: "a"})

		notified := false
		index, removed := v.RemoveByIDAndNotify("a", func() { notified = true })
		Expect(removed).To(BeTrue())
		Expect(index).To(Equal(0))
		Expect(notified).To(BeTrue())

		notified = false
		_, removed = v.RemoveByIDAndNotify("missing", func() { notified = true })
		Expect(removed).To(BeFalse())
		Expect(notified).To(BeFalse())
	})

	It("should notify on ReplaceAllAndNotify and leave the new members in place once it returns", func() {
		v := view.New()
		notified := false
		v.ReplaceAllAndNotify([]view.Member{{ID: "a"}, {ID: "b"}}, 1, func() { notified = true })
		Expect(notified).To(BeTrue())

		self, ok := v.Self()
		Expect(ok).To(BeTrue())
		Expect(self.ID).To(Equal("b"))
	})

	It("should notify on ClearAndNotify and leave the view empty once it returns", func() {
		v := view.New()
		v.ReplaceAll([]view.Member{{ID: "a"}}, 0)

		notified := false
		v.ClearAndNotify(func() { notified = true })
		Expect(notified).To(BeTrue())
		Expect(v.Snapshot()).To(BeEmpty())
	})

	It("should clear the view without touching isMember", func() {
		v := view.New()
		v.ReplaceAll([]view.Member{{ID: "a"}}, 0)
		v.SetIsMember(true)

		v.Clear()

		Expect(v.Snapshot()).To(BeEmpty())
		_, ok := v.Self()
		Expect(ok).To(BeFalse())
		Expect(v.IsMember()).To(BeTrue())
	})
})
