package transport_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ringmembers/ringmembership/internal/transport"
)

var _ = Describe("Memory", func() {
	It("should deliver a datagram between two registered transports", func() {
		registry := transport.NewMemoryRegistry()
		a := transport.NewMemory(registry, "10.0.0.1", 7778)
		b := transport.NewMemory(registry, "10.0.0.2", 7778)

		Expect(a.TrySend([]byte("hello"), "10.0.0.2", 7778, 0)).To(BeTrue())

		payload, from := b.Receive()
		Expect(string(payload)).To(Equal("hello"))
		Expect(from).To(Equal("10.0.0.1"))
	})

	It("should report failure when the target is not registered", func() {
		registry := transport.NewMemoryRegistry()
		a := transport.NewMemory(registry, "10.0.0.1", 7778)

		Expect(a.TrySend([]byte("hello"), "10.0.0.99", 7778, 0)).To(BeFalse())
	})

	It("should always drop sends when loss rate is 1", func() {
		registry := transport.NewMemoryRegistry()
		a := transport.NewMemory(registry, "10.0.0.1", 7778)
		transport.NewMemory(registry, "10.0.0.2", 7778)

		Expect(a.TrySend([]byte("hello"), "10.0.0.2", 7778, 1)).To(BeFalse())
	})

	It("should unblock Receive when closed", func() {
		registry := transport.NewMemoryRegistry()
		b := transport.NewMemory(registry, "10.0.0.2", 7778)

		Expect(b.Close()).ToNot(HaveOccurred())
		payload, from := b.Receive()
		Expect(payload).To(BeNil())
		Expect(from).To(BeEmpty())
	})
})
