package wire_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ringmembers/ringmembership/internal/wire"
)

var _ = Describe("Codec", func() {
	It("should round-trip a message with no members", func() {
		message := wire.Message{Type: wire.MessageTypePing}
		decoded, err := wire.Decode(wire.Encode(message))
		Expect(err).ToNot(HaveOccurred())
		Expect(decoded.Type).To(Equal(message.Type))
		Expect(decoded.Members).To(BeEmpty())
	})

	It("should round-trip a message with members", func() {
		message := wire.Message{
			Type: wire.MessageTypeIntroduce,
			Members: []wire.Member{
				{ID: "42-1700000000-10.0.0.5", Address: "10.0.0.5", PingsDropped: 0},
				{ID: "7-1700000001-10.0.0.6", Address: "10.0.0.6", PingsDropped: 2},
			},
		}
		decoded, err := wire.Decode(wire.Encode(message))
		Expect(err).ToNot(HaveOccurred())
		Expect(decoded).To(Equal(message))
	})

	It("should match the canonical encoding for the specified example", func() {
		message := wire.Message{
			Type: wire.MessageTypeIntroduce,
			Members: []wire.Member{
				{ID: "42-1700000000-10.0.0.5", Address: "10.0.0.5", PingsDropped: 0},
			},
		}
		Expect(string(wire.Encode(message))).To(Equal("3\n42-1700000000-10.0.0.5 10.0.0.5 0\n"))
	})

	It("should decode without a trailing newline", func() {
		decoded, err := wire.Decode([]byte("4"))
		Expect(err).ToNot(HaveOccurred())
		Expect(decoded.Type).To(Equal(wire.MessageTypePing))
		Expect(decoded.Members).To(BeEmpty())
	})

	It("should fail to decode an out of range type", func() {
		_, err := wire.Decode([]byte("42\n"))
		Expect(err).To(MatchError(wire.ErrUnknownType))
	})

	It("should fail to decode a non-numeric type", func() {
		_, err := wire.Decode([]byte("abc\n"))
		Expect(err).To(MatchError(wire.ErrUnknownType))
	})

	It("should fail to decode a member line with too few tokens", func() {
		_, err := wire.Decode([]byte("3\n42-1-10.0.0.5 10.0.0.5\n"))
		Expect(err).To(MatchError(wire.ErrMalformedMessage))
	})

	It("should fail to decode a member line with too many tokens", func() {
		_, err := wire.Decode([]byte("3\n42-1-10.0.0.5 10.0.0.5 0 extra\n"))
		Expect(err).To(MatchError(wire.ErrMalformedMessage))
	})

	It("should fail to decode a non-numeric pings dropped field", func() {
		_, err := wire.Decode([]byte("3\n42-1-10.0.0.5 10.0.0.5 many\n"))
		Expect(err).To(MatchError(wire.ErrMalformedMessage))
	})
})
