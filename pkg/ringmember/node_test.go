package ringmember_test

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ringmembers/ringmembership/internal/view"
	"github.com/ringmembers/ringmembership/pkg/ringmember"
)

var _ = Describe("Node", func() {
	It("should admit a second node over real loopback UDP", func() {
		dnsPath := filepath.Join(GinkgoT().TempDir(), "dns")

		// Both nodes share one cluster port, as the wire protocol assumes; two distinct loopback addresses (the
		// 127.0.0.0/8 block is all local) stand in for two distinct machines.
		const clusterPort = 17381

		introducer, err := ringmember.New(
			ringmember.WithLogger(logr.Discard()),
			ringmember.WithMachineID(1),
			ringmember.WithIsIntroducer(true),
			ringmember.WithAdvertisedAddress("127.0.0.1"),
			ringmember.WithBindAddress("127.0.0.1:17381"),
			ringmember.WithClusterPort(clusterPort),
			ringmember.WithDNSPath(dnsPath),
			ringmember.WithPingRate(50*time.Millisecond),
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(introducer.Startup()).To(Succeed())
		defer introducer.Shutdown() //nolint:errcheck

		Expect(introducer.Join()).To(Succeed())
		Eventually(func() int {
			return countMembers(introducer)
		}).Should(Equal(1))

		joiner, err := ringmember.New(
			ringmember.WithLogger(logr.Discard()),
			ringmember.WithMachineID(2),
			ringmember.WithAdvertisedAddress("127.0.0.2"),
			ringmember.WithBindAddress("127.0.0.2:17381"),
			ringmember.WithClusterPort(clusterPort),
			ringmember.WithDNSPath(dnsPath),
			ringmember.WithPingRate(50*time.Millisecond),
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(joiner.Startup()).To(Succeed())
		defer joiner.Shutdown() //nolint:errcheck

		Expect(joiner.Join()).To(Succeed())
		Eventually(func() int {
			return countMembers(joiner)
		}).Should(Equal(2))
		Eventually(func() int {
			return countMembers(introducer)
		}).Should(Equal(2))
	})
})

func countMembers(node *ringmember.Node) int {
	body, err := node.ListMembers()
	if err != nil {
		return -1
	}
	var members []view.Member
	if err := json.Unmarshal(body, &members); err != nil {
		return -1
	}
	return len(members)
}
