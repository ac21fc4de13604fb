package httpapi_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/go-logr/logr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ringmembers/ringmembership/internal/httpapi"
)

type fakeEngine struct {
	members      []byte
	self         []byte
	joinErr      error
	leaveErr     error
	isIntroducer bool
}

func (f *fakeEngine) ListMembers() ([]byte, error) { return f.members, nil }
func (f *fakeEngine) ListSelf() ([]byte, error)    { return f.self, nil }
func (f *fakeEngine) Join() error                  { return f.joinErr }
func (f *fakeEngine) Leave() error                 { return f.leaveErr }
func (f *fakeEngine) Stop() string                 { return "stopped" }
func (f *fakeEngine) IsIntroducer() bool           { return f.isIntroducer }

var _ = Describe("Server", func() {
	It("should serve the member list as JSON", func() {
		engine := &fakeEngine{members: []byte(`[{"member_id":"1-1-10.0.0.1"}]`)}
		server := httptest.NewServer(httpapi.NewServer(logr.Discard(), engine).Handler())
		defer server.Close()

		resp, err := http.Get(server.URL + "/members")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	It("should report a conflict when JOIN fails", func() {
		engine := &fakeEngine{joinErr: errors.New("already a member")}
		server := httptest.NewServer(httpapi.NewServer(logr.Discard(), engine).Handler())
		defer server.Close()

		resp, err := http.Post(server.URL+"/join", "application/json", nil)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusConflict))
	})

	It("should report the introducer flag", func() {
		engine := &fakeEngine{isIntroducer: true}
		server := httptest.NewServer(httpapi.NewServer(logr.Discard(), engine).Handler())
		defer server.Close()

		resp, err := http.Get(server.URL + "/introducer")
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})
})
