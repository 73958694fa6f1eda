package usage_test

import (
	"context"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/usage"
)

func entry(endpoint, status string, annotations int, durationMS int64) usage.Entry {
	return usage.Entry{
		Timestamp:   time.Now(),
		Endpoint:    endpoint,
		Model:       "gpt-4o-search-preview",
		Turns:       3,
		Searched:    annotations > 0,
		Annotations: annotations,
		DurationMS:  durationMS,
		Status:      status,
	}
}

// itBehavesLikeARecorder registers the assertions every Recorder
// implementation must satisfy.
func itBehavesLikeARecorder(newRecorder func() usage.Recorder) {
	var ctx context.Context
	var recorder usage.Recorder

	BeforeEach(func() {
		ctx = context.Background()
		recorder = newRecorder()
	})

	AfterEach(func() {
		Expect(recorder.Close()).To(Succeed())
	})

	It("summarizes an empty ledger as zeros", func() {
		summary, err := recorder.Summarize(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(summary.TotalRequests).To(BeZero())
		Expect(summary.ByEndpoint).To(BeEmpty())
		Expect(summary.Searches).To(BeZero())
		Expect(summary.Errors).To(BeZero())
		Expect(summary.AvgDurationMS).To(BeZero())
	})

	It("aggregates recorded entries", func() {
		Expect(recorder.Record(ctx, entry(usage.EndpointFinder, usage.StatusOK, 2, 100))).To(Succeed())
		Expect(recorder.Record(ctx, entry(usage.EndpointFinder, usage.StatusOK, 0, 200))).To(Succeed())
		Expect(recorder.Record(ctx, entry(usage.EndpointLisa, usage.StatusError, 0, 300))).To(Succeed())

		summary, err := recorder.Summarize(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(summary.TotalRequests).To(Equal(3))
		Expect(summary.ByEndpoint).To(HaveKeyWithValue(usage.EndpointFinder, 2))
		Expect(summary.ByEndpoint).To(HaveKeyWithValue(usage.EndpointLisa, 1))
		Expect(summary.Searches).To(Equal(1))
		Expect(summary.Annotations).To(Equal(2))
		Expect(summary.Errors).To(Equal(1))
		Expect(summary.AvgDurationMS).To(Equal(int64(200)))
	})
}

var _ = Describe("MemoryRecorder", func() {
	itBehavesLikeARecorder(func() usage.Recorder {
		return usage.NewMemoryRecorder()
	})

	It("lists entries oldest first", func() {
		ctx := context.Background()
		recorder := usage.NewMemoryRecorder()
		defer recorder.Close()

		Expect(recorder.Record(ctx, entry(usage.EndpointFinder, usage.StatusOK, 0, 100))).To(Succeed())
		Expect(recorder.Record(ctx, entry(usage.EndpointLisa, usage.StatusOK, 0, 200))).To(Succeed())

		entries, err := recorder.Entries(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(2))
		Expect(entries[0].Endpoint).To(Equal(usage.EndpointFinder))
		Expect(entries[1].Endpoint).To(Equal(usage.EndpointLisa))
	})
})

var _ = Describe("SqliteRecorder", func() {
	itBehavesLikeARecorder(func() usage.Recorder {
		recorder, err := usage.NewSqliteRecorder(filepath.Join(GinkgoT().TempDir(), "usage.db"))
		Expect(err).NotTo(HaveOccurred())
		return recorder
	})

	It("keeps entries across a reopen", func() {
		ctx := context.Background()
		path := filepath.Join(GinkgoT().TempDir(), "usage.db")

		first, err := usage.NewSqliteRecorder(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(first.Record(ctx, entry(usage.EndpointFinder, usage.StatusOK, 1, 150))).To(Succeed())
		Expect(first.Close()).To(Succeed())

		second, err := usage.NewSqliteRecorder(path)
		Expect(err).NotTo(HaveOccurred())
		defer second.Close()

		summary, err := second.Summarize(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.TotalRequests).To(Equal(1))
		Expect(summary.Searches).To(Equal(1))
	})

	It("lists entries oldest first", func() {
		ctx := context.Background()
		recorder, err := usage.NewSqliteRecorder(filepath.Join(GinkgoT().TempDir(), "usage.db"))
		Expect(err).NotTo(HaveOccurred())
		defer recorder.Close()

		Expect(recorder.Record(ctx, entry(usage.EndpointFinder, usage.StatusOK, 0, 100))).To(Succeed())
		Expect(recorder.Record(ctx, entry(usage.EndpointLisa, usage.StatusError, 3, 200))).To(Succeed())

		entries, err := recorder.Entries(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(2))
		Expect(entries[0].Endpoint).To(Equal(usage.EndpointFinder))
		Expect(entries[1].Endpoint).To(Equal(usage.EndpointLisa))
		Expect(entries[1].Searched).To(BeTrue())
		Expect(entries[1].Annotations).To(Equal(3))
	})
})
