package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LifecycleMetrics covers the listing/proposal/assignment state machine.
type LifecycleMetrics struct {
	ListingsCreatedTotal   prometheus.Counter
	ListingsPublishedTotal prometheus.Counter
	ListingsAssignedTotal  prometheus.Counter
	ListingsCompletedTotal prometheus.Counter
	ListingsCancelledTotal prometheus.Counter

	ProposalsSubmittedTotal prometheus.Counter
	ProposalsAcceptedTotal  prometheus.Counter
	ProposalsRejectedTotal  *prometheus.CounterVec
	ProposalsWithdrawnTotal prometheus.Counter

	AcceptConflictsTotal prometheus.Counter

	NotificationFailuresTotal prometheus.Counter

	DisputesOpenGauge prometheus.Gauge
}

func NewLifecycleMetrics() *LifecycleMetrics {
	return &LifecycleMetrics{
		ListingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "listings_created_total",
			Help: "Total listings created",
		}),
		ListingsPublishedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "listings_published_total",
			Help: "Total listings published",
		}),
		ListingsAssignedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "listings_assigned_total",
			Help: "Total listings that reached ASSIGNED",
		}),
		ListingsCompletedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "listings_completed_total",
			Help: "Total listings completed",
		}),
		ListingsCancelledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "listings_cancelled_total",
			Help: "Total listings cancelled",
		}),
		ProposalsSubmittedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "proposals_submitted_total",
			Help: "Total proposals submitted",
		}),
		ProposalsAcceptedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "proposals_accepted_total",
			Help: "Total proposals accepted",
		}),
		ProposalsRejectedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "proposals_rejected_total",
			Help: "Total proposals rejected, by reason",
		}, []string{"reason"}), // "declined" or "sibling_accepted"
		ProposalsWithdrawnTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "proposals_withdrawn_total",
			Help: "Total proposals withdrawn",
		}),
		AcceptConflictsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accept_conflicts_total",
			Help: "Accept attempts that lost the race for a listing",
		}),
		NotificationFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "notification_publish_failures_total",
			Help: "Notification events that failed to publish and were queued for retry",
		}),
		DisputesOpenGauge: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "disputes_open",
			Help: "Disputes currently open or under review",
		}),
	}
}
